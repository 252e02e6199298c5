package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/forms"
)

// InstanceStore defines database operations for physical book copies.
type InstanceStore interface {
	ListInstances(status entities.InstanceStatus) ([]entities.BookInstance, error)
	GetInstanceByID(id uint) (*entities.BookInstance, error)
	ListInstancesByBook(bookID uint) ([]entities.BookInstance, error)
	CreateInstance(instance *entities.BookInstance) error
	UpdateInstance(instance *entities.BookInstance) error
	DeleteInstance(id uint) error
	CountInstances(status entities.InstanceStatus) (int64, error)
}

type InstancesController struct {
	store InstanceStore
	books BookStore
}

func NewInstancesController(store InstanceStore, books BookStore) *InstancesController {
	return &InstancesController{store: store, books: books}
}

// statusOptions drives the status select control on the copy form.
var statusOptions = []entities.InstanceStatus{
	entities.StatusAvailable,
	entities.StatusMaintenance,
	entities.StatusLoaned,
	entities.StatusReserved,
}

// List shows all copies with their books; an optional ?status= query
// narrows the listing to copies in that status.
// GET /catalog/bookinstances
func (ic *InstancesController) List(c *gin.Context) {
	status := entities.InstanceStatus(c.Query("status"))
	instances, err := ic.store.ListInstances(status)
	if err != nil {
		respondInternalError(c, err, "list book instances")
		return
	}
	c.HTML(http.StatusOK, "bookinstance_list.html", gin.H{
		"Title":     "Book Instances",
		"Instances": instances,
		"Status":    status,
	})
}

// Detail shows one copy with its book.
// GET /catalog/bookinstance/:id
func (ic *InstancesController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	instance, err := ic.store.GetInstanceByID(id)
	if err != nil {
		respondInternalError(c, err, "book instance detail")
		return
	}
	if instance == nil {
		respondNotFound(c, "Book copy")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_detail.html", gin.H{
		"Title":    "Copy: " + instance.Book.Title,
		"Instance": instance,
	})
}

// CreateForm shows an empty copy form with all books as options.
// GET /catalog/bookinstance/create
func (ic *InstancesController) CreateForm(c *gin.Context) {
	books, err := ic.books.ListBooks()
	if err != nil {
		respondInternalError(c, err, "book instance create form")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form.html", gin.H{
		"Title":    "Create BookInstance",
		"Books":    books,
		"Statuses": statusOptions,
	})
}

// Create validates the submitted form and persists a new copy. Violations
// re-render the form with the book list, the submitted values, and the
// previously selected book; nothing is persisted.
// POST /catalog/bookinstance/create
func (ic *InstancesController) Create(c *gin.Context) {
	var form forms.BookInstanceForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		ic.rerenderForm(c, "Create BookInstance", form, violations)
		return
	}

	instance := entities.BookInstance{
		BookID:  form.BookID,
		Imprint: form.Imprint,
		Status:  entities.InstanceStatus(form.Status),
		DueBack: form.DueDate(),
	}
	if err := ic.store.CreateInstance(&instance); err != nil {
		respondInternalError(c, err, "create book instance")
		return
	}
	c.Redirect(http.StatusFound, instance.URL())
}

// UpdateForm shows the copy form prefilled with the stored record.
// GET /catalog/bookinstance/:id/update
func (ic *InstancesController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	instance, err := ic.store.GetInstanceByID(id)
	if err != nil {
		respondInternalError(c, err, "book instance update form")
		return
	}
	if instance == nil {
		respondNotFound(c, "Book copy")
		return
	}

	books, err := ic.books.ListBooks()
	if err != nil {
		respondInternalError(c, err, "book instance update form")
		return
	}

	form := forms.BookInstanceForm{
		BookID:  instance.BookID,
		Imprint: instance.Imprint,
		Status:  string(instance.Status),
	}
	if instance.DueBack != nil {
		form.DueBack = instance.DueBack.Format("2006-01-02")
	}
	c.HTML(http.StatusOK, "bookinstance_form.html", gin.H{
		"Title":    "Update BookInstance",
		"Instance": form,
		"Books":    books,
		"Statuses": statusOptions,
	})
}

// Update replaces the stored copy. Validation gates the write.
// POST /catalog/bookinstance/:id/update
func (ic *InstancesController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.BookInstanceForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		ic.rerenderForm(c, "Update BookInstance", form, violations)
		return
	}

	instance := entities.BookInstance{
		ID:      id,
		BookID:  form.BookID,
		Imprint: form.Imprint,
		Status:  entities.InstanceStatus(form.Status),
		DueBack: form.DueDate(),
	}
	if err := ic.store.UpdateInstance(&instance); err != nil {
		respondInternalError(c, err, "update book instance")
		return
	}
	c.Redirect(http.StatusFound, instance.URL())
}

// DeleteForm shows the delete confirmation for a copy.
// GET /catalog/bookinstance/:id/delete
func (ic *InstancesController) DeleteForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	instance, err := ic.store.GetInstanceByID(id)
	if err != nil {
		respondInternalError(c, err, "book instance delete form")
		return
	}
	if instance == nil {
		c.Redirect(http.StatusFound, "/catalog/bookinstances")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_delete.html", gin.H{
		"Title":    "Delete BookInstance",
		"Instance": instance,
	})
}

// Delete removes a copy. Nothing references copies, so the delete needs no
// integrity check; deleting a missing copy is an idempotent no-op.
// POST /catalog/bookinstance/:id/delete
func (ic *InstancesController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ic.store.DeleteInstance(id); err != nil {
		respondInternalError(c, err, "delete book instance")
		return
	}
	c.Redirect(http.StatusFound, "/catalog/bookinstances")
}

func (ic *InstancesController) rerenderForm(c *gin.Context, title string, form forms.BookInstanceForm, violations []forms.FieldError) {
	books, err := ic.books.ListBooks()
	if err != nil {
		respondInternalError(c, err, "book instance form options")
		return
	}

	c.HTML(http.StatusOK, "bookinstance_form.html", gin.H{
		"Title":    title,
		"Instance": form,
		"Books":    books,
		"Statuses": statusOptions,
		"Errors":   violations,
	})
}
