package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/fetch"
	"github.com/mrlokans/librarian/internal/forms"
)

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	ListAuthors() ([]entities.Author, error)
	GetAuthorByID(id uint) (*entities.Author, error)
	FindAuthorMatching(firstName, familyName string, dateOfBirth, dateOfDeath *time.Time) (*entities.Author, error)
	CreateAuthor(author *entities.Author) error
	UpdateAuthor(author *entities.Author) error
	DeleteAuthor(id uint) error
	CountAuthors() (int64, error)
}

type AuthorsController struct {
	store AuthorStore
	books BookStore
}

func NewAuthorsController(store AuthorStore, books BookStore) *AuthorsController {
	return &AuthorsController{store: store, books: books}
}

// List shows all authors sorted by family name.
// GET /catalog/authors
func (ac *AuthorsController) List(c *gin.Context) {
	authors, err := ac.store.ListAuthors()
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}
	c.HTML(http.StatusOK, "author_list.html", gin.H{
		"Title":   "Author List",
		"Authors": authors,
	})
}

// Detail shows one author and the books referencing them.
// GET /catalog/author/:id
func (ac *AuthorsController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"author": func(ctx context.Context) (any, error) {
			return ac.store.GetAuthorByID(id)
		},
		"books": func(ctx context.Context) (any, error) {
			return ac.books.ListBooksByAuthor(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "author detail")
		return
	}

	author := fetch.Get[*entities.Author](results, "author")
	if author == nil {
		respondNotFound(c, "Author")
		return
	}

	c.HTML(http.StatusOK, "author_detail.html", gin.H{
		"Title":  "Author Details",
		"Author": author,
		"Books":  fetch.Get[[]entities.Book](results, "books"),
	})
}

// CreateForm shows an empty author form.
// GET /catalog/author/create
func (ac *AuthorsController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "author_form.html", gin.H{
		"Title": "Create Author",
	})
}

// Create validates the submitted form and persists a new author, unless an
// author with the identical name and life dates already exists, in which
// case the existing record wins and no duplicate is inserted.
// POST /catalog/author/create
func (ac *AuthorsController) Create(c *gin.Context) {
	var form forms.AuthorForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		c.HTML(http.StatusOK, "author_form.html", gin.H{
			"Title":  "Create Author",
			"Author": form,
			"Errors": violations,
		})
		return
	}

	existing, err := ac.store.FindAuthorMatching(form.FirstName, form.FamilyName, form.BirthDate(), form.DeathDate())
	if err != nil {
		respondInternalError(c, err, "author dedup lookup")
		return
	}
	if existing != nil {
		c.Redirect(http.StatusFound, existing.URL())
		return
	}

	author := entities.Author{
		FirstName:   form.FirstName,
		FamilyName:  form.FamilyName,
		DateOfBirth: form.BirthDate(),
		DateOfDeath: form.DeathDate(),
	}
	if err := ac.store.CreateAuthor(&author); err != nil {
		respondInternalError(c, err, "create author")
		return
	}
	c.Redirect(http.StatusFound, author.URL())
}

// UpdateForm shows the author form prefilled with the stored record.
// GET /catalog/author/:id/update
func (ac *AuthorsController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	author, err := ac.store.GetAuthorByID(id)
	if err != nil {
		respondInternalError(c, err, "author update form")
		return
	}
	if author == nil {
		respondNotFound(c, "Author")
		return
	}

	c.HTML(http.StatusOK, "author_form.html", gin.H{
		"Title":  "Update Author",
		"Author": authorFormValues(author),
	})
}

// Update replaces the stored author. Validation gates the write: any
// violation re-renders the form and the store is never called.
// POST /catalog/author/:id/update
func (ac *AuthorsController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.AuthorForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		c.HTML(http.StatusOK, "author_form.html", gin.H{
			"Title":  "Update Author",
			"Author": form,
			"Errors": violations,
		})
		return
	}

	author := entities.Author{
		ID:          id,
		FirstName:   form.FirstName,
		FamilyName:  form.FamilyName,
		DateOfBirth: form.BirthDate(),
		DateOfDeath: form.DeathDate(),
	}
	if err := ac.store.UpdateAuthor(&author); err != nil {
		respondInternalError(c, err, "update author")
		return
	}
	c.Redirect(http.StatusFound, author.URL())
}

// DeleteForm shows the delete confirmation, listing any books that would
// block the delete.
// GET /catalog/author/:id/delete
func (ac *AuthorsController) DeleteForm(c *gin.Context) {
	ac.renderDeleteOrRedirect(c, false)
}

// Delete removes the author if nothing references them. A missing author is
// treated as already deleted; books referencing the author refuse the delete
// and re-render the confirmation with the blocker list.
// POST /catalog/author/:id/delete
func (ac *AuthorsController) Delete(c *gin.Context) {
	ac.renderDeleteOrRedirect(c, true)
}

func (ac *AuthorsController) renderDeleteOrRedirect(c *gin.Context, destructive bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"author": func(ctx context.Context) (any, error) {
			return ac.store.GetAuthorByID(id)
		},
		"books": func(ctx context.Context) (any, error) {
			return ac.books.ListBooksByAuthor(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "author delete")
		return
	}

	author := fetch.Get[*entities.Author](results, "author")
	if author == nil {
		// Already gone: deletion is idempotent.
		c.Redirect(http.StatusFound, "/catalog/authors")
		return
	}

	books := fetch.Get[[]entities.Book](results, "books")
	if !destructive || len(books) > 0 {
		c.HTML(http.StatusOK, "author_delete.html", gin.H{
			"Title":  "Delete Author",
			"Author": author,
			"Books":  books,
		})
		return
	}

	if err := ac.store.DeleteAuthor(id); err != nil {
		respondInternalError(c, err, "delete author")
		return
	}
	c.Redirect(http.StatusFound, "/catalog/authors")
}

// authorFormValues converts a stored author back into submitted-form shape
// so the update form can echo it.
func authorFormValues(author *entities.Author) forms.AuthorForm {
	form := forms.AuthorForm{
		FirstName:  author.FirstName,
		FamilyName: author.FamilyName,
	}
	if author.DateOfBirth != nil {
		form.DateOfBirth = author.DateOfBirth.Format("2006-01-02")
	}
	if author.DateOfDeath != nil {
		form.DateOfDeath = author.DateOfDeath.Format("2006-01-02")
	}
	return form
}
