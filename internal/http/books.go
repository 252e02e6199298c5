package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/fetch"
	"github.com/mrlokans/librarian/internal/forms"
)

// BookStore defines database operations for book management.
type BookStore interface {
	ListBooks() ([]entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	ListBooksByAuthor(authorID uint) ([]entities.Book, error)
	ListBooksByGenre(genreID uint) ([]entities.Book, error)
	CreateBook(book *entities.Book, genreIDs []uint) error
	UpdateBook(id uint, book *entities.Book, genreIDs []uint) error
	DeleteBook(id uint) error
	CountBooks() (int64, error)
}

type BooksController struct {
	store     BookStore
	authors   AuthorStore
	genres    GenreStore
	instances InstanceStore
}

func NewBooksController(store BookStore, authors AuthorStore, genres GenreStore, instances InstanceStore) *BooksController {
	return &BooksController{store: store, authors: authors, genres: genres, instances: instances}
}

// List shows all books sorted by title with their authors.
// GET /catalog/books
func (bc *BooksController) List(c *gin.Context) {
	books, err := bc.store.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.HTML(http.StatusOK, "book_list.html", gin.H{
		"Title": "Book List",
		"Books": books,
	})
}

// Detail shows one book with its author, genres, and copies.
// GET /catalog/book/:id
func (bc *BooksController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"book": func(ctx context.Context) (any, error) {
			return bc.store.GetBookByID(id)
		},
		"instances": func(ctx context.Context) (any, error) {
			return bc.instances.ListInstancesByBook(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "book detail")
		return
	}

	book := fetch.Get[*entities.Book](results, "book")
	if book == nil {
		respondNotFound(c, "Book")
		return
	}

	c.HTML(http.StatusOK, "book_detail.html", gin.H{
		"Title":     book.Title,
		"Book":      book,
		"Instances": fetch.Get[[]entities.BookInstance](results, "instances"),
	})
}

// CreateForm shows an empty book form with all author and genre options.
// GET /catalog/book/create
func (bc *BooksController) CreateForm(c *gin.Context) {
	authors, genres, err := bc.formOptions(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "book create form")
		return
	}

	c.HTML(http.StatusOK, "book_form.html", gin.H{
		"Title":   "Create Book",
		"Authors": authors,
		"Genres":  forms.MarkSelectedGenres(genres, nil),
	})
}

// Create validates the submitted form and persists a new book with its
// genre associations. On violations the form is re-rendered with the
// submitted values, the option lists, and per-option checked state; nothing
// is persisted.
// POST /catalog/book/create
func (bc *BooksController) Create(c *gin.Context) {
	var form forms.BookForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		bc.rerenderForm(c, "Create Book", form, violations)
		return
	}

	book := entities.Book{
		Title:    form.Title,
		Summary:  form.Summary,
		ISBN:     form.ISBN,
		AuthorID: form.AuthorID,
	}
	if err := bc.store.CreateBook(&book, form.GenreIDs()); err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	c.Redirect(http.StatusFound, book.URL())
}

// UpdateForm shows the book form prefilled with the stored record, genre
// options checked according to the book's current associations.
// GET /catalog/book/:id/update
func (bc *BooksController) UpdateForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"book": func(ctx context.Context) (any, error) {
			return bc.store.GetBookByID(id)
		},
		"authors": func(ctx context.Context) (any, error) {
			return bc.authors.ListAuthors()
		},
		"genres": func(ctx context.Context) (any, error) {
			return bc.genres.ListGenres()
		},
	})
	if err != nil {
		respondInternalError(c, err, "book update form")
		return
	}

	book := fetch.Get[*entities.Book](results, "book")
	if book == nil {
		respondNotFound(c, "Book")
		return
	}

	form := forms.BookForm{
		Title:    book.Title,
		AuthorID: book.AuthorID,
		Summary:  book.Summary,
		ISBN:     book.ISBN,
		Genres:   book.GenreIDs(),
	}
	c.HTML(http.StatusOK, "book_form.html", gin.H{
		"Title":   "Update Book",
		"Book":    form,
		"Authors": fetch.Get[[]entities.Author](results, "authors"),
		"Genres":  forms.MarkSelectedGenres(fetch.Get[[]entities.Genre](results, "genres"), book.GenreIDs()),
	})
}

// Update replaces the stored book. Validation gates the write: any
// violation re-renders the form and the store is never called. An omitted
// genre selection clears the book's genre associations.
// POST /catalog/book/:id/update
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form forms.BookForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		bc.rerenderForm(c, "Update Book", form, violations)
		return
	}

	book := entities.Book{
		Title:    form.Title,
		Summary:  form.Summary,
		ISBN:     form.ISBN,
		AuthorID: form.AuthorID,
	}
	if err := bc.store.UpdateBook(id, &book, form.GenreIDs()); err != nil {
		respondInternalError(c, err, "update book")
		return
	}
	c.Redirect(http.StatusFound, book.URL())
}

// DeleteForm shows the delete confirmation with any blocking copies.
// GET /catalog/book/:id/delete
func (bc *BooksController) DeleteForm(c *gin.Context) {
	bc.renderDeleteOrRedirect(c, false)
}

// Delete removes the book unless copies of it still exist.
// POST /catalog/book/:id/delete
func (bc *BooksController) Delete(c *gin.Context) {
	bc.renderDeleteOrRedirect(c, true)
}

func (bc *BooksController) renderDeleteOrRedirect(c *gin.Context, destructive bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"book": func(ctx context.Context) (any, error) {
			return bc.store.GetBookByID(id)
		},
		"instances": func(ctx context.Context) (any, error) {
			return bc.instances.ListInstancesByBook(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "book delete")
		return
	}

	book := fetch.Get[*entities.Book](results, "book")
	if book == nil {
		c.Redirect(http.StatusFound, "/catalog/books")
		return
	}

	instances := fetch.Get[[]entities.BookInstance](results, "instances")
	if !destructive || len(instances) > 0 {
		c.HTML(http.StatusOK, "book_delete.html", gin.H{
			"Title":     "Delete Book",
			"Book":      book,
			"Instances": instances,
		})
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		respondInternalError(c, err, "delete book")
		return
	}
	c.Redirect(http.StatusFound, "/catalog/books")
}

// rerenderForm re-displays the book form after a validation failure: the
// option lists are fetched again and the submitted genre selection is
// reconciled onto the full genre list.
func (bc *BooksController) rerenderForm(c *gin.Context, title string, form forms.BookForm, violations []forms.FieldError) {
	authors, genres, err := bc.formOptions(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "book form options")
		return
	}

	c.HTML(http.StatusOK, "book_form.html", gin.H{
		"Title":   title,
		"Book":    form,
		"Authors": authors,
		"Genres":  forms.MarkSelectedGenres(genres, form.GenreIDs()),
		"Errors":  violations,
	})
}

func (bc *BooksController) formOptions(ctx context.Context) ([]entities.Author, []entities.Genre, error) {
	results, err := fetch.All(ctx, map[string]fetch.Func{
		"authors": func(ctx context.Context) (any, error) {
			return bc.authors.ListAuthors()
		},
		"genres": func(ctx context.Context) (any, error) {
			return bc.genres.ListGenres()
		},
	})
	if err != nil {
		return nil, nil, err
	}
	return fetch.Get[[]entities.Author](results, "authors"), fetch.Get[[]entities.Genre](results, "genres"), nil
}
