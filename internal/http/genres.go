package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/fetch"
	"github.com/mrlokans/librarian/internal/forms"
)

// GenreStore defines database operations for genre management.
type GenreStore interface {
	ListGenres() ([]entities.Genre, error)
	GetGenreByID(id uint) (*entities.Genre, error)
	FindGenreByName(name string) (*entities.Genre, error)
	CreateGenre(genre *entities.Genre) error
	DeleteGenre(id uint) error
	CountGenres() (int64, error)
}

type GenresController struct {
	store GenreStore
	books BookStore
}

func NewGenresController(store GenreStore, books BookStore) *GenresController {
	return &GenresController{store: store, books: books}
}

// List shows all genres sorted by name.
// GET /catalog/genres
func (gc *GenresController) List(c *gin.Context) {
	genres, err := gc.store.ListGenres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.HTML(http.StatusOK, "genre_list.html", gin.H{
		"Title":  "Genre List",
		"Genres": genres,
	})
}

// Detail shows one genre and the books associated with it.
// GET /catalog/genre/:id
func (gc *GenresController) Detail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"genre": func(ctx context.Context) (any, error) {
			return gc.store.GetGenreByID(id)
		},
		"books": func(ctx context.Context) (any, error) {
			return gc.books.ListBooksByGenre(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "genre detail")
		return
	}

	genre := fetch.Get[*entities.Genre](results, "genre")
	if genre == nil {
		respondNotFound(c, "Genre")
		return
	}

	c.HTML(http.StatusOK, "genre_detail.html", gin.H{
		"Title": "Genre: " + genre.Name,
		"Genre": genre,
		"Books": fetch.Get[[]entities.Book](results, "books"),
	})
}

// CreateForm shows an empty genre form.
// GET /catalog/genre/create
func (gc *GenresController) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "genre_form.html", gin.H{
		"Title": "Create Genre",
	})
}

// Create validates the submitted name and persists a new genre unless one
// with the same name (case-insensitively) already exists.
// POST /catalog/genre/create
func (gc *GenresController) Create(c *gin.Context) {
	var form forms.GenreForm
	_ = c.ShouldBind(&form)

	if violations := form.Validate(); len(violations) > 0 {
		c.HTML(http.StatusOK, "genre_form.html", gin.H{
			"Title":  "Create Genre",
			"Genre":  form,
			"Errors": violations,
		})
		return
	}

	existing, err := gc.store.FindGenreByName(form.Name)
	if err != nil {
		respondInternalError(c, err, "genre dedup lookup")
		return
	}
	if existing != nil {
		c.Redirect(http.StatusFound, existing.URL())
		return
	}

	genre := entities.Genre{Name: form.Name}
	if err := gc.store.CreateGenre(&genre); err != nil {
		respondInternalError(c, err, "create genre")
		return
	}
	c.Redirect(http.StatusFound, genre.URL())
}

// DeleteForm shows the delete confirmation with any blocking books.
// GET /catalog/genre/:id/delete
func (gc *GenresController) DeleteForm(c *gin.Context) {
	gc.renderDeleteOrRedirect(c, false)
}

// Delete removes the genre unless books still reference it.
// POST /catalog/genre/:id/delete
func (gc *GenresController) Delete(c *gin.Context) {
	gc.renderDeleteOrRedirect(c, true)
}

func (gc *GenresController) renderDeleteOrRedirect(c *gin.Context, destructive bool) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	results, err := fetch.All(c.Request.Context(), map[string]fetch.Func{
		"genre": func(ctx context.Context) (any, error) {
			return gc.store.GetGenreByID(id)
		},
		"books": func(ctx context.Context) (any, error) {
			return gc.books.ListBooksByGenre(id)
		},
	})
	if err != nil {
		respondInternalError(c, err, "genre delete")
		return
	}

	genre := fetch.Get[*entities.Genre](results, "genre")
	if genre == nil {
		c.Redirect(http.StatusFound, "/catalog/genres")
		return
	}

	books := fetch.Get[[]entities.Book](results, "books")
	if !destructive || len(books) > 0 {
		c.HTML(http.StatusOK, "genre_delete.html", gin.H{
			"Title": "Delete Genre",
			"Genre": genre,
			"Books": books,
		})
		return
	}

	if err := gc.store.DeleteGenre(id); err != nil {
		respondInternalError(c, err, "delete genre")
		return
	}
	c.Redirect(http.StatusFound, "/catalog/genres")
}
