package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/database"
	"github.com/mrlokans/librarian/internal/entities"
)

func setupGenresRouter(db *database.Database) *gin.Engine {
	router := newTestRouter()
	controller := NewGenresController(db.Genres, db.Books)

	router.GET("/catalog/genres", controller.List)
	router.GET("/catalog/genre/create", controller.CreateForm)
	router.POST("/catalog/genre/create", controller.Create)
	router.GET("/catalog/genre/:id", controller.Detail)
	router.GET("/catalog/genre/:id/delete", controller.DeleteForm)
	router.POST("/catalog/genre/:id/delete", controller.Delete)
	return router
}

func TestGenresController_Create(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	w := postForm(router, "/catalog/genre/create", url.Values{
		"name": {"Fantasy"},
	})
	require.Equal(t, http.StatusFound, w.Code)

	genres, err := db.Genres.ListGenres()
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Fantasy", genres[0].Name)
	assert.Equal(t, genres[0].URL(), w.Header().Get("Location"))
}

func TestGenresController_CreateDuplicateNameReturnsExisting(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	existing := entities.Genre{Name: "Fantasy"}
	require.NoError(t, db.Genres.CreateGenre(&existing))

	// Name matching is case-insensitive.
	w := postForm(router, "/catalog/genre/create", url.Values{
		"name": {"fantasy"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, existing.URL(), w.Header().Get("Location"))

	count, err := db.Genres.CountGenres()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGenresController_CreateShortNameRerenders(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	w := postForm(router, "/catalog/genre/create", url.Values{
		"name": {"SF"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Genre name must contain at least 3 characters")

	count, err := db.Genres.CountGenres()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGenresController_Detail(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	genre := entities.Genre{Name: "Fantasy"}
	require.NoError(t, db.Genres.CreateGenre(&genre))

	w := get(router, genre.URL())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fantasy")
}

func TestGenresController_DetailMissingGenre(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	w := get(router, "/catalog/genre/7")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenresController_DeleteRefusedWithBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	author := entities.Author{FirstName: "Patrick", FamilyName: "Rothfuss"}
	require.NoError(t, db.Authors.CreateAuthor(&author))
	genre := entities.Genre{Name: "Fantasy"}
	require.NoError(t, db.Genres.CreateGenre(&genre))
	book := entities.Book{Title: "The Name of the Wind", Summary: "Kvothe.", ISBN: "9780756404741", AuthorID: author.ID}
	require.NoError(t, db.Books.CreateBook(&book, []uint{genre.ID}))

	w := postForm(router, genre.URL()+"/delete", nil)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := db.Genres.CountGenres()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGenresController_DeleteWithoutBooks(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()
	router := setupGenresRouter(db)

	genre := entities.Genre{Name: "Fantasy"}
	require.NoError(t, db.Genres.CreateGenre(&genre))

	w := postForm(router, genre.URL()+"/delete", nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/catalog/genres", w.Header().Get("Location"))

	stored, err := db.Genres.GetGenreByID(genre.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
