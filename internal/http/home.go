package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/entities"
	"github.com/mrlokans/librarian/internal/fetch"
)

// HomeController renders the catalog landing page with record counts
// gathered across all four entity types in one concurrent group.
type HomeController struct {
	authors   AuthorStore
	genres    GenreStore
	books     BookStore
	instances InstanceStore
}

func NewHomeController(authors AuthorStore, genres GenreStore, books BookStore, instances InstanceStore) *HomeController {
	return &HomeController{authors: authors, genres: genres, books: books, instances: instances}
}

// Index shows the home page.
// GET /catalog
func (hc *HomeController) Index(c *gin.Context) {
	counts, err := hc.Counts(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "home counts")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":  "Local Library Home",
		"Counts": counts,
	})
}

// Counts fans out the five independent count queries and merges them.
func (hc *HomeController) Counts(ctx context.Context) (map[string]int64, error) {
	results, err := fetch.All(ctx, map[string]fetch.Func{
		"author": func(ctx context.Context) (any, error) {
			return hc.authors.CountAuthors()
		},
		"genre": func(ctx context.Context) (any, error) {
			return hc.genres.CountGenres()
		},
		"book": func(ctx context.Context) (any, error) {
			return hc.books.CountBooks()
		},
		"bookinstance": func(ctx context.Context) (any, error) {
			return hc.instances.CountInstances("")
		},
		"bookavailable": func(ctx context.Context) (any, error) {
			return hc.instances.CountInstances(entities.StatusAvailable)
		},
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(results))
	for name := range results {
		counts[name] = fetch.Get[int64](results, name)
	}
	return counts, nil
}
