package http

import (
	"html/template"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/librarian/internal/database"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

// createTestTemplate provides stub views: each renders the title and any
// validation messages so tests can assert on re-rendered output without the
// real template files.
func createTestTemplate() *template.Template {
	names := []string{
		"index.html", "error.html",
		"author_list.html", "author_detail.html", "author_form.html", "author_delete.html",
		"genre_list.html", "genre_detail.html", "genre_form.html", "genre_delete.html",
		"book_list.html", "book_detail.html", "book_form.html", "book_delete.html",
		"bookinstance_list.html", "bookinstance_detail.html", "bookinstance_form.html", "bookinstance_delete.html",
	}

	tmpl := template.New("")
	for _, name := range names {
		tmpl = template.Must(tmpl.New(name).Parse(`{{.Title}}{{range .Errors}}|{{.Message}}{{end}}`))
	}
	return tmpl
}

func newTestRouter() *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(createTestTemplate())
	return router
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)
	return w
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	router.ServeHTTP(w, req)
	return w
}
