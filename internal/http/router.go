package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/librarian/internal/database"
)

// RouterConfig carries every dependency the router needs, keeping the
// constructor signature stable as the surface grows.
type RouterConfig struct {
	Database      *database.Database
	TemplatesPath string
	StaticPath    string
	Version       string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	db := cfg.Database
	home := NewHomeController(db.Authors, db.Genres, db.Books, db.Instances)
	authors := NewAuthorsController(db.Authors, db.Books)
	genres := NewGenresController(db.Genres, db.Books)
	books := NewBooksController(db.Books, db.Authors, db.Genres, db.Instances)
	instances := NewInstancesController(db.Instances, db.Books)
	health := NewHealthController(db, cfg.Version)

	router.GET("/health", health.Health)
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/catalog")
	})

	catalog := router.Group("/catalog")
	{
		catalog.GET("", home.Index)

		catalog.GET("/authors", authors.List)
		catalog.GET("/author/create", authors.CreateForm)
		catalog.POST("/author/create", authors.Create)
		catalog.GET("/author/:id", authors.Detail)
		catalog.GET("/author/:id/update", authors.UpdateForm)
		catalog.POST("/author/:id/update", authors.Update)
		catalog.GET("/author/:id/delete", authors.DeleteForm)
		catalog.POST("/author/:id/delete", authors.Delete)

		catalog.GET("/genres", genres.List)
		catalog.GET("/genre/create", genres.CreateForm)
		catalog.POST("/genre/create", genres.Create)
		catalog.GET("/genre/:id", genres.Detail)
		catalog.GET("/genre/:id/delete", genres.DeleteForm)
		catalog.POST("/genre/:id/delete", genres.Delete)

		catalog.GET("/books", books.List)
		catalog.GET("/book/create", books.CreateForm)
		catalog.POST("/book/create", books.Create)
		catalog.GET("/book/:id", books.Detail)
		catalog.GET("/book/:id/update", books.UpdateForm)
		catalog.POST("/book/:id/update", books.Update)
		catalog.GET("/book/:id/delete", books.DeleteForm)
		catalog.POST("/book/:id/delete", books.Delete)

		catalog.GET("/bookinstances", instances.List)
		catalog.GET("/bookinstance/create", instances.CreateForm)
		catalog.POST("/bookinstance/create", instances.Create)
		catalog.GET("/bookinstance/:id", instances.Detail)
		catalog.GET("/bookinstance/:id/update", instances.UpdateForm)
		catalog.POST("/bookinstance/:id/update", instances.Update)
		catalog.GET("/bookinstance/:id/delete", instances.DeleteForm)
		catalog.POST("/bookinstance/:id/delete", instances.Delete)
	}

	return router
}
