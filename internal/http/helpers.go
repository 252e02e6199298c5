package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Error Response Helpers ---

// respondNotFound renders the 404 error page for a missing entity.
// Absence of a record is a normal outcome; it never reaches the 500 path.
func respondNotFound(c *gin.Context, resource string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"Title":   "Not Found",
		"Message": resource + " not found",
	})
}

// respondInternalError logs the error and renders a generic failure page.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Title":   "Error",
		"Message": "something went wrong",
	})
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. A malformed id renders the 404 page and returns 0, false.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondNotFound(c, "page")
		return 0, false
	}
	return uint(id), true
}
