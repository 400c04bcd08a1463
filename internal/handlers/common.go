package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

// parseID reads a positive integer path parameter. On failure it writes the
// 400 response and returns ok=false.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_id"})
		return 0, false
	}
	return uint(id), true
}

// dbError maps a repository error onto the response: 404 for missing rows,
// 500 with a generic body otherwise (the detail is only logged server-side).
func dbError(c *gin.Context, op string, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not_found"})
		return
	}
	log.Printf("%s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "database_error"})
}

func invalidJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
}

func validationFailed(c *gin.Context, v validation.Violations) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "details": v})
}
