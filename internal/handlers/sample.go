package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/seed"
)

type SampleDataHandler struct {
	db *gorm.DB
}

func NewSampleDataHandler(db *gorm.DB) *SampleDataHandler {
	return &SampleDataHandler{db: db}
}

// Generate seeds the schema with synthetic data: POST /sampleData.
// An optional ?count= overrides the default of 100 rows per entity.
func (h *SampleDataHandler) Generate(c *gin.Context) {
	count := seed.DefaultRecords
	if v := c.Query("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_count"})
			return
		}
		count = n
	}
	if err := seed.Run(c.Request.Context(), h.db, count); err != nil {
		log.Printf("sample data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "seed_failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sample data generated", "records": count})
}
