package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/repository"
)

type StatsHandler struct {
	reports *repository.ReportRepository
}

func NewStatsHandler(db *gorm.DB) *StatsHandler {
	return &StatsHandler{reports: repository.NewReportRepository(db)}
}

// MostOrdered reports, per order status, the product with the highest
// cumulative ordered quantity: GET /stats.
func (h *StatsHandler) MostOrdered(c *gin.Context) {
	report, err := h.reports.MostOrderedByStatus(c.Request.Context())
	if err != nil {
		dbError(c, "most ordered by status", err)
		return
	}
	c.JSON(http.StatusOK, report)
}
