package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type OrderHandler struct {
	repo *repository.OrderRepository
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{repo: repository.NewOrderRepository(db)}
}

type orderInput struct {
	Ref        string           `json:"ref"`
	Status     string           `json:"status"`
	TotalPrice *decimal.Decimal `json:"total_price"`
	Date       *time.Time       `json:"date"`
	ClientID   *uint            `json:"client_id"`
}

func (in orderInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("ref", in.Ref, v)
	validation.Required("status", in.Status, v)
	validation.OneOf("status", in.Status, models.OrderStatuses, v)
	validation.RequiredDecimal("total_price", in.TotalPrice, v)
	validation.RequiredTime("date", in.Date, v)
	validation.RequiredUint("client_id", in.ClientID, v)
	return v
}

func (in orderInput) model() models.Order {
	return models.Order{Ref: in.Ref, Status: in.Status, TotalPrice: *in.TotalPrice, Date: *in.Date, ClientID: *in.ClientID}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Get returns the order with its client and line items joined in.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		dbError(c, "get order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in orderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	order := in.model()
	if err := h.repo.Create(c.Request.Context(), &order); err != nil {
		dbError(c, "create order", err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in orderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	order := in.model()
	if err := h.repo.Update(c.Request.Context(), id, &order); err != nil {
		dbError(c, "update order", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		dbError(c, "delete order", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ByDates lists orders within a date range: GET /ordersbydates?start&end.
// Dates accept 2006-01-02 or RFC 3339; the end of a date-only range is
// inclusive through the whole day.
func (h *OrderHandler) ByDates(c *gin.Context) {
	start, okStart := parseDate(c.Query("start"), false)
	end, okEnd := parseDate(c.Query("end"), true)
	v := validation.Violations{}
	if !okStart {
		v["start"] = "required_date"
	}
	if !okEnd {
		v["end"] = "required_date"
	}
	if !v.Empty() {
		validationFailed(c, v)
		return
	}
	orders, err := h.repo.Between(c.Request.Context(), start, end)
	if err != nil {
		dbError(c, "orders by dates", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func parseDate(s string, endOfDay bool) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}
