package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

// OrderLineHandler serves the /productOrders routes. The repository refreshes
// the touched order totals on every mutation.
type OrderLineHandler struct {
	repo *repository.OrderLineRepository
}

func NewOrderLineHandler(db *gorm.DB) *OrderLineHandler {
	return &OrderLineHandler{repo: repository.NewOrderLineRepository(db)}
}

type orderLineInput struct {
	ProductID *uint `json:"productId"`
	OrderID   *uint `json:"orderId"`
	Quantity  *int  `json:"quantity"`
}

func (in orderLineInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.RequiredUint("productId", in.ProductID, v)
	validation.RequiredUint("orderId", in.OrderID, v)
	validation.RequiredInt("quantity", in.Quantity, v)
	if in.Quantity != nil {
		validation.PositiveInt("quantity", *in.Quantity, v)
	}
	return v
}

func (in orderLineInput) model() models.OrderLine {
	return models.OrderLine{ProductID: *in.ProductID, OrderID: *in.OrderID, Quantity: *in.Quantity}
}

func (h *OrderLineHandler) List(c *gin.Context) {
	lines, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list order lines", err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

// ByOrder lists the lines of one order: GET /productOrders/:id.
func (h *OrderLineHandler) ByOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	lines, err := h.repo.ListByOrder(c.Request.Context(), id)
	if err != nil {
		dbError(c, "order lines by order", err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *OrderLineHandler) Create(c *gin.Context) {
	var in orderLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	line := in.model()
	if err := h.repo.Create(c.Request.Context(), &line); err != nil {
		dbError(c, "create order line", err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// Update replaces a line by its own id: PUT /productOrders/:id.
func (h *OrderLineHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in orderLineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	line := in.model()
	if err := h.repo.Update(c.Request.Context(), id, &line); err != nil {
		dbError(c, "update order line", err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// Delete removes lines by the (product, order) pair carried in the body.
func (h *OrderLineHandler) Delete(c *gin.Context) {
	var in struct {
		ProductID *uint `json:"productId"`
		OrderID   *uint `json:"orderId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	v := validation.Violations{}
	validation.RequiredUint("productId", in.ProductID, v)
	validation.RequiredUint("orderId", in.OrderID, v)
	if !v.Empty() {
		validationFailed(c, v)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), *in.ProductID, *in.OrderID)
	if err != nil {
		dbError(c, "delete order line", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
