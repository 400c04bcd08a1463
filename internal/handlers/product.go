package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type ProductHandler struct {
	repo   *repository.ProductRepository
	orders *repository.OrderRepository
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{
		repo:   repository.NewProductRepository(db),
		orders: repository.NewOrderRepository(db),
	}
}

type productInput struct {
	Name      string           `json:"name"`
	Reference string           `json:"reference"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  *int             `json:"quantity"`
}

func (in productInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("reference", in.Reference, v)
	validation.RequiredDecimal("price", in.Price, v)
	validation.RequiredInt("quantity", in.Quantity, v)
	return v
}

func (in productInput) model() models.Product {
	return models.Product{Name: in.Name, Reference: in.Reference, Price: *in.Price, Quantity: *in.Quantity}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get returns the product with its categories and providers joined in.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	product, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		dbError(c, "get product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	product := in.model()
	if err := h.repo.Create(c.Request.Context(), &product); err != nil {
		dbError(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	product := in.model()
	if err := h.repo.Update(c.Request.Context(), id, &product); err != nil {
		dbError(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		dbError(c, "delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Orders lists the orders containing the product: GET /products/:id/orders.
func (h *ProductHandler) Orders(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.orders.ForProduct(c.Request.Context(), id)
	if err != nil {
		dbError(c, "orders for product", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// LowStock lists products with quantity strictly below the threshold:
// GET /product/lowStock/:quantity.
func (h *ProductHandler) LowStock(c *gin.Context) {
	threshold, err := strconv.Atoi(c.Param("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_quantity"})
		return
	}
	products, err := h.repo.LowStock(c.Request.Context(), threshold)
	if err != nil {
		dbError(c, "low stock products", err)
		return
	}
	c.JSON(http.StatusOK, products)
}
