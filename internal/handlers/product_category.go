package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type ProductCategoryHandler struct {
	repo *repository.ProductCategoryRepository
}

func NewProductCategoryHandler(db *gorm.DB) *ProductCategoryHandler {
	return &ProductCategoryHandler{repo: repository.NewProductCategoryRepository(db)}
}

type productCategoryInput struct {
	ProductID  *uint `json:"productId"`
	CategoryID *uint `json:"categoryId"`
}

func (in productCategoryInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.RequiredUint("productId", in.ProductID, v)
	validation.RequiredUint("categoryId", in.CategoryID, v)
	return v
}

func (h *ProductCategoryHandler) List(c *gin.Context) {
	relations, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list product categories", err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

// ByCategory lists the relations of one category: GET /productCategory/:id.
func (h *ProductCategoryHandler) ByCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	relations, err := h.repo.ListByCategory(c.Request.Context(), id)
	if err != nil {
		dbError(c, "product categories by category", err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

func (h *ProductCategoryHandler) Create(c *gin.Context) {
	var in productCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	relation := models.ProductCategory{ProductID: *in.ProductID, CategoryID: *in.CategoryID}
	if err := h.repo.Create(c.Request.Context(), &relation); err != nil {
		dbError(c, "create product category", err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

func (h *ProductCategoryHandler) Delete(c *gin.Context) {
	var in productCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), *in.ProductID, *in.CategoryID)
	if err != nil {
		dbError(c, "delete product category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
