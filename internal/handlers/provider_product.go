package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type ProviderProductHandler struct {
	repo *repository.ProviderProductRepository
}

func NewProviderProductHandler(db *gorm.DB) *ProviderProductHandler {
	return &ProviderProductHandler{repo: repository.NewProviderProductRepository(db)}
}

type providerProductInput struct {
	ProductID  *uint `json:"productId"`
	ProviderID *uint `json:"providerId"`
}

func (in providerProductInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.RequiredUint("productId", in.ProductID, v)
	validation.RequiredUint("providerId", in.ProviderID, v)
	return v
}

func (h *ProviderProductHandler) List(c *gin.Context) {
	relations, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list provider products", err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

// ByProvider lists the relations of one provider: GET /providerProduct/:id.
func (h *ProviderProductHandler) ByProvider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	relations, err := h.repo.ListByProvider(c.Request.Context(), id)
	if err != nil {
		dbError(c, "provider products by provider", err)
		return
	}
	c.JSON(http.StatusOK, relations)
}

func (h *ProviderProductHandler) Create(c *gin.Context) {
	var in providerProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	relation := models.ProviderProduct{ProductID: *in.ProductID, ProviderID: *in.ProviderID}
	if err := h.repo.Create(c.Request.Context(), &relation); err != nil {
		dbError(c, "create provider product", err)
		return
	}
	c.JSON(http.StatusCreated, relation)
}

func (h *ProviderProductHandler) Delete(c *gin.Context) {
	var in providerProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), *in.ProductID, *in.ProviderID)
	if err != nil {
		dbError(c, "delete provider product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
