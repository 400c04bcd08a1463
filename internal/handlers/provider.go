package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type ProviderHandler struct {
	repo *repository.ProviderRepository
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{repo: repository.NewProviderRepository(db)}
}

type providerInput struct {
	Name    string `json:"name"`
	Siret   string `json:"siret"`
	Tel     string `json:"tel"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (in providerInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("siret", in.Siret, v)
	validation.Required("tel", in.Tel, v)
	validation.Required("email", in.Email, v)
	validation.Required("address", in.Address, v)
	return v
}

func (in providerInput) model() models.Provider {
	return models.Provider{Name: in.Name, Siret: in.Siret, Tel: in.Tel, Email: in.Email, Address: in.Address}
}

func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list providers", err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *ProviderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	provider, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		dbError(c, "get provider", err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	var in providerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	provider := in.model()
	if err := h.repo.Create(c.Request.Context(), &provider); err != nil {
		dbError(c, "create provider", err)
		return
	}
	c.JSON(http.StatusCreated, provider)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in providerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	provider := in.model()
	if err := h.repo.Update(c.Request.Context(), id, &provider); err != nil {
		dbError(c, "update provider", err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		dbError(c, "delete provider", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
