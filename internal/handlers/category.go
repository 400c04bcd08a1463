package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
	"github.com/diewo77/commerce-api/validation"
)

type CategoryHandler struct {
	repo *repository.CategoryRepository
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{repo: repository.NewCategoryRepository(db)}
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in categoryInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("description", in.Description, v)
	return v
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.repo.List(c.Request.Context())
	if err != nil {
		dbError(c, "list categories", err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	category, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		dbError(c, "get category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	category := models.Category{Name: in.Name, Description: in.Description}
	if err := h.repo.Create(c.Request.Context(), &category); err != nil {
		dbError(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in categoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		invalidJSON(c)
		return
	}
	if v := in.validate(); !v.Empty() {
		validationFailed(c, v)
		return
	}
	category := models.Category{Name: in.Name, Description: in.Description}
	if err := h.repo.Update(c.Request.Context(), id, &category); err != nil {
		dbError(c, "update category", err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	deleted, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		dbError(c, "delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
