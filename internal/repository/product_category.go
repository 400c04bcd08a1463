package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type ProductCategoryRepository struct {
	db *gorm.DB
}

func NewProductCategoryRepository(db *gorm.DB) *ProductCategoryRepository {
	return &ProductCategoryRepository{db: db}
}

func (r *ProductCategoryRepository) List(ctx context.Context) ([]models.ProductCategory, error) {
	var relations []models.ProductCategory
	if err := r.db.WithContext(ctx).Find(&relations).Error; err != nil {
		return nil, err
	}
	return relations, nil
}

// ListByCategory returns the relations for one category.
func (r *ProductCategoryRepository) ListByCategory(ctx context.Context, categoryID uint) ([]models.ProductCategory, error) {
	var relations []models.ProductCategory
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&relations).Error; err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *ProductCategoryRepository) Create(ctx context.Context, relation *models.ProductCategory) error {
	return r.db.WithContext(ctx).Create(relation).Error
}

func (r *ProductCategoryRepository) Delete(ctx context.Context, productID, categoryID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND category_id = ?", productID, categoryID).
		Delete(&models.ProductCategory{})
	return res.RowsAffected, res.Error
}
