package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type ProviderProductRepository struct {
	db *gorm.DB
}

func NewProviderProductRepository(db *gorm.DB) *ProviderProductRepository {
	return &ProviderProductRepository{db: db}
}

func (r *ProviderProductRepository) List(ctx context.Context) ([]models.ProviderProduct, error) {
	var relations []models.ProviderProduct
	if err := r.db.WithContext(ctx).Find(&relations).Error; err != nil {
		return nil, err
	}
	return relations, nil
}

// ListByProvider returns the relations for one provider.
func (r *ProviderProductRepository) ListByProvider(ctx context.Context, providerID uint) ([]models.ProviderProduct, error) {
	var relations []models.ProviderProduct
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Find(&relations).Error; err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *ProviderProductRepository) Create(ctx context.Context, relation *models.ProviderProduct) error {
	return r.db.WithContext(ctx).Create(relation).Error
}

func (r *ProviderProductRepository) Delete(ctx context.Context, productID, providerID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND provider_id = ?", productID, providerID).
		Delete(&models.ProviderProduct{})
	return res.RowsAffected, res.Error
}
