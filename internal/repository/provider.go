package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) List(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := r.db.WithContext(ctx).Order("id").Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ProviderRepository) Get(ctx context.Context, id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &provider, nil
}

func (r *ProviderRepository) Create(ctx context.Context, provider *models.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

// Update is a full-row replace keyed by id. ErrNotFound when id is missing.
func (r *ProviderRepository) Update(ctx context.Context, id uint, provider *models.Provider) error {
	var existing models.Provider
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return notFound(err)
	}
	provider.ID = id
	provider.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(provider).Error
}

// Delete removes the provider by id. Deleting a missing id is not an error;
// the returned count is 0 in that case.
func (r *ProviderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Provider{}, id)
	return res.RowsAffected, res.Error
}
