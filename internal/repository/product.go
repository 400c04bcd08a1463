package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product joined with its categories and providers.
func (r *ProductRepository) Get(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Providers").
		First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepository) Update(ctx context.Context, id uint, product *models.Product) error {
	var existing models.Product
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return notFound(err)
	}
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Omit("Categories", "Providers").Save(product).Error
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, id)
	return res.RowsAffected, res.Error
}

// LowStock returns products whose quantity is strictly below threshold.
// A product sitting exactly at the threshold is not low stock.
func (r *ProductRepository) LowStock(ctx context.Context, threshold int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("quantity < ?", threshold).
		Order("quantity").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
