package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientRepository) Get(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &client, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) Update(ctx context.Context, id uint, client *models.Client) error {
	var existing models.Client
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return notFound(err)
	}
	client.ID = id
	client.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	return res.RowsAffected, res.Error
}
