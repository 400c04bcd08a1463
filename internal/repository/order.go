package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns the order joined with its client and line items (products
// included).
func (r *OrderRepository) Get(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Lines.Product").
		First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepository) Update(ctx context.Context, id uint, order *models.Order) error {
	var existing models.Order
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return notFound(err)
	}
	order.ID = id
	order.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Omit("Client", "Lines").Save(order).Error
}

func (r *OrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Order{}, id)
	return res.RowsAffected, res.Error
}

// ForClient lists the orders placed by one client.
func (r *OrderRepository) ForClient(ctx context.Context, clientID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ForProduct lists the orders containing at least one line for the product.
func (r *OrderRepository) ForProduct(ctx context.Context, productID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Distinct("orders.*").
		Joins("JOIN product_orders ON product_orders.orders_id = orders.id").
		Where("product_orders.product_id = ?", productID).
		Order("orders.id").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Between lists orders whose date falls within [start, end].
func (r *OrderRepository) Between(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// RecomputeTotal recalculates the order's total price from its current lines
// and persists it. Returns the new total, or ErrNotFound for a missing order.
func (r *OrderRepository) RecomputeTotal(ctx context.Context, orderID uint) (decimal.Decimal, error) {
	return recomputeOrderTotal(ctx, r.db, orderID)
}
