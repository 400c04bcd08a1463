package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

// OrderLineRepository manages product_orders rows. Every mutation refreshes
// the total price of the order(s) it touches.
type OrderLineRepository struct {
	db *gorm.DB
}

func NewOrderLineRepository(db *gorm.DB) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

func (r *OrderLineRepository) List(ctx context.Context) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	if err := r.db.WithContext(ctx).Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// ListByOrder returns the lines belonging to one order.
func (r *OrderLineRepository) ListByOrder(ctx context.Context, orderID uint) ([]models.OrderLine, error) {
	var lines []models.OrderLine
	if err := r.db.WithContext(ctx).
		Where("orders_id = ?", orderID).
		Order("id").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *OrderLineRepository) Create(ctx context.Context, line *models.OrderLine) error {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return err
	}
	_, err := recomputeOrderTotal(ctx, r.db, line.OrderID)
	return err
}

// Update replaces the line's product, order, and quantity. When the line is
// moved to another order, both the old and the new order totals are refreshed.
func (r *OrderLineRepository) Update(ctx context.Context, id uint, line *models.OrderLine) error {
	var existing models.OrderLine
	if err := r.db.WithContext(ctx).First(&existing, id).Error; err != nil {
		return notFound(err)
	}
	line.ID = id
	if err := r.db.WithContext(ctx).Omit("Product").Save(line).Error; err != nil {
		return err
	}
	if existing.OrderID != line.OrderID {
		if _, err := recomputeOrderTotal(ctx, r.db, existing.OrderID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	_, err := recomputeOrderTotal(ctx, r.db, line.OrderID)
	return err
}

// Delete removes all lines matching the (product, order) pair and refreshes
// the order's total. Missing pairs are a silent no-op.
func (r *OrderLineRepository) Delete(ctx context.Context, productID, orderID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("product_id = ? AND orders_id = ?", productID, orderID).
		Delete(&models.OrderLine{})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected > 0 {
		if _, err := recomputeOrderTotal(ctx, r.db, orderID); err != nil && !errors.Is(err, ErrNotFound) {
			return res.RowsAffected, err
		}
	}
	return res.RowsAffected, nil
}
