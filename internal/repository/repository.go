package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

// ErrNotFound is returned when a get or update targets an id that does not
// exist. gorm.ErrRecordNotFound never leaks past this package.
var ErrNotFound = errors.New("record not found")

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// recomputeOrderTotal recalculates and persists an order's total price from
// its current lines. Shared by the order repository and every line mutation.
func recomputeOrderTotal(ctx context.Context, db *gorm.DB, orderID uint) (decimal.Decimal, error) {
	var order models.Order
	if err := db.WithContext(ctx).First(&order, orderID).Error; err != nil {
		return decimal.Zero, notFound(err)
	}
	var lines []models.OrderLine
	if err := db.WithContext(ctx).Preload("Product").Where("orders_id = ?", orderID).Find(&lines).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, line := range lines {
		if line.Product == nil {
			// Dangling line (product deleted); contributes nothing.
			continue
		}
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	total = total.Round(2)
	if err := db.WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).
		Update("total_price", total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
