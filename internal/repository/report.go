package repository

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

// StatusTopProduct is one row of the most-ordered report: the product with
// the highest cumulative ordered quantity for a given order status.
type StatusTopProduct struct {
	Status        string `json:"status"`
	ProductID     uint   `json:"productId"`
	ProductName   string `json:"productName"`
	TotalQuantity int64  `json:"totalQuantity"`
}

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// MostOrderedByStatus aggregates line quantities per (status, product) and
// keeps, for each status, the product with the highest total. The grouping
// runs in SQL; the per-status maximum is picked here to stay portable across
// drivers. Ties resolve to the lower product id.
func (r *ReportRepository) MostOrderedByStatus(ctx context.Context) ([]StatusTopProduct, error) {
	var rows []StatusTopProduct
	if err := r.db.WithContext(ctx).
		Model(&models.OrderLine{}).
		Select("orders.status AS status, product_orders.product_id AS product_id, products.name AS product_name, SUM(product_orders.quantity) AS total_quantity").
		Joins("JOIN orders ON orders.id = product_orders.orders_id").
		Joins("JOIN products ON products.id = product_orders.product_id").
		Group("orders.status, product_orders.product_id, products.name").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	top := make(map[string]StatusTopProduct, len(models.OrderStatuses))
	for _, row := range rows {
		best, ok := top[row.Status]
		if !ok || row.TotalQuantity > best.TotalQuantity ||
			(row.TotalQuantity == best.TotalQuantity && row.ProductID < best.ProductID) {
			top[row.Status] = row
		}
	}
	report := make([]StatusTopProduct, 0, len(top))
	for _, row := range top {
		report = append(report, row)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].Status < report[j].Status })
	return report, nil
}
