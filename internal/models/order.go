package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Status is a closed set; anything else is rejected at the
// validation boundary.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// OrderStatuses lists the valid order statuses.
var OrderStatuses = []string{StatusPending, StatusCompleted, StatusCanceled}

// ValidStatus reports whether s is one of the allowed order statuses.
func ValidStatus(s string) bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is a client purchase. TotalPrice is a derived aggregate over the
// order's lines (unit price x quantity, summed); it is recomputed after any
// line mutation rather than maintained incrementally.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Ref        string          `gorm:"not null;index" json:"ref"`
	Status     string          `gorm:"not null;default:'pending'" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Date       time.Time       `json:"date"`
	ClientID   uint            `gorm:"not null;index" json:"client_id"`

	Client *Client     `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Lines  []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderLine associates a product with an order and a quantity (table
// product_orders). Lines carry their own id because they are updatable;
// deletion still uses the (product, order) pair.
type OrderLine struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"not null;index" json:"productId"`
	OrderID   uint `gorm:"column:orders_id;not null;index" json:"orderId"`
	Quantity  int  `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderLine) TableName() string { return "product_orders" }
