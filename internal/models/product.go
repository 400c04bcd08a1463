package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. Quantity is the current stock on hand.
// Categories and Providers are reachable through the explicit join tables
// (product_category, provider_product) and are only populated on joined reads.
type Product struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null;index" json:"name"`
	Reference string          `gorm:"index" json:"reference"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int             `gorm:"not null" json:"quantity"`

	Categories []Category `gorm:"many2many:product_category" json:"categories,omitempty"`
	Providers  []Provider `gorm:"many2many:provider_product" json:"providers,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
