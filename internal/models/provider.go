package models

import "time"

// Provider is a supplier of products. The SIRET is the provider's tax
// identifier and is kept as an opaque string.
type Provider struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Siret     string    `gorm:"index" json:"siret"`
	Tel       string    `json:"tel"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
