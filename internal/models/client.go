package models

import "time"

// Client is an order-placing customer.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Firstname string    `gorm:"not null" json:"firstname"`
	Lastname  string    `gorm:"not null;index" json:"lastname"`
	Email     string    `gorm:"index" json:"email"`
	Tel       string    `json:"tel"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
