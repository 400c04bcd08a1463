package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.AllModels()...))
	return gdb
}

func createProduct(t *testing.T, db *gorm.DB, name string, price float64, quantity int) models.Product {
	t.Helper()
	p := models.Product{
		Name:      name,
		Reference: "REF-" + name,
		Price:     decimal.NewFromFloat(price),
		Quantity:  quantity,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createClient(t *testing.T, db *gorm.DB, first, last string) models.Client {
	t.Helper()
	c := models.Client{
		Firstname: first,
		Lastname:  last,
		Email:     first + "@example.com",
		Tel:       "+33 6 00 00 00 00",
		Address:   "1 Oak Street, Lyon",
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func createOrder(t *testing.T, db *gorm.DB, clientID uint, status string, date time.Time) models.Order {
	t.Helper()
	o := models.Order{
		Ref:        "ORD-" + status,
		Status:     status,
		TotalPrice: decimal.Zero,
		Date:       date,
		ClientID:   clientID,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func createLine(t *testing.T, db *gorm.DB, productID, orderID uint, quantity int) models.OrderLine {
	t.Helper()
	l := models.OrderLine{ProductID: productID, OrderID: orderID, Quantity: quantity}
	require.NoError(t, db.Create(&l).Error)
	return l
}
