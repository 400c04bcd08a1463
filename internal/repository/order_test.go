package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/commerce-api/internal/models"
)

func TestOrderRecomputeTotal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Emma", "Martin")
	order := createOrder(t, db, client.ID, models.StatusPending, time.Now())
	a := createProduct(t, db, "Product A", 10.00, 50)
	b := createProduct(t, db, "Product B", 5.00, 50)
	createLine(t, db, a.ID, order.ID, 2)
	createLine(t, db, b.ID, order.ID, 3)

	total, err := repo.RecomputeTotal(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(35.00)), "expected 35.00 got %s", total)

	stored, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalPrice.Equal(decimal.NewFromFloat(35.00)))
}

func TestOrderRecomputeTotalEmptyOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	client := createClient(t, db, "Leo", "Roux")
	order := createOrder(t, db, client.ID, models.StatusPending, time.Now())

	total, err := repo.RecomputeTotal(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestOrderRecomputeTotalMissingOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)

	_, err := repo.RecomputeTotal(context.Background(), 777)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderGetJoinsClientAndLines(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Nina", "Dubois")
	order := createOrder(t, db, client.ID, models.StatusCompleted, time.Now())
	p := createProduct(t, db, "Lined", 3.50, 20)
	createLine(t, db, p.ID, order.ID, 4)

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Client)
	assert.Equal(t, "Nina", got.Client.Firstname)
	require.Len(t, got.Lines, 1)
	require.NotNil(t, got.Lines[0].Product)
	assert.Equal(t, "Lined", got.Lines[0].Product.Name)
}

func TestOrdersForClient(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	alice := createClient(t, db, "Alice", "Simon")
	bob := createClient(t, db, "Tom", "Michel")
	createOrder(t, db, alice.ID, models.StatusPending, time.Now())
	createOrder(t, db, alice.ID, models.StatusCompleted, time.Now())
	createOrder(t, db, bob.ID, models.StatusCanceled, time.Now())

	orders, err := repo.ForClient(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, alice.ID, o.ClientID)
	}
}

func TestOrdersForProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Paul", "Garcia")
	inOrder := createOrder(t, db, client.ID, models.StatusPending, time.Now())
	other := createOrder(t, db, client.ID, models.StatusPending, time.Now())
	p := createProduct(t, db, "Wanted", 2.00, 10)
	q := createProduct(t, db, "Unwanted", 2.00, 10)
	// Two lines for the same product in the same order must not duplicate it.
	createLine(t, db, p.ID, inOrder.ID, 1)
	createLine(t, db, p.ID, inOrder.ID, 2)
	createLine(t, db, q.ID, other.ID, 1)

	orders, err := repo.ForProduct(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, inOrder.ID, orders[0].ID)
}

func TestOrdersBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Sarah", "Fournier")
	old := createOrder(t, db, client.ID, models.StatusPending, time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC))
	mid := createOrder(t, db, client.ID, models.StatusPending, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	recent := createOrder(t, db, client.ID, models.StatusPending, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	orders, err := repo.Between(ctx,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mid.ID, orders[0].ID)
	_ = old
	_ = recent
}

func TestOrderUpdateIdempotentAndMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Jules", "Laurent")
	order := createOrder(t, db, client.ID, models.StatusPending, time.Now())

	upd := models.Order{
		Ref:        "ORD-UPDATED",
		Status:     models.StatusCompleted,
		TotalPrice: decimal.NewFromFloat(12.34),
		Date:       time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC),
		ClientID:   client.ID,
	}
	require.NoError(t, repo.Update(ctx, order.ID, &upd))
	upd2 := upd
	upd2.ID = 0
	require.NoError(t, repo.Update(ctx, order.ID, &upd2))

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-UPDATED", got.Ref)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.True(t, got.TotalPrice.Equal(decimal.NewFromFloat(12.34)))

	missing := upd
	missing.ID = 0
	assert.ErrorIs(t, repo.Update(ctx, 555, &missing), ErrNotFound)
}
