package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/commerce-api/internal/models"
)

func TestMostOrderedByStatusSingleOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Emma", "Martin")
	order := createOrder(t, db, client.ID, models.StatusCompleted, time.Now())
	x := createProduct(t, db, "Product X", 9.99, 100)
	createLine(t, db, x.ID, order.ID, 5)

	report, err := repo.MostOrderedByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, models.StatusCompleted, report[0].Status)
	assert.Equal(t, x.ID, report[0].ProductID)
	assert.Equal(t, "Product X", report[0].ProductName)
	assert.Equal(t, int64(5), report[0].TotalQuantity)
}

func TestMostOrderedByStatusPicksHighestPerStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()

	client := createClient(t, db, "Louis", "Dubois")
	pending := createOrder(t, db, client.ID, models.StatusPending, time.Now())
	pending2 := createOrder(t, db, client.ID, models.StatusPending, time.Now())
	canceled := createOrder(t, db, client.ID, models.StatusCanceled, time.Now())
	a := createProduct(t, db, "Product A", 1.00, 10)
	b := createProduct(t, db, "Product B", 1.00, 10)

	// pending: A totals 7 across two orders, B totals 4.
	createLine(t, db, a.ID, pending.ID, 3)
	createLine(t, db, a.ID, pending2.ID, 4)
	createLine(t, db, b.ID, pending.ID, 4)
	// canceled: only B.
	createLine(t, db, b.ID, canceled.ID, 2)

	report, err := repo.MostOrderedByStatus(ctx)
	require.NoError(t, err)
	require.Len(t, report, 2)

	byStatus := map[string]StatusTopProduct{}
	for _, row := range report {
		byStatus[row.Status] = row
	}
	assert.Equal(t, a.ID, byStatus[models.StatusPending].ProductID)
	assert.Equal(t, int64(7), byStatus[models.StatusPending].TotalQuantity)
	assert.Equal(t, b.ID, byStatus[models.StatusCanceled].ProductID)
	assert.Equal(t, int64(2), byStatus[models.StatusCanceled].TotalQuantity)
}

func TestMostOrderedByStatusEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReportRepository(db)

	report, err := repo.MostOrderedByStatus(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report)
}
