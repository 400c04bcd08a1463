package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/commerce-api/internal/models"
)

func TestProductCreateGetRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	created := createProduct(t, db, "Sleek Steel Lamp", 24.90, 12)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sleek Steel Lamp", got.Name)
	assert.Equal(t, "REF-Sleek Steel Lamp", got.Reference)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(24.90)), "price mismatch: %s", got.Price)
	assert.Equal(t, 12, got.Quantity)
}

func TestProductGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	_, err := repo.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductDeleteThenGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := createProduct(t, db, "Compact Mug", 5.00, 3)

	deleted, err := repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a silent no-op.
	deleted, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestProductUpdateIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := createProduct(t, db, "Old Name", 10.00, 5)

	apply := func() {
		upd := models.Product{
			Name:      "New Name",
			Reference: "REF-NEW",
			Price:     decimal.NewFromFloat(19.99),
			Quantity:  7,
		}
		require.NoError(t, repo.Update(ctx, p.ID, &upd))
	}
	apply()
	first, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	apply()
	second, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Name, second.Name)
	assert.True(t, first.Price.Equal(second.Price))
	assert.Equal(t, first.Quantity, second.Quantity)
	assert.Equal(t, "New Name", second.Name)
}

func TestProductUpdateMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	upd := models.Product{Name: "Ghost", Reference: "REF-G", Price: decimal.NewFromInt(1), Quantity: 1}
	err := repo.Update(context.Background(), 4242, &upd)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductLowStockBoundary(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	below := createProduct(t, db, "Below", 1.00, 4)
	exact := createProduct(t, db, "Exact", 1.00, 5)
	above := createProduct(t, db, "Above", 1.00, 6)

	products, err := repo.LowStock(ctx, 5)
	require.NoError(t, err)

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, below.ID)
	assert.NotContains(t, ids, exact.ID, "quantity equal to threshold must be excluded")
	assert.NotContains(t, ids, above.ID)
}

func TestProductGetJoinsCategoriesAndProviders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	p := createProduct(t, db, "Joined", 9.99, 10)
	cat := models.Category{Name: "Office", Description: "Desks and lamps"}
	require.NoError(t, db.Create(&cat).Error)
	prov := models.Provider{Name: "Northwind Supply", Siret: "x", Tel: "x", Email: "x@example.com", Address: "x"}
	require.NoError(t, db.Create(&prov).Error)

	pc := models.ProductCategory{ProductID: p.ID, CategoryID: cat.ID}
	require.NoError(t, NewProductCategoryRepository(db).Create(ctx, &pc))
	pp := models.ProviderProduct{ProductID: p.ID, ProviderID: prov.ID}
	require.NoError(t, NewProviderProductRepository(db).Create(ctx, &pp))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Categories, 1)
	require.Len(t, got.Providers, 1)
	assert.Equal(t, "Office", got.Categories[0].Name)
	assert.Equal(t, "Northwind Supply", got.Providers[0].Name)
}
