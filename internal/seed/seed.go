// Package seed populates the schema with synthetic, referentially valid
// sample data. Rows are fabricated in dependency order: independent parents
// first, then orders, then the join tables, and finally a total-price
// recompute pass over every order touched by a line insert.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"github.com/diewo77/commerce-api/internal/models"
	"github.com/diewo77/commerce-api/internal/repository"
)

// DefaultRecords is the per-entity row count when none is requested.
const DefaultRecords = 100

// Run seeds n rows per entity (plus 3n provider-product relations). Failures
// on individual rows are logged and skipped; a stage only aborts when it
// leaves nothing for the stages that need its ids.
func Run(ctx context.Context, gdb *gorm.DB, n int) error {
	if n <= 0 {
		n = DefaultRecords
	}
	db := gdb.WithContext(ctx)

	// Tier 1: independent parents.
	for i := 0; i < n; i++ {
		p := randomProvider()
		if err := db.Create(&p).Error; err != nil {
			log.Printf("seed: provider: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		p := randomProduct()
		if err := db.Create(&p).Error; err != nil {
			log.Printf("seed: product: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		c := randomCategory()
		if err := db.Create(&c).Error; err != nil {
			log.Printf("seed: category: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		c := randomClient()
		if err := db.Create(&c).Error; err != nil {
			log.Printf("seed: client: %v", err)
		}
	}

	providerIDs, err := ids(db, &models.Provider{})
	if err != nil {
		return fmt.Errorf("seed: collect provider ids: %w", err)
	}
	productIDs, err := ids(db, &models.Product{})
	if err != nil {
		return fmt.Errorf("seed: collect product ids: %w", err)
	}
	categoryIDs, err := ids(db, &models.Category{})
	if err != nil {
		return fmt.Errorf("seed: collect category ids: %w", err)
	}
	clientIDs, err := ids(db, &models.Client{})
	if err != nil {
		return fmt.Errorf("seed: collect client ids: %w", err)
	}
	if len(providerIDs) == 0 || len(productIDs) == 0 || len(categoryIDs) == 0 || len(clientIDs) == 0 {
		return fmt.Errorf("seed: no parent rows survived, aborting dependent stages")
	}

	// Tier 2: orders need client ids.
	for i := 0; i < n; i++ {
		o := randomOrder(clientIDs)
		if err := db.Create(&o).Error; err != nil {
			log.Printf("seed: order: %v", err)
		}
	}
	orderIDs, err := ids(db, &models.Order{})
	if err != nil {
		return fmt.Errorf("seed: collect order ids: %w", err)
	}
	if len(orderIDs) == 0 {
		return fmt.Errorf("seed: no orders survived, aborting line stage")
	}

	// Tier 3: join rows over random parent pairs. Duplicate pairs violate the
	// composite keys; those failures are logged like any other skipped row.
	for i := 0; i < n*3; i++ {
		rel := models.ProviderProduct{
			ProductID:  pick(productIDs),
			ProviderID: pick(providerIDs),
		}
		if err := db.Create(&rel).Error; err != nil {
			log.Printf("seed: provider_product: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		rel := models.ProductCategory{
			ProductID:  pick(productIDs),
			CategoryID: pick(categoryIDs),
		}
		if err := db.Create(&rel).Error; err != nil {
			log.Printf("seed: product_category: %v", err)
		}
	}
	touched := make(map[uint]struct{})
	for i := 0; i < n; i++ {
		line := models.OrderLine{
			ProductID: pick(productIDs),
			OrderID:   pick(orderIDs),
			Quantity:  1 + rand.Intn(10),
		}
		if err := db.Create(&line).Error; err != nil {
			log.Printf("seed: order line: %v", err)
			continue
		}
		touched[line.OrderID] = struct{}{}
	}

	// Tier 4: totals for every order that gained lines.
	orders := repository.NewOrderRepository(gdb)
	for id := range touched {
		if _, err := orders.RecomputeTotal(ctx, id); err != nil {
			log.Printf("seed: recompute order %d: %v", id, err)
		}
	}

	log.Printf("seed: done (%d records per entity, %d orders recomputed)", n, len(touched))
	return nil
}

func ids(db *gorm.DB, model interface{}) ([]uint, error) {
	var out []uint
	if err := db.Model(model).Pluck("id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func pick(ids []uint) uint { return ids[rand.Intn(len(ids))] }
