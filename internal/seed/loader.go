// Package seed loads demo fixtures into an empty record store so the portal
// has data to chart on first boot.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/dto"
	"github.com/Achala357/cargills-backend/internal/service"
)

type fixture struct {
	Customers    []dto.CustomerPayload    `json:"customers"`
	Products     []dto.ProductPayload     `json:"products"`
	Stores       []dto.StorePayload       `json:"stores"`
	Transactions []dto.TransactionPayload `json:"transactions"`
	Offers       []dto.OfferPayload       `json:"offers"`
}

// Load reads a JSON fixture file and inserts every record through the service
// layer so seeded data passes the same validation as portal traffic. A record
// that fails to insert is logged and skipped; seeding continues.
func Load(ctx context.Context, path string, records service.RecordServicer, log *zap.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	var loaded, skipped int

	for i := range f.Customers {
		if _, err := records.CreateCustomer(ctx, &f.Customers[i]); err != nil {
			log.Warn("Skipping seed customer", zap.String("customer_id", f.Customers[i].CustomerID), zap.Error(err))
			skipped++
			continue
		}
		loaded++
	}
	for i := range f.Products {
		if _, err := records.CreateProduct(ctx, &f.Products[i]); err != nil {
			log.Warn("Skipping seed product", zap.String("product_id", f.Products[i].ProductID), zap.Error(err))
			skipped++
			continue
		}
		loaded++
	}
	for i := range f.Stores {
		if _, err := records.CreateStore(ctx, &f.Stores[i]); err != nil {
			log.Warn("Skipping seed store", zap.String("store_id", f.Stores[i].StoreID), zap.Error(err))
			skipped++
			continue
		}
		loaded++
	}
	for i := range f.Transactions {
		if _, err := records.CreateTransaction(ctx, &f.Transactions[i]); err != nil {
			log.Warn("Skipping seed transaction", zap.String("transaction_id", f.Transactions[i].TransactionID), zap.Error(err))
			skipped++
			continue
		}
		loaded++
	}
	for i := range f.Offers {
		if _, err := records.CreateOffer(ctx, &f.Offers[i]); err != nil {
			log.Warn("Skipping seed offer", zap.String("offer_id", f.Offers[i].OfferID), zap.Error(err))
			skipped++
			continue
		}
		loaded++
	}

	log.Info("Seed complete", zap.String("path", path), zap.Int("loaded", loaded), zap.Int("skipped", skipped))
	return nil
}
