// Package analytics implements the aggregation queries behind the portal's
// Analytics views. Every query is a pure function over a Dataset snapshot:
// nothing here mutates state, touches storage, or depends on call order.
//
// Determinism rules shared by all queries:
//   - groupings without a specified ordering are returned in first-encounter
//     order of the grouping key;
//   - ranked queries sort descending with a stable sort, so ties keep
//     first-encounter order;
//   - joins resolve business ids against indexes built per invocation, and
//     unmatched references are excluded rather than failing the query;
//   - empty input yields an empty (non-nil) result, never an error.
package analytics

import "github.com/Achala357/cargills-backend/internal/domain"

const (
	// DefaultTopProductsLimit is the top-products result size when the caller
	// does not ask for one.
	DefaultTopProductsLimit = 5

	// DefaultCLVLimit is the clv result size when the caller does not ask for
	// one.
	DefaultCLVLimit = 10

	// DairyCategory is the product category matched by DairyBuyers. Matching
	// is exact; the catalog uses the literal spelling.
	DairyCategory = "Dairy"
)

// Dataset is an immutable snapshot of the record store collections consumed
// by the queries.
type Dataset struct {
	Customers    []domain.Customer
	Products     []domain.Product
	Stores       []domain.Store
	Transactions []domain.Transaction
}

// customerIndex maps customer_id to the customer record.
func (d *Dataset) customerIndex() map[string]*domain.Customer {
	idx := make(map[string]*domain.Customer, len(d.Customers))
	for i := range d.Customers {
		idx[d.Customers[i].CustomerID] = &d.Customers[i]
	}
	return idx
}

// productIndex maps product_id to the product record.
func (d *Dataset) productIndex() map[string]*domain.Product {
	idx := make(map[string]*domain.Product, len(d.Products))
	for i := range d.Products {
		idx[d.Products[i].ProductID] = &d.Products[i]
	}
	return idx
}
