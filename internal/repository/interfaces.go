// Package repository defines the record store contract. Implementations live
// in subpackages; callers depend on these interfaces only.
package repository

import (
	"context"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// CustomerRepository persists customers.
type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	UpdateCustomer(ctx context.Context, c *domain.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// ProductRepository persists products.
type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// StoreRepository persists stores.
type StoreRepository interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	CreateStore(ctx context.Context, s *domain.Store) error
	UpdateStore(ctx context.Context, s *domain.Store) error
	DeleteStore(ctx context.Context, id string) error
}

// TransactionRepository persists transactions together with their line items.
type TransactionRepository interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, t *domain.Transaction) error
	UpdateTransaction(ctx context.Context, t *domain.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error
}

// OfferRepository persists offers.
type OfferRepository interface {
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	CreateOffer(ctx context.Context, o *domain.Offer) error
	UpdateOffer(ctx context.Context, o *domain.Offer) error
	DeleteOffer(ctx context.Context, id string) error
}

// RecordRepository is the full record store surface. Create assigns the
// generated id on the passed entity; Get/Update/Delete of an unknown id
// return domain.NotFound.
type RecordRepository interface {
	CustomerRepository
	ProductRepository
	StoreRepository
	TransactionRepository
	OfferRepository

	// InitSchema creates the database schema if it does not exist.
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive.
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources.
	Close() error
}
