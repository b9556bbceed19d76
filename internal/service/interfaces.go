package service

import (
	"context"

	"github.com/Achala357/cargills-backend/internal/domain"
	"github.com/Achala357/cargills-backend/internal/dto"
)

// RecordServicer is the CRUD surface over the record store: one
// list/get/create/update/delete set per portal collection.
type RecordServicer interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, payload *dto.CustomerPayload) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, payload *dto.CustomerPayload) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, payload *dto.ProductPayload) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, payload *dto.ProductPayload) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, id string) (*domain.Store, error)
	CreateStore(ctx context.Context, payload *dto.StorePayload) (*domain.Store, error)
	UpdateStore(ctx context.Context, id string, payload *dto.StorePayload) (*domain.Store, error)
	DeleteStore(ctx context.Context, id string) error

	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, payload *dto.TransactionPayload) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, payload *dto.TransactionPayload) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	ListOffers(ctx context.Context) ([]domain.Offer, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	CreateOffer(ctx context.Context, payload *dto.OfferPayload) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, id string, payload *dto.OfferPayload) (*domain.Offer, error)
	DeleteOffer(ctx context.Context, id string) error
}

// ReportServicer exposes each aggregation query as an independently callable
// read operation. Limits of zero select the query's documented default.
type ReportServicer interface {
	LoyaltyTierCounts(ctx context.Context) ([]dto.TierCountRow, error)
	SalesByStore(ctx context.Context) ([]dto.StoreSalesRow, error)
	TopProducts(ctx context.Context, limit int) ([]dto.ProductDemandRow, error)
	AvgBasketByTier(ctx context.Context) ([]dto.TierBasketRow, error)
	TopSpenders(ctx context.Context, limit int) ([]dto.TopSpenderRow, error)
	CategorySpend(ctx context.Context) ([]dto.CategorySpendRow, error)
	StoreCategoryDemand(ctx context.Context) ([]dto.StoreCategoryRow, error)
	ChurnRisk(ctx context.Context) ([]dto.ChurnRiskRow, error)
	DairyBuyers(ctx context.Context) ([]dto.DairyBuyerRow, error)
	PriceSensitivity(ctx context.Context) ([]dto.PriceSensitivityRow, error)
	HouseholdVsBasket(ctx context.Context) ([]dto.HouseholdBasketRow, error)
	CustomerLifetimeValue(ctx context.Context, limit int) ([]dto.CustomerValueRow, error)
}
