package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/domain"
	"github.com/Achala357/cargills-backend/internal/dto"
	"github.com/Achala357/cargills-backend/internal/repository"
)

const dateOnly = "2006-01-02"

// RecordService validates CRUD payloads and applies write policy before
// delegating to the record store. Derived transaction fields (line totals and
// the transaction total) are always recomputed here, never trusted from the
// payload.
type RecordService struct {
	repository  repository.RecordRepository
	txImmutable bool
	log         *zap.Logger
}

// NewRecordService creates a new record service. When txImmutable is set,
// transactions are treated as append-only history: update and delete are
// rejected with a conflict error.
func NewRecordService(repo repository.RecordRepository, txImmutable bool, log *zap.Logger) *RecordService {
	return &RecordService{
		repository:  repo,
		txImmutable: txImmutable,
		log:         log,
	}
}

// Customers

func (s *RecordService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repository.ListCustomers(ctx)
}

func (s *RecordService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repository.GetCustomer(ctx, id)
}

func (s *RecordService) CreateCustomer(ctx context.Context, payload *dto.CustomerPayload) (*domain.Customer, error) {
	c, err := customerFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateCustomer(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("Customer created", zap.String("id", c.ID), zap.String("customer_id", c.CustomerID))
	return c, nil
}

func (s *RecordService) UpdateCustomer(ctx context.Context, id string, payload *dto.CustomerPayload) (*domain.Customer, error) {
	c, err := customerFromPayload(payload)
	if err != nil {
		return nil, err
	}
	c.ID = id
	if err := s.repository.UpdateCustomer(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *RecordService) DeleteCustomer(ctx context.Context, id string) error {
	return s.repository.DeleteCustomer(ctx, id)
}

func customerFromPayload(payload *dto.CustomerPayload) (*domain.Customer, error) {
	if strings.TrimSpace(payload.CustomerID) == "" {
		return nil, &domain.ValidationError{Field: "customer_id", Reason: "required"}
	}
	if payload.Age < 0 {
		return nil, &domain.ValidationError{Field: "age", Reason: "must be non-negative"}
	}
	if payload.HouseholdSize < 0 {
		return nil, &domain.ValidationError{Field: "household_size", Reason: "must be non-negative"}
	}
	return &domain.Customer{
		CustomerID:    payload.CustomerID,
		Name:          payload.Name,
		Age:           payload.Age,
		LoyaltyTier:   payload.LoyaltyTier,
		Location:      payload.Location,
		HouseholdSize: payload.HouseholdSize,
	}, nil
}

// Products

func (s *RecordService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repository.ListProducts(ctx)
}

func (s *RecordService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repository.GetProduct(ctx, id)
}

func (s *RecordService) CreateProduct(ctx context.Context, payload *dto.ProductPayload) (*domain.Product, error) {
	p, err := productFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("Product created", zap.String("id", p.ID), zap.String("product_id", p.ProductID))
	return p, nil
}

func (s *RecordService) UpdateProduct(ctx context.Context, id string, payload *dto.ProductPayload) (*domain.Product, error) {
	p, err := productFromPayload(payload)
	if err != nil {
		return nil, err
	}
	p.ID = id
	if err := s.repository.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *RecordService) DeleteProduct(ctx context.Context, id string) error {
	return s.repository.DeleteProduct(ctx, id)
}

func productFromPayload(payload *dto.ProductPayload) (*domain.Product, error) {
	if strings.TrimSpace(payload.ProductID) == "" {
		return nil, &domain.ValidationError{Field: "product_id", Reason: "required"}
	}
	if payload.Price < 0 {
		return nil, &domain.ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	return &domain.Product{
		ProductID: payload.ProductID,
		Name:      payload.Name,
		Category:  payload.Category,
		Price:     payload.Price,
		Currency:  payload.Currency,
		Tags:      domain.StringList(payload.Tags),
	}, nil
}

// Stores

func (s *RecordService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.repository.ListStores(ctx)
}

func (s *RecordService) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	return s.repository.GetStore(ctx, id)
}

func (s *RecordService) CreateStore(ctx context.Context, payload *dto.StorePayload) (*domain.Store, error) {
	st, err := storeFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateStore(ctx, st); err != nil {
		return nil, err
	}
	s.log.Info("Store created", zap.String("id", st.ID), zap.String("store_id", st.StoreID))
	return st, nil
}

func (s *RecordService) UpdateStore(ctx context.Context, id string, payload *dto.StorePayload) (*domain.Store, error) {
	st, err := storeFromPayload(payload)
	if err != nil {
		return nil, err
	}
	st.ID = id
	if err := s.repository.UpdateStore(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *RecordService) DeleteStore(ctx context.Context, id string) error {
	return s.repository.DeleteStore(ctx, id)
}

func storeFromPayload(payload *dto.StorePayload) (*domain.Store, error) {
	if strings.TrimSpace(payload.StoreID) == "" {
		return nil, &domain.ValidationError{Field: "store_id", Reason: "required"}
	}
	return &domain.Store{
		StoreID:  payload.StoreID,
		Name:     payload.Name,
		Location: payload.Location,
	}, nil
}

// Transactions

func (s *RecordService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.repository.ListTransactions(ctx)
}

func (s *RecordService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return s.repository.GetTransaction(ctx, id)
}

func (s *RecordService) CreateTransaction(ctx context.Context, payload *dto.TransactionPayload) (*domain.Transaction, error) {
	t, err := transactionFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}
	s.log.Info("Transaction created",
		zap.String("id", t.ID),
		zap.String("transaction_id", t.TransactionID),
		zap.Float64("total", t.Total))
	return t, nil
}

func (s *RecordService) UpdateTransaction(ctx context.Context, id string, payload *dto.TransactionPayload) (*domain.Transaction, error) {
	if s.txImmutable {
		return nil, &domain.Immutable{Entity: "transactions"}
	}
	t, err := transactionFromPayload(payload)
	if err != nil {
		return nil, err
	}
	t.ID = id
	if err := s.repository.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *RecordService) DeleteTransaction(ctx context.Context, id string) error {
	if s.txImmutable {
		return &domain.Immutable{Entity: "transactions"}
	}
	return s.repository.DeleteTransaction(ctx, id)
}

func transactionFromPayload(payload *dto.TransactionPayload) (*domain.Transaction, error) {
	if strings.TrimSpace(payload.TransactionID) == "" {
		return nil, &domain.ValidationError{Field: "transaction_id", Reason: "required"}
	}
	if strings.TrimSpace(payload.CustomerID) == "" {
		return nil, &domain.ValidationError{Field: "customer_id", Reason: "required"}
	}
	if len(payload.Items) == 0 {
		return nil, &domain.ValidationError{Field: "items", Reason: "at least one line item is required"}
	}

	items := make([]domain.LineItem, 0, len(payload.Items))
	var total float64
	for _, item := range payload.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return nil, &domain.ValidationError{Field: "items.product_id", Reason: "required"}
		}
		if item.Qty < 0 {
			return nil, &domain.ValidationError{Field: "items.qty", Reason: "must be non-negative"}
		}
		if item.Price < 0 {
			return nil, &domain.ValidationError{Field: "items.price", Reason: "must be non-negative"}
		}
		lineTotal := float64(item.Qty) * item.Price
		items = append(items, domain.LineItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}

	date := time.Now().UTC()
	if payload.Date != "" {
		parsed, err := parseFlexibleDate(payload.Date)
		if err != nil {
			return nil, &domain.ValidationError{Field: "date", Reason: "must be RFC 3339 or YYYY-MM-DD"}
		}
		date = parsed
	}

	return &domain.Transaction{
		TransactionID: payload.TransactionID,
		CustomerID:    payload.CustomerID,
		StoreID:       payload.StoreID,
		Items:         items,
		Total:         total,
		Date:          date,
	}, nil
}

// Offers

func (s *RecordService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.repository.ListOffers(ctx)
}

func (s *RecordService) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	return s.repository.GetOffer(ctx, id)
}

func (s *RecordService) CreateOffer(ctx context.Context, payload *dto.OfferPayload) (*domain.Offer, error) {
	o, err := offerFromPayload(payload)
	if err != nil {
		return nil, err
	}
	if err := s.repository.CreateOffer(ctx, o); err != nil {
		return nil, err
	}
	s.log.Info("Offer created", zap.String("id", o.ID), zap.String("offer_id", o.OfferID))
	return o, nil
}

func (s *RecordService) UpdateOffer(ctx context.Context, id string, payload *dto.OfferPayload) (*domain.Offer, error) {
	o, err := offerFromPayload(payload)
	if err != nil {
		return nil, err
	}
	o.ID = id
	if err := s.repository.UpdateOffer(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *RecordService) DeleteOffer(ctx context.Context, id string) error {
	return s.repository.DeleteOffer(ctx, id)
}

func offerFromPayload(payload *dto.OfferPayload) (*domain.Offer, error) {
	if strings.TrimSpace(payload.OfferID) == "" {
		return nil, &domain.ValidationError{Field: "offer_id", Reason: "required"}
	}
	validUntil := ""
	if payload.ValidUntil != "" {
		parsed, err := parseFlexibleDate(payload.ValidUntil)
		if err != nil {
			return nil, &domain.ValidationError{Field: "valid_until", Reason: "must be RFC 3339 or YYYY-MM-DD"}
		}
		validUntil = parsed.Format(dateOnly)
	}
	return &domain.Offer{
		OfferID:       payload.OfferID,
		Description:   payload.Description,
		ValidUntil:    validUntil,
		EligibleTiers: domain.StringList(payload.EligibleTiers),
		CategoryScope: domain.StringList(payload.CategoryScope),
	}, nil
}

// parseFlexibleDate accepts the two date formats the portal sends: full
// RFC 3339 timestamps and bare YYYY-MM-DD dates.
func parseFlexibleDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(dateOnly, value)
}
