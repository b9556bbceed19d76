package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/analytics"
	"github.com/Achala357/cargills-backend/internal/domain"
	"github.com/Achala357/cargills-backend/internal/dto"
	"github.com/Achala357/cargills-backend/internal/repository"
)

// ReportService recomputes each aggregation on demand over a full snapshot of
// the record store. It holds no state between calls; concurrent and repeated
// invocations are safe.
type ReportService struct {
	repository  repository.RecordRepository
	churnWindow time.Duration
	log         *zap.Logger
}

// NewReportService creates a new report service. churnWindowDays is the
// recency threshold for churn-risk, in calendar days.
func NewReportService(repo repository.RecordRepository, churnWindowDays int, log *zap.Logger) *ReportService {
	return &ReportService{
		repository:  repo,
		churnWindow: time.Duration(churnWindowDays) * 24 * time.Hour,
		log:         log,
	}
}

// loadDataset snapshots every collection the engine joins against. Any load
// failure surfaces as DataUnavailable; partial snapshots are never used.
func (s *ReportService) loadDataset(ctx context.Context) (*analytics.Dataset, error) {
	customers, err := s.repository.ListCustomers(ctx)
	if err != nil {
		s.log.Error("Failed to load customers for reporting", zap.Error(err))
		return nil, &domain.DataUnavailable{Cause: err}
	}
	products, err := s.repository.ListProducts(ctx)
	if err != nil {
		s.log.Error("Failed to load products for reporting", zap.Error(err))
		return nil, &domain.DataUnavailable{Cause: err}
	}
	stores, err := s.repository.ListStores(ctx)
	if err != nil {
		s.log.Error("Failed to load stores for reporting", zap.Error(err))
		return nil, &domain.DataUnavailable{Cause: err}
	}
	transactions, err := s.repository.ListTransactions(ctx)
	if err != nil {
		s.log.Error("Failed to load transactions for reporting", zap.Error(err))
		return nil, &domain.DataUnavailable{Cause: err}
	}

	return &analytics.Dataset{
		Customers:    customers,
		Products:     products,
		Stores:       stores,
		Transactions: transactions,
	}, nil
}

func (s *ReportService) LoyaltyTierCounts(ctx context.Context) ([]dto.TierCountRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.TierCountRow{}
	for _, g := range ds.LoyaltyTierCounts() {
		rows = append(rows, dto.TierCountRow{LoyaltyTier: g.Tier, Customers: g.Customers})
	}
	return rows, nil
}

func (s *ReportService) SalesByStore(ctx context.Context) ([]dto.StoreSalesRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.StoreSalesRow{}
	for _, g := range ds.SalesByStore() {
		rows = append(rows, dto.StoreSalesRow{StoreID: g.StoreID, Revenue: g.Revenue})
	}
	return rows, nil
}

func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]dto.ProductDemandRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.ProductDemandRow{}
	for _, g := range ds.TopProducts(limit) {
		rows = append(rows, dto.ProductDemandRow{ProductID: g.ProductID, Units: g.Units})
	}
	return rows, nil
}

func (s *ReportService) AvgBasketByTier(ctx context.Context) ([]dto.TierBasketRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.TierBasketRow{}
	for _, g := range ds.AvgBasketByTier() {
		rows = append(rows, dto.TierBasketRow{LoyaltyTier: g.Tier, AvgItems: g.AvgItems})
	}
	return rows, nil
}

func (s *ReportService) TopSpenders(ctx context.Context, limit int) ([]dto.TopSpenderRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.TopSpenderRow{}
	for _, g := range ds.TopSpenders(limit) {
		rows = append(rows, dto.TopSpenderRow{
			CustomerID: g.CustomerID,
			Name:       g.Name,
			TotalSpent: g.TotalSpent,
		})
	}
	return rows, nil
}

func (s *ReportService) CategorySpend(ctx context.Context) ([]dto.CategorySpendRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.CategorySpendRow{}
	for _, g := range ds.CategorySpendByCustomer() {
		rows = append(rows, dto.CategorySpendRow{
			CustomerID: g.CustomerID,
			Category:   g.Category,
			Spend:      g.Spend,
		})
	}
	return rows, nil
}

func (s *ReportService) StoreCategoryDemand(ctx context.Context) ([]dto.StoreCategoryRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.StoreCategoryRow{}
	for _, g := range ds.StoreCategoryVolume() {
		rows = append(rows, dto.StoreCategoryRow{
			StoreID:  g.StoreID,
			Category: g.Category,
			Units:    g.Units,
		})
	}
	return rows, nil
}

func (s *ReportService) ChurnRisk(ctx context.Context) ([]dto.ChurnRiskRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.ChurnRiskRow{}
	for _, g := range ds.ChurnRisk(time.Now().UTC(), s.churnWindow) {
		rows = append(rows, dto.ChurnRiskRow{
			CustomerID:   g.CustomerID,
			Name:         g.Name,
			LastPurchase: g.LastPurchase,
			DaysInactive: g.DaysInactive,
		})
	}
	return rows, nil
}

func (s *ReportService) DairyBuyers(ctx context.Context) ([]dto.DairyBuyerRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.DairyBuyerRow{}
	for _, g := range ds.DairyBuyers() {
		rows = append(rows, dto.DairyBuyerRow{
			CustomerID:    g.CustomerID,
			TransactionID: g.TransactionID,
		})
	}
	return rows, nil
}

func (s *ReportService) PriceSensitivity(ctx context.Context) ([]dto.PriceSensitivityRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.PriceSensitivityRow{}
	for _, g := range ds.PriceSensitivity() {
		rows = append(rows, dto.PriceSensitivityRow{
			LoyaltyTier:  g.Tier,
			AvgUnitPrice: g.AvgUnitPrice,
		})
	}
	return rows, nil
}

func (s *ReportService) HouseholdVsBasket(ctx context.Context) ([]dto.HouseholdBasketRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.HouseholdBasketRow{}
	for _, g := range ds.HouseholdBasketValue() {
		rows = append(rows, dto.HouseholdBasketRow{
			HouseholdSize:  g.HouseholdSize,
			AvgBasketValue: g.AvgBasketValue,
		})
	}
	return rows, nil
}

func (s *ReportService) CustomerLifetimeValue(ctx context.Context, limit int) ([]dto.CustomerValueRow, error) {
	ds, err := s.loadDataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := []dto.CustomerValueRow{}
	for _, g := range ds.CustomerLifetimeValue(limit) {
		rows = append(rows, dto.CustomerValueRow{
			CustomerID:    g.CustomerID,
			Name:          g.Name,
			LifetimeSpend: g.LifetimeSpend,
			TxCount:       g.TxCount,
		})
	}
	return rows, nil
}
