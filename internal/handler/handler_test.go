package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/domain"
	"github.com/Achala357/cargills-backend/internal/dto"
)

// MockRecordService is a mock implementation of service.RecordServicer
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockRecordService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockRecordService) CreateCustomer(ctx context.Context, payload *dto.CustomerPayload) (*domain.Customer, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockRecordService) UpdateCustomer(ctx context.Context, id string, payload *dto.CustomerPayload) (*domain.Customer, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockRecordService) DeleteCustomer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockRecordService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRecordService) CreateProduct(ctx context.Context, payload *dto.ProductPayload) (*domain.Product, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRecordService) UpdateProduct(ctx context.Context, id string, payload *dto.ProductPayload) (*domain.Product, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockRecordService) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordService) ListStores(ctx context.Context) ([]domain.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Store), args.Error(1)
}

func (m *MockRecordService) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockRecordService) CreateStore(ctx context.Context, payload *dto.StorePayload) (*domain.Store, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockRecordService) UpdateStore(ctx context.Context, id string, payload *dto.StorePayload) (*domain.Store, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Store), args.Error(1)
}

func (m *MockRecordService) DeleteStore(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockRecordService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockRecordService) CreateTransaction(ctx context.Context, payload *dto.TransactionPayload) (*domain.Transaction, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockRecordService) UpdateTransaction(ctx context.Context, id string, payload *dto.TransactionPayload) (*domain.Transaction, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockRecordService) DeleteTransaction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecordService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockRecordService) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockRecordService) CreateOffer(ctx context.Context, payload *dto.OfferPayload) (*domain.Offer, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockRecordService) UpdateOffer(ctx context.Context, id string, payload *dto.OfferPayload) (*domain.Offer, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockRecordService) DeleteOffer(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReportService is a mock implementation of service.ReportServicer
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LoyaltyTierCounts(ctx context.Context) ([]dto.TierCountRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TierCountRow), args.Error(1)
}

func (m *MockReportService) SalesByStore(ctx context.Context) ([]dto.StoreSalesRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreSalesRow), args.Error(1)
}

func (m *MockReportService) TopProducts(ctx context.Context, limit int) ([]dto.ProductDemandRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductDemandRow), args.Error(1)
}

func (m *MockReportService) AvgBasketByTier(ctx context.Context) ([]dto.TierBasketRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TierBasketRow), args.Error(1)
}

func (m *MockReportService) TopSpenders(ctx context.Context, limit int) ([]dto.TopSpenderRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.TopSpenderRow), args.Error(1)
}

func (m *MockReportService) CategorySpend(ctx context.Context) ([]dto.CategorySpendRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategorySpendRow), args.Error(1)
}

func (m *MockReportService) StoreCategoryDemand(ctx context.Context) ([]dto.StoreCategoryRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.StoreCategoryRow), args.Error(1)
}

func (m *MockReportService) ChurnRisk(ctx context.Context) ([]dto.ChurnRiskRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ChurnRiskRow), args.Error(1)
}

func (m *MockReportService) DairyBuyers(ctx context.Context) ([]dto.DairyBuyerRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DairyBuyerRow), args.Error(1)
}

func (m *MockReportService) PriceSensitivity(ctx context.Context) ([]dto.PriceSensitivityRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.PriceSensitivityRow), args.Error(1)
}

func (m *MockReportService) HouseholdVsBasket(ctx context.Context) ([]dto.HouseholdBasketRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.HouseholdBasketRow), args.Error(1)
}

func (m *MockReportService) CustomerLifetimeValue(ctx context.Context, limit int) ([]dto.CustomerValueRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CustomerValueRow), args.Error(1)
}

func newTestHandler() (*Handler, *MockRecordService, *MockReportService) {
	records := new(MockRecordService)
	reports := new(MockReportService)
	return NewHandler(records, reports, zap.NewNop()), records, reports
}

func TestHandler_HealthCheck(t *testing.T) {
	handler, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestHandler_ListCustomers(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("ListCustomers", mock.Anything).Return([]domain.Customer{
		{ID: "rec-1", CustomerID: "CUST-1", Name: "Nimali"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Customer
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "CUST-1", response[0].CustomerID)
	records.AssertExpectations(t)
}

func TestHandler_CreateCustomer_Success(t *testing.T) {
	handler, records, _ := newTestHandler()

	payload := dto.CustomerPayload{CustomerID: "CUST-1", Name: "Nimali", Age: 34}
	records.On("CreateCustomer", mock.Anything, &payload).Return(&domain.Customer{
		ID:         "rec-1",
		CustomerID: "CUST-1",
		Name:       "Nimali",
		Age:        34,
	}, nil)

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response domain.Customer
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "rec-1", response.ID)
	records.AssertExpectations(t)
}

func TestHandler_CreateCustomer_InvalidJSON(t *testing.T) {
	handler, records, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader([]byte(`{"age": "not a number"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	records.AssertNotCalled(t, "CreateCustomer")
}

func TestHandler_CreateCustomer_ValidationError(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("CreateCustomer", mock.Anything, mock.Anything).Return(
		nil, &domain.ValidationError{Field: "customer_id", Reason: "required"})

	body, _ := json.Marshal(dto.CustomerPayload{Name: "Nimali"})
	req := httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	assert.Contains(t, response.Message, "customer_id")
}

func TestHandler_GetCustomer_NotFound(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("GetCustomer", mock.Anything, "missing-id").Return(
		nil, &domain.NotFound{Entity: "customers", ID: "missing-id"})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/missing-id", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "not_found", response.Error)
	records.AssertExpectations(t)
}

func TestHandler_DeleteProduct_Success(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("DeleteProduct", mock.Anything, "rec-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/products/rec-1", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.DeleteResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "deleted", response.Status)
	records.AssertExpectations(t)
}

func TestHandler_UpdateTransaction_ImmutableConflict(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("UpdateTransaction", mock.Anything, "rec-1", mock.Anything).Return(
		nil, &domain.Immutable{Entity: "transactions"})

	body, _ := json.Marshal(dto.TransactionPayload{
		TransactionID: "TXN-1",
		CustomerID:    "CUST-1",
		Items:         []dto.LineItemPayload{{ProductID: "PROD-1", Qty: 1, Price: 100}},
	})
	req := httptest.NewRequest(http.MethodPut, "/api/transactions/rec-1", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "immutable_record", response.Error)
}

func TestHandler_TopSpenders_Success(t *testing.T) {
	handler, _, reports := newTestHandler()

	reports.On("TopSpenders", mock.Anything, 0).Return([]dto.TopSpenderRow{
		{CustomerID: "CUST-1", Name: "Nimali", TotalSpent: 3480},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-spenders", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "Nimali", response[0]["name"])
	assert.Equal(t, 3480.0, response[0]["totalSpent"])
	reports.AssertExpectations(t)
}

func TestHandler_TopProducts_PassesLimit(t *testing.T) {
	handler, _, reports := newTestHandler()

	reports.On("TopProducts", mock.Anything, 3).Return([]dto.ProductDemandRow{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-products?limit=3", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	reports.AssertExpectations(t)
}

func TestHandler_TopProducts_BadLimit(t *testing.T) {
	handler, _, reports := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-products?limit=banana", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	reports.AssertNotCalled(t, "TopProducts")
}

func TestHandler_TopProducts_NegativeLimit(t *testing.T) {
	handler, _, reports := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-products?limit=-2", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	reports.AssertNotCalled(t, "TopProducts")
}

func TestHandler_ChurnRisk_DataUnavailable(t *testing.T) {
	handler, _, reports := newTestHandler()

	reports.On("ChurnRisk", mock.Anything).Return(
		nil, &domain.DataUnavailable{Cause: errors.New("disk gone")})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/churn-risk", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "data_unavailable", response.Error)
	reports.AssertExpectations(t)
}

func TestHandler_ListOffers_InternalError(t *testing.T) {
	handler, records, _ := newTestHandler()

	records.On("ListOffers", mock.Anything).Return(nil, errors.New("boom"))

	req := httptest.NewRequest(http.MethodGet, "/api/offers", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "internal_error", response.Error)
}
