package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Achala357/cargills-backend/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	ctx := context.Background()
	client, err := NewClient(ctx, ":memory:", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	repo := NewRepository(client, zap.NewNop())
	require.NoError(t, repo.InitSchema(ctx))
	return repo
}

func TestRepository_CustomerCRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	c := &domain.Customer{
		CustomerID:    "CUST-1",
		Name:          "Nimali",
		Age:           34,
		LoyaltyTier:   "Gold",
		Location:      "Colombo",
		HouseholdSize: 4,
	}
	require.NoError(t, repo.CreateCustomer(ctx, c))
	assert.NotEmpty(t, c.ID)

	got, err := repo.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got.LoyaltyTier = "Platinum"
	require.NoError(t, repo.UpdateCustomer(ctx, got))

	updated, err := repo.GetCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platinum", updated.LoyaltyTier)

	all, err := repo.ListCustomers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteCustomer(ctx, c.ID))

	_, err = repo.GetCustomer(ctx, c.ID)
	var notFound *domain.NotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestRepository_UpdateUnknownCustomer(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateCustomer(context.Background(), &domain.Customer{
		ID:         "no-such-id",
		CustomerID: "CUST-1",
	})

	var notFound *domain.NotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestRepository_DeleteUnknownProduct(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.DeleteProduct(context.Background(), "no-such-id")

	var notFound *domain.NotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestRepository_ProductRoundTripWithTags(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	p := &domain.Product{
		ProductID: "PROD-1",
		Name:      "Milk 1L",
		Category:  "Dairy",
		Price:     560,
		Currency:  "LKR",
		Tags:      domain.StringList{"chilled", "staple"},
	}
	require.NoError(t, repo.CreateProduct(ctx, p))

	got, err := repo.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StringList{"chilled", "staple"}, got.Tags)
	assert.Equal(t, 560.0, got.Price)
}

func TestRepository_StoreCRUD(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	s := &domain.Store{StoreID: "STORE-1", Name: "Nugegoda", Location: "Nugegoda"}
	require.NoError(t, repo.CreateStore(ctx, s))

	got, err := repo.GetStore(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "STORE-1", got.StoreID)

	require.NoError(t, repo.DeleteStore(ctx, s.ID))

	stores, err := repo.ListStores(ctx)
	require.NoError(t, err)
	assert.Empty(t, stores)
}

func TestRepository_TransactionRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	date := time.Date(2024, 1, 18, 10, 42, 0, 0, time.UTC)
	tx := &domain.Transaction{
		TransactionID: "TXN-1",
		CustomerID:    "CUST-1",
		StoreID:       "STORE-1",
		Items: []domain.LineItem{
			{ProductID: "PROD-1", Qty: 2, Price: 560, LineTotal: 1120},
			{ProductID: "PROD-2", Qty: 1, Price: 1800, LineTotal: 1800},
		},
		Total: 2920,
		Date:  date,
	}
	require.NoError(t, repo.CreateTransaction(ctx, tx))

	got, err := repo.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "TXN-1", got.TransactionID)
	assert.Equal(t, 2920.0, got.Total)
	assert.True(t, got.Date.Equal(date))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "PROD-1", got.Items[0].ProductID)
	assert.Equal(t, 1120.0, got.Items[0].LineTotal)
	assert.Equal(t, "PROD-2", got.Items[1].ProductID)
}

func TestRepository_UpdateTransactionRewritesItems(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tx := &domain.Transaction{
		TransactionID: "TXN-1",
		CustomerID:    "CUST-1",
		Items: []domain.LineItem{
			{ProductID: "PROD-1", Qty: 2, Price: 560, LineTotal: 1120},
		},
		Total: 1120,
		Date:  time.Date(2024, 1, 18, 10, 42, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateTransaction(ctx, tx))

	tx.Items = []domain.LineItem{
		{ProductID: "PROD-3", Qty: 1, Price: 120, LineTotal: 120},
	}
	tx.Total = 120
	require.NoError(t, repo.UpdateTransaction(ctx, tx))

	got, err := repo.GetTransaction(ctx, tx.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "PROD-3", got.Items[0].ProductID)
	assert.Equal(t, 120.0, got.Total)
}

func TestRepository_DeleteTransactionRemovesItems(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tx := &domain.Transaction{
		TransactionID: "TXN-1",
		CustomerID:    "CUST-1",
		Items:         []domain.LineItem{{ProductID: "PROD-1", Qty: 1, Price: 560, LineTotal: 560}},
		Total:         560,
		Date:          time.Now().UTC(),
	}
	require.NoError(t, repo.CreateTransaction(ctx, tx))
	require.NoError(t, repo.DeleteTransaction(ctx, tx.ID))

	_, err := repo.GetTransaction(ctx, tx.ID)
	var notFound *domain.NotFound
	assert.ErrorAs(t, err, &notFound)

	transactions, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestRepository_ListTransactionsAttachesItems(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &domain.Transaction{
		TransactionID: "TXN-1",
		CustomerID:    "CUST-1",
		Items:         []domain.LineItem{{ProductID: "PROD-1", Qty: 1, Price: 560, LineTotal: 560}},
		Total:         560,
		Date:          time.Now().UTC(),
	}
	second := &domain.Transaction{
		TransactionID: "TXN-2",
		CustomerID:    "CUST-2",
		Items: []domain.LineItem{
			{ProductID: "PROD-2", Qty: 3, Price: 100, LineTotal: 300},
			{ProductID: "PROD-3", Qty: 1, Price: 50, LineTotal: 50},
		},
		Total: 350,
		Date:  time.Now().UTC(),
	}
	require.NoError(t, repo.CreateTransaction(ctx, first))
	require.NoError(t, repo.CreateTransaction(ctx, second))

	all, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	byTxID := map[string]domain.Transaction{}
	for _, tx := range all {
		byTxID[tx.TransactionID] = tx
	}
	assert.Len(t, byTxID["TXN-1"].Items, 1)
	assert.Len(t, byTxID["TXN-2"].Items, 2)
}

func TestRepository_OfferRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	o := &domain.Offer{
		OfferID:       "OFF-1",
		Description:   "10% off dairy for Gold members",
		ValidUntil:    "2024-03-31",
		EligibleTiers: domain.StringList{"Gold", "Platinum"},
		CategoryScope: domain.StringList{"Dairy"},
	}
	require.NoError(t, repo.CreateOffer(ctx, o))

	got, err := repo.GetOffer(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)

	got.Description = "15% off dairy for Gold members"
	require.NoError(t, repo.UpdateOffer(ctx, got))

	updated, err := repo.GetOffer(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, "15% off dairy for Gold members", updated.Description)
}

func TestRepository_Ping(t *testing.T) {
	repo := newTestRepository(t)

	assert.NoError(t, repo.Ping(context.Background()))
}
