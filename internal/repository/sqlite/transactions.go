package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// txRow is the flat transactions row; the date is stored as RFC 3339 text.
type txRow struct {
	ID            string  `db:"id"`
	TransactionID string  `db:"transaction_id"`
	CustomerID    string  `db:"customer_id"`
	StoreID       string  `db:"store_id"`
	Total         float64 `db:"total"`
	Date          string  `db:"date"`
}

// itemRow is one transaction_items row tagged with its parent transaction.
type itemRow struct {
	TxID      string  `db:"tx_id"`
	ProductID string  `db:"product_id"`
	Qty       int     `db:"qty"`
	Price     float64 `db:"price"`
	LineTotal float64 `db:"line_total"`
}

func (row *txRow) toDomain() (*domain.Transaction, error) {
	date, err := time.Parse(time.RFC3339Nano, row.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored transaction date %q: %w", row.Date, err)
	}
	return &domain.Transaction{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		CustomerID:    row.CustomerID,
		StoreID:       row.StoreID,
		Items:         []domain.LineItem{},
		Total:         row.Total,
		Date:          date,
	}, nil
}

// ListTransactions returns all transactions with their line items attached.
func (r *Repository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows := []txRow{}
	err := r.client.DB().SelectContext(ctx, &rows,
		`SELECT id, transaction_id, customer_id, store_id, total, date FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	index := make(map[string]int, len(rows))
	ids := make([]string, 0, len(rows))
	for i := range rows {
		tx, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
		index[tx.ID] = len(transactions) - 1
		ids = append(ids, tx.ID)
	}
	if len(ids) == 0 {
		return transactions, nil
	}

	query, args, err := sqlx.In(
		`SELECT tx_id, product_id, qty, price, line_total FROM transaction_items WHERE tx_id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction items query: %w", err)
	}
	items := []itemRow{}
	if err := r.client.DB().SelectContext(ctx, &items, r.client.DB().Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list transaction items: %w", err)
	}

	for _, item := range items {
		i, ok := index[item.TxID]
		if !ok {
			continue
		}
		transactions[i].Items = append(transactions[i].Items, domain.LineItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			LineTotal: item.LineTotal,
		})
	}

	return transactions, nil
}

// GetTransaction returns the transaction with the given id, items included.
func (r *Repository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	var row txRow
	err := r.client.DB().GetContext(ctx, &row,
		`SELECT id, transaction_id, customer_id, store_id, total, date FROM transactions WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFound{Entity: "transaction", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	tx, err := row.toDomain()
	if err != nil {
		return nil, err
	}

	items := []itemRow{}
	err = r.client.DB().SelectContext(ctx, &items,
		`SELECT tx_id, product_id, qty, price, line_total FROM transaction_items WHERE tx_id = ? ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction items: %w", err)
	}
	for _, item := range items {
		tx.Items = append(tx.Items, domain.LineItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Price:     item.Price,
			LineTotal: item.LineTotal,
		})
	}

	return tx, nil
}

// CreateTransaction inserts a transaction and its line items atomically,
// assigning a generated id.
func (r *Repository) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	t.ID = uuid.NewString()

	dbTx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction insert: %w", err)
	}
	defer dbTx.Rollback()

	_, err = dbTx.ExecContext(ctx,
		`INSERT INTO transactions (id, transaction_id, customer_id, store_id, total, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.TransactionID, t.CustomerID, t.StoreID, t.Total, t.Date.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	if err := insertItems(ctx, dbTx, t.ID, t.Items); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction insert: %w", err)
	}
	return nil
}

// UpdateTransaction replaces the transaction row and rewrites its line items.
func (r *Repository) UpdateTransaction(ctx context.Context, t *domain.Transaction) error {
	dbTx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction update: %w", err)
	}
	defer dbTx.Rollback()

	res, err := dbTx.ExecContext(ctx,
		`UPDATE transactions SET transaction_id = ?, customer_id = ?, store_id = ?, total = ?, date = ?
		 WHERE id = ?`,
		t.TransactionID, t.CustomerID, t.StoreID, t.Total, t.Date.Format(time.RFC3339Nano), t.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	if err := requireAffected(res, "transaction", t.ID); err != nil {
		return err
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transaction_items WHERE tx_id = ?`, t.ID); err != nil {
		return fmt.Errorf("failed to clear transaction items: %w", err)
	}
	if err := insertItems(ctx, dbTx, t.ID, t.Items); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction update: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction and its line items atomically.
func (r *Repository) DeleteTransaction(ctx context.Context, id string) error {
	dbTx, err := r.client.DB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction delete: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transaction_items WHERE tx_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction items: %w", err)
	}
	res, err := dbTx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if err := requireAffected(res, "transaction", id); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction delete: %w", err)
	}
	return nil
}

func insertItems(ctx context.Context, dbTx *sqlx.Tx, txID string, items []domain.LineItem) error {
	for _, item := range items {
		_, err := dbTx.ExecContext(ctx,
			`INSERT INTO transaction_items (tx_id, product_id, qty, price, line_total)
			 VALUES (?, ?, ?, ?, ?)`,
			txID, item.ProductID, item.Qty, item.Price, item.LineTotal)
		if err != nil {
			return fmt.Errorf("failed to insert transaction item: %w", err)
		}
	}
	return nil
}
