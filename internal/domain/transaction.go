package domain

import "time"

// LineItem is one product entry within a transaction. LineTotal is derived
// from Qty and Price when the transaction is written.
type LineItem struct {
	ProductID string  `db:"product_id" json:"product_id"`
	Qty       int     `db:"qty" json:"qty"`
	Price     float64 `db:"price" json:"price"`
	LineTotal float64 `db:"line_total" json:"line_total"`
}

// Transaction is a purchase record. Total always equals the sum of the line
// totals. StoreID is optional; transactions without one are skipped by the
// store-keyed aggregations.
type Transaction struct {
	ID            string     `json:"_id"`
	TransactionID string     `json:"transaction_id"`
	CustomerID    string     `json:"customer_id"`
	StoreID       string     `json:"store_id,omitempty"`
	Items         []LineItem `json:"items"`
	Total         float64    `json:"total"`
	Date          time.Time  `json:"date"`
}
