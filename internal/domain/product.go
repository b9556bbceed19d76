package domain

// Product is a catalog entry referenced by transaction line items.
type Product struct {
	ID        string     `db:"id" json:"_id"`
	ProductID string     `db:"product_id" json:"product_id"`
	Name      string     `db:"name" json:"name"`
	Category  string     `db:"category" json:"category"`
	Price     float64    `db:"price" json:"price"`
	Currency  string     `db:"currency" json:"currency"`
	Tags      StringList `db:"tags" json:"tags"`
}
