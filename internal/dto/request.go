package dto

// CustomerPayload is the create/update body for a customer. Updates replace
// the record with exactly these fields.
type CustomerPayload struct {
	CustomerID    string `json:"customer_id" example:"CUST-0012"`
	Name          string `json:"name" example:"Nimali Perera"`
	Age           int    `json:"age" example:"34"`
	LoyaltyTier   string `json:"loyalty_tier" example:"Gold"`
	Location      string `json:"location" example:"Colombo"`
	HouseholdSize int    `json:"household_size" example:"4"`
}

// ProductPayload is the create/update body for a product.
type ProductPayload struct {
	ProductID string   `json:"product_id" example:"PROD-0450"`
	Name      string   `json:"name" example:"Highland Full Cream Milk 1L"`
	Category  string   `json:"category" example:"Dairy"`
	Price     float64  `json:"price" example:"560"`
	Currency  string   `json:"currency" example:"LKR"`
	Tags      []string `json:"tags" example:"chilled,staple"`
}

// StorePayload is the create/update body for a store.
type StorePayload struct {
	StoreID  string `json:"store_id" example:"STORE-07"`
	Name     string `json:"name" example:"Cargills Food City - Nugegoda"`
	Location string `json:"location" example:"Nugegoda"`
}

// LineItemPayload is one item of a transaction payload. line_total is
// recomputed server-side and may be omitted.
type LineItemPayload struct {
	ProductID string  `json:"product_id" example:"PROD-0450"`
	Qty       int     `json:"qty" example:"2"`
	Price     float64 `json:"price" example:"560"`
}

// TransactionPayload is the create/update body for a transaction. total and
// items[].line_total are derived from qty and price; supplied values are
// ignored. date defaults to the current time when empty.
type TransactionPayload struct {
	TransactionID string            `json:"transaction_id" example:"TXN-20240118-001"`
	CustomerID    string            `json:"customer_id" example:"CUST-0012"`
	StoreID       string            `json:"store_id" example:"STORE-07"`
	Items         []LineItemPayload `json:"items"`
	Date          string            `json:"date" example:"2024-01-18T10:42:00Z"`
}

// OfferPayload is the create/update body for an offer. valid_until accepts
// YYYY-MM-DD or RFC 3339.
type OfferPayload struct {
	OfferID       string   `json:"offer_id" example:"OFF-2024-015"`
	Description   string   `json:"description" example:"10% off dairy for Gold members"`
	ValidUntil    string   `json:"valid_until" example:"2024-03-31"`
	EligibleTiers []string `json:"eligible_tiers" example:"Gold,Platinum"`
	CategoryScope []string `json:"category_scope" example:"Dairy"`
}
