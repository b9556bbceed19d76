package dto

import "time"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"invalid age: must be non-negative"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Status string `json:"status" example:"deleted"`
}

// TierCountRow is one loyalty-tier-count result row.
type TierCountRow struct {
	LoyaltyTier string `json:"loyalty_tier" example:"Gold"`
	Customers   int    `json:"customers" example:"42"`
}

// StoreSalesRow is one sales-by-store result row.
type StoreSalesRow struct {
	StoreID string  `json:"store_id" example:"STORE-07"`
	Revenue float64 `json:"revenue" example:"182540.50"`
}

// ProductDemandRow is one top-products result row.
type ProductDemandRow struct {
	ProductID string `json:"product_id" example:"PROD-0450"`
	Units     int    `json:"units" example:"128"`
}

// TierBasketRow is one avg-basket-by-tier result row.
type TierBasketRow struct {
	LoyaltyTier string  `json:"loyalty_tier" example:"Silver"`
	AvgItems    float64 `json:"avg_items" example:"3.4"`
}

// TopSpenderRow is one top-spenders result row. The portal's Analytics page
// reads the name and totalSpent keys directly.
type TopSpenderRow struct {
	CustomerID string  `json:"customer_id" example:"CUST-0012"`
	Name       string  `json:"name" example:"Nimali Perera"`
	TotalSpent float64 `json:"totalSpent" example:"45230"`
}

// CategorySpendRow is one category-spend result row, grouped per
// (customer, category) pair.
type CategorySpendRow struct {
	CustomerID string  `json:"customer_id" example:"CUST-0012"`
	Category   string  `json:"category" example:"Dairy"`
	Spend      float64 `json:"spend" example:"5600"`
}

// StoreCategoryRow is one store-category-demand result row.
type StoreCategoryRow struct {
	StoreID  string `json:"store_id" example:"STORE-07"`
	Category string `json:"category" example:"Pantry"`
	Units    int    `json:"units" example:"310"`
}

// ChurnRiskRow flags a customer whose latest purchase predates the recency
// threshold. Name is empty when no customer record matches the id.
type ChurnRiskRow struct {
	CustomerID   string    `json:"customer_id" example:"CUST-0031"`
	Name         string    `json:"name,omitempty" example:"Ruwan Silva"`
	LastPurchase time.Time `json:"last_purchase" example:"2023-11-02T09:15:00Z"`
	DaysInactive int       `json:"days_inactive" example:"77"`
}

// DairyBuyerRow is one dairy-buyers result row, emitted once per qualifying
// line item.
type DairyBuyerRow struct {
	CustomerID    string `json:"customer_id" example:"CUST-0012"`
	TransactionID string `json:"transaction_id" example:"TXN-20240118-001"`
}

// PriceSensitivityRow is one price-sensitivity result row.
type PriceSensitivityRow struct {
	LoyaltyTier  string  `json:"loyalty_tier" example:"Gold"`
	AvgUnitPrice float64 `json:"avg_unit_price" example:"742.80"`
}

// HouseholdBasketRow is one household-vs-basket result row.
type HouseholdBasketRow struct {
	HouseholdSize  int     `json:"household_size" example:"4"`
	AvgBasketValue float64 `json:"avg_basket_value" example:"3120.25"`
}

// CustomerValueRow is one clv result row.
type CustomerValueRow struct {
	CustomerID    string  `json:"customer_id" example:"CUST-0012"`
	Name          string  `json:"name" example:"Nimali Perera"`
	LifetimeSpend float64 `json:"lifetimeSpend" example:"45230"`
	TxCount       int     `json:"txCount" example:"17"`
}
