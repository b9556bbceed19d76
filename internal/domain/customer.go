// Package domain holds the entities of the personalization portal and the
// structured errors shared across layers.
package domain

// Customer is a loyalty programme member.
type Customer struct {
	ID            string `db:"id" json:"_id"`
	CustomerID    string `db:"customer_id" json:"customer_id"`
	Name          string `db:"name" json:"name"`
	Age           int    `db:"age" json:"age"`
	LoyaltyTier   string `db:"loyalty_tier" json:"loyalty_tier"`
	Location      string `db:"location" json:"location"`
	HouseholdSize int    `db:"household_size" json:"household_size"`
}
