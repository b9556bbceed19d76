package domain

// Offer is a promotion scoped to loyalty tiers and product categories.
// The aggregation engine does not consume offers; they exist for the portal's
// CRUD surface.
type Offer struct {
	ID            string     `db:"id" json:"_id"`
	OfferID       string     `db:"offer_id" json:"offer_id"`
	Description   string     `db:"description" json:"description"`
	ValidUntil    string     `db:"valid_until" json:"valid_until"`
	EligibleTiers StringList `db:"eligible_tiers" json:"eligible_tiers"`
	CategoryScope StringList `db:"category_scope" json:"category_scope"`
}
