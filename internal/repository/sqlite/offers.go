package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// ListOffers returns all offers.
func (r *Repository) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	offers := []domain.Offer{}
	err := r.client.DB().SelectContext(ctx, &offers,
		`SELECT id, offer_id, description, valid_until, eligible_tiers, category_scope FROM offers`)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// GetOffer returns the offer with the given id.
func (r *Repository) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	var o domain.Offer
	err := r.client.DB().GetContext(ctx, &o,
		`SELECT id, offer_id, description, valid_until, eligible_tiers, category_scope FROM offers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFound{Entity: "offer", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &o, nil
}

// CreateOffer inserts an offer, assigning a generated id.
func (r *Repository) CreateOffer(ctx context.Context, o *domain.Offer) error {
	o.ID = uuid.NewString()
	_, err := r.client.DB().ExecContext(ctx,
		`INSERT INTO offers (id, offer_id, description, valid_until, eligible_tiers, category_scope)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.OfferID, o.Description, o.ValidUntil, o.EligibleTiers, o.CategoryScope)
	if err != nil {
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

// UpdateOffer replaces the mutable fields of the offer with the given id.
func (r *Repository) UpdateOffer(ctx context.Context, o *domain.Offer) error {
	res, err := r.client.DB().ExecContext(ctx,
		`UPDATE offers SET offer_id = ?, description = ?, valid_until = ?, eligible_tiers = ?, category_scope = ?
		 WHERE id = ?`,
		o.OfferID, o.Description, o.ValidUntil, o.EligibleTiers, o.CategoryScope, o.ID)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}
	return requireAffected(res, "offer", o.ID)
}

// DeleteOffer removes the offer with the given id.
func (r *Repository) DeleteOffer(ctx context.Context, id string) error {
	res, err := r.client.DB().ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return requireAffected(res, "offer", id)
}
