package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// ListStores returns all stores.
func (r *Repository) ListStores(ctx context.Context) ([]domain.Store, error) {
	stores := []domain.Store{}
	err := r.client.DB().SelectContext(ctx, &stores,
		`SELECT id, store_id, name, location FROM stores`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// GetStore returns the store with the given id.
func (r *Repository) GetStore(ctx context.Context, id string) (*domain.Store, error) {
	var s domain.Store
	err := r.client.DB().GetContext(ctx, &s,
		`SELECT id, store_id, name, location FROM stores WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFound{Entity: "store", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	return &s, nil
}

// CreateStore inserts a store, assigning a generated id.
func (r *Repository) CreateStore(ctx context.Context, s *domain.Store) error {
	s.ID = uuid.NewString()
	_, err := r.client.DB().ExecContext(ctx,
		`INSERT INTO stores (id, store_id, name, location) VALUES (?, ?, ?, ?)`,
		s.ID, s.StoreID, s.Name, s.Location)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	return nil
}

// UpdateStore replaces the mutable fields of the store with the given id.
func (r *Repository) UpdateStore(ctx context.Context, s *domain.Store) error {
	res, err := r.client.DB().ExecContext(ctx,
		`UPDATE stores SET store_id = ?, name = ?, location = ? WHERE id = ?`,
		s.StoreID, s.Name, s.Location, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	return requireAffected(res, "store", s.ID)
}

// DeleteStore removes the store with the given id.
func (r *Repository) DeleteStore(ctx context.Context, id string) error {
	res, err := r.client.DB().ExecContext(ctx, `DELETE FROM stores WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	return requireAffected(res, "store", id)
}
