package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// ListCustomers returns all customers.
func (r *Repository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	err := r.client.DB().SelectContext(ctx, &customers,
		`SELECT id, customer_id, name, age, loyalty_tier, location, household_size FROM customers`)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetCustomer returns the customer with the given id.
func (r *Repository) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.client.DB().GetContext(ctx, &c,
		`SELECT id, customer_id, name, age, loyalty_tier, location, household_size FROM customers WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFound{Entity: "customer", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &c, nil
}

// CreateCustomer inserts a customer, assigning a generated id.
func (r *Repository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	c.ID = uuid.NewString()
	_, err := r.client.DB().ExecContext(ctx,
		`INSERT INTO customers (id, customer_id, name, age, loyalty_tier, location, household_size)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CustomerID, c.Name, c.Age, c.LoyaltyTier, c.Location, c.HouseholdSize)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

// UpdateCustomer replaces the mutable fields of the customer with the given id.
func (r *Repository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := r.client.DB().ExecContext(ctx,
		`UPDATE customers SET customer_id = ?, name = ?, age = ?, loyalty_tier = ?, location = ?, household_size = ?
		 WHERE id = ?`,
		c.CustomerID, c.Name, c.Age, c.LoyaltyTier, c.Location, c.HouseholdSize, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return requireAffected(res, "customer", c.ID)
}

// DeleteCustomer removes the customer with the given id.
func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	res, err := r.client.DB().ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return requireAffected(res, "customer", id)
}

// requireAffected converts a zero-row write into domain.NotFound.
func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return &domain.NotFound{Entity: entity, ID: id}
	}
	return nil
}
