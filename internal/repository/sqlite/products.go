package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Achala357/cargills-backend/internal/domain"
)

// ListProducts returns all products.
func (r *Repository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.client.DB().SelectContext(ctx, &products,
		`SELECT id, product_id, name, category, price, currency, tags FROM products`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns the product with the given id.
func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.client.DB().GetContext(ctx, &p,
		`SELECT id, product_id, name, category, price, currency, tags FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFound{Entity: "product", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &p, nil
}

// CreateProduct inserts a product, assigning a generated id.
func (r *Repository) CreateProduct(ctx context.Context, p *domain.Product) error {
	p.ID = uuid.NewString()
	_, err := r.client.DB().ExecContext(ctx,
		`INSERT INTO products (id, product_id, name, category, price, currency, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProductID, p.Name, p.Category, p.Price, p.Currency, p.Tags)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateProduct replaces the mutable fields of the product with the given id.
func (r *Repository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	res, err := r.client.DB().ExecContext(ctx,
		`UPDATE products SET product_id = ?, name = ?, category = ?, price = ?, currency = ?, tags = ?
		 WHERE id = ?`,
		p.ProductID, p.Name, p.Category, p.Price, p.Currency, p.Tags, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return requireAffected(res, "product", p.ID)
}

// DeleteProduct removes the product with the given id.
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.client.DB().ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return requireAffected(res, "product", id)
}
