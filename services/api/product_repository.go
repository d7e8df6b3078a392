package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductRepository define a interface para consultas ao catálogo
type ProductRepository interface {
	// ListProducts lista produtos aplicando os filtros opcionais
	ListProducts(ctx context.Context, filter ProductFilterRequest) ([]Product, error)

	// GetActiveProduct busca um produto ativo pelo ID.
	// Produto inexistente ou inativo resulta em ErrProductUnavailable.
	GetActiveProduct(ctx context.Context, productID int64) (*Product, error)
}

// PostgresProductRepository implementa ProductRepository usando PostgreSQL
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewProductRepository cria uma nova instância de PostgresProductRepository
func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &PostgresProductRepository{
		db: db,
	}
}

// ListProducts lista produtos montando o WHERE dinamicamente a partir dos filtros
func (r *PostgresProductRepository) ListProducts(ctx context.Context, filter ProductFilterRequest) ([]Product, error) {
	sql := "SELECT id, name, category, price_cents, active FROM products WHERE 1=1"
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		sql += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		sql += fmt.Sprintf(" AND active = $%d", len(args))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		sql += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}

	sql += " ORDER BY name"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PriceCents, &p.Active); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetActiveProduct busca um produto ativo pelo ID
func (r *PostgresProductRepository) GetActiveProduct(ctx context.Context, productID int64) (*Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, category, price_cents, active
		FROM products
		WHERE id = $1 AND active = TRUE
	`, productID).Scan(&p.ID, &p.Name, &p.Category, &p.PriceCents, &p.Active)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrProductUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product %d: %w", productID, err)
	}
	return &p, nil
}
