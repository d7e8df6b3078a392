package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository define a interface para operações de banco de dados de pedidos
type OrderRepository interface {
	// CreateOrderWithItems persiste o pedido e suas linhas em uma única
	// transação. Nunca existe pedido sem itens nem item órfão.
	CreateOrderWithItems(ctx context.Context, order *Order, items []OrderItem) (int64, error)

	// GetOrder busca um pedido pelo ID
	GetOrder(ctx context.Context, orderID int64) (*Order, error)

	// GetOrderTotalCents calcula o total do pedido a partir das linhas
	GetOrderTotalCents(ctx context.Context, orderID int64) (int64, error)

	// ListOrderSummaries lista os resumos de pedidos, mais recentes primeiro
	ListOrderSummaries(ctx context.Context) ([]OrderSummaryResponse, error)

	// GetOrderSummary busca o resumo de um pedido pelo ID
	GetOrderSummary(ctx context.Context, orderID int64) (*OrderSummaryResponse, error)

	// GetOrderItems lista as linhas do pedido com o nome atual do produto
	GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error)

	// SettleIfFullyPaid relê pagamentos e total sob lock da linha do pedido
	// e transiciona NEW -> PAID quando o acumulado cobre o total.
	SettleIfFullyPaid(ctx context.Context, orderID int64) (bool, error)
}

// PostgresOrderRepository implementa OrderRepository usando PostgreSQL
type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository cria uma nova instância de PostgresOrderRepository
func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &PostgresOrderRepository{
		db: db,
	}
}

// CreateOrderWithItems persiste o pedido e suas linhas atomicamente
func (r *PostgresOrderRepository) CreateOrderWithItems(ctx context.Context, order *Order, items []OrderItem) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (customer_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.CustomerID, order.Status, order.CreatedAt).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create order: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)
		`, orderID, item.ProductID, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return 0, fmt.Errorf("failed to create order item for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit order: %w", err)
	}
	return orderID, nil
}

// GetOrder busca um pedido pelo ID
func (r *PostgresOrderRepository) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	var order Order
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_id, status, created_at
		FROM orders WHERE id = $1
	`, orderID).Scan(&order.ID, &order.CustomerID, &order.Status, &order.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", orderID, err)
	}
	return &order, nil
}

// GetOrderTotalCents calcula o total do pedido a partir das linhas
func (r *PostgresOrderRepository) GetOrderTotalCents(ctx context.Context, orderID int64) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity * unit_price_cents), 0)
		FROM order_items
		WHERE order_id = $1
	`, orderID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to get order total: %w", err)
	}
	return total, nil
}

// ListOrderSummaries lista os resumos de pedidos, mais recentes primeiro
func (r *PostgresOrderRepository) ListOrderSummaries(ctx context.Context) ([]OrderSummaryResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.status,
			o.created_at,
			COALESCE(SUM(oi.quantity * oi.unit_price_cents), 0)
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		GROUP BY o.id, o.customer_id, c.name, o.status, o.created_at
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	summaries := []OrderSummaryResponse{}
	for rows.Next() {
		var s OrderSummaryResponse
		if err := rows.Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Status, &s.CreatedAt, &s.TotalCents); err != nil {
			return nil, fmt.Errorf("failed to scan order summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// GetOrderSummary busca o resumo de um pedido pelo ID
func (r *PostgresOrderRepository) GetOrderSummary(ctx context.Context, orderID int64) (*OrderSummaryResponse, error) {
	var s OrderSummaryResponse
	err := r.db.QueryRow(ctx, `
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.status,
			o.created_at,
			COALESCE(SUM(oi.quantity * oi.unit_price_cents), 0)
		FROM orders o
		INNER JOIN customers c ON o.customer_id = c.id
		LEFT JOIN order_items oi ON o.id = oi.order_id
		WHERE o.id = $1
		GROUP BY o.id, o.customer_id, c.name, o.status, o.created_at
	`, orderID).Scan(&s.ID, &s.CustomerID, &s.CustomerName, &s.Status, &s.CreatedAt, &s.TotalCents)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order summary %d: %w", orderID, err)
	}
	return &s, nil
}

// GetOrderItems lista as linhas do pedido com o nome atual do produto
func (r *PostgresOrderRepository) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price_cents
		FROM order_items oi
		INNER JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	items := []OrderItem{}
	for rows.Next() {
		var item OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SettleIfFullyPaid decide a transição NEW -> PAID de forma serializada por
// pedido. O SELECT ... FOR UPDATE segura a linha do pedido, então registros
// concorrentes de pagamento no mesmo pedido releem a soma um de cada vez e a
// transição nunca é perdida. Pedidos diferentes não disputam o lock.
func (r *PostgresOrderRepository) SettleIfFullyPaid(ctx context.Context, orderID int64) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin settlement transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var status string
	err = tx.QueryRow(ctx, `
		SELECT status FROM orders WHERE id = $1 FOR UPDATE
	`, orderID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("order %d: %w", orderID, ErrOrderNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("failed to lock order %d: %w", orderID, err)
	}

	// PAID e CANCELLED nunca transicionam aqui; marcar PAID de novo seria
	// inócuo, mas o guard mantém a transição única.
	if status != OrderStatusNew {
		return false, nil
	}

	var paid int64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE order_id = $1
	`, orderID).Scan(&paid)
	if err != nil {
		return false, fmt.Errorf("failed to sum payments for order %d: %w", orderID, err)
	}

	var total int64
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity * unit_price_cents), 0) FROM order_items WHERE order_id = $1
	`, orderID).Scan(&total)
	if err != nil {
		return false, fmt.Errorf("failed to compute total for order %d: %w", orderID, err)
	}

	if !IsSettled(paid, total) {
		return false, nil
	}

	_, err = tx.Exec(ctx, `
		UPDATE orders SET status = $1 WHERE id = $2 AND status = $3
	`, OrderStatusPaid, orderID, OrderStatusNew)
	if err != nil {
		return false, fmt.Errorf("failed to mark order %d as paid: %w", orderID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit settlement: %w", err)
	}
	return true, nil
}
