package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentRepository define a interface do ledger de pagamentos.
// O ledger é append-only: pagamentos nunca são alterados ou removidos.
type PaymentRepository interface {
	// AppendPayment registra um pagamento e retorna o ID atribuído
	AppendPayment(ctx context.Context, payment *Payment) (int64, error)

	// SumPaidByOrder soma os pagamentos registrados para o pedido
	SumPaidByOrder(ctx context.Context, orderID int64) (int64, error)

	// ListPaymentsByOrder lista os pagamentos do pedido em ordem de registro
	ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error)
}

// PostgresPaymentRepository implementa PaymentRepository usando PostgreSQL
type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

// NewPaymentRepository cria uma nova instância de PostgresPaymentRepository
func NewPaymentRepository(db *pgxpool.Pool) PaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

// AppendPayment registra um pagamento e retorna o ID atribuído
func (r *PostgresPaymentRepository) AppendPayment(ctx context.Context, payment *Payment) (int64, error) {
	var paymentID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO payments (order_id, method, amount_cents, paid_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, payment.OrderID, payment.Method, payment.AmountCents, payment.PaidAt).Scan(&paymentID)
	if err != nil {
		return 0, fmt.Errorf("failed to append payment for order %d: %w", payment.OrderID, err)
	}
	return paymentID, nil
}

// SumPaidByOrder soma os pagamentos registrados para o pedido
func (r *PostgresPaymentRepository) SumPaidByOrder(ctx context.Context, orderID int64) (int64, error) {
	var paid int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount_cents), 0)
		FROM payments
		WHERE order_id = $1
	`, orderID).Scan(&paid)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payments for order %d: %w", orderID, err)
	}
	return paid, nil
}

// ListPaymentsByOrder lista os pagamentos do pedido em ordem de registro
func (r *PostgresPaymentRepository) ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, method, amount_cents, paid_at
		FROM payments
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for order %d: %w", orderID, err)
	}
	defer rows.Close()

	payments := []Payment{}
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.AmountCents, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
