package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PaymentMetrics agrupa os instrumentos de métrica do fluxo de pagamentos.
// Um receiver nil desliga a instrumentação (útil nos testes de use case).
type PaymentMetrics struct {
	paymentsRegistered metric.Int64Counter
	ordersSettled      metric.Int64Counter
	paymentAmount      metric.Int64Histogram
}

// NewPaymentMetrics cria os instrumentos no meter global
func NewPaymentMetrics() (*PaymentMetrics, error) {
	meter := otel.Meter("payments")

	paymentsRegistered, err := meter.Int64Counter(
		"payments_registered_total",
		metric.WithDescription("Total de pagamentos registrados no ledger"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create payments counter: %w", err)
	}

	ordersSettled, err := meter.Int64Counter(
		"orders_settled_total",
		metric.WithDescription("Total de pedidos liquidados (transição para PAID)"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlements counter: %w", err)
	}

	paymentAmount, err := meter.Int64Histogram(
		"payment_amount_cents",
		metric.WithDescription("Distribuição dos valores de pagamento em centavos"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create amount histogram: %w", err)
	}

	return &PaymentMetrics{
		paymentsRegistered: paymentsRegistered,
		ordersSettled:      ordersSettled,
		paymentAmount:      paymentAmount,
	}, nil
}

// RecordPayment registra um pagamento aceito
func (m *PaymentMetrics) RecordPayment(ctx context.Context, method string, amountCents int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("method", method))
	m.paymentsRegistered.Add(ctx, 1, attrs)
	m.paymentAmount.Record(ctx, amountCents, attrs)
}

// RecordSettlement registra uma transição NEW -> PAID
func (m *PaymentMetrics) RecordSettlement(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersSettled.Add(ctx, 1)
}
