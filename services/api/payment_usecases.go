package main

import (
	"context"
	"fmt"
	"log"
)

// PaymentUseCase reconcilia pagamentos contra o total do pedido.
// A ordem das etapas importa: o append no ledger é a fronteira de
// durabilidade — registrado o pagamento, ele conta para a liquidação mesmo
// que a checagem de status falhe depois.
type PaymentUseCase struct {
	payments PaymentRepository
	orders   OrderRepository
	metrics  *PaymentMetrics
}

// NewPaymentUseCase cria uma nova instância de PaymentUseCase
func NewPaymentUseCase(
	payments PaymentRepository,
	orders OrderRepository,
	metrics *PaymentMetrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		payments: payments,
		orders:   orders,
		metrics:  metrics,
	}
}

// RegisterPayment registra um pagamento e decide a transição para PAID.
// Pagamentos parciais são válidos: a operação tem sucesso mesmo sem
// liquidar o pedido. Pagamento a maior liquida e o excedente é retido.
func (uc *PaymentUseCase) RegisterPayment(ctx context.Context, req CreatePaymentRequest) error {
	order, err := uc.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return err
	}

	if err := order.CanReceivePayment(); err != nil {
		return fmt.Errorf("order %d: %w", req.OrderID, err)
	}

	if req.AmountCents <= 0 {
		return ErrInvalidAmount
	}

	payment := NewPayment(req.OrderID, req.Method, req.AmountCents)
	paymentID, err := uc.payments.AppendPayment(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to register payment: %w", err)
	}

	log.Printf("💰 Payment %d of %d cents (%s) registered for order %d", paymentID, req.AmountCents, req.Method, req.OrderID)
	uc.metrics.RecordPayment(ctx, req.Method, req.AmountCents)

	settled, err := uc.orders.SettleIfFullyPaid(ctx, req.OrderID)
	if err != nil {
		// O pagamento já está durável; a reconciliação pode ser refeita a
		// partir do ledger, então o erro é reportado sem desfazer nada.
		return fmt.Errorf("payment %d recorded but settlement check failed: %w", paymentID, err)
	}

	if settled {
		log.Printf("🎉 Order %d fully paid", req.OrderID)
		uc.metrics.RecordSettlement(ctx)
	}

	return nil
}
