package main

import (
	"context"
	"fmt"
	"log"
)

// OrderUseCase contém a lógica de negócio dos pedidos
type OrderUseCase struct {
	orders   OrderRepository
	products ProductRepository
	payments PaymentRepository
}

// NewOrderUseCase cria uma nova instância de OrderUseCase
func NewOrderUseCase(
	orders OrderRepository,
	products ProductRepository,
	payments PaymentRepository,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		products: products,
		payments: payments,
	}
}

// CreateOrder valida todas as linhas, congela o preço corrente de cada
// produto e persiste pedido e itens como uma única unidade. Nenhuma linha é
// gravada antes de toda a validação passar.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderCreatedResponse, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", itemReq.ProductID, ErrInvalidQuantity)
		}

		product, err := uc.products.GetActiveProduct(ctx, itemReq.ProductID)
		if err != nil {
			return nil, err
		}

		// Preço congelado no momento da consulta (snapshot pricing)
		items = append(items, NewOrderItem(product, itemReq.Quantity))
	}

	order := NewOrder(req.CustomerID)
	orderID, err := uc.orders.CreateOrderWithItems(ctx, order, items)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	totalCents := OrderTotalCents(items)
	log.Printf("✅ Order %d created for customer %d, total %d cents", orderID, req.CustomerID, totalCents)

	return &OrderCreatedResponse{
		OrderID:    orderID,
		TotalCents: totalCents,
		Status:     order.Status,
	}, nil
}

// ListOrders lista os resumos de pedidos
func (uc *OrderUseCase) ListOrders(ctx context.Context) ([]OrderSummaryResponse, error) {
	return uc.orders.ListOrderSummaries(ctx)
}

// GetOrderDetail monta o pedido completo com itens, pagamentos e saldo
func (uc *OrderUseCase) GetOrderDetail(ctx context.Context, orderID int64) (*OrderDetailResponse, error) {
	summary, err := uc.orders.GetOrderSummary(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := uc.orders.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	payments, err := uc.payments.ListPaymentsByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	paid, err := uc.payments.SumPaidByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	total, err := uc.orders.GetOrderTotalCents(ctx, orderID)
	if err != nil {
		return nil, err
	}

	detail := &OrderDetailResponse{
		OrderSummaryResponse: *summary,
		Items:                make([]OrderItemResponse, 0, len(items)),
		Payments:             make([]PaymentResponse, 0, len(payments)),
	}

	for _, item := range items {
		detail.Items = append(detail.Items, OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			SubtotalCents:  item.SubtotalCents(),
		})
	}

	for _, payment := range payments {
		detail.Payments = append(detail.Payments, PaymentResponse{
			ID:          payment.ID,
			Method:      payment.Method,
			AmountCents: payment.AmountCents,
			PaidAt:      payment.PaidAt,
		})
	}

	detail.PaidCents = paid
	detail.RemainingCents = RemainingCents(paid, total)

	return detail, nil
}
