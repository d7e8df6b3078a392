package main

import "time"

// OrderItemRequest representa uma linha do pedido na requisição.
// A quantidade é validada pelo caso de uso para que o erro de domínio
// identifique o produto ofensor.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int64 `json:"quantity"`
}

// CreateOrderRequest representa a requisição para criar um pedido
type CreateOrderRequest struct {
	CustomerID int64              `json:"customer_id" binding:"required"`
	Items      []OrderItemRequest `json:"items"`
}

// CreatePaymentRequest representa a requisição para registrar um pagamento
type CreatePaymentRequest struct {
	OrderID     int64  `json:"order_id" binding:"required"`
	Method      string `json:"method" binding:"required"`
	AmountCents int64  `json:"amount_cents"`
}

// ProductFilterRequest representa os filtros opcionais da listagem de produtos
type ProductFilterRequest struct {
	Category string `form:"category"`
	Active   *bool  `form:"active"`
	Name     string `form:"name"`
}

// OrderCreatedResponse é a resposta da criação de pedido
type OrderCreatedResponse struct {
	OrderID    int64  `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
}

// OrderSummaryResponse é o resumo de um pedido na listagem
type OrderSummaryResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	TotalCents   int64     `json:"total_cents"`
}

// OrderItemResponse é uma linha do pedido na resposta detalhada
type OrderItemResponse struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	Quantity       int64  `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	SubtotalCents  int64  `json:"subtotal_cents"`
}

// PaymentResponse é um pagamento na resposta detalhada do pedido
type PaymentResponse struct {
	ID          int64     `json:"id"`
	Method      string    `json:"method"`
	AmountCents int64     `json:"amount_cents"`
	PaidAt      time.Time `json:"paid_at"`
}

// OrderDetailResponse é o pedido completo com itens, pagamentos e saldo
type OrderDetailResponse struct {
	OrderSummaryResponse
	Items          []OrderItemResponse `json:"items"`
	Payments       []PaymentResponse   `json:"payments"`
	PaidCents      int64               `json:"paid_cents"`
	RemainingCents int64               `json:"remaining_cents"`
}

// ProductResponse é um produto na listagem do catálogo
type ProductResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price_cents"`
	Active     bool   `json:"active"`
}
