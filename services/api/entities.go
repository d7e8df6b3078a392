package main

import (
	"fmt"
	"time"
)

// Status possíveis de um pedido
const (
	OrderStatusNew       = "NEW"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
)

// Métodos de pagamento conhecidos. O campo aceita qualquer valor não vazio;
// estes são os métodos usados pelo front.
const (
	PaymentMethodPix    = "PIX"
	PaymentMethodCard   = "CARD"
	PaymentMethodBoleto = "BOLETO"
)

// Product representa um item do catálogo. O preço vive no catálogo e muda
// com o tempo; pedidos nunca releem este valor depois de criados.
type Product struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Category   string `json:"category" db:"category"`
	PriceCents int64  `json:"price_cents" db:"price_cents"`
	Active     bool   `json:"active" db:"active"`
}

// Customer representa um cliente cadastrado
type Customer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Order representa um pedido no sistema
type Order struct {
	ID         int64     `json:"id" db:"id"`
	CustomerID int64     `json:"customer_id" db:"customer_id"`
	Status     string    `json:"status" db:"status"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// NewOrder cria uma nova instância de Order com status NEW
func NewOrder(customerID int64) *Order {
	return &Order{
		CustomerID: customerID,
		Status:     OrderStatusNew,
		CreatedAt:  time.Now().UTC(),
	}
}

// CanReceivePayment verifica se o pedido ainda aceita pagamentos.
// PAID e CANCELLED são estados terminais para esta operação.
func (o *Order) CanReceivePayment() error {
	switch o.Status {
	case OrderStatusNew:
		return nil
	case OrderStatusPaid:
		return ErrOrderAlreadyPaid
	case OrderStatusCancelled:
		return ErrOrderCancelled
	default:
		return fmt.Errorf("order %d has unknown status %q", o.ID, o.Status)
	}
}

// OrderItem representa uma linha do pedido com preço congelado no momento
// da criação (snapshot pricing).
type OrderItem struct {
	ID             int64  `json:"id" db:"id"`
	OrderID        int64  `json:"order_id" db:"order_id"`
	ProductID      int64  `json:"product_id" db:"product_id"`
	ProductName    string `json:"product_name" db:"product_name"`
	Quantity       int64  `json:"quantity" db:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents" db:"unit_price_cents"`
}

// NewOrderItem congela o preço corrente do produto na linha do pedido
func NewOrderItem(product *Product, quantity int64) OrderItem {
	return OrderItem{
		ProductID:      product.ID,
		ProductName:    product.Name,
		Quantity:       quantity,
		UnitPriceCents: product.PriceCents,
	}
}

// SubtotalCents é derivado, nunca armazenado separado dos seus insumos
func (i OrderItem) SubtotalCents() int64 {
	return i.Quantity * i.UnitPriceCents
}

// OrderTotalCents soma os subtotais das linhas do pedido
func OrderTotalCents(items []OrderItem) int64 {
	var total int64
	for _, item := range items {
		total += item.SubtotalCents()
	}
	return total
}

// Payment representa um pagamento registrado contra um pedido.
// Pagamentos são imutáveis: não existe edição nem estorno.
type Payment struct {
	ID          int64     `json:"id" db:"id"`
	OrderID     int64     `json:"order_id" db:"order_id"`
	Method      string    `json:"method" db:"method"`
	AmountCents int64     `json:"amount_cents" db:"amount_cents"`
	PaidAt      time.Time `json:"paid_at" db:"paid_at"`
}

// NewPayment cria uma nova instância de Payment
func NewPayment(orderID int64, method string, amountCents int64) *Payment {
	return &Payment{
		OrderID:     orderID,
		Method:      method,
		AmountCents: amountCents,
		PaidAt:      time.Now().UTC(),
	}
}

// IsSettled indica se o acumulado pago cobre o total do pedido.
// Pagamento a maior também liquida o pedido; o excedente é retido.
func IsSettled(paidCents, totalCents int64) bool {
	return paidCents >= totalCents
}

// RemainingCents calcula o saldo devedor, nunca negativo
func RemainingCents(paidCents, totalCents int64) int64 {
	if paidCents >= totalCents {
		return 0
	}
	return totalCents - paidCents
}
