package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOrderFixture(id int64, status string) *Order {
	return &Order{ID: id, CustomerID: 1, Status: status}
}

func TestRegisterPaymentPartialThenSettle(t *testing.T) {
	// Arrange: pedido de 5000; primeiro pagamento de 3000 não liquida,
	// segundo de 2000 liquida.
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusNew), nil)
	mockPayments.On("AppendPayment", ctx, mock.MatchedBy(func(p *Payment) bool {
		return p.OrderID == 10 && p.Method == "PIX" && p.AmountCents == 3000
	})).Return(int64(1), nil).Once()
	mockPayments.On("AppendPayment", ctx, mock.MatchedBy(func(p *Payment) bool {
		return p.OrderID == 10 && p.Method == "CARD" && p.AmountCents == 2000
	})).Return(int64(2), nil).Once()
	mockOrders.On("SettleIfFullyPaid", ctx, int64(10)).Return(false, nil).Once()
	mockOrders.On("SettleIfFullyPaid", ctx, int64(10)).Return(true, nil).Once()

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err1 := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 3000})
	err2 := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "CARD", AmountCents: 2000})

	// Assert: pagamento parcial é sucesso mesmo sem liquidar
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	mockOrders.AssertExpectations(t)
	mockPayments.AssertExpectations(t)
}

func TestRegisterPaymentAgainstPaidOrder(t *testing.T) {
	// Arrange
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusPaid), nil)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 100})

	// Assert: o ledger permanece intocado
	assert.ErrorIs(t, err, ErrOrderAlreadyPaid)
	mockPayments.AssertNotCalled(t, "AppendPayment", mock.Anything, mock.Anything)
}

func TestRegisterPaymentAgainstCancelledOrder(t *testing.T) {
	// Arrange: CANCELLED vem de um fluxo administrativo externo, mas bloqueia
	// novos pagamentos do mesmo jeito.
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusCancelled), nil)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 100})

	// Assert
	assert.ErrorIs(t, err, ErrOrderCancelled)
	mockPayments.AssertNotCalled(t, "AppendPayment", mock.Anything, mock.Anything)
}

func TestRegisterPaymentInvalidAmount(t *testing.T) {
	// Arrange
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusNew), nil)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	errZero := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 0})
	errNegative := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: -500})

	// Assert
	assert.ErrorIs(t, errZero, ErrInvalidAmount)
	assert.ErrorIs(t, errNegative, ErrInvalidAmount)
	mockPayments.AssertNotCalled(t, "AppendPayment", mock.Anything, mock.Anything)
}

func TestRegisterPaymentOrderNotFound(t *testing.T) {
	// Arrange
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(404)).Return(nil, ErrOrderNotFound)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 404, Method: "PIX", AmountCents: 100})

	// Assert
	assert.ErrorIs(t, err, ErrOrderNotFound)
	mockPayments.AssertNotCalled(t, "AppendPayment", mock.Anything, mock.Anything)
}

func TestRegisterPaymentOverpaymentSettles(t *testing.T) {
	// Arrange: um único pagamento acima do saldo liquida o pedido
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusNew), nil)
	mockPayments.On("AppendPayment", ctx, mock.MatchedBy(func(p *Payment) bool {
		return p.AmountCents == 6000
	})).Return(int64(1), nil)
	mockOrders.On("SettleIfFullyPaid", ctx, int64(10)).Return(true, nil)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "BOLETO", AmountCents: 6000})

	// Assert: o excedente é retido sem erro
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)
	mockPayments.AssertExpectations(t)
}

func TestRegisterPaymentSettlementFailureAfterAppend(t *testing.T) {
	// Arrange: o append já comprometeu o pagamento; a falha na reconciliação
	// é reportada mas nada é desfeito.
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	storageErr := errors.New("connection reset")
	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusNew), nil)
	mockPayments.On("AppendPayment", ctx, mock.Anything).Return(int64(9), nil)
	mockOrders.On("SettleIfFullyPaid", ctx, int64(10)).Return(false, storageErr)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 100})

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.Contains(t, err.Error(), "payment 9 recorded")
	mockPayments.AssertCalled(t, "AppendPayment", ctx, mock.Anything)
}

func TestRegisterPaymentAppendFailure(t *testing.T) {
	// Arrange
	mockOrders := new(MockOrderRepository)
	mockPayments := new(MockPaymentRepository)
	ctx := context.Background()

	storageErr := errors.New("disk full")
	mockOrders.On("GetOrder", ctx, int64(10)).Return(newOrderFixture(10, OrderStatusNew), nil)
	mockPayments.On("AppendPayment", ctx, mock.Anything).Return(int64(0), storageErr)

	uc := NewPaymentUseCase(mockPayments, mockOrders, nil)

	// Act
	err := uc.RegisterPayment(ctx, CreatePaymentRequest{OrderID: 10, Method: "PIX", AmountCents: 100})

	// Assert: sem append, a liquidação nem é tentada
	assert.ErrorIs(t, err, storageErr)
	mockOrders.AssertNotCalled(t, "SettleIfFullyPaid", mock.Anything, mock.Anything)
}
