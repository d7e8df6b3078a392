package main

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository simula o repositório de pedidos
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrderWithItems(ctx context.Context, order *Order, items []OrderItem) (int64, error) {
	args := m.Called(ctx, order, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, orderID int64) (*Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrderTotalCents(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ListOrderSummaries(ctx context.Context) ([]OrderSummaryResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderSummaryResponse), args.Error(1)
}

func (m *MockOrderRepository) GetOrderSummary(ctx context.Context, orderID int64) (*OrderSummaryResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderSummaryResponse), args.Error(1)
}

func (m *MockOrderRepository) GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]OrderItem), args.Error(1)
}

func (m *MockOrderRepository) SettleIfFullyPaid(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository simula o repositório do catálogo
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter ProductFilterRequest) ([]Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockProductRepository) GetActiveProduct(ctx context.Context, productID int64) (*Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

// MockPaymentRepository simula o ledger de pagamentos
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) AppendPayment(ctx context.Context, payment *Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) SumPaidByOrder(ctx context.Context, orderID int64) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByOrder(ctx context.Context, orderID int64) ([]Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}
