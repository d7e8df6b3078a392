package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OrderUseCaseInterface define a interface para o use case de pedidos
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderCreatedResponse, error)
	ListOrders(ctx context.Context) ([]OrderSummaryResponse, error)
	GetOrderDetail(ctx context.Context, orderID int64) (*OrderDetailResponse, error)
}

// PaymentUseCaseInterface define a interface para o use case de pagamentos
type PaymentUseCaseInterface interface {
	RegisterPayment(ctx context.Context, req CreatePaymentRequest) error
}

// ProductUseCaseInterface define a interface para o use case de produtos
type ProductUseCaseInterface interface {
	ListProducts(ctx context.Context, filter ProductFilterRequest) ([]ProductResponse, error)
}

// APIHandler contém os handlers HTTP
type APIHandler struct {
	orders   OrderUseCaseInterface
	payments PaymentUseCaseInterface
	products ProductUseCaseInterface
	tracer   trace.Tracer
}

// NewAPIHandler cria uma nova instância de APIHandler
func NewAPIHandler(
	orders OrderUseCaseInterface,
	payments PaymentUseCaseInterface,
	products ProductUseCaseInterface,
	tracer trace.Tracer,
) *APIHandler {
	return &APIHandler{
		orders:   orders,
		payments: payments,
		products: products,
		tracer:   tracer,
	}
}

// ListProducts lista produtos com filtros opcionais
func (h *APIHandler) ListProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_products")
	defer span.End()

	var filter ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.products.ListProducts(ctx, filter)
	if err != nil {
		span.RecordError(err)
		c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// ListOrders lista os resumos de pedidos
func (h *APIHandler) ListOrders(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "list_orders")
	defer span.End()

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		span.RecordError(err)
		c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID busca um pedido detalhado com itens, pagamentos e saldo
func (h *APIHandler) GetOrderByID(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_order")
	defer span.End()

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	span.SetAttributes(attribute.Int64("order_id", orderID))

	detail, err := h.orders.GetOrderDetail(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateOrder cria um novo pedido com preços congelados no momento da criação
func (h *APIHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.Int64("customer_id", req.CustomerID),
		attribute.Int("item_count", len(req.Items)),
	)

	response, err := h.orders.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.Int64("order_id", response.OrderID),
		attribute.Int64("total_cents", response.TotalCents),
	)

	c.JSON(http.StatusCreated, response)
}

// RegisterPayment registra um pagamento contra um pedido
func (h *APIHandler) RegisterPayment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "register_payment")
	defer span.End()

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	span.SetAttributes(
		attribute.Int64("order_id", req.OrderID),
		attribute.String("method", req.Method),
		attribute.Int64("amount_cents", req.AmountCents),
	)

	if err := h.payments.RegisterPayment(ctx, req); err != nil {
		span.RecordError(err)
		c.JSON(httpStatusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment registered"})
}

// HealthCheck verifica a saúde do serviço
func (h *APIHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-api",
	})
}

// httpStatusForError traduz erros de domínio em status HTTP
func httpStatusForError(err error) int {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrProductUnavailable),
		errors.Is(err, ErrInvalidQuantity),
		errors.Is(err, ErrEmptyOrder),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrOrderAlreadyPaid),
		errors.Is(err, ErrOrderCancelled):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
