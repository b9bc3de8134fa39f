package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// OrderUseCaseInterface define a interface para o use case
type OrderUseCaseInterface interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	GetAllOrders(ctx context.Context) ([]Order, error)
	GetOrdersByEmail(ctx context.Context, email string) ([]Order, error)
	GetOrder(ctx context.Context, email, orderID string) (*Order, error)
	DeleteOrder(ctx context.Context, email, orderID string) (*Order, error)
}

// OrderHandler contém os handlers HTTP
type OrderHandler struct {
	useCase OrderUseCaseInterface
	tracer  trace.Tracer
}

// NewOrderHandler cria uma nova instância de OrderHandler
func NewOrderHandler(useCase OrderUseCaseInterface, tracer trace.Tracer) *OrderHandler {
	return &OrderHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// GetOrders trata GET /orders, despachando pelos query parameters:
// nenhum parâmetro lista tudo, email lista a partição, email+orderId busca um
func (h *OrderHandler) GetOrders(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_orders")
	defer span.End()

	email := c.Query("email")
	orderID := c.Query("orderId")
	requestID := requestIDFrom(c)
	log.Printf("➡️ [GET ORDERS] Email: %q | OrderID: %q | RequestID: %s", email, orderID, requestID)

	span.SetAttributes(
		attribute.String("email", email),
		attribute.String("order_id", orderID),
		attribute.String("request_id", requestID),
	)

	switch {
	case email != "" && orderID != "":
		order, err := h.useCase.GetOrder(ctx, email, orderID)
		if err != nil {
			span.RecordError(err)
			if errors.Is(err, ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": ErrOrderNotFound.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get order"})
			return
		}
		c.JSON(http.StatusOK, order)

	case email != "":
		orders, err := h.useCase.GetOrdersByEmail(ctx, email)
		if err != nil {
			span.RecordError(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list orders"})
			return
		}
		c.JSON(http.StatusOK, orders)

	case orderID != "":
		// orderId sem email não é roteável
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request"})

	default:
		orders, err := h.useCase.GetAllOrders(ctx)
		if err != nil {
			span.RecordError(err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// CreateOrder trata POST /orders
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_order")
	defer span.End()

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	requestID := requestIDFrom(c)
	log.Printf("➡️ [CREATE ORDER] Email: %s | Products: %d | RequestID: %s",
		req.Email, len(req.ProductCodes), requestID)

	span.SetAttributes(
		attribute.String("email", req.Email),
		attribute.Int("product_count", len(req.ProductCodes)),
		attribute.String("request_id", requestID),
	)

	order, err := h.useCase.CreateOrder(ctx, req)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrInvalidProductCode) {
			c.JSON(http.StatusBadRequest, gin.H{"message": ErrInvalidProductCode.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// DeleteOrder trata DELETE /orders. Exige email e orderId como query
// parameters; a ausência de qualquer um é erro do cliente.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_order")
	defer span.End()

	email := c.Query("email")
	orderID := c.Query("orderId")
	if email == "" || orderID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request"})
		return
	}

	requestID := requestIDFrom(c)
	log.Printf("➡️ [DELETE ORDER] Email: %s | OrderID: %s | RequestID: %s", email, orderID, requestID)

	span.SetAttributes(
		attribute.String("email", email),
		attribute.String("order_id", orderID),
		attribute.String("request_id", requestID),
	)

	order, err := h.useCase.DeleteOrder(ctx, email, orderID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": ErrOrderNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// HealthCheck verifica a saúde do serviço
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "orders-service",
	})
}

// requestIDFrom retorna o id de correlação propagado pelo gateway,
// ou gera um novo quando ausente
func requestIDFrom(c *gin.Context) string {
	if id := c.GetHeader("X-Request-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}
