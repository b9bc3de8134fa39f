package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProductFetchUseCase define a interface de leitura de produtos
type ProductFetchUseCase interface {
	GetAllProducts(ctx context.Context) ([]Product, error)
	GetProductByID(ctx context.Context, id string) (*Product, error)
}

// ProductsFetchHandler contém os handlers HTTP de leitura de produtos
type ProductsFetchHandler struct {
	useCase ProductFetchUseCase
	tracer  trace.Tracer
}

// NewProductsFetchHandler cria uma nova instância de ProductsFetchHandler
func NewProductsFetchHandler(useCase ProductFetchUseCase, tracer trace.Tracer) *ProductsFetchHandler {
	return &ProductsFetchHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// GetAllProducts trata GET /products
func (h *ProductsFetchHandler) GetAllProducts(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_all_products")
	defer span.End()

	requestID := requestIDFrom(c)
	log.Printf("➡️ [GET PRODUCTS] RequestID: %s", requestID)
	span.SetAttributes(attribute.String("request_id", requestID))

	products, err := h.useCase.GetAllProducts(ctx)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProductByID trata GET /products/:id
func (h *ProductsFetchHandler) GetProductByID(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_product_by_id")
	defer span.End()

	id := c.Param("id")
	requestID := requestIDFrom(c)
	log.Printf("➡️ [GET PRODUCT] ID: %s | RequestID: %s", id, requestID)

	span.SetAttributes(
		attribute.String("product_id", id),
		attribute.String("request_id", requestID),
	)

	product, err := h.useCase.GetProductByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": ErrProductNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// HealthCheck verifica a saúde do serviço
func (h *ProductsFetchHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "products-service",
	})
}
