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

// ProductAdminUseCase define a interface para as mutações de produto
type ProductAdminUseCase interface {
	CreateProduct(ctx context.Context, req ProductRequest, email, requestID string) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductUpdateRequest, email, requestID string) (*Product, error)
	DeleteProduct(ctx context.Context, id string, email, requestID string) (*Product, error)
}

// ProductsAdminHandler contém os handlers HTTP de mutação de produtos
type ProductsAdminHandler struct {
	useCase ProductAdminUseCase
	tracer  trace.Tracer
}

// NewProductsAdminHandler cria uma nova instância de ProductsAdminHandler
func NewProductsAdminHandler(useCase ProductAdminUseCase, tracer trace.Tracer) *ProductsAdminHandler {
	return &ProductsAdminHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// CreateProduct trata POST /products
func (h *ProductsAdminHandler) CreateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "create_product")
	defer span.End()

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	requestID := requestIDFrom(c)
	log.Printf("➡️ [CREATE PRODUCT] Code: %s | RequestID: %s", req.Code, requestID)

	span.SetAttributes(
		attribute.String("product_code", req.Code),
		attribute.String("request_id", requestID),
	)

	product, err := h.useCase.CreateProduct(ctx, req, callerEmail(c), requestID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductCodeInUse) {
			c.JSON(http.StatusConflict, gin.H{"message": ErrProductCodeInUse.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct trata PUT /products/:id
func (h *ProductsAdminHandler) UpdateProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "update_product")
	defer span.End()

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id := c.Param("id")
	requestID := requestIDFrom(c)
	log.Printf("➡️ [UPDATE PRODUCT] ID: %s | RequestID: %s", id, requestID)

	span.SetAttributes(
		attribute.String("product_id", id),
		attribute.String("request_id", requestID),
	)

	product, err := h.useCase.UpdateProduct(ctx, id, req, callerEmail(c), requestID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": ErrProductNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct trata DELETE /products/:id
func (h *ProductsAdminHandler) DeleteProduct(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "delete_product")
	defer span.End()

	id := c.Param("id")
	requestID := requestIDFrom(c)
	log.Printf("➡️ [DELETE PRODUCT] ID: %s | RequestID: %s", id, requestID)

	span.SetAttributes(
		attribute.String("product_id", id),
		attribute.String("request_id", requestID),
	)

	product, err := h.useCase.DeleteProduct(ctx, id, callerEmail(c), requestID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": ErrProductNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// requestIDFrom retorna o id de correlação propagado pelo gateway,
// ou gera um novo quando ausente
func requestIDFrom(c *gin.Context) string {
	if id := c.GetHeader("X-Request-Id"); id != "" {
		return id
	}
	return uuid.New().String()
}

// callerEmail retorna a identidade do chamador propagada pelo gateway
func callerEmail(c *gin.Context) string {
	if email := c.GetHeader("X-User-Email"); email != "" {
		return email
	}
	return "anonymous"
}
