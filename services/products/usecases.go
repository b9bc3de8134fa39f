package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
)

// ProductUseCase contém a lógica de negócio dos produtos
type ProductUseCase struct {
	repository Repository
	dispatcher EventDispatcher
}

// NewProductUseCase cria uma nova instância de ProductUseCase
func NewProductUseCase(repository Repository, dispatcher EventDispatcher) *ProductUseCase {
	return &ProductUseCase{
		repository: repository,
		dispatcher: dispatcher,
	}
}

// GetAllProducts lista todos os produtos do catálogo
func (uc *ProductUseCase) GetAllProducts(ctx context.Context) ([]Product, error) {
	return uc.repository.GetAllProducts(ctx)
}

// GetProductByID busca um produto pelo ID
func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*Product, error) {
	return uc.repository.GetProductByID(ctx, id)
}

// CreateProduct gera o ID, persiste o produto e dispara o evento PRODUCT_CREATED
func (uc *ProductUseCase) CreateProduct(ctx context.Context, req ProductRequest, email, requestID string) (*Product, error) {
	product := NewProduct(uuid.New().String(), req.Code, req.Name, req.Model, req.Price)

	if err := uc.repository.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Printf("✅ Product created: %s | RequestID: %s", product.ID, requestID)
	uc.dispatchEvent(ctx, EventTypeProductCreated, product, email, requestID)
	return product, nil
}

// UpdateProduct substitui os campos mutáveis e dispara o evento PRODUCT_UPDATED
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id string, req ProductUpdateRequest, email, requestID string) (*Product, error) {
	product := &Product{Name: req.Name, Model: req.Model, Price: req.Price}

	updated, err := uc.repository.UpdateProduct(ctx, id, product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("✅ Product updated: %s | RequestID: %s", updated.ID, requestID)
	uc.dispatchEvent(ctx, EventTypeProductUpdated, updated, email, requestID)
	return updated, nil
}

// DeleteProduct remove o produto e dispara o evento PRODUCT_DELETED
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id string, email, requestID string) (*Product, error) {
	deleted, err := uc.repository.DeleteProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	log.Printf("✅ Product deleted: %s | RequestID: %s", deleted.ID, requestID)
	uc.dispatchEvent(ctx, EventTypeProductDeleted, deleted, email, requestID)
	return deleted, nil
}

// dispatchEvent envia o evento de mudança ao serviço de eventos.
// O envio é síncrono e best-effort: falha no envio não falha a mutação.
func (uc *ProductUseCase) dispatchEvent(ctx context.Context, eventType string, product *Product, email, requestID string) {
	event := ProductEvent{
		EventType:    eventType,
		Email:        email,
		ProductCode:  product.Code,
		ProductID:    product.ID,
		ProductPrice: product.Price,
		RequestID:    requestID,
	}

	if err := uc.dispatcher.Send(ctx, event); err != nil {
		log.Printf("⚠️ Failed to dispatch %s event | ProductID: %s | RequestID: %s | Error: %v",
			eventType, product.ID, requestID, err)
		return
	}

	log.Printf("📣 Event %s dispatched | ProductID: %s | RequestID: %s", eventType, product.ID, requestID)
}
