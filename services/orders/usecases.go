package main

import (
	"context"
	"fmt"
	"log"
)

// OrderUseCase contém a lógica de negócio dos pedidos
type OrderUseCase struct {
	repository Repository
	products   ProductFinder
}

// NewOrderUseCase cria uma nova instância de OrderUseCase
func NewOrderUseCase(repository Repository, products ProductFinder) *OrderUseCase {
	return &OrderUseCase{
		repository: repository,
		products:   products,
	}
}

// CreateOrder resolve os códigos de produto, monta o agregado e persiste.
// Qualquer código inexistente falha a criação por inteiro.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	found, err := uc.products.GetProductsByCodes(ctx, req.ProductCodes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve products: %w", err)
	}

	byCode := make(map[string]Product, len(found))
	for _, product := range found {
		byCode[product.Code] = product
	}

	// Resolve na ordem da requisição, permitindo códigos repetidos
	resolved := make([]Product, 0, len(req.ProductCodes))
	for _, code := range req.ProductCodes {
		product, ok := byCode[code]
		if !ok {
			log.Printf("❌ [CREATE ORDER] Product code not found: %s", code)
			return nil, ErrInvalidProductCode
		}
		resolved = append(resolved, product)
	}

	order := buildOrder(req, resolved)

	if err := uc.repository.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Printf("✅ Order created: %s | Email: %s | Total: %.2f", order.SK, order.PK, order.Billing.TotalPrice)
	return order, nil
}

// GetAllOrders lista todos os pedidos de todos os clientes
func (uc *OrderUseCase) GetAllOrders(ctx context.Context) ([]Order, error) {
	return uc.repository.GetAllOrders(ctx)
}

// GetOrdersByEmail lista todos os pedidos de um cliente
func (uc *OrderUseCase) GetOrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	return uc.repository.GetOrdersByEmail(ctx, email)
}

// GetOrder busca um pedido pela chave (email, orderId)
func (uc *OrderUseCase) GetOrder(ctx context.Context, email, orderID string) (*Order, error) {
	return uc.repository.GetOrder(ctx, email, orderID)
}

// DeleteOrder remove um pedido e retorna o estado anterior
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, email, orderID string) (*Order, error) {
	order, err := uc.repository.DeleteOrder(ctx, email, orderID)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Order deleted: %s | Email: %s", order.SK, order.PK)
	return order, nil
}
