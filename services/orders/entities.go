package main

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Order representa o agregado de pedido, montado a partir da requisição
// e do snapshot dos produtos no momento da criação
type Order struct {
	PK        string         `json:"pk" db:"pk"`
	SK        string         `json:"sk" db:"sk"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	Billing   OrderBilling   `json:"billing"`
	Shipping  OrderShipping  `json:"shipping"`
	Products  []OrderProduct `json:"products"`
}

// OrderBilling representa a cobrança do pedido.
// TotalPrice é calculado na criação e nunca recomputado.
type OrderBilling struct {
	Payment    string  `json:"payment"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderShipping representa a entrega do pedido
type OrderShipping struct {
	Type    string `json:"type"`
	Carrier string `json:"carrier"`
}

// OrderProduct representa o snapshot de um item do pedido.
// O preço é copiado do produto no momento da criação.
type OrderProduct struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

// OrderRequest representa a requisição de criação de pedido
type OrderRequest struct {
	Email        string               `json:"email" binding:"required,email"`
	Payment      string               `json:"payment" binding:"required,oneof=CASH DEBIT_CARD CREDIT_CARD"`
	Shipping     OrderRequestShipping `json:"shipping" binding:"required"`
	ProductCodes []string             `json:"productCodes" binding:"required,min=1"`
}

// OrderRequestShipping representa a entrega na requisição de criação
type OrderRequestShipping struct {
	Type    string `json:"type" binding:"required,oneof=ECONOMIC URGENT"`
	Carrier string `json:"carrier" binding:"required,oneof=CORREIOS FEDEX"`
}

// Product representa a visão mínima de um produto usada na montagem do pedido
type Product struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

// buildOrder monta o agregado de pedido: gera o sk, tira o snapshot
// {code, price} de cada produto e soma o preço total
func buildOrder(req OrderRequest, products []Product) *Order {
	items := make([]OrderProduct, 0, len(products))
	var totalPrice float64

	for _, product := range products {
		totalPrice += product.Price
		items = append(items, OrderProduct{
			Code:  product.Code,
			Price: product.Price,
		})
	}

	return &Order{
		PK:        req.Email,
		SK:        uuid.New().String(),
		CreatedAt: time.Now(),
		Billing: OrderBilling{
			Payment:    req.Payment,
			TotalPrice: totalPrice,
		},
		Shipping: OrderShipping{
			Type:    req.Shipping.Type,
			Carrier: req.Shipping.Carrier,
		},
		Products: items,
	}
}

var (
	// ErrOrderNotFound indica que o pedido não existe para a chave (email, orderId)
	ErrOrderNotFound = errors.New("Order not found")

	// ErrInvalidProductCode indica que algum código de produto da requisição
	// não existe no catálogo. A criação do pedido falha por inteiro.
	ErrInvalidProductCode = errors.New("one or more product codes were not found")
)
