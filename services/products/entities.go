package main

import (
	"errors"
)

// Product representa um produto do catálogo
type Product struct {
	ID    string  `json:"id" db:"id"`
	Code  string  `json:"code" db:"code"`
	Name  string  `json:"name" db:"name"`
	Model string  `json:"model" db:"model"`
	Price float64 `json:"price" db:"price"`
}

// ProductRequest representa o corpo da requisição de criação
type ProductRequest struct {
	Code  string  `json:"code" binding:"required"`
	Name  string  `json:"name" binding:"required"`
	Model string  `json:"model"`
	Price float64 `json:"price" binding:"gte=0"`
}

// ProductUpdateRequest representa o corpo da requisição de atualização.
// Não carrega o code: ele é imutável e preservado pelo update.
type ProductUpdateRequest struct {
	Name  string  `json:"name" binding:"required"`
	Model string  `json:"model"`
	Price float64 `json:"price" binding:"gte=0"`
}

// NewProduct cria uma nova instância de Product
func NewProduct(id, code, name, model string, price float64) *Product {
	return &Product{
		ID:    id,
		Code:  code,
		Name:  name,
		Model: model,
		Price: price,
	}
}

var (
	// ErrProductNotFound indica que o produto não existe no catálogo.
	// A mensagem é exposta no corpo das respostas 404.
	ErrProductNotFound = errors.New("Product not found")

	// ErrProductCodeInUse indica violação da unicidade do código do produto
	ErrProductCodeInUse = errors.New("product code already in use")
)
