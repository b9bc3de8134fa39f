package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductFinder abstrai a consulta de produtos para a montagem de pedidos
type ProductFinder interface {
	// GetProductsByCodes busca os produtos cujo code está na lista.
	// Códigos inexistentes simplesmente não aparecem no resultado.
	GetProductsByCodes(ctx context.Context, codes []string) ([]Product, error)
}

// ProductTableFinder implementa ProductFinder lendo a tabela de produtos
type ProductTableFinder struct {
	db    *pgxpool.Pool
	table string
}

// NewProductTableFinder cria uma nova instância de ProductTableFinder
func NewProductTableFinder(db *pgxpool.Pool, table string) ProductFinder {
	return &ProductTableFinder{
		db:    db,
		table: table,
	}
}

// GetProductsByCodes busca os produtos cujo code está na lista
func (f *ProductTableFinder) GetProductsByCodes(ctx context.Context, codes []string) ([]Product, error) {
	rows, err := f.db.Query(ctx, fmt.Sprintf(`
		SELECT id, code, price FROM %s WHERE code = ANY($1)
	`, f.table), codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0, len(codes))
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Code, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
