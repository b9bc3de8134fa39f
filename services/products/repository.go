package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de produtos
type Repository interface {
	// Create persiste um novo produto
	Create(ctx context.Context, product *Product) error

	// GetAllProducts lista todos os produtos do catálogo
	GetAllProducts(ctx context.Context) ([]Product, error)

	// GetProductByID busca um produto pelo ID
	GetProductByID(ctx context.Context, id string) (*Product, error)

	// UpdateProduct substitui os campos mutáveis de um produto existente
	UpdateProduct(ctx context.Context, id string, product *Product) (*Product, error)

	// DeleteProduct remove um produto e retorna o estado anterior
	DeleteProduct(ctx context.Context, id string) (*Product, error)
}

// ProductRepository implementa Repository usando PostgreSQL
type ProductRepository struct {
	db    *pgxpool.Pool
	table string
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *pgxpool.Pool, table string) Repository {
	return &ProductRepository{
		db:    db,
		table: table,
	}
}

// Create persiste um novo produto
func (r *ProductRepository) Create(ctx context.Context, product *Product) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, code, name, model, price)
		VALUES ($1, $2, $3, $4, $5)
	`, r.table), product.ID, product.Code, product.Name, product.Model, product.Price)
	if isUniqueViolation(err) {
		return ErrProductCodeInUse
	}
	return err
}

// GetAllProducts lista todos os produtos do catálogo
func (r *ProductRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT id, code, name, model, price FROM %s
	`, r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.ID, &product.Code, &product.Name, &product.Model, &product.Price); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// GetProductByID busca um produto pelo ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*Product, error) {
	var product Product
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT id, code, name, model, price FROM %s WHERE id = $1
	`, r.table), id).Scan(&product.ID, &product.Code, &product.Name, &product.Model, &product.Price)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct substitui os campos mutáveis de um produto existente.
// O id e o code são preservados.
func (r *ProductRepository) UpdateProduct(ctx context.Context, id string, product *Product) (*Product, error) {
	var updated Product
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		UPDATE %s
		SET name = $1, model = $2, price = $3
		WHERE id = $4
		RETURNING id, code, name, model, price
	`, r.table), product.Name, product.Model, product.Price, id).
		Scan(&updated.ID, &updated.Code, &updated.Name, &updated.Model, &updated.Price)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct remove um produto e retorna o estado anterior
func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) (*Product, error) {
	var deleted Product
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM %s WHERE id = $1
		RETURNING id, code, name, model, price
	`, r.table), id).
		Scan(&deleted.ID, &deleted.Code, &deleted.Name, &deleted.Model, &deleted.Price)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
