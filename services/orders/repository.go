package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository define a interface para operações de banco de dados de pedidos
type Repository interface {
	// Create persiste um novo pedido, chaveado por (pk=email, sk=orderId)
	Create(ctx context.Context, order *Order) error

	// GetAllOrders lista todos os pedidos de todos os clientes
	GetAllOrders(ctx context.Context) ([]Order, error)

	// GetOrdersByEmail lista todos os pedidos de um cliente
	GetOrdersByEmail(ctx context.Context, email string) ([]Order, error)

	// GetOrder busca um pedido pela chave (email, orderId)
	GetOrder(ctx context.Context, email, orderID string) (*Order, error)

	// DeleteOrder remove um pedido e retorna o estado anterior
	DeleteOrder(ctx context.Context, email, orderID string) (*Order, error)
}

// OrderRepository implementa Repository usando PostgreSQL
type OrderRepository struct {
	db    *pgxpool.Pool
	table string
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *pgxpool.Pool, table string) Repository {
	return &OrderRepository{
		db:    db,
		table: table,
	}
}

// Create persiste um novo pedido
func (r *OrderRepository) Create(ctx context.Context, order *Order) error {
	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (pk, sk, created_at, payment, total_price, shipping_type, shipping_carrier, products)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.table),
		order.PK, order.SK, order.CreatedAt,
		order.Billing.Payment, order.Billing.TotalPrice,
		order.Shipping.Type, order.Shipping.Carrier,
		order.Products,
	)
	return err
}

// GetAllOrders lista todos os pedidos de todos os clientes
func (r *OrderRepository) GetAllOrders(ctx context.Context) ([]Order, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT pk, sk, created_at, payment, total_price, shipping_type, shipping_carrier, products
		FROM %s
	`, r.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrdersByEmail lista todos os pedidos de um cliente
func (r *OrderRepository) GetOrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT pk, sk, created_at, payment, total_price, shipping_type, shipping_carrier, products
		FROM %s WHERE pk = $1
	`, r.table), email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// GetOrder busca um pedido pela chave (email, orderId)
func (r *OrderRepository) GetOrder(ctx context.Context, email, orderID string) (*Order, error) {
	var order Order
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT pk, sk, created_at, payment, total_price, shipping_type, shipping_carrier, products
		FROM %s WHERE pk = $1 AND sk = $2
	`, r.table), email, orderID).Scan(
		&order.PK, &order.SK, &order.CreatedAt,
		&order.Billing.Payment, &order.Billing.TotalPrice,
		&order.Shipping.Type, &order.Shipping.Carrier,
		&order.Products,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder remove um pedido e retorna o estado anterior
func (r *OrderRepository) DeleteOrder(ctx context.Context, email, orderID string) (*Order, error) {
	var order Order
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		DELETE FROM %s WHERE pk = $1 AND sk = $2
		RETURNING pk, sk, created_at, payment, total_price, shipping_type, shipping_carrier, products
	`, r.table), email, orderID).Scan(
		&order.PK, &order.SK, &order.CreatedAt,
		&order.Billing.Payment, &order.Billing.TotalPrice,
		&order.Shipping.Type, &order.Shipping.Carrier,
		&order.Products,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func scanOrders(rows pgx.Rows) ([]Order, error) {
	orders := make([]Order, 0)
	for rows.Next() {
		var order Order
		if err := rows.Scan(
			&order.PK, &order.SK, &order.CreatedAt,
			&order.Billing.Payment, &order.Billing.TotalPrice,
			&order.Shipping.Type, &order.Shipping.Carrier,
			&order.Products,
		); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
