package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Repository define a interface para o log de eventos de produto.
// O log é append-only: não há update nem delete.
type Repository interface {
	// Append adiciona um evento ao log
	Append(ctx context.Context, record *ProductEventRecord) error

	// GetEventsByEmail lista os eventos de uma partição, do mais recente
	// para o mais antigo
	GetEventsByEmail(ctx context.Context, email string) ([]ProductEventRecord, error)
}

// EventRepository implementa Repository usando PostgreSQL via database/sql
type EventRepository struct {
	db    *sql.DB
	table string
}

// NewEventRepository cria uma nova instância de EventRepository
func NewEventRepository(db *sql.DB, table string) Repository {
	return &EventRepository{
		db:    db,
		table: table,
	}
}

// Append adiciona um evento ao log
func (r *EventRepository) Append(ctx context.Context, record *ProductEventRecord) error {
	_, err := r.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (pk, sk, event_type, product_code, product_id, product_price, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, r.table),
		record.PK, record.SK, record.EventType,
		record.ProductCode, record.ProductID, record.ProductPrice,
		record.RequestID, record.CreatedAt,
	)
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// GetEventsByEmail lista os eventos de uma partição
func (r *EventRepository) GetEventsByEmail(ctx context.Context, email string) ([]ProductEventRecord, error) {
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT pk, sk, event_type, product_code, product_id, product_price, request_id, created_at
		FROM %s WHERE pk = $1
		ORDER BY sk DESC
	`, r.table), email)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	records := make([]ProductEventRecord, 0)
	for rows.Next() {
		var record ProductEventRecord
		if err := rows.Scan(
			&record.PK, &record.SK, &record.EventType,
			&record.ProductCode, &record.ProductID, &record.ProductPrice,
			&record.RequestID, &record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// storeErr classifica o erro do banco. Erros respondidos pelo servidor
// (constraint, valor inválido) são erros da escrita, não do log; só a
// falha de conectividade vira ErrEventStoreUnavailable.
func storeErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrEventStoreUnavailable, err)
}
