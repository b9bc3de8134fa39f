package main

import (
	"errors"
	"fmt"
	"time"
)

// ProductEvent representa o evento de mudança de produto recebido do
// serviço de produtos
type ProductEvent struct {
	EventType    string  `json:"eventType" binding:"required,oneof=PRODUCT_CREATED PRODUCT_UPDATED PRODUCT_DELETED"`
	Email        string  `json:"email" binding:"required"`
	ProductCode  string  `json:"productCode" binding:"required"`
	ProductID    string  `json:"productId" binding:"required"`
	ProductPrice float64 `json:"productPrice"`
	RequestID    string  `json:"requestId" binding:"required"`
}

// ProductEventRecord representa um evento persistido no log append-only.
// A partição é o email do ator e o sort key deriva do timestamp, o que
// permite recuperação por email e por tempo.
type ProductEventRecord struct {
	PK           string    `json:"pk" db:"pk"`
	SK           string    `json:"sk" db:"sk"`
	EventType    string    `json:"eventType" db:"event_type"`
	ProductCode  string    `json:"productCode" db:"product_code"`
	ProductID    string    `json:"productId" db:"product_id"`
	ProductPrice float64   `json:"productPrice" db:"product_price"`
	RequestID    string    `json:"requestId" db:"request_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// skTimeFormat é um RFC3339 com fração de largura fixa. RFC3339Nano
// corta zeros à direita, o que quebra a ordenação lexicográfica do sk.
const skTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// NewProductEventRecord cria o registro persistível de um evento,
// chaveado por (pk=email, sk=timestamp#requestId)
func NewProductEventRecord(event ProductEvent, now time.Time) *ProductEventRecord {
	now = now.UTC()
	return &ProductEventRecord{
		PK:           event.Email,
		SK:           fmt.Sprintf("%s#%s", now.Format(skTimeFormat), event.RequestID),
		EventType:    event.EventType,
		ProductCode:  event.ProductCode,
		ProductID:    event.ProductID,
		ProductPrice: event.ProductPrice,
		RequestID:    event.RequestID,
		CreatedAt:    now,
	}
}

// ErrEventStoreUnavailable indica que o log de eventos está inacessível
var ErrEventStoreUnavailable = errors.New("event store unavailable")
