package main

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Tipos de evento de mudança de produto
const (
	EventTypeProductCreated = "PRODUCT_CREATED"
	EventTypeProductUpdated = "PRODUCT_UPDATED"
	EventTypeProductDeleted = "PRODUCT_DELETED"
)

// ProductEvent representa um evento de mudança de produto enviado ao
// serviço de eventos após cada mutação bem-sucedida
type ProductEvent struct {
	EventType    string  `json:"eventType"`
	Email        string  `json:"email"`
	ProductCode  string  `json:"productCode"`
	ProductID    string  `json:"productId"`
	ProductPrice float64 `json:"productPrice"`
	RequestID    string  `json:"requestId"`
}

// EventDispatcher abstrai o envio de eventos de produto
type EventDispatcher interface {
	Send(ctx context.Context, event ProductEvent) error
}

// RestyEventDispatcher implementa EventDispatcher via HTTP síncrono,
// com timeout limitado para não segurar a resposta primária
type RestyEventDispatcher struct {
	client *resty.Client
	url    string
}

// NewRestyEventDispatcher cria uma nova instância de RestyEventDispatcher
func NewRestyEventDispatcher(baseURL string) *RestyEventDispatcher {
	client := resty.New().SetTimeout(2 * time.Second)
	return &RestyEventDispatcher{
		client: client,
		url:    baseURL + "/events",
	}
}

// Send envia o evento para o serviço de eventos
func (d *RestyEventDispatcher) Send(ctx context.Context, event ProductEvent) error {
	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(d.url)
	if err != nil {
		return fmt.Errorf("failed to send product event: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("event notifier returned status %d", resp.StatusCode())
	}
	return nil
}
