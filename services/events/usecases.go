package main

import (
	"context"
	"log"
	"time"
)

// EventUseCase contém a lógica de registro de eventos de produto
type EventUseCase struct {
	repository Repository
}

// NewEventUseCase cria uma nova instância de EventUseCase
func NewEventUseCase(repository Repository) *EventUseCase {
	return &EventUseCase{
		repository: repository,
	}
}

// Record registra um evento de produto no log
func (uc *EventUseCase) Record(ctx context.Context, event ProductEvent) (*ProductEventRecord, error) {
	record := NewProductEventRecord(event, time.Now())

	if err := uc.repository.Append(ctx, record); err != nil {
		log.Printf("❌ Failed to record %s event | ProductID: %s | RequestID: %s | Error: %v",
			event.EventType, event.ProductID, event.RequestID, err)
		return nil, err
	}

	log.Printf("✅ Event recorded: %s | ProductID: %s | RequestID: %s",
		record.EventType, record.ProductID, record.RequestID)
	return record, nil
}

// GetEventsByEmail lista os eventos registrados para um email
func (uc *EventUseCase) GetEventsByEmail(ctx context.Context, email string) ([]ProductEventRecord, error) {
	return uc.repository.GetEventsByEmail(ctx, email)
}
