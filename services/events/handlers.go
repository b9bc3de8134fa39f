package main

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventUseCaseInterface define a interface para o use case
type EventUseCaseInterface interface {
	Record(ctx context.Context, event ProductEvent) (*ProductEventRecord, error)
	GetEventsByEmail(ctx context.Context, email string) ([]ProductEventRecord, error)
}

// EventHandler contém os handlers HTTP do notificador de eventos
type EventHandler struct {
	useCase EventUseCaseInterface
	tracer  trace.Tracer
}

// NewEventHandler cria uma nova instância de EventHandler
func NewEventHandler(useCase EventUseCaseInterface, tracer trace.Tracer) *EventHandler {
	return &EventHandler{
		useCase: useCase,
		tracer:  tracer,
	}
}

// RecordEvent trata POST /events
func (h *EventHandler) RecordEvent(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "record_event")
	defer span.End()

	var event ProductEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	log.Printf("➡️ [RECORD EVENT] Type: %s | ProductID: %s | RequestID: %s",
		event.EventType, event.ProductID, event.RequestID)

	span.SetAttributes(
		attribute.String("event_type", event.EventType),
		attribute.String("product_id", event.ProductID),
		attribute.String("request_id", event.RequestID),
	)

	record, err := h.useCase.Record(ctx, event)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrEventStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": ErrEventStoreUnavailable.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record event"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

// GetEvents trata GET /events?email=
func (h *EventHandler) GetEvents(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "get_events")
	defer span.End()

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Bad request"})
		return
	}

	span.SetAttributes(attribute.String("email", email))

	records, err := h.useCase.GetEventsByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrEventStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": ErrEventStoreUnavailable.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// HealthCheck verifica a saúde do serviço
func (h *EventHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "events-service",
	})
}
