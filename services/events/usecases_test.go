package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository para testes que não precisam de banco real
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Append(ctx context.Context, record *ProductEventRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRepository) GetEventsByEmail(ctx context.Context, email string) ([]ProductEventRecord, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ProductEventRecord), args.Error(1)
}

func TestRecordBuildsPartitionedRecord(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	var appended *ProductEventRecord
	repository.On("Append", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(*ProductEventRecord)
		}).
		Return(nil)

	useCase := NewEventUseCase(repository)
	event := ProductEvent{
		EventType:    "PRODUCT_DELETED",
		Email:        "caller@test.com",
		ProductCode:  "COD-1",
		ProductID:    "id-1",
		ProductPrice: 10,
		RequestID:    "req-1",
	}

	// Act
	record, err := useCase.Record(context.Background(), event)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, appended, record)
	assert.Equal(t, "caller@test.com", record.PK)
	assert.NotEmpty(t, record.SK)
	assert.Equal(t, "PRODUCT_DELETED", record.EventType)
	repository.AssertNumberOfCalls(t, "Append", 1)
}

func TestRecordPropagatesUnavailable(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	repository.On("Append", mock.Anything, mock.Anything).Return(ErrEventStoreUnavailable)

	useCase := NewEventUseCase(repository)

	// Act
	record, err := useCase.Record(context.Background(), ProductEvent{Email: "a@b.com", RequestID: "req-1"})

	// Assert: a decisão de tratar como fatal é do chamador
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrEventStoreUnavailable)
}
