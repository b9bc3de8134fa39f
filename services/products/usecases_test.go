package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository para testes que não precisam de banco real
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, product *Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockRepository) GetAllProducts(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) UpdateProduct(ctx context.Context, id string, product *Product) (*Product, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) DeleteProduct(ctx context.Context, id string) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

// MockEventDispatcher simula o envio de eventos ao serviço de eventos
type MockEventDispatcher struct {
	mock.Mock
}

func (m *MockEventDispatcher) Send(ctx context.Context, event ProductEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestCreateProductGeneratesUniqueIDs(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("Create", mock.Anything, mock.Anything).Return(nil)
	dispatcher.On("Send", mock.Anything, mock.Anything).Return(nil)

	useCase := NewProductUseCase(repository, dispatcher)
	req := ProductRequest{Code: "COD-1", Name: "Notebook", Price: 10}

	// Act
	first, err1 := useCase.CreateProduct(context.Background(), req, "caller@test.com", "req-1")
	second, err2 := useCase.CreateProduct(context.Background(), req, "caller@test.com", "req-2")

	// Assert
	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	_, err := uuid.Parse(first.ID)
	assert.NoError(t, err)
}

func TestCreateProductDispatchesCreatedEvent(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("Create", mock.Anything, mock.Anything).Return(nil)

	var sent ProductEvent
	dispatcher.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(ProductEvent)
		}).
		Return(nil)

	useCase := NewProductUseCase(repository, dispatcher)
	req := ProductRequest{Code: "COD-1", Name: "Notebook", Price: 42.5}

	// Act
	product, err := useCase.CreateProduct(context.Background(), req, "caller@test.com", "req-123")

	// Assert
	assert.NoError(t, err)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, EventTypeProductCreated, sent.EventType)
	assert.Equal(t, "caller@test.com", sent.Email)
	assert.Equal(t, product.ID, sent.ProductID)
	assert.Equal(t, "COD-1", sent.ProductCode)
	assert.Equal(t, 42.5, sent.ProductPrice)
	assert.Equal(t, "req-123", sent.RequestID)
}

func TestCreateProductEventFailureDoesNotFailCreation(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("Create", mock.Anything, mock.Anything).Return(nil)
	dispatcher.On("Send", mock.Anything, mock.Anything).Return(errors.New("event notifier returned status 503"))

	useCase := NewProductUseCase(repository, dispatcher)
	req := ProductRequest{Code: "COD-1", Name: "Notebook", Price: 10}

	// Act
	product, err := useCase.CreateProduct(context.Background(), req, "caller@test.com", "req-1")

	// Assert: o envio é best-effort, a mutação não falha
	assert.NoError(t, err)
	assert.NotNil(t, product)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
}

func TestUpdateProductNotFound(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("UpdateProduct", mock.Anything, "missing-id", mock.Anything).Return(nil, ErrProductNotFound)

	useCase := NewProductUseCase(repository, dispatcher)
	req := ProductUpdateRequest{Name: "Notebook", Price: 10}

	// Act
	updated, err := useCase.UpdateProduct(context.Background(), "missing-id", req, "caller@test.com", "req-1")

	// Assert
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, ErrProductNotFound)
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUpdateProductDispatchesUpdatedEvent(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	updated := &Product{ID: "id-1", Code: "COD-1", Name: "Notebook", Price: 99}
	repository.On("UpdateProduct", mock.Anything, "id-1", mock.Anything).Return(updated, nil)

	var sent ProductEvent
	dispatcher.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(ProductEvent)
		}).
		Return(nil)

	useCase := NewProductUseCase(repository, dispatcher)
	req := ProductUpdateRequest{Name: "Notebook", Price: 99}

	// Act
	_, err := useCase.UpdateProduct(context.Background(), "id-1", req, "caller@test.com", "req-9")

	// Assert
	assert.NoError(t, err)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, EventTypeProductUpdated, sent.EventType)
	assert.Equal(t, "id-1", sent.ProductID)
}

func TestDeleteProductNotFound(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("DeleteProduct", mock.Anything, "missing-id").Return(nil, ErrProductNotFound)

	useCase := NewProductUseCase(repository, dispatcher)

	// Act: deletar um id já deletado falha, não é um no-op
	deleted, err := useCase.DeleteProduct(context.Background(), "missing-id", "caller@test.com", "req-1")

	// Assert
	assert.Nil(t, deleted)
	assert.ErrorIs(t, err, ErrProductNotFound)
	dispatcher.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDeleteProductDispatchesDeletedEvent(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	deleted := &Product{ID: "id-1", Code: "COD-1", Name: "Notebook", Price: 10}
	repository.On("DeleteProduct", mock.Anything, "id-1").Return(deleted, nil)

	var sent ProductEvent
	dispatcher.On("Send", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(ProductEvent)
		}).
		Return(nil)

	useCase := NewProductUseCase(repository, dispatcher)

	// Act
	result, err := useCase.DeleteProduct(context.Background(), "id-1", "caller@test.com", "req-7")

	// Assert: retorna o estado anterior e dispara exatamente um evento
	assert.NoError(t, err)
	assert.Equal(t, deleted, result)
	dispatcher.AssertNumberOfCalls(t, "Send", 1)
	assert.Equal(t, EventTypeProductDeleted, sent.EventType)
}

func TestGetProductByIDNotFound(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	dispatcher := new(MockEventDispatcher)
	repository.On("GetProductByID", mock.Anything, "missing-id").Return(nil, ErrProductNotFound)

	useCase := NewProductUseCase(repository, dispatcher)

	// Act
	product, err := useCase.GetProductByID(context.Background(), "missing-id")

	// Assert
	assert.Nil(t, product)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
