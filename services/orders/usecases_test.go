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

func (m *MockRepository) Create(ctx context.Context, order *Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockRepository) GetAllOrders(ctx context.Context) ([]Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) GetOrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Order), args.Error(1)
}

func (m *MockRepository) GetOrder(ctx context.Context, email, orderID string) (*Order, error) {
	args := m.Called(ctx, email, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) DeleteOrder(ctx context.Context, email, orderID string) (*Order, error) {
	args := m.Called(ctx, email, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

// MockProductFinder simula a consulta de produtos por código
type MockProductFinder struct {
	mock.Mock
}

func (m *MockProductFinder) GetProductsByCodes(ctx context.Context, codes []string) ([]Product, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func validOrderRequest(codes ...string) OrderRequest {
	return OrderRequest{
		Email:        "customer@test.com",
		Payment:      "CREDIT_CARD",
		Shipping:     OrderRequestShipping{Type: "ECONOMIC", Carrier: "CORREIOS"},
		ProductCodes: codes,
	}
}

func TestCreateOrderComputesTotal(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	finder := new(MockProductFinder)
	finder.On("GetProductsByCodes", mock.Anything, []string{"A", "B"}).Return([]Product{
		{ID: "id-a", Code: "A", Price: 10},
		{ID: "id-b", Code: "B", Price: 15},
	}, nil)
	repository.On("Create", mock.Anything, mock.Anything).Return(nil)

	useCase := NewOrderUseCase(repository, finder)

	// Act
	order, err := useCase.CreateOrder(context.Background(), validOrderRequest("A", "B"))

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, 25.0, order.Billing.TotalPrice)
	assert.Equal(t, "customer@test.com", order.PK)
	assert.NotEmpty(t, order.SK)
	repository.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateOrderMissingProductCode(t *testing.T) {
	// Arrange: o código B não existe no catálogo
	repository := new(MockRepository)
	finder := new(MockProductFinder)
	finder.On("GetProductsByCodes", mock.Anything, []string{"A", "B"}).Return([]Product{
		{ID: "id-a", Code: "A", Price: 10},
	}, nil)

	useCase := NewOrderUseCase(repository, finder)

	// Act
	order, err := useCase.CreateOrder(context.Background(), validOrderRequest("A", "B"))

	// Assert: a criação falha por inteiro, nada é persistido
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrInvalidProductCode)
	repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderRepeatedProductCode(t *testing.T) {
	// Arrange: o mesmo código aparece duas vezes na requisição
	repository := new(MockRepository)
	finder := new(MockProductFinder)
	finder.On("GetProductsByCodes", mock.Anything, []string{"A", "A"}).Return([]Product{
		{ID: "id-a", Code: "A", Price: 10},
	}, nil)
	repository.On("Create", mock.Anything, mock.Anything).Return(nil)

	useCase := NewOrderUseCase(repository, finder)

	// Act
	order, err := useCase.CreateOrder(context.Background(), validOrderRequest("A", "A"))

	// Assert: cada ocorrência vira um item do snapshot
	assert.NoError(t, err)
	assert.Len(t, order.Products, 2)
	assert.Equal(t, 20.0, order.Billing.TotalPrice)
}

func TestDeleteOrderNotFound(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	finder := new(MockProductFinder)
	repository.On("DeleteOrder", mock.Anything, "a@b.com", "999").Return(nil, ErrOrderNotFound)

	useCase := NewOrderUseCase(repository, finder)

	// Act
	order, err := useCase.DeleteOrder(context.Background(), "a@b.com", "999")

	// Assert
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestGetOrderNotFound(t *testing.T) {
	// Arrange
	repository := new(MockRepository)
	finder := new(MockProductFinder)
	repository.On("GetOrder", mock.Anything, "a@b.com", "999").Return(nil, ErrOrderNotFound)

	useCase := NewOrderUseCase(repository, finder)

	// Act
	order, err := useCase.GetOrder(context.Background(), "a@b.com", "999")

	// Assert
	assert.Nil(t, order)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
