package commands_test

import (
	"context"
	"errors"
	"testing"

	"robodelivery/internal/core/application/usecases/commands"
	"robodelivery/internal/core/domain/model/kernel"
	"robodelivery/internal/core/domain/model/product"
	"robodelivery/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogProductRepository struct{ mock.Mock }

func (m *MockCatalogProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockCatalogProductRepository) Get(_ context.Context, _ kernel.UUID) (*product.Product, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCatalogUoW struct{ mock.Mock }

func (m *MockCatalogUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCatalogUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCatalogUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Grain 25kg", 20, 30)
	require.NoError(t, err)

	productRepo := new(MockCatalogProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := productRepo.Calls[0].Arguments.Get(1).(*product.Product)
	assert.Equal(t, cmd.ProductID(), added.ID())
	assert.Equal(t, "Grain 25kg", added.Name())
	assert.Equal(t, 20, added.Price())
	assert.Equal(t, 30, added.Weight())

	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateProductCommand{} // not constructed properly
	factory := new(MockCatalogUoWFactory)
	h := commands.NewCreateProductCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateProductCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Grain 25kg", 20, 30)
	require.NoError(t, err)

	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateProductCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Grain 25kg", 20, 30)
	require.NoError(t, err)

	productRepo := new(MockCatalogProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
			Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand("Grain 25kg", 20, 30)
	require.NoError(t, err)

	productRepo := new(MockCatalogProductRepository)
	uow := new(MockCatalogUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(productRepo).Once(),
		productRepo.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateProductCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}
