package commands_test

import (
	"context"
	"errors"
	"testing"

	"grabngo/internal/core/application/usecases/commands"
	"grabngo/internal/core/domain/model/item"
	"grabngo/internal/core/domain/model/kernel"
	"grabngo/internal/core/domain/model/order"
	"grabngo/internal/core/ports"
	"grabngo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckoutItemRepository struct{ mock.Mock }

func (m *MockCheckoutItemRepository) Add(ctx context.Context, i *item.Item) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockCheckoutItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*item.Item), args.Error(1)
}

func (m *MockCheckoutItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCheckoutOrderRepository struct{ mock.Mock }

func (m *MockCheckoutOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCheckoutOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockCheckoutOrderRepository) UpdateWhereStatus(
	ctx context.Context, o *order.Order, expected order.Status,
) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockCheckoutOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckoutUoW) ItemRepository() ports.ItemRepository {
	args := m.Called()
	return args.Get(0).(ports.ItemRepository)
}

func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func newCatalogBurger(t *testing.T, id kernel.UUID) *item.Item {
	t.Helper()
	burger, err := item.NewItem(
		id, "Classic Cheeseburger", "Juicy beef patty", 10.99,
		item.CategoryFood, "", "Burger House", 12, 4.7,
	)
	require.NoError(t, err)
	return burger
}

func newCheckoutCommand(t *testing.T, itemID kernel.UUID, quantity int) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		"customer@grabngo.com", "Jane Customer", "350 5th Ave", nil,
		[]commands.LineRequest{{ItemID: itemID, Quantity: quantity}},
		"Burger House, 21 Spring St", nil,
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, itemID, 2)

	itemRepo := new(MockCheckoutItemRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(newCatalogBurger(t, itemID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.StatusPending, created.Status())
	require.Len(t, created.Lines(), 1)
	assert.Equal(t, "Classic Cheeseburger", created.Lines()[0].Name())
	assert.InDelta(t, 10.99, created.Lines()[0].Price(), 0.0001)
	assert.Equal(t, 2, created.Lines()[0].Quantity())

	// 2 * 10.99 + 2.99 delivery fee + 8% tax on the subtotal
	assert.InDelta(t, 26.73, created.TotalAmount(), 0.0001)

	orderRepo.AssertExpectations(t)
	itemRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockCheckoutUoWFactory)
	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ItemNotFound(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, itemID, 1)

	itemRepo := new(MockCheckoutItemRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).
			Return(nil, errs.NewObjectNotFoundError("itemID", itemID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_ItemUnavailable(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, itemID, 1)

	soldOut := newCatalogBurger(t, itemID)
	soldOut.MarkUnavailable()

	itemRepo := new(MockCheckoutItemRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(soldOut, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, itemID, 1)

	itemRepo := new(MockCheckoutItemRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(newCatalogBurger(t, itemID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("database error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "database error")
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := context.Background()
	itemID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, itemID, 1)

	itemRepo := new(MockCheckoutItemRepository)
	orderRepo := new(MockCheckoutOrderRepository)
	uow := new(MockCheckoutUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("Get", ctx, itemID).Return(newCatalogBurger(t, itemID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
