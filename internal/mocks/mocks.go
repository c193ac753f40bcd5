package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/shopfleet/shopfleet/internal/auth"
	cartdomain "github.com/shopfleet/shopfleet/internal/cart/domain"
	"github.com/shopfleet/shopfleet/internal/clients"
	commentdomain "github.com/shopfleet/shopfleet/internal/comment/domain"
	orderdomain "github.com/shopfleet/shopfleet/internal/order/domain"
)

type MockUserClient struct {
	mock.Mock
}

func (m *MockUserClient) GetUserInfo(ctx context.Context, token string) (*auth.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

func (m *MockUserClient) GetUserByID(ctx context.Context, token string, userID uint64) (*auth.Identity, error) {
	args := m.Called(ctx, token, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

func (m *MockUserClient) GetWard(ctx context.Context, token string, wardID uint64) (*clients.Ward, error) {
	args := m.Called(ctx, token, wardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.Ward), args.Error(1)
}

type MockProductClient struct {
	mock.Mock
}

func (m *MockProductClient) GetProduct(ctx context.Context, id uint64) (*clients.ProductInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.ProductInfo), args.Error(1)
}

func (m *MockProductClient) CheckStock(ctx context.Context, token string, items []clients.StockDelta) error {
	args := m.Called(ctx, token, items)
	return args.Error(0)
}

func (m *MockProductClient) ApplyStockDeltas(ctx context.Context, token string, deltas []clients.StockDelta) error {
	args := m.Called(ctx, token, deltas)
	return args.Error(0)
}

type MockPaymentClient struct {
	mock.Mock
}

func (m *MockPaymentClient) GetStateByName(ctx context.Context, token, name string) (*clients.PaymentLookup, error) {
	args := m.Called(ctx, token, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.PaymentLookup), args.Error(1)
}

func (m *MockPaymentClient) GetMethod(ctx context.Context, token string, id uint64) (*clients.PaymentLookup, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.PaymentLookup), args.Error(1)
}

func (m *MockPaymentClient) CreatePayment(ctx context.Context, token string, req clients.CreatePaymentRequest) error {
	args := m.Called(ctx, token, req)
	return args.Error(0)
}

func (m *MockPaymentClient) GetPayment(ctx context.Context, token string, orderID uint64) (*clients.PaymentRecord, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.PaymentRecord), args.Error(1)
}

type MockOrderClient struct {
	mock.Mock
}

func (m *MockOrderClient) CreateOrder(ctx context.Context, token string, req clients.CreateOrderRequest) error {
	args := m.Called(ctx, token, req)
	return args.Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(order *orderdomain.Order, items []orderdomain.OrderItem) error {
	args := m.Called(order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(id uint64) (*orderdomain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdomain.Order), args.Error(1)
}

func (m *MockOrderRepository) List(userID uint64, offset, limit int) ([]orderdomain.Order, int64, error) {
	args := m.Called(userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]orderdomain.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) SetState(order *orderdomain.Order, state *orderdomain.OrderState) error {
	args := m.Called(order, state)
	return args.Error(0)
}

func (m *MockOrderRepository) FindStateByName(name string) (*orderdomain.OrderState, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdomain.OrderState), args.Error(1)
}

func (m *MockOrderRepository) FindStateByID(id uint64) (*orderdomain.OrderState, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orderdomain.OrderState), args.Error(1)
}

func (m *MockOrderRepository) ListHistory(orderID uint64) ([]orderdomain.OrderStateHistory, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]orderdomain.OrderStateHistory), args.Error(1)
}

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetOrCreate(userID uint64) (*cartdomain.Cart, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.Cart), args.Error(1)
}

func (m *MockCartRepository) FindItem(cartID, productID uint64) (*cartdomain.CartItem, error) {
	args := m.Called(cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cartdomain.CartItem), args.Error(1)
}

func (m *MockCartRepository) SaveItem(item *cartdomain.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(cartID, productID uint64) error {
	args := m.Called(cartID, productID)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItemsByProductIDs(cartID uint64, productIDs []uint64) error {
	args := m.Called(cartID, productIDs)
	return args.Error(0)
}

func (m *MockCartRepository) ListItems(cartID uint64, offset, limit int) ([]cartdomain.CartItem, int64, error) {
	args := m.Called(cartID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]cartdomain.CartItem), args.Get(1).(int64), args.Error(2)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Insert(ctx context.Context, comment *commentdomain.Comment) (string, error) {
	args := m.Called(ctx, comment)
	return args.String(0), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id string) (*commentdomain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*commentdomain.Comment), args.Error(1)
}

func (m *MockCommentRepository) List(ctx context.Context, orderItemID uint64) ([]commentdomain.Comment, error) {
	args := m.Called(ctx, orderItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]commentdomain.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id, content string) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
