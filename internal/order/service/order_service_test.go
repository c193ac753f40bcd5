package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/mocks"
	"github.com/shopfleet/shopfleet/internal/order/domain"
)

func pendingState() *domain.OrderState {
	return &domain.OrderState{ID: 1, Name: domain.StatePending}
}

func cancelledState() *domain.OrderState {
	return &domain.OrderState{ID: 4, Name: domain.StateCancelled}
}

func customer(id uint64) *auth.Identity {
	return &auth.Identity{ID: id, Role: auth.Role{Name: "CUSTOMER"}}
}

func admin(id uint64) *auth.Identity {
	return &auth.Identity{ID: id, Role: auth.Role{Name: "ADMIN"}, Capabilities: auth.CapabilitiesForRole("ADMIN")}
}

func TestOrderService_CreateOrder(t *testing.T) {
	input := CreateOrderInput{
		WardID:          10,
		AddressDetail:   "12 Main St",
		PhoneNumber:     "0901234567",
		PaymentMethodID: 2,
		Items: []clients.OrderItemInput{
			{ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("9.99")},
		},
	}

	tests := []struct {
		name           string
		setupMocks     func(*mocks.MockOrderRepository, *mocks.MockProductClient, *mocks.MockPaymentClient, *mocks.MockPublisher)
		wantErr        error
		wantPostCommit bool
	}{
		{
			name: "successful creation",
			setupMocks: func(repo *mocks.MockOrderRepository, prod *mocks.MockProductClient, pay *mocks.MockPaymentClient, pub *mocks.MockPublisher) {
				pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(&clients.PaymentLookup{ID: 1, Name: "Pending"}, nil)
				prod.On("CheckStock", mock.Anything, "token", []clients.StockDelta{{ProductID: 1, Quantity: 2}}).Return(nil)
				repo.On("FindStateByName", domain.StatePending).Return(pendingState(), nil)
				repo.On("CreateWithItems", mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.OrderItem")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 42
				})
				prod.On("ApplyStockDeltas", mock.Anything, "token", []clients.StockDelta{{ProductID: 1, Quantity: -2}}).Return(nil)
				pay.On("CreatePayment", mock.Anything, "token", clients.CreatePaymentRequest{
					OrderID: 42, PaymentState: 1, PaymentMethod: 2,
				}).Return(nil)
				pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()
			},
		},
		{
			name: "insufficient stock stops before any write",
			setupMocks: func(repo *mocks.MockOrderRepository, prod *mocks.MockProductClient, pay *mocks.MockPaymentClient, pub *mocks.MockPublisher) {
				pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(&clients.PaymentLookup{ID: 1, Name: "Pending"}, nil)
				prod.On("CheckStock", mock.Anything, "token", mock.Anything).Return(&clients.ErrInsufficientStock{ProductID: 1})
			},
			wantErr: &clients.ErrInsufficientStock{ProductID: 1},
		},
		{
			name: "missing pending payment state",
			setupMocks: func(repo *mocks.MockOrderRepository, prod *mocks.MockProductClient, pay *mocks.MockPaymentClient, pub *mocks.MockPublisher) {
				pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(nil, nil)
			},
			wantErr: ErrPaymentStateLookup,
		},
		{
			name: "stock decrement fails after commit",
			setupMocks: func(repo *mocks.MockOrderRepository, prod *mocks.MockProductClient, pay *mocks.MockPaymentClient, pub *mocks.MockPublisher) {
				pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(&clients.PaymentLookup{ID: 1, Name: "Pending"}, nil)
				prod.On("CheckStock", mock.Anything, "token", mock.Anything).Return(nil)
				repo.On("FindStateByName", domain.StatePending).Return(pendingState(), nil)
				repo.On("CreateWithItems", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 42
				})
				prod.On("ApplyStockDeltas", mock.Anything, "token", mock.Anything).Return(errors.New("connection refused"))
			},
			wantPostCommit: true,
		},
		{
			name: "payment creation fails after commit",
			setupMocks: func(repo *mocks.MockOrderRepository, prod *mocks.MockProductClient, pay *mocks.MockPaymentClient, pub *mocks.MockPublisher) {
				pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(&clients.PaymentLookup{ID: 1, Name: "Pending"}, nil)
				prod.On("CheckStock", mock.Anything, "token", mock.Anything).Return(nil)
				repo.On("FindStateByName", domain.StatePending).Return(pendingState(), nil)
				repo.On("CreateWithItems", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*domain.Order).ID = 42
				})
				prod.On("ApplyStockDeltas", mock.Anything, "token", mock.Anything).Return(nil)
				pay.On("CreatePayment", mock.Anything, "token", mock.Anything).Return(errors.New("payment service returned status 500"))
			},
			wantPostCommit: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			prod := new(mocks.MockProductClient)
			pay := new(mocks.MockPaymentClient)
			pub := new(mocks.MockPublisher)
			tt.setupMocks(repo, prod, pay, pub)

			svc := NewOrderService(repo, prod, pay, new(mocks.MockUserClient), pub)
			order, err := svc.CreateOrder(context.Background(), 7, "token", input)

			switch {
			case tt.wantPostCommit:
				var postCommit *PostCommitError
				assert.ErrorAs(t, err, &postCommit)
				assert.NotNil(t, order)
				assert.Equal(t, uint64(42), order.ID)
			case tt.wantErr != nil:
				assert.Error(t, err)
				assert.Nil(t, order)
				repo.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
			default:
				assert.NoError(t, err)
				assert.Equal(t, uint64(7), order.UserID)
				assert.Equal(t, domain.StatePending, order.OrderState.Name)
				time.Sleep(50 * time.Millisecond)
			}

			repo.AssertExpectations(t)
			prod.AssertExpectations(t)
			pay.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestOrderService_CreateOrder_ItemPriceIsSubmittedPrice(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	prod := new(mocks.MockProductClient)
	pay := new(mocks.MockPaymentClient)
	pub := new(mocks.MockPublisher)

	pay.On("GetStateByName", mock.Anything, "token", "Pending").Return(&clients.PaymentLookup{ID: 1, Name: "Pending"}, nil)
	prod.On("CheckStock", mock.Anything, "token", mock.Anything).Return(nil)
	repo.On("FindStateByName", domain.StatePending).Return(pendingState(), nil)

	var savedItems []domain.OrderItem
	repo.On("CreateWithItems", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Order).ID = 1
		savedItems = args.Get(1).([]domain.OrderItem)
	})
	prod.On("ApplyStockDeltas", mock.Anything, "token", mock.Anything).Return(nil)
	pay.On("CreatePayment", mock.Anything, "token", mock.Anything).Return(nil)
	pub.On("Publish", mock.Anything, "order.created", mock.Anything).Return(nil).Maybe()

	svc := NewOrderService(repo, prod, pay, new(mocks.MockUserClient), pub)
	submitted := decimal.RequireFromString("9.99")
	_, err := svc.CreateOrder(context.Background(), 7, "token", CreateOrderInput{
		WardID: 10, AddressDetail: "12 Main St", PhoneNumber: "0901234567", PaymentMethodID: 2,
		Items: []clients.OrderItemInput{{ProductID: 1, Quantity: 2, Price: submitted}},
	})

	assert.NoError(t, err)
	assert.Len(t, savedItems, 1)
	assert.Equal(t, int64(2), savedItems[0].Quantity)
	assert.True(t, submitted.Equal(savedItems[0].Price))
	time.Sleep(50 * time.Millisecond)
}

func TestOrderService_CancelOrder(t *testing.T) {
	orderWithItems := func() *domain.Order {
		return &domain.Order{
			ID:     42,
			UserID: 7,
			Items: []domain.OrderItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 3, Quantity: 1},
			},
		}
	}

	t.Run("reverts stock then cancels", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		prod := new(mocks.MockProductClient)
		pub := new(mocks.MockPublisher)

		repo.On("FindByID", uint64(42)).Return(orderWithItems(), nil)
		repo.On("FindStateByName", domain.StateCancelled).Return(cancelledState(), nil)
		prod.On("ApplyStockDeltas", mock.Anything, "token", []clients.StockDelta{
			{ProductID: 1, Quantity: 2},
			{ProductID: 3, Quantity: 1},
		}).Return(nil).Once()
		repo.On("SetState", mock.Anything, cancelledState()).Return(nil)
		pub.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

		svc := NewOrderService(repo, prod, new(mocks.MockPaymentClient), new(mocks.MockUserClient), pub)
		err := svc.CancelOrder(context.Background(), customer(7), "token", 42)

		assert.NoError(t, err)
		prod.AssertNumberOfCalls(t, "ApplyStockDeltas", 1)
		repo.AssertExpectations(t)
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("zero items skips the revert call", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		prod := new(mocks.MockProductClient)
		pub := new(mocks.MockPublisher)

		repo.On("FindByID", uint64(42)).Return(&domain.Order{ID: 42, UserID: 7}, nil)
		repo.On("FindStateByName", domain.StateCancelled).Return(cancelledState(), nil)
		repo.On("SetState", mock.Anything, cancelledState()).Return(nil)
		pub.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

		svc := NewOrderService(repo, prod, new(mocks.MockPaymentClient), new(mocks.MockUserClient), pub)
		err := svc.CancelOrder(context.Background(), customer(7), "token", 42)

		assert.NoError(t, err)
		prod.AssertNotCalled(t, "ApplyStockDeltas", mock.Anything, mock.Anything, mock.Anything)
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("revert failure keeps the order uncancelled", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		prod := new(mocks.MockProductClient)

		repo.On("FindByID", uint64(42)).Return(orderWithItems(), nil)
		repo.On("FindStateByName", domain.StateCancelled).Return(cancelledState(), nil)
		prod.On("ApplyStockDeltas", mock.Anything, "token", mock.Anything).Return(errors.New("connection refused"))

		svc := NewOrderService(repo, prod, new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.CancelOrder(context.Background(), customer(7), "token", 42)

		assert.Error(t, err)
		repo.AssertNotCalled(t, "SetState", mock.Anything, mock.Anything)
	})

	t.Run("other user is rejected", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByID", uint64(42)).Return(orderWithItems(), nil)

		svc := NewOrderService(repo, new(mocks.MockProductClient), new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.CancelOrder(context.Background(), customer(99), "token", 42)

		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin may cancel any order", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		prod := new(mocks.MockProductClient)
		pub := new(mocks.MockPublisher)

		repo.On("FindByID", uint64(42)).Return(orderWithItems(), nil)
		repo.On("FindStateByName", domain.StateCancelled).Return(cancelledState(), nil)
		prod.On("ApplyStockDeltas", mock.Anything, "token", mock.Anything).Return(nil)
		repo.On("SetState", mock.Anything, cancelledState()).Return(nil)
		pub.On("Publish", mock.Anything, "order.cancelled", mock.Anything).Return(nil).Maybe()

		svc := NewOrderService(repo, prod, new(mocks.MockPaymentClient), new(mocks.MockUserClient), pub)
		err := svc.CancelOrder(context.Background(), admin(99), "token", 42)

		assert.NoError(t, err)
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("unknown order", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByID", uint64(404)).Return(nil, nil)

		svc := NewOrderService(repo, new(mocks.MockProductClient), new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.CancelOrder(context.Background(), customer(7), "token", 404)

		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}

func TestOrderService_ApproveOrder(t *testing.T) {
	t.Run("requires manage capability", func(t *testing.T) {
		svc := NewOrderService(new(mocks.MockOrderRepository), new(mocks.MockProductClient), new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.ApproveOrder(customer(7), 42, 2)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin moves order to target state", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		approved := &domain.OrderState{ID: 2, Name: domain.StateApproved}
		repo.On("FindByID", uint64(42)).Return(&domain.Order{ID: 42, UserID: 7}, nil)
		repo.On("FindStateByID", uint64(2)).Return(approved, nil)
		repo.On("SetState", mock.Anything, approved).Return(nil)

		svc := NewOrderService(repo, new(mocks.MockProductClient), new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.ApproveOrder(admin(1), 42, 2)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown state", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("FindByID", uint64(42)).Return(&domain.Order{ID: 42, UserID: 7}, nil)
		repo.On("FindStateByID", uint64(999)).Return(nil, nil)

		svc := NewOrderService(repo, new(mocks.MockProductClient), new(mocks.MockPaymentClient), new(mocks.MockUserClient), new(mocks.MockPublisher))
		err := svc.ApproveOrder(admin(1), 42, 999)

		assert.ErrorIs(t, err, ErrStateNotFound)
	})
}
