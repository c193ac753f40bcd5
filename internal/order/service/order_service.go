package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/clients"
	"github.com/shopfleet/shopfleet/internal/events"
	"github.com/shopfleet/shopfleet/internal/order/domain"
	"github.com/shopfleet/shopfleet/internal/order/repository"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrPaymentStateLookup = errors.New("payment state not found")
	ErrStateNotFound      = errors.New("order state not found")
)

// PostCommitError reports a downstream failure that happened after the
// local order transaction committed. The order stands; the remote services
// are out of step with it until someone reconciles by hand.
type PostCommitError struct {
	Order *domain.Order
	Step  string
	Err   error
}

func (e *PostCommitError) Error() string {
	return fmt.Sprintf("order %d committed but %s failed: %v", e.Order.ID, e.Step, e.Err)
}

func (e *PostCommitError) Unwrap() error { return e.Err }

type OrderService struct {
	repo       repository.OrderRepository
	prodClient clients.ProductClientInterface
	payClient  clients.PaymentClientInterface
	userClient clients.UserClientInterface
	publisher  events.PublisherInterface
}

func NewOrderService(
	repo repository.OrderRepository,
	prodClient clients.ProductClientInterface,
	payClient clients.PaymentClientInterface,
	userClient clients.UserClientInterface,
	publisher events.PublisherInterface,
) *OrderService {
	return &OrderService{
		repo:       repo,
		prodClient: prodClient,
		payClient:  payClient,
		userClient: userClient,
		publisher:  publisher,
	}
}

type CreateOrderInput struct {
	WardID          uint64
	AddressDetail   string
	PhoneNumber     string
	PaymentMethodID uint64
	Items           []clients.OrderItemInput
}

// CreateOrder runs the creation workflow: resolve the Pending payment
// state, check stock for the full item list, commit the order locally, then
// issue the stock decrement and payment creation. The two post-commit calls
// are not transactional; their failure surfaces as a PostCommitError with
// the order already persisted.
func (s *OrderService) CreateOrder(ctx context.Context, userID uint64, token string, input CreateOrderInput) (*domain.Order, error) {
	pendingPayState, err := s.payClient.GetStateByName(ctx, token, "Pending")
	if err != nil {
		return nil, err
	}
	if pendingPayState == nil {
		return nil, ErrPaymentStateLookup
	}

	checkItems := make([]clients.StockDelta, 0, len(input.Items))
	for _, item := range input.Items {
		checkItems = append(checkItems, clients.StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	if err := s.prodClient.CheckStock(ctx, token, checkItems); err != nil {
		return nil, err
	}

	pendingState, err := s.repo.FindStateByName(domain.StatePending)
	if err != nil {
		return nil, err
	}
	if pendingState == nil {
		return nil, ErrStateNotFound
	}

	order := &domain.Order{
		UserID:       userID,
		PhoneNumber:  input.PhoneNumber,
		WardID:       input.WardID,
		Address:      input.AddressDetail,
		OrderStateID: pendingState.ID,
		OrderState:   *pendingState,
	}
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	if err := s.repo.CreateWithItems(order, items); err != nil {
		return nil, err
	}

	decrement := make([]clients.StockDelta, 0, len(input.Items))
	for _, item := range input.Items {
		decrement = append(decrement, clients.StockDelta{ProductID: item.ProductID, Quantity: -item.Quantity})
	}
	if err := s.prodClient.ApplyStockDeltas(ctx, token, decrement); err != nil {
		return order, &PostCommitError{Order: order, Step: "stock decrement", Err: err}
	}

	err = s.payClient.CreatePayment(ctx, token, clients.CreatePaymentRequest{
		OrderID:       order.ID,
		PaymentState:  pendingPayState.ID,
		PaymentMethod: input.PaymentMethodID,
	})
	if err != nil {
		return order, &PostCommitError{Order: order, Step: "payment creation", Err: err}
	}

	go s.publish(context.Background(), "order.created", order)

	return order, nil
}

// CancelOrder reverts stock first and flips the state to Cancelled only
// when the revert call succeeded. Orders without items skip the revert.
func (s *OrderService) CancelOrder(ctx context.Context, identity *auth.Identity, token string, orderID uint64) error {
	order, err := s.authorizedOrder(identity, orderID)
	if err != nil {
		return err
	}

	cancelled, err := s.repo.FindStateByName(domain.StateCancelled)
	if err != nil {
		return err
	}
	if cancelled == nil {
		return ErrStateNotFound
	}

	if len(order.Items) > 0 {
		revert := make([]clients.StockDelta, 0, len(order.Items))
		for _, item := range order.Items {
			revert = append(revert, clients.StockDelta{ProductID: item.ProductID, Quantity: item.Quantity})
		}
		if err := s.prodClient.ApplyStockDeltas(ctx, token, revert); err != nil {
			return fmt.Errorf("failed to revert stock: %w", err)
		}
	}

	if err := s.repo.SetState(order, cancelled); err != nil {
		return err
	}

	go s.publish(context.Background(), "order.cancelled", order)

	return nil
}

// ApproveOrder lets an admin move an order to an arbitrary state by id.
func (s *OrderService) ApproveOrder(identity *auth.Identity, orderID, stateID uint64) error {
	if !identity.Can(auth.CapManageOrders) {
		return ErrPermissionDenied
	}
	order, err := s.getOrder(orderID)
	if err != nil {
		return err
	}
	state, err := s.repo.FindStateByID(stateID)
	if err != nil {
		return err
	}
	if state == nil {
		return ErrStateNotFound
	}
	return s.repo.SetState(order, state)
}

func (s *OrderService) GetHistory(identity *auth.Identity, orderID uint64) ([]domain.OrderStateHistory, error) {
	if _, err := s.authorizedOrder(identity, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListHistory(orderID)
}

func (s *OrderService) getOrder(id uint64) (*domain.Order, error) {
	order, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// authorizedOrder loads the order and verifies the caller owns it or holds
// the orders:manage capability.
func (s *OrderService) authorizedOrder(identity *auth.Identity, orderID uint64) (*domain.Order, error) {
	order, err := s.getOrder(orderID)
	if err != nil {
		return nil, err
	}
	if identity.ID != order.UserID && !identity.Can(auth.CapManageOrders) {
		return nil, ErrPermissionDenied
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, pattern string, order *domain.Order) {
	if s.publisher == nil {
		return
	}
	payload := map[string]any{
		"order_id":   order.ID,
		"user_id":    order.UserID,
		"state":      order.OrderState.Name,
		"created_at": order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, pattern, payload); err != nil {
		slog.Warn("event publish failed", "pattern", pattern, "order_id", order.ID, "error", err)
	}
}
