package repository

import (
	"github.com/shopfleet/shopfleet/internal/order/domain"
)

type OrderRepository interface {
	// CreateWithItems persists the order, its items, and the initial history
	// row in one local transaction.
	CreateWithItems(order *domain.Order, items []domain.OrderItem) error
	FindByID(id uint64) (*domain.Order, error)
	// List pages orders newest-first; userID == 0 lists all users.
	List(userID uint64, offset, limit int) ([]domain.Order, int64, error)
	// SetState updates the order's state and appends a history row in one
	// transaction.
	SetState(order *domain.Order, state *domain.OrderState) error
	FindStateByName(name string) (*domain.OrderState, error)
	FindStateByID(id uint64) (*domain.OrderState, error)
	ListHistory(orderID uint64) ([]domain.OrderStateHistory, error)
}
