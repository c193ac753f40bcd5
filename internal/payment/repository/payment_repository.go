package repository

import (
	"github.com/shopfleet/shopfleet/internal/payment/domain"
)

type PaymentRepository interface {
	Create(payment *domain.Payment) error
	FindByOrderID(orderID uint64) (*domain.Payment, error)
	Update(payment *domain.Payment) error
	FindStateByID(id uint64) (*domain.PaymentState, error)
	FindStatesByName(name string) ([]domain.PaymentState, error)
	ListStates() ([]domain.PaymentState, error)
	FindMethodByID(id uint64) (*domain.PaymentMethod, error)
	ListMethods() ([]domain.PaymentMethod, error)
}
