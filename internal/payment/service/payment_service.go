package service

import (
	"errors"

	"github.com/shopfleet/shopfleet/internal/payment/domain"
	"github.com/shopfleet/shopfleet/internal/payment/repository"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrPaymentExists   = errors.New("payment for this order already exists")
	ErrStateNotFound   = errors.New("payment state not found")
	ErrMethodNotFound  = errors.New("payment method not found")
)

type PaymentService struct {
	repo repository.PaymentRepository
}

func NewPaymentService(repo repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// CreatePayment records the payment for an order. stateID may be zero; the
// method is required.
func (s *PaymentService) CreatePayment(orderID, stateID, methodID uint64) (*domain.Payment, error) {
	existing, err := s.repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPaymentExists
	}

	method, err := s.repo.FindMethodByID(methodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrMethodNotFound
	}

	payment := &domain.Payment{
		OrderID:         orderID,
		PaymentMethodID: &method.ID,
		PaymentMethod:   *method,
	}
	if stateID != 0 {
		state, err := s.repo.FindStateByID(stateID)
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, ErrStateNotFound
		}
		payment.PaymentStateID = &state.ID
		payment.PaymentState = *state
	}

	if err := s.repo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) GetByOrderID(orderID uint64) (*domain.Payment, error) {
	payment, err := s.repo.FindByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// UpdatePayment patches the state and/or method of an order's payment.
func (s *PaymentService) UpdatePayment(orderID uint64, stateID, methodID *uint64) (*domain.Payment, error) {
	payment, err := s.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}
	if stateID != nil {
		state, err := s.repo.FindStateByID(*stateID)
		if err != nil {
			return nil, err
		}
		if state == nil {
			return nil, ErrStateNotFound
		}
		payment.PaymentStateID = &state.ID
		payment.PaymentState = *state
	}
	if methodID != nil {
		method, err := s.repo.FindMethodByID(*methodID)
		if err != nil {
			return nil, err
		}
		if method == nil {
			return nil, ErrMethodNotFound
		}
		payment.PaymentMethodID = &method.ID
		payment.PaymentMethod = *method
	}
	if err := s.repo.Update(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListStates returns all states, or the states matching a name filter
// (case-insensitive) when name is non-empty.
func (s *PaymentService) ListStates(name string) ([]domain.PaymentState, error) {
	if name != "" {
		return s.repo.FindStatesByName(name)
	}
	return s.repo.ListStates()
}

func (s *PaymentService) ListMethods() ([]domain.PaymentMethod, error) {
	return s.repo.ListMethods()
}

func (s *PaymentService) GetMethod(id uint64) (*domain.PaymentMethod, error) {
	method, err := s.repo.FindMethodByID(id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, ErrMethodNotFound
	}
	return method, nil
}
