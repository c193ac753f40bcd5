package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/payment/domain"
	"github.com/shopfleet/shopfleet/internal/payment/repository"
)

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepo{db: db}
}

func (r *paymentRepo) Create(payment *domain.Payment) error {
	return r.db.Create(payment).Error
}

func (r *paymentRepo) FindByOrderID(orderID uint64) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.Preload("PaymentState").Preload("PaymentMethod").
		Where("order_id = ?", orderID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepo) Update(payment *domain.Payment) error {
	return r.db.Save(payment).Error
}

func (r *paymentRepo) FindStateByID(id uint64) (*domain.PaymentState, error) {
	var s domain.PaymentState
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *paymentRepo) FindStatesByName(name string) ([]domain.PaymentState, error) {
	var states []domain.PaymentState
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (r *paymentRepo) ListStates() ([]domain.PaymentState, error) {
	var states []domain.PaymentState
	if err := r.db.Order("id").Find(&states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

func (r *paymentRepo) FindMethodByID(id uint64) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *paymentRepo) ListMethods() ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	if err := r.db.Order("id").Find(&methods).Error; err != nil {
		return nil, err
	}
	return methods, nil
}
