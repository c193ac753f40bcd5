package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/order/domain"
	"github.com/shopfleet/shopfleet/internal/order/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(order *domain.Order, items []domain.OrderItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		order.Items = items

		history := domain.OrderStateHistory{
			OrderID:      order.ID,
			OrderStateID: order.OrderStateID,
		}
		return tx.Create(&history).Error
	})
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.Preload("OrderState").Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(userID uint64, offset, limit int) ([]domain.Order, int64, error) {
	q := r.db.Model(&domain.Order{})
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.Order
	err := q.Preload("OrderState").Preload("Items").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepo) SetState(order *domain.Order, state *domain.OrderState) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("order_state_id", state.ID).Error; err != nil {
			return err
		}
		order.OrderStateID = state.ID
		order.OrderState = *state

		history := domain.OrderStateHistory{
			OrderID:      order.ID,
			OrderStateID: state.ID,
		}
		return tx.Create(&history).Error
	})
}

func (r *orderRepo) FindStateByName(name string) (*domain.OrderState, error) {
	var s domain.OrderState
	if err := r.db.Where("name = ?", name).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *orderRepo) FindStateByID(id uint64) (*domain.OrderState, error) {
	var s domain.OrderState
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *orderRepo) ListHistory(orderID uint64) ([]domain.OrderStateHistory, error) {
	var history []domain.OrderStateHistory
	err := r.db.Preload("OrderState").
		Where("order_id = ?", orderID).Order("created_at").Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}
