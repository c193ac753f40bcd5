package mysql

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shopfleet/shopfleet/internal/cart/domain"
	"github.com/shopfleet/shopfleet/internal/cart/repository"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) GetOrCreate(userID uint64) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.Where(domain.Cart{ID: userID}).FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepo) FindItem(cartID, productID uint64) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepo) SaveItem(item *domain.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepo) DeleteItem(cartID, productID uint64) error {
	result := r.db.Where("cart_id = ? AND product_id = ?", cartID, productID).Delete(&domain.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cartRepo) DeleteItemsByProductIDs(cartID uint64, productIDs []uint64) error {
	return r.db.Where("cart_id = ? AND product_id IN ?", cartID, productIDs).
		Delete(&domain.CartItem{}).Error
}

func (r *cartRepo) ListItems(cartID uint64, offset, limit int) ([]domain.CartItem, int64, error) {
	q := r.db.Model(&domain.CartItem{}).Where("cart_id = ?", cartID)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []domain.CartItem
	if err := q.Order("id").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
