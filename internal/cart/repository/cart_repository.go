package repository

import (
	"github.com/shopfleet/shopfleet/internal/cart/domain"
)

type CartRepository interface {
	// GetOrCreate returns the user's cart, creating an empty one on first use.
	GetOrCreate(userID uint64) (*domain.Cart, error)
	FindItem(cartID, productID uint64) (*domain.CartItem, error)
	SaveItem(item *domain.CartItem) error
	DeleteItem(cartID, productID uint64) error
	DeleteItemsByProductIDs(cartID uint64, productIDs []uint64) error
	ListItems(cartID uint64, offset, limit int) ([]domain.CartItem, int64, error)
}
