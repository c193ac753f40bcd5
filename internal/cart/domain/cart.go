package domain

import "time"

// Cart is keyed by the owning user's id: one cart per user.
type Cart struct {
	ID        uint64     `json:"id" gorm:"primaryKey"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

type CartItem struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CartID    uint64 `json:"cart_id" gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint64 `json:"product_id" gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity  int64  `json:"quantity" gorm:"not null"`
}
