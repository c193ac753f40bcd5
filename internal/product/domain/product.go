package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"size:255;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type Product struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Description string          `json:"description" gorm:"size:255"`
	CategoryID  uint64          `json:"category_id" gorm:"index"`
	Stock       int64           `json:"stock" gorm:"not null"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

type ProductImage struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Path      string `json:"path" gorm:"size:255;not null"`
	ProductID uint64 `json:"product_id" gorm:"not null;index"`
}
