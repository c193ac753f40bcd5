package http

import "github.com/shopspring/decimal"

type ProductCreateRequest struct {
	Name        string          `json:"name" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	CategoryID  uint64          `json:"category_id"`
	Stock       int64           `json:"stock" binding:"min=0"`
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	CategoryID  *uint64          `json:"category_id"`
	Stock       *int64           `json:"stock"`
	IsActive    *bool            `json:"is_active"`
}

type CategoryCreateRequest struct {
	Category string `json:"category" binding:"required"`
}

type CategoryRenameRequest struct {
	Name string `json:"name" binding:"required"`
}

type StockChangeRequest struct {
	Change int64 `json:"change" binding:"required"`
}

// StockDeltaEntry is one entry of the bulk stock endpoints: signed quantity,
// negative on order creation, positive on cancellation.
type StockDeltaEntry struct {
	ProductID uint64 `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required"`
}
