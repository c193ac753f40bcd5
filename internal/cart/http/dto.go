package http

import "github.com/shopspring/decimal"

type AddItemRequest struct {
	ProductID uint64 `json:"id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

type ToOrderRequest struct {
	Address         AddressInput     `json:"address" binding:"required"`
	PhoneNumber     string           `json:"phone_number" binding:"required"`
	PaymentMethodID uint64           `json:"payment_method_id" binding:"required"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type AddressInput struct {
	WardID uint64 `json:"ward_id" binding:"required"`
	Detail string `json:"detail" binding:"required"`
}

type OrderItemInput struct {
	ProductID uint64          `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}
