package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order state names, seeded into order_states at migration time.
const (
	StatePending     = "Pending"
	StateApproved    = "Approved"
	StateShipping    = "Shipping"
	StateCancelled   = "Cancelled"
	StateDisapproved = "Disapproved"
	StateDone        = "Done"
)

type OrderState struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

type Order struct {
	ID           uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint64      `json:"user_id" gorm:"not null;index"`
	PhoneNumber  string      `json:"phone_number" gorm:"size:10;not null"`
	WardID       uint64      `json:"ward_id" gorm:"not null"`
	Address      string      `json:"address" gorm:"size:255;not null"`
	OrderStateID uint64      `json:"-" gorm:"not null"`
	OrderState   OrderState  `json:"order_state" gorm:"foreignKey:OrderStateID"`
	Items        []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

// OrderItem snapshots the price submitted at creation time; it is never
// re-fetched from the product service.
type OrderItem struct {
	ID        uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID   uint64          `json:"order_id" gorm:"not null;index"`
	ProductID uint64          `json:"product_id" gorm:"not null"`
	Quantity  int64           `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}

// OrderStateHistory is append-only: rows are inserted on every transition
// and never mutated.
type OrderStateHistory struct {
	ID           uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      uint64     `json:"order_id" gorm:"not null;index"`
	OrderStateID uint64     `json:"-" gorm:"not null"`
	OrderState   OrderState `json:"order_state" gorm:"foreignKey:OrderStateID"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}
