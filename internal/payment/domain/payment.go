package domain

// Payment state and method names seeded at migration.
const (
	StatePending   = "Pending"
	StatePaid      = "Paid"
	StateCancelled = "Cancelled"
	StateFail      = "Fail"

	MethodCash   = "Cash"
	MethodOnline = "Online"
)

type PaymentState struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

type PaymentMethod struct {
	ID   uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}

// Payment is keyed by order id: at most one payment record per order.
type Payment struct {
	ID              uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID         uint64        `json:"order_id" gorm:"uniqueIndex;not null"`
	PaymentStateID  *uint64       `json:"-"`
	PaymentState    PaymentState  `json:"payment_state" gorm:"foreignKey:PaymentStateID"`
	PaymentMethodID *uint64       `json:"-"`
	PaymentMethod   PaymentMethod `json:"payment_method" gorm:"foreignKey:PaymentMethodID"`
}
