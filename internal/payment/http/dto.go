package http

type CreatePaymentRequest struct {
	OrderID       uint64 `json:"order_id" binding:"required"`
	PaymentState  uint64 `json:"payment_state"`
	PaymentMethod uint64 `json:"payment_method" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentState  *uint64 `json:"payment_state"`
	PaymentMethod *uint64 `json:"payment_method"`
}
