package clients

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type OrderClientInterface interface {
	CreateOrder(ctx context.Context, token string, req CreateOrderRequest) error
}

var _ OrderClientInterface = (*OrderClient)(nil)

type CreateOrderRequest struct {
	Address         OrderAddress     `json:"address"`
	PhoneNumber     string           `json:"phone_number"`
	PaymentMethodID uint64           `json:"payment_method_id"`
	Items           []OrderItemInput `json:"items"`
}

type OrderAddress struct {
	WardID uint64 `json:"ward_id"`
	Detail string `json:"detail"`
}

type OrderItemInput struct {
	ProductID uint64          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderClient struct {
	baseClient
}

func NewOrderClient(baseURL, serviceName string, timeout time.Duration) *OrderClient {
	return &OrderClient{baseClient: newBaseClient(baseURL, serviceName, timeout)}
}

func (c *OrderClient) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) error {
	resp, err := c.send(ctx, http.MethodPost, "/orders/create", token, req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return statusError(resp, "order service")
	}
	resp.Body.Close()
	return nil
}
