package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type PaymentClientInterface interface {
	GetStateByName(ctx context.Context, token, name string) (*PaymentLookup, error)
	GetMethod(ctx context.Context, token string, id uint64) (*PaymentLookup, error)
	CreatePayment(ctx context.Context, token string, req CreatePaymentRequest) error
	GetPayment(ctx context.Context, token string, orderID uint64) (*PaymentRecord, error)
}

var _ PaymentClientInterface = (*PaymentClient)(nil)

// PaymentLookup is a payment-state or payment-method lookup row.
type PaymentLookup struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type PaymentRecord struct {
	ID            uint64        `json:"id"`
	OrderID       uint64        `json:"order_id"`
	PaymentState  PaymentLookup `json:"payment_state"`
	PaymentMethod PaymentLookup `json:"payment_method"`
}

type CreatePaymentRequest struct {
	OrderID       uint64 `json:"order_id"`
	PaymentState  uint64 `json:"payment_state"`
	PaymentMethod uint64 `json:"payment_method"`
}

type PaymentClient struct {
	baseClient
}

func NewPaymentClient(baseURL, serviceName string, timeout time.Duration) *PaymentClient {
	return &PaymentClient{baseClient: newBaseClient(baseURL, serviceName, timeout)}
}

// GetStateByName resolves a payment state (e.g. "Pending") to its lookup
// row. (nil, nil) when the state does not exist.
func (c *PaymentClient) GetStateByName(ctx context.Context, token, name string) (*PaymentLookup, error) {
	resp, err := c.get(ctx, "/payment/state?name="+url.QueryEscape(name), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "payment service")
	}
	var states []PaymentLookup
	if err := decodeBody(resp, &states); err != nil {
		return nil, err
	}
	if len(states) == 0 {
		return nil, nil
	}
	return &states[0], nil
}

func (c *PaymentClient) GetMethod(ctx context.Context, token string, id uint64) (*PaymentLookup, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/payment/method/%d", id), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "payment service")
	}
	var method PaymentLookup
	if err := decodeBody(resp, &method); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *PaymentClient) CreatePayment(ctx context.Context, token string, req CreatePaymentRequest) error {
	resp, err := c.send(ctx, http.MethodPost, "/payment", token, req)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "payment service")
	}
	resp.Body.Close()
	return nil
}

func (c *PaymentClient) GetPayment(ctx context.Context, token string, orderID uint64) (*PaymentRecord, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/payments/%d", orderID), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "payment service")
	}
	var record PaymentRecord
	if err := decodeBody(resp, &record); err != nil {
		return nil, err
	}
	return &record, nil
}
