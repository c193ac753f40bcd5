package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type ProductClientInterface interface {
	GetProduct(ctx context.Context, id uint64) (*ProductInfo, error)
	CheckStock(ctx context.Context, token string, items []StockDelta) error
	ApplyStockDeltas(ctx context.Context, token string, deltas []StockDelta) error
}

var _ ProductClientInterface = (*ProductClient)(nil)

type ProductInfo struct {
	ID       uint64          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	IsActive bool            `json:"is_active"`
}

// StockDelta is a signed adjustment to one product's stock count: negative
// on order creation, positive on cancellation.
type StockDelta struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ErrInsufficientStock carries the first product the product service
// reported as short.
type ErrInsufficientStock struct {
	ProductID uint64
	Detail    string
}

func (e *ErrInsufficientStock) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("insufficient stock for product %d", e.ProductID)
}

type ProductClient struct {
	baseClient
}

func NewProductClient(baseURL, serviceName string, timeout time.Duration) *ProductClient {
	return &ProductClient{baseClient: newBaseClient(baseURL, serviceName, timeout)}
}

func (c *ProductClient) GetProduct(ctx context.Context, id uint64) (*ProductInfo, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/product/%d", id), "")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "product service")
	}
	var p ProductInfo
	if err := decodeBody(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CheckStock asks the product service whether every requested quantity is
// currently available. A 400 means at least one product is short and comes
// back as *ErrInsufficientStock.
func (c *ProductClient) CheckStock(ctx context.Context, token string, items []StockDelta) error {
	resp, err := c.send(ctx, http.MethodPost, "/product/stock/check", token, items)
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		resp.Body.Close()
		return nil
	case http.StatusBadRequest:
		var body struct {
			ProductID uint64 `json:"product_id"`
			Detail    string `json:"detail"`
		}
		_ = decodeBody(resp, &body)
		return &ErrInsufficientStock{ProductID: body.ProductID, Detail: body.Detail}
	default:
		return statusError(resp, "product service")
	}
}

// ApplyStockDeltas posts a bulk signed stock adjustment. The product service
// applies the whole batch atomically or not at all.
func (c *ProductClient) ApplyStockDeltas(ctx context.Context, token string, deltas []StockDelta) error {
	resp, err := c.send(ctx, http.MethodPost, "/product/stock", token, deltas)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, "product service")
	}
	resp.Body.Close()
	return nil
}
