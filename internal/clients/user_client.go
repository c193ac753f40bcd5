package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopfleet/shopfleet/internal/auth"
)

type UserClientInterface interface {
	GetUserInfo(ctx context.Context, token string) (*auth.Identity, error)
	GetUserByID(ctx context.Context, token string, userID uint64) (*auth.Identity, error)
	GetWard(ctx context.Context, token string, wardID uint64) (*Ward, error)
}

var _ UserClientInterface = (*UserClient)(nil)

// Ward is the address unit referenced by orders, resolved from the user
// service's address hierarchy.
type Ward struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
	City     string `json:"city"`
}

type UserClient struct {
	baseClient
}

func NewUserClient(baseURL, serviceName string, timeout time.Duration) *UserClient {
	return &UserClient{baseClient: newBaseClient(baseURL, serviceName, timeout)}
}

// GetUserInfo resolves the caller behind a bearer token. A 401 from the user
// service yields (nil, nil): absent identity, not a transport failure.
func (c *UserClient) GetUserInfo(ctx context.Context, token string) (*auth.Identity, error) {
	resp, err := c.get(ctx, "/get-user-info", token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "user service")
	}
	var identity auth.Identity
	if err := decodeBody(resp, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *UserClient) GetUserByID(ctx context.Context, token string, userID uint64) (*auth.Identity, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/get-user-info?user_id=%d", userID), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "user service")
	}
	var identity auth.Identity
	if err := decodeBody(resp, &identity); err != nil {
		return nil, err
	}
	return &identity, nil
}

func (c *UserClient) GetWard(ctx context.Context, token string, wardID uint64) (*Ward, error) {
	resp, err := c.get(ctx, fmt.Sprintf("/address/ward?id=%d", wardID), token)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "user service")
	}
	var ward Ward
	if err := decodeBody(resp, &ward); err != nil {
		return nil, err
	}
	return &ward, nil
}
