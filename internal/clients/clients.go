// Package clients is the single source of truth for every cross-service
// call: one canonical field layout and status-code mapping per downstream
// endpoint, shared by all callers.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnavailable wraps connection-level failures to a sibling service.
// Handlers map it to 503.
var ErrUnavailable = errors.New("service unavailable")

// CrossServiceHeader flags inter-service calls. Presence-only marker, not a
// credential.
const CrossServiceHeader = "Cross-Service"

const defaultTimeout = 5 * time.Second

type baseClient struct {
	baseURL     string
	serviceName string
	httpClient  *http.Client
}

func newBaseClient(baseURL, serviceName string, timeout time.Duration) baseClient {
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return baseClient{
		baseURL:     baseURL,
		serviceName: serviceName,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// send issues a request with the canonical cross-service headers. payload is
// JSON-encoded when non-nil. Connection errors come back wrapped in
// ErrUnavailable.
func (c *baseClient) send(ctx context.Context, method, path, token string, payload any) (*http.Response, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(CrossServiceHeader, c.serviceName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *baseClient) get(ctx context.Context, path, token string) (*http.Response, error) {
	return c.send(ctx, http.MethodGet, path, token, nil)
}

func decodeBody(resp *http.Response, out any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func statusError(resp *http.Response, service string) error {
	defer resp.Body.Close()
	return fmt.Errorf("%s returned status %d", service, resp.StatusCode)
}
