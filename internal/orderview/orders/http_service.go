package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPClient matches the subset of http.Client used by HTTPService.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// defaultTimeout bounds requests to the backend; a hung request must not
// leave the caller waiting forever.
const defaultTimeout = 15 * time.Second

// HTTPService implements Service backed by the read-only REST endpoints
// exposed by the order API.
type HTTPService struct {
	base   string
	client HTTPClient
}

// NewHTTPService constructs a Service that talks to the order API.
func NewHTTPService(baseURL string, client HTTPClient) (*HTTPService, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errors.New("orders: base URL is required")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("orders: parse base URL: %w", err)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &HTTPService{
		base:   strings.TrimRight(parsed.String(), "/"),
		client: client,
	}, nil
}

// Order fetches a single order by id. Any non-2xx response is treated as
// "order not found".
func (s *HTTPService) Order(ctx context.Context, id string) (*Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, &ValidationError{Message: "order id is required"}
	}

	resp, err := s.get(ctx, "/api/orders/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp.Body)
		return nil, &NotFoundError{ID: id, Status: resp.StatusCode}
	}

	var payload Order
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("orders: decode order %q: %w", id, err)
	}
	return &payload, nil
}

// List fetches the current order catalog references. Any non-2xx response
// is treated as "list unavailable".
func (s *HTTPService) List(ctx context.Context) ([]ListEntry, error) {
	resp, err := s.get(ctx, "/api/orders")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		drain(resp.Body)
		return nil, fmt.Errorf("orders: list request failed (%d): %w", resp.StatusCode, ErrListUnavailable)
	}

	var payload []ListEntry
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("orders: decode order list: %w", err)
	}
	return payload, nil
}

func (s *HTTPService) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("orders: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("orders: request failed: %w", err)
	}
	return resp, nil
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 1<<16))
}
