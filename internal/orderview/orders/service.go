package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service exposes read access to the order catalog.
type Service interface {
	// Order returns the order identified by id.
	Order(ctx context.Context, id string) (*Order, error)

	// List returns lightweight references for the most recent orders.
	List(ctx context.Context) ([]ListEntry, error)
}

var (
	// ErrListUnavailable is returned when the order list cannot be fetched.
	ErrListUnavailable = errors.New("orders: list unavailable")
	// ErrNoOrders is returned when a pick is requested but no orders are known.
	ErrNoOrders = errors.New("orders: no orders to pick from")
)

// NotFoundError is returned when an order lookup fails, either because the
// id is unknown or because the backend rejected the request.
type NotFoundError struct {
	ID     string
	Status int
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.ID) == "" {
		return "orders: order not found"
	}
	if e.Status != 0 {
		return fmt.Sprintf("orders: order %q not found (status %d)", e.ID, e.Status)
	}
	return fmt.Sprintf("orders: order %q not found", e.ID)
}

// ValidationError reports invalid caller input, such as an empty order id.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e == nil || strings.TrimSpace(e.Message) == "" {
		return "orders: invalid request"
	}
	return "orders: " + e.Message
}

// Order is the primary record displayed by the UI: shipment, payment and
// item details for a single purchase. Optional numeric fields are pointers
// so that "absent" is distinguishable from zero; optional strings use ""
// as the absent value. Defaults are resolved centrally by the view layer.
type Order struct {
	OrderUID          string    `json:"order_uid"`
	TrackNumber       string    `json:"track_number"`
	Entry             string    `json:"entry"`
	Locale            string    `json:"locale"`
	InternalSignature string    `json:"internal_signature"`
	CustomerID        string    `json:"customer_id"`
	DeliveryService   string    `json:"delivery_service"`
	DateCreated       string    `json:"date_created"`
	Delivery          *Delivery `json:"delivery"`
	Payment           *Payment  `json:"payment"`
	Items             []Item    `json:"items"`
}

// Delivery holds recipient contact and address details.
type Delivery struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Zip     string `json:"zip"`
	City    string `json:"city"`
	Address string `json:"address"`
	Region  string `json:"region"`
	Email   string `json:"email"`
}

// Payment holds transaction details. Currency is a 3-letter ISO code and
// defaults to USD when absent.
type Payment struct {
	Transaction  string   `json:"transaction"`
	Currency     string   `json:"currency"`
	Provider     string   `json:"provider"`
	Bank         string   `json:"bank"`
	Amount       *float64 `json:"amount"`
	DeliveryCost *float64 `json:"delivery_cost"`
	GoodsTotal   *float64 `json:"goods_total"`
	CustomFee    *float64 `json:"custom_fee"`
}

// Item is a single order line. Sale is the quantity and defaults to 1.
type Item struct {
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Price      *float64 `json:"price"`
	Sale       *int     `json:"sale"`
	TotalPrice *float64 `json:"total_price"`
	Status     *int     `json:"status"`
}

// ListEntry is a lightweight reference into the order catalog.
type ListEntry struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
}
