package orders

import (
	"context"
	"sort"
	"sync"
)

// StaticService is an in-memory Service used by tests and as a fallback
// when no backend API is configured.
type StaticService struct {
	mu     sync.RWMutex
	orders map[string]Order
}

// NewStaticService constructs a StaticService seeded with demo orders.
func NewStaticService() *StaticService {
	svc := &StaticService{orders: make(map[string]Order)}
	for _, order := range demoOrders() {
		svc.orders[order.OrderUID] = order
	}
	return svc
}

// Put adds or replaces an order in the fixture set.
func (s *StaticService) Put(order Order) {
	s.mu.Lock()
	s.orders[order.OrderUID] = order
	s.mu.Unlock()
}

// Order returns the fixture order for id.
func (s *StaticService) Order(ctx context.Context, id string) (*Order, error) {
	s.mu.RLock()
	order, ok := s.orders[id]
	s.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return &order, nil
}

// List returns fixture references sorted by creation date, newest first.
func (s *StaticService) List(ctx context.Context) ([]ListEntry, error) {
	s.mu.RLock()
	entries := make([]ListEntry, 0, len(s.orders))
	for _, order := range s.orders {
		entries = append(entries, ListEntry{ID: order.OrderUID, CreatedAt: order.DateCreated})
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CreatedAt != entries[j].CreatedAt {
			return entries[i].CreatedAt > entries[j].CreatedAt
		}
		return entries[i].ID < entries[j].ID
	})
	return entries, nil
}

func demoOrders() []Order {
	return []Order{
		{
			OrderUID:        "b563feb7b2b84b6test",
			TrackNumber:     "WBILMTESTTRACK",
			Entry:           "WBIL",
			Locale:          "en",
			CustomerID:      "test",
			DeliveryService: "meest",
			DateCreated:     "2021-11-26T06:22:19Z",
			Delivery: &Delivery{
				Name:    "Test Testov",
				Phone:   "+9720000000",
				Zip:     "2639809",
				City:    "Kiryat Mozkin",
				Address: "Ploshad Mira 15",
				Region:  "Kraiot",
				Email:   "test@gmail.com",
			},
			Payment: &Payment{
				Transaction:  "b563feb7b2b84b6test",
				Currency:     "USD",
				Provider:     "wbpay",
				Bank:         "alpha",
				Amount:       f64(1817),
				DeliveryCost: f64(1500),
				GoodsTotal:   f64(317),
				CustomFee:    f64(0),
			},
			Items: []Item{
				{
					Name:       "Mascaras",
					Brand:      "Vivienne Sabo",
					Price:      f64(453),
					Sale:       iptr(30),
					TotalPrice: f64(317),
					Status:     iptr(202),
				},
			},
		},
		{
			OrderUID:        "a19d2f40c6a04d1demo",
			TrackNumber:     "WBILMDEMOTRACK",
			Entry:           "WBIL",
			Locale:          "en",
			CustomerID:      "demo",
			DeliveryService: "cdek",
			DateCreated:     "2022-03-04T11:09:41Z",
			Delivery: &Delivery{
				Name:  "Demo Customer",
				Phone: "+4915200000000",
				City:  "Berlin",
			},
			Payment: &Payment{
				Transaction: "a19d2f40c6a04d1demo",
				Currency:    "EUR",
				Provider:    "wbpay",
				Bank:        "sber",
				Amount:      f64(964),
			},
		},
	}
}

func f64(v float64) *float64 { return &v }

func iptr(v int) *int { return &v }
