package router

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"finitefield.org/orderview/internal/orderview/orders"
	"finitefield.org/orderview/internal/orderview/views"
)

// recordingSurface captures paint calls for assertions.
type recordingSurface struct {
	pages     []Page
	tabs      []Name
	order     *views.OrderView
	list      *views.ListView
	navigated []string
	notices   []string
}

func (s *recordingSurface) ShowPage(page Page)               { s.pages = append(s.pages, page) }
func (s *recordingSurface) SelectTab(tab Name)               { s.tabs = append(s.tabs, tab) }
func (s *recordingSurface) RenderOrder(view views.OrderView) { s.order = &view }
func (s *recordingSurface) RenderList(view views.ListView)   { s.list = &view }
func (s *recordingSurface) Navigate(fragment string)         { s.navigated = append(s.navigated, fragment) }
func (s *recordingSurface) Notify(message string)            { s.notices = append(s.notices, message) }

type stubService struct {
	mu         sync.Mutex
	orders     map[string]orders.Order
	entries    []orders.ListEntry
	listErr    error
	orderGate  chan struct{}
	orderBegun chan struct{}
}

func (s *stubService) Order(ctx context.Context, id string) (*orders.Order, error) {
	if s.orderBegun != nil {
		close(s.orderBegun)
	}
	if s.orderGate != nil {
		<-s.orderGate
	}
	s.mu.Lock()
	order, ok := s.orders[id]
	s.mu.Unlock()
	if !ok {
		return nil, &orders.NotFoundError{ID: id}
	}
	return &order, nil
}

func (s *stubService) List(ctx context.Context) ([]orders.ListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries, nil
}

func TestHandleSearch(t *testing.T) {
	t.Parallel()

	rt := New(&stubService{}, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/search", surface, surface)

	require.Equal(t, []Page{PageSearch}, surface.pages)
	require.Equal(t, []Name{RouteSearch}, surface.tabs)
	require.Empty(t, surface.navigated)
	require.Equal(t, Route{Name: RouteSearch}, rt.Current())
}

func TestHandleOrderSuccess(t *testing.T) {
	t.Parallel()

	amount := 150.0
	svc := &stubService{orders: map[string]orders.Order{
		"ABC123": {
			OrderUID: "ABC123",
			Payment:  &orders.Payment{Amount: &amount, Currency: "USD"},
		},
	}}
	rt := New(svc, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/order/ABC123", surface, surface)

	require.Equal(t, []Page{PageOrder}, surface.pages)
	require.NotNil(t, surface.order)
	require.Equal(t, "$150.00", surface.order.Amount)
	require.Equal(t, "PENDING", surface.order.Status)
	require.Empty(t, surface.notices)
	require.Equal(t, Route{Name: RouteOrder, Arg: "ABC123"}, rt.Current())
}

func TestHandleOrderFailureFallsBackToSearch(t *testing.T) {
	t.Parallel()

	rt := New(&stubService{}, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/order/missing", surface, surface)

	require.Nil(t, surface.order)
	require.Equal(t, []string{"Order not found"}, surface.notices)
	require.Equal(t, []string{"#/search"}, surface.navigated)
}

func TestHandleListRendersInsideSearch(t *testing.T) {
	t.Parallel()

	svc := &stubService{entries: []orders.ListEntry{{ID: "a", CreatedAt: "2024-01-01T00:00:00Z"}}}
	rt := New(svc, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/list", surface, surface)

	require.Equal(t, []Page{PageSearch}, surface.pages, "the list renders as a panel inside search")
	require.Equal(t, []Name{RouteSearch}, surface.tabs, "list resolves visually to the search tab")
	require.NotNil(t, surface.list)
	require.Equal(t, "Total: 1", surface.list.CountLabel)
}

func TestHandleListFailureKeepsPanelHidden(t *testing.T) {
	t.Parallel()

	rt := New(&stubService{listErr: orders.ErrListUnavailable}, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/list", surface, surface)

	require.Nil(t, surface.list)
	require.Equal(t, []string{"Could not load the order list"}, surface.notices)
	require.Empty(t, surface.navigated, "a failed list load does not navigate away")
}

func TestHandleAbout(t *testing.T) {
	t.Parallel()

	rt := New(&stubService{}, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/about", surface, surface)

	require.Equal(t, []Page{PageAbout}, surface.pages)
	require.Equal(t, []Name{RouteAbout}, surface.tabs)
}

func TestHandleUnknownRedirectsToSearch(t *testing.T) {
	t.Parallel()

	rt := New(&stubService{}, nil)
	surface := &recordingSurface{}

	rt.Handle(context.Background(), "#/unknownroute", surface, surface)

	require.Empty(t, surface.pages)
	require.Equal(t, []string{"#/search"}, surface.navigated)
}

func TestHandleDiscardsStaleCompletion(t *testing.T) {
	t.Parallel()

	svc := &stubService{
		orders:     map[string]orders.Order{"slow": {OrderUID: "slow"}},
		orderGate:  make(chan struct{}),
		orderBegun: make(chan struct{}),
	}
	rt := New(svc, nil)

	stale := &recordingSurface{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		rt.Handle(context.Background(), "#/order/slow", stale, stale)
	}()

	// Wait until the slow fetch is in flight, then move the route on.
	<-svc.orderBegun
	fresh := &recordingSurface{}
	rt.Handle(context.Background(), "#/search", fresh, fresh)

	close(svc.orderGate)
	<-done

	require.Nil(t, stale.order, "a completion for a superseded route must be discarded")
	require.Equal(t, Route{Name: RouteSearch}, rt.Current())
}
