// Package router owns the view state machine: it maps fragment-change
// events onto page activations and data loads, and paints the result
// through a host-provided Surface. All navigation funnels through Handle
// so there is a single code path regardless of how a fragment change was
// triggered.
package router

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"finitefield.org/orderview/internal/orderview/orders"
	"finitefield.org/orderview/internal/orderview/views"
)

// searchFragment is the safe default every failed or unknown transition
// falls back to.
const searchFragment = "#/search"

// Surface is the rendering side of the host: an adapter that applies view
// models to the concrete UI.
type Surface interface {
	// ShowPage activates exactly one page.
	ShowPage(page Page)
	// SelectTab marks exactly one navigation tab as selected.
	SelectTab(tab Name)
	// RenderOrder paints the order detail view.
	RenderOrder(view views.OrderView)
	// RenderList paints the list panel inside the search view.
	RenderList(view views.ListView)
	// Navigate replaces the current fragment and ends the transition.
	Navigate(fragment string)
}

// Notifier shows a transient user-facing message.
type Notifier interface {
	Notify(message string)
}

// Router resolves fragments into view states. It owns the current route
// and a generation token used to discard data loads that complete after
// the route has already moved on.
type Router struct {
	svc orders.Service
	log *zap.Logger

	mu      sync.Mutex
	current Route
	gen     uint64
}

// New constructs a Router over the given order service.
func New(svc orders.Service, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		svc:     svc,
		log:     log,
		current: Route{Name: RouteSearch},
	}
}

// Current returns the active route.
func (rt *Router) Current() Route {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.current
}

// Handle resolves one fragment-change event against the surface. Fetch
// failures never propagate: they become notifications and a fall-back to
// the search view.
func (rt *Router) Handle(ctx context.Context, fragment string, surface Surface, notifier Notifier) {
	route := ParseFragment(fragment)

	switch route.Name {
	case RouteSearch:
		rt.activate(route, PageSearch, RouteSearch, surface)

	case RouteOrder:
		gen := rt.activate(route, PageOrder, RouteSearch, surface)
		order, err := rt.svc.Order(ctx, route.Arg)
		if err != nil {
			rt.log.Warn("order lookup failed", zap.String("id", route.Arg), zap.Error(err))
			notifier.Notify(noticeText(err))
			surface.Navigate(searchFragment)
			return
		}
		if !rt.stillCurrent(gen) {
			return
		}
		surface.RenderOrder(views.BuildOrderView(order))

	case RouteList:
		// The list renders as a panel inside the search view.
		gen := rt.activate(route, PageSearch, RouteSearch, surface)
		entries, err := rt.svc.List(ctx)
		if err != nil {
			rt.log.Warn("list fetch failed", zap.Error(err))
			notifier.Notify(noticeText(err))
			return
		}
		if !rt.stillCurrent(gen) {
			return
		}
		surface.RenderList(views.BuildListView(entries))

	case RouteAbout:
		rt.activate(route, PageAbout, RouteAbout, surface)

	default:
		surface.Navigate(searchFragment)
	}
}

// activate records the new route state, bumps the generation token and
// paints the static part of the transition.
func (rt *Router) activate(route Route, page Page, tab Name, surface Surface) uint64 {
	rt.mu.Lock()
	rt.current = route
	rt.gen++
	gen := rt.gen
	rt.mu.Unlock()

	surface.ShowPage(page)
	surface.SelectTab(tab)
	return gen
}

// stillCurrent reports whether a completion tagged with gen may still be
// applied, i.e. no newer transition has started since it was issued.
func (rt *Router) stillCurrent(gen uint64) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.gen == gen
}

func noticeText(err error) string {
	var notFound *orders.NotFoundError
	var invalid *orders.ValidationError
	switch {
	case errors.As(err, &invalid):
		return "Enter an order ID"
	case errors.As(err, &notFound):
		return "Order not found"
	case errors.Is(err, orders.ErrListUnavailable):
		return "Could not load the order list"
	case errors.Is(err, orders.ErrNoOrders):
		return "Load the list first"
	default:
		return "Order not found"
	}
}

// Notice maps a service error onto its user-facing message. Hosts use it
// to keep wording consistent with router-driven notifications.
func Notice(err error) string {
	return noticeText(err)
}
