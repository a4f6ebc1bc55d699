package router

import (
	"net/url"
	"strings"
)

// Name identifies a route in the fragment grammar.
type Name string

const (
	// RouteUnknown is the transition target for unrecognised fragments.
	RouteUnknown Name = ""
	// RouteSearch is the default route.
	RouteSearch Name = "search"
	// RouteOrder shows a single order; it carries the order id argument.
	RouteOrder Name = "order"
	// RouteList shows the catalog panel inside the search view.
	RouteList Name = "list"
	// RouteAbout shows the about page.
	RouteAbout Name = "about"
)

// Page identifies a rendered page. The list route has no page of its own;
// it renders as a panel inside the search page.
type Page string

const (
	// PageSearch is the search form page.
	PageSearch Page = "search"
	// PageOrder is the order detail page.
	PageOrder Page = "order"
	// PageAbout is the about page.
	PageAbout Page = "about"
)

// Route is a parsed fragment: /<name> or /<name>/<argument>.
type Route struct {
	Name Name
	Arg  string
}

// ParseFragment maps a URL fragment onto a route. The grammar is
// "#/search", "#/order/<urlencoded-id>", "#/list" and "#/about"; a missing
// or empty fragment is equivalent to "#/search" and anything else resolves
// to RouteUnknown. Segments beyond the argument are ignored.
func ParseFragment(fragment string) Route {
	trimmed := strings.TrimPrefix(strings.TrimSpace(fragment), "#")
	if trimmed == "" {
		return Route{Name: RouteSearch}
	}
	if !strings.HasPrefix(trimmed, "/") {
		return Route{Name: RouteUnknown}
	}

	segments := strings.Split(trimmed, "/")
	name := segments[1]
	arg := ""
	if len(segments) > 2 {
		arg = unescape(segments[2])
	}

	switch Name(name) {
	case RouteSearch:
		return Route{Name: RouteSearch}
	case RouteOrder:
		if arg == "" {
			return Route{Name: RouteUnknown}
		}
		return Route{Name: RouteOrder, Arg: arg}
	case RouteList:
		return Route{Name: RouteList}
	case RouteAbout:
		return Route{Name: RouteAbout}
	default:
		return Route{Name: RouteUnknown}
	}
}

func unescape(segment string) string {
	decoded, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return decoded
}
