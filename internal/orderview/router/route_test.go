package router

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fragment string
		want     Route
	}{
		{name: "empty defaults to search", fragment: "", want: Route{Name: RouteSearch}},
		{name: "bare hash defaults to search", fragment: "#", want: Route{Name: RouteSearch}},
		{name: "search", fragment: "#/search", want: Route{Name: RouteSearch}},
		{name: "search without hash", fragment: "/search", want: Route{Name: RouteSearch}},
		{name: "order", fragment: "#/order/abc", want: Route{Name: RouteOrder, Arg: "abc"}},
		{name: "order decodes argument", fragment: "#/order/a%2Fb", want: Route{Name: RouteOrder, Arg: "a/b"}},
		{name: "order extra segments ignored", fragment: "#/order/abc/extra", want: Route{Name: RouteOrder, Arg: "abc"}},
		{name: "order without id is unknown", fragment: "#/order", want: Route{Name: RouteUnknown}},
		{name: "order with empty id is unknown", fragment: "#/order/", want: Route{Name: RouteUnknown}},
		{name: "list", fragment: "#/list", want: Route{Name: RouteList}},
		{name: "about", fragment: "#/about", want: Route{Name: RouteAbout}},
		{name: "unknown name", fragment: "#/bogus", want: Route{Name: RouteUnknown}},
		{name: "missing slash is unknown", fragment: "#search", want: Route{Name: RouteUnknown}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ParseFragment(tc.fragment))
		})
	}
}
