package views

import (
	"fmt"
	"net/url"

	"finitefield.org/orderview/internal/orderview/orders"
)

// ListView is the display model for the inline list panel on the search
// page. Hidden is set when there is nothing to show; the adapter must then
// omit the panel entirely.
type ListView struct {
	Rows       []ListRow
	CountLabel string
	Hidden     bool
}

// ListRow is a single clickable catalog reference.
type ListRow struct {
	ID        string
	CreatedAt string
	Href      string
}

// BuildListView converts catalog references into the list panel model.
func BuildListView(entries []orders.ListEntry) ListView {
	view := ListView{
		CountLabel: fmt.Sprintf("Total: %d", len(entries)),
		Hidden:     len(entries) == 0,
	}
	for _, entry := range entries {
		view.Rows = append(view.Rows, ListRow{
			ID:        entry.ID,
			CreatedAt: Timestamp(entry.CreatedAt),
			Href:      "/order/" + url.PathEscape(entry.ID),
		})
	}
	return view
}
