package httpserver

import (
	"finitefield.org/orderview/internal/orderview/router"
	"finitefield.org/orderview/internal/orderview/views"
)

// pageSurface collects the router's paint calls for one request so the
// handler can render them in a single template pass afterwards. It also
// acts as the notifier: a later message simply replaces the current one.
type pageSurface struct {
	page     router.Page
	tab      router.Name
	order    *views.OrderView
	list     *views.ListView
	notice   string
	redirect string
}

func (s *pageSurface) ShowPage(page router.Page) { s.page = page }

func (s *pageSurface) SelectTab(tab router.Name) { s.tab = tab }

func (s *pageSurface) RenderOrder(view views.OrderView) { s.order = &view }

func (s *pageSurface) RenderList(view views.ListView) { s.list = &view }

func (s *pageSurface) Navigate(fragment string) { s.redirect = fragment }

func (s *pageSurface) Notify(message string) { s.notice = message }
