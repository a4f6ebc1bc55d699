package httpserver

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"finitefield.org/orderview/internal/orderview/orders"
	"finitefield.org/orderview/internal/orderview/router"
	"finitefield.org/orderview/internal/orderview/views"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed content/about.md content/examples.yaml
var contentFS embed.FS

// toastMillis is how long a notification stays visible before auto-hiding.
const toastMillis = 2200

// Handlers exposes the HTTP handlers for the viewer pages.
type Handlers struct {
	client    *orders.Client
	rt        *router.Router
	templates *template.Template
	examples  []string
	about     template.HTML
	log       *zap.Logger
}

// NewHandlers wires the handler set. When no backend service or API URL is
// configured the built-in demo fixtures are used.
func NewHandlers(cfg Config) (*Handlers, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	svc := cfg.Service
	if svc == nil {
		if strings.TrimSpace(cfg.APIBaseURL) != "" {
			httpSvc, err := orders.NewHTTPService(cfg.APIBaseURL, cfg.HTTPClient)
			if err != nil {
				return nil, err
			}
			svc = httpSvc
		} else {
			log.Info("no API URL configured; serving demo fixtures")
			svc = orders.NewStaticService()
		}
	}

	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	examples, err := loadExamples(cfg.ExamplesFile)
	if err != nil {
		return nil, err
	}

	about, err := renderAbout()
	if err != nil {
		return nil, err
	}

	client := orders.NewClient(svc)
	return &Handlers{
		client:    client,
		rt:        router.New(client, log),
		templates: templates,
		examples:  examples,
		about:     about,
		log:       log,
	}, nil
}

// SearchPage renders the search view.
func (h *Handlers) SearchPage(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "#/search")
}

// OrderPage renders the detail view for one order.
func (h *Handlers) OrderPage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	// chi hands back the raw segment when the path was escaped.
	if decoded, err := url.PathUnescape(id); err == nil {
		id = decoded
	}
	h.resolve(w, r, "#/order/"+url.PathEscape(id))
}

// ListPage renders the search view with the catalog panel loaded.
func (h *Handlers) ListPage(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "#/list")
}

// AboutPage renders the about view.
func (h *Handlers) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "#/about")
}

// SearchSubmit validates the submitted order id and, when it resolves,
// navigates to its detail view. Navigation is a redirect only; rendering
// happens in the GET handlers.
func (h *Handlers) SearchSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "could not parse form", http.StatusBadRequest)
		return
	}

	id := strings.TrimSpace(r.PostFormValue("id"))
	if id == "" {
		setNotice(w, "Enter an order ID")
		http.Redirect(w, r, "/search", http.StatusSeeOther)
		return
	}

	// Confirm the order exists before navigating so the user is not sent
	// to an empty detail page. A hit here also warms the cache.
	if _, err := h.client.Order(r.Context(), id); err != nil {
		h.log.Warn("search lookup failed", zap.String("id", id), zap.Error(err))
		setNotice(w, router.Notice(err))
		http.Redirect(w, r, "/search", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/order/"+url.PathEscape(id), http.StatusSeeOther)
}

// RandomOrder picks a random entry from the last known list, fetching one
// list only when no snapshot exists yet.
func (h *Handlers) RandomOrder(w http.ResponseWriter, r *http.Request) {
	entry, err := h.client.Pick(r.Context())
	if err != nil {
		setNotice(w, router.Notice(err))
		http.Redirect(w, r, "/search", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/order/"+url.PathEscape(entry.ID), http.StatusSeeOther)
}

// pageData is the template payload for a fully resolved page.
type pageData struct {
	Title       string
	Page        string
	Tab         string
	Order       *views.OrderView
	List        *views.ListView
	Examples    []string
	About       template.HTML
	SearchValue string
	Notice      string
	ToastMillis int
}

// resolve feeds one fragment into the router and paints the outcome:
// either a redirect (with any notice carried across it) or a rendered page.
func (h *Handlers) resolve(w http.ResponseWriter, r *http.Request, fragment string) {
	surface := &pageSurface{}
	h.rt.Handle(r.Context(), fragment, surface, surface)

	if surface.redirect != "" {
		if surface.notice != "" {
			setNotice(w, surface.notice)
		}
		http.Redirect(w, r, fragmentPath(surface.redirect), http.StatusSeeOther)
		return
	}

	notice := popNotice(w, r)
	if surface.notice != "" {
		// A fresh notification replaces whatever was pending.
		notice = surface.notice
	}

	data := pageData{
		Title:       "Order Lookup",
		Page:        string(surface.page),
		Tab:         string(surface.tab),
		Order:       surface.order,
		List:        surface.list,
		Examples:    h.examples,
		About:       h.about,
		SearchValue: r.URL.Query().Get("example"),
		Notice:      notice,
		ToastMillis: toastMillis,
	}
	if surface.order != nil {
		data.Title = surface.order.Title
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, "layout", data); err != nil {
		h.log.Error("render page failed", zap.String("page", data.Page), zap.Error(err))
	}
}

// fragmentPath maps a fragment back onto its server path.
func fragmentPath(fragment string) string {
	path := strings.TrimPrefix(fragment, "#")
	if path == "" || !strings.HasPrefix(path, "/") {
		return "/search"
	}
	return path
}
