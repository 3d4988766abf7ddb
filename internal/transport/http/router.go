package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SafalBhandari12/event/internal/ui"
	"github.com/SafalBhandari12/event/internal/view"
)

type RouterConfig struct {
	Events       EventFinder
	Orders       OrderPlacer
	Newsletter   NewsletterSubscriber
	Logger       *zap.Logger
	CORSOrigins  []string
	GalleryScope ui.NavigationScope
}

// NewRouter wires pages, fragments, the JSON API and static assets behind
// the shared middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pages := Pages{
		Events:       cfg.Events,
		Orders:       cfg.Orders,
		Newsletter:   cfg.Newsletter,
		Logger:       logger,
		GalleryScope: cfg.GalleryScope,
	}
	api := API{
		Events:       cfg.Events,
		Orders:       cfg.Orders,
		Newsletter:   cfg.Newsletter,
		Logger:       logger,
		GalleryScope: cfg.GalleryScope,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", HealthHandler)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(view.Static())))

	mux.Handle("GET /{$}", pages.Home())
	mux.Handle("GET /events/{slug}", pages.Event())
	mux.Handle("GET /events/{slug}/gallery", pages.Gallery())
	mux.Handle("GET /events/{slug}/schedule", pages.Schedule())
	mux.Handle("GET /events/{slug}/checkout/{tier}", pages.CheckoutForm())
	mux.Handle("POST /events/{slug}/checkout/{tier}", pages.CheckoutSubmit())
	mux.Handle("POST /events/{slug}/newsletter", pages.NewsletterSubmit())

	mux.Handle("GET /api/events", api.ListEvents())
	mux.Handle("GET /api/events/{slug}", api.GetEvent())
	mux.Handle("GET /api/events/{slug}/gallery", api.Gallery())
	mux.Handle("GET /api/events/{slug}/schedule", api.Schedule())
	mux.Handle("POST /api/events/{slug}/orders", api.PlaceOrder())
	mux.Handle("POST /api/events/{slug}/subscriptions", api.Subscribe())

	mux.Handle("/", NotFoundHandler())

	return RequestLogger(Recoverer(CORS(cfg.CORSOrigins, mux), logger), logger)
}
