package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pathtree/internal/handlers"
	"pathtree/internal/outline"
	"pathtree/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	TreeService service.TreeService
	DB          handlers.Pinger
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	// Add CORS middleware
	r.Use(CORS)

	nodeHandler := handlers.NewNodeHandler(deps.TreeService)
	importHandler := handlers.NewImportHandler(deps.TreeService, outline.NewParser())
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodPost, "/import", importHandler)

		r.Route("/nodes", func(r chi.Router) {
			r.Get("/", nodeHandler.ListRoots)
			r.Post("/", nodeHandler.Create)

			r.Route("/{path}", func(r chi.Router) {
				r.Get("/", nodeHandler.Get)
				r.Patch("/", nodeHandler.Update)
				r.Delete("/", nodeHandler.Delete)
				r.Get("/children", nodeHandler.Children)
				r.Get("/siblings", nodeHandler.Siblings)
				r.Get("/descendants", nodeHandler.Descendants)
				r.Get("/ancestors", nodeHandler.Ancestors)
				r.Get("/branch", nodeHandler.Branch)
				r.Get("/full-name", nodeHandler.FullName)
			})
		})
	})

	return r
}
