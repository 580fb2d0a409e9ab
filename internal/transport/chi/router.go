package chi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardquery/internal/metrics"
)

// RouterConfig holds middleware settings.
type RouterConfig struct {
	APIKeys   []string
	RateRPS   float64
	RateBurst int
}

// NewRouter mounts the API on a chi router.
// Health and metrics bypass the rate limiter; only corpus writes need a key.
func NewRouter(s *Server, cfg RouterConfig, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(WideEvent(logger))
	r.Use(metrics.Middleware())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, CodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, CodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RateLimit(cfg.RateRPS, cfg.RateBurst))

		r.Post("/search", s.Search)
		r.Get("/autocomplete", s.Autocomplete)
		r.Get("/corpus", s.CorpusStats)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuthMiddleware(cfg.APIKeys))
			r.Put("/corpus", s.ReplaceCorpus)
			r.Post("/corpus/reload", s.ReloadCorpus)
		})
	})

	return r
}
