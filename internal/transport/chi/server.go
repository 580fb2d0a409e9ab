package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/cardquery/internal/domain/search/request"
	"github.com/kailas-cloud/cardquery/internal/repository/cardfile"
	"github.com/kailas-cloud/cardquery/internal/repository/record"
	corpusuc "github.com/kailas-cloud/cardquery/internal/usecase/corpus"
	healthuc "github.com/kailas-cloud/cardquery/internal/usecase/health"
	searchuc "github.com/kailas-cloud/cardquery/internal/usecase/search"
)

// ServerConfig holds request-shaping limits.
type ServerConfig struct {
	DefaultPageSize int
	MaxPageSize     int
	MaxBodyBytes    int64
}

// Server holds the HTTP handlers of the card query API.
type Server struct {
	search        *searchuc.Service
	corpus        *corpusuc.Service
	health        *healthuc.Service
	cfg           ServerConfig
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	corpus *corpusuc.Service,
	health *healthuc.Service,
	cfg ServerConfig,
	logger *zap.Logger,
) *Server {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = request.DefaultPageSize
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = request.MaxPageSize
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 32 << 20
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		search:        search,
		corpus:        corpus,
		health:        health,
		cfg:           cfg,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Search handles POST /api/v1/search. An empty body is a blank search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	var body SearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)).Decode(&body); err != nil &&
		!errors.Is(err, io.EOF) {
		s.writeDecodeError(w, err)
		return
	}

	req, err := searchRequestFromBody(body, s.cfg.DefaultPageSize)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	res := s.search.Search(req)
	prefs := req.Preferences().ClampPageSize(s.cfg.MaxPageSize)
	writeJSON(w, http.StatusOK, searchResponseFromResult(&res, prefs))
}

// Autocomplete handles GET /api/v1/autocomplete?q=.
func (s *Server) Autocomplete(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, AutocompleteResponse{
		Suggestions: s.search.Autocomplete(r.URL.Query().Get("q")),
	})
}

// ReplaceCorpus handles PUT /api/v1/corpus. The body is a JSON or YAML card
// list, bare or under a "cards" key.
func (s *Server) ReplaceCorpus(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		s.writeDecodeError(w, err)
		return
	}
	records, err := cardfile.Decode(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	cards, err := record.ToCards(records)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	report, err := s.corpus.Replace(r.Context(), cards)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CorpusResponse{Generation: report.Generation, Cards: report.Cards})
}

// ReloadCorpus handles POST /api/v1/corpus/reload.
func (s *Server) ReloadCorpus(w http.ResponseWriter, r *http.Request) {
	report, err := s.corpus.Reload(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CorpusResponse{
		Generation: report.Generation,
		Cards:      report.Cards,
		Sources:    report.Sources,
	})
}

// CorpusStats handles GET /api/v1/corpus.
func (s *Server) CorpusStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, statsToResponse(s.search.Stats()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, CodePayloadTooLarge, "request body too large")
		return
	}
	writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
