package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/fieldrules/pkg/httpserver"
	"github.com/dmitrymomot/fieldrules/pkg/logger"
	"github.com/dmitrymomot/fieldrules/pkg/requestid"
	"github.com/dmitrymomot/fieldrules/pkg/ruleset"
	"github.com/dmitrymomot/fieldrules/pkg/schema"
	"github.com/dmitrymomot/fieldrules/pkg/validator"
)

// DefaultMaxBodySize caps request documents at 1 MiB.
const DefaultMaxBodySize int64 = 1 << 20

// Handler serves validation requests against one loaded ruleset set.
type Handler struct {
	set         *ruleset.Set
	log         *slog.Logger
	metrics     *Metrics
	maxBodySize int64
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithMetrics records request outcomes and serves them at GET /metrics.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

func WithMaxBodySize(n int64) Option {
	if n <= 0 {
		panic("WithMaxBodySize: size must be > 0")
	}
	return func(h *Handler) { h.maxBodySize = n }
}

// New returns a Handler for set.
func New(set *ruleset.Set, opts ...Option) *Handler {
	if set == nil {
		panic("api: nil ruleset set")
	}
	h := &Handler{
		set:         set,
		log:         logger.NewNop(),
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Router mounts the API routes:
//
//	POST /v1/validate/{ruleset}
//	GET  /v1/rulesets
//	GET  /health
//	GET  /metrics (with WithMetrics)
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(h.log))
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rulesets", h.listRulesets)
		r.Post("/validate/{ruleset}", h.validate)
	})
	return r
}

type violationResponse struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type rulesetResponse struct {
	Name     string               `json:"name"`
	Bindings []schema.BindingInfo `json:"bindings"`
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "ruleset")
	log := h.log.With(logger.Ruleset(name))

	rs, err := h.set.Get(name)
	if err != nil {
		h.metrics.IncrementOutcome(name, OutcomeUnknown)
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}

	doc, err := ruleset.DecodeDocument(http.MaxBytesReader(w, r.Body, h.maxBodySize), ruleset.FormatJSON)
	if err != nil {
		h.metrics.IncrementOutcome(name, OutcomeBadRequest)
		log.DebugContext(ctx, "document rejected", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	err = rs.Validate(doc)
	elapsed := time.Since(start)
	h.metrics.ObserveDuration(name, elapsed)

	if ve, ok := validator.AsValidationError(err); ok {
		h.metrics.IncrementOutcome(name, OutcomeInvalid)
		log.InfoContext(ctx, "document invalid", logger.Violation(ve), logger.Duration(elapsed))
		writeJSON(w, http.StatusUnprocessableEntity, violationResponse{
			Path:    ve.Path,
			Message: ve.Message,
			Error:   ve.Error(),
		})
		return
	}
	if err != nil {
		log.ErrorContext(ctx, "validation failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	h.metrics.IncrementOutcome(name, OutcomeValid)
	log.DebugContext(ctx, "document valid", logger.Duration(elapsed))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listRulesets(w http.ResponseWriter, r *http.Request) {
	names := h.set.Names()
	out := make([]rulesetResponse, 0, len(names))
	for _, name := range names {
		rs, err := h.set.Get(name)
		if err != nil {
			continue
		}
		out = append(out, rulesetResponse{Name: name, Bindings: rs.Bindings()})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
