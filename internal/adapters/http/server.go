// Package http serves kolam generation and pattern storage over a JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kolamkit/kolam"
	"github.com/kolamkit/kolam/internal/logging"
	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/palette"
	"github.com/kolamkit/kolam/pkg/ports"
	"github.com/kolamkit/kolam/pkg/render"
)

// maxImageSize bounds the ?size= query of the image endpoint so one request
// cannot allocate an arbitrary canvas.
const maxImageSize = 4096

const shutdownTimeout = 5 * time.Second

// Config wires the server's collaborators. Generator and Store are
// required; everything else has defaults.
type Config struct {
	Addr      string
	Logger    *slog.Logger
	Generator ports.Generator
	Store     ports.PatternStore
	// Palette is the scheme used when an image request names none.
	Palette string
	// CORSOrigins restricts cross-origin callers; empty allows any origin.
	CORSOrigins []string
	// Registry exposes /metrics and collects request metrics when set.
	Registry *prometheus.Registry
}

// Server exposes the kolam engine over HTTP.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	metrics *serverMetrics
	srv     *http.Server
}

// New creates the server and builds its route tree.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Palette == "" {
		cfg.Palette = "classic"
	}

	s := &Server{cfg: cfg, logger: cfg.Logger}
	if cfg.Registry != nil {
		s.metrics = newServerMetrics(cfg.Registry)
	}
	s.srv = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the route tree. Exposed so tests can drive the server
// without a listener.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)

	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Kept from the first generation of the service.
	r.Post("/generate-kolam", s.handleGenerate)

	r.Get("/healthz", s.handleHealth)
	r.Get("/openapi.yaml", s.handleOpenAPI)
	if s.cfg.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.cfg.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/patterns", s.handleGenerate)
		r.Get("/patterns", s.handleList)
		r.Get("/patterns/{id}", s.handleGetPattern)
		r.Delete("/patterns/{id}", s.handleDeletePattern)
		r.Get("/patterns/{id}/image", s.handleImage)
		r.Get("/palettes", s.handlePalettes)
	})

	return r
}

// Start runs the server until ctx is cancelled, then drains connections.
func (s *Server) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", "addr", s.srv.Addr)
		serverErrors <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("graceful shutdown did not complete", "err", err)
			return s.srv.Close()
		}
		s.logger.Info("http server stopped")
		return nil
	}
}

type generateRequest struct {
	Size     int    `json:"size"`
	Seed     *int64 `json:"seed,omitempty"`
	Mutation string `json:"mutation,omitempty"`
}

type generateResponse struct {
	Success  bool            `json:"success"`
	Pattern  *domain.Pattern `json:"pattern,omitempty"`
	StoredID string          `json:"stored_id,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// handleGenerate serves POST /generate-kolam and POST /api/v1/patterns.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.fail(w, http.StatusBadRequest, "invalid request body")
		s.logger.Warn("generate: invalid request body", "err", err)
		return
	}

	var mode domain.Mutation
	if body.Mutation != "" {
		var err error
		mode, err = domain.ParseMutation(body.Mutation)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	var (
		p   *domain.Pattern
		err error
	)
	switch {
	case body.Seed != nil:
		p, err = s.cfg.Generator.GenerateSeeded(r.Context(), body.Size, *body.Seed, mode)
	case mode != "":
		p, err = s.cfg.Generator.GenerateMutated(r.Context(), body.Size, mode)
	default:
		p, err = s.cfg.Generator.Generate(r.Context(), body.Size)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSize) {
			s.fail(w, http.StatusBadRequest, err.Error())
			return
		}
		s.fail(w, http.StatusInternalServerError, "generation failed")
		s.logger.Error("generate failed", "err", err)
		return
	}

	id, err := s.cfg.Store.Save(r.Context(), p)
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "store failed")
		s.logger.Error("pattern save failed", "err", err)
		return
	}

	s.respond(w, http.StatusOK, generateResponse{Success: true, Pattern: p, StoredID: id})
}

// handleList serves GET /api/v1/patterns.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.cfg.Store.List(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, "store failed")
		s.logger.Error("pattern list failed", "err", err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"ids": ids, "count": len(ids)})
}

// handleGetPattern serves GET /api/v1/patterns/{id}.
func (s *Server) handleGetPattern(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPattern(w, r)
	if !ok {
		return
	}
	s.respond(w, http.StatusOK, p)
}

// handleDeletePattern serves DELETE /api/v1/patterns/{id}.
func (s *Server) handleDeletePattern(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.cfg.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrPatternNotFound) {
			s.fail(w, http.StatusNotFound, err.Error())
			return
		}
		s.fail(w, http.StatusInternalServerError, "store failed")
		s.logger.Error("pattern delete failed", "err", err, "id", id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleImage serves GET /api/v1/patterns/{id}/image, rasterizing the
// stored pattern to PNG.
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPattern(w, r)
	if !ok {
		return
	}

	scheme := palette.GetOrDefault(s.cfg.Palette)
	if name := r.URL.Query().Get("palette"); name != "" {
		var err error
		scheme, err = palette.Get(name)
		if err != nil {
			s.fail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	size := 800
	if raw := r.URL.Query().Get("size"); raw != "" {
		var err error
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 || size > maxImageSize {
			s.fail(w, http.StatusBadRequest, "invalid image size")
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	if err := render.RenderPNG(w, p, scheme, render.Options{Width: size, Height: size}); err != nil {
		// Headers are already out; all we can do is log.
		s.logger.Error("image encode failed", "err", err)
		return
	}
	if s.metrics != nil {
		s.metrics.renders.Inc()
	}
}

// handlePalettes serves GET /api/v1/palettes.
func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]any{"palettes": palette.Names()})
}

// handleHealth serves GET /healthz.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": strings.TrimSpace(kolam.Version),
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(kolam.OpenAPISpec); err != nil {
		s.logger.Error("write openapi spec", "err", err)
	}
}

func (s *Server) loadPattern(w http.ResponseWriter, r *http.Request) (*domain.Pattern, bool) {
	id := chi.URLParam(r, "id")
	p, err := s.cfg.Store.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPatternNotFound) {
			s.fail(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		s.fail(w, http.StatusInternalServerError, "store failed")
		s.logger.Error("pattern load failed", "err", err, "id", id)
		return nil, false
	}
	return p, true
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, msg string) {
	s.respond(w, status, generateResponse{Success: false, Error: msg})
}

// instrument logs every request and feeds the request metrics.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		took := time.Since(start)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"took", took)

		if s.metrics != nil {
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			s.metrics.requests.WithLabelValues(route, strconv.Itoa(ww.Status())).Inc()
			s.metrics.duration.Observe(took.Seconds())
		}
	})
}

type serverMetrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
	renders  prometheus.Counter
}

func newServerMetrics(reg *prometheus.Registry) *serverMetrics {
	m := &serverMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "kolam_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "kolam_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}),
		renders: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "kolam_http_renders_total",
			Help: "Patterns rasterized to PNG over HTTP.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.renders)
	return m
}
