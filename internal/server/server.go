// Package server serves fitted charts over HTTP.
//
// Each request names a chart kind and the size of the element that will host
// the chart; the server renders the matching dashboard document into a
// container of that size and returns the SVG:
//
//	GET /charts/bar?data=summary&series=week&width=640&height=360
//	GET /charts/pie?data=ai_ratio&width=400&height=300&legend_scale=0.8
//	GET /charts/pie/geometry?width=400&height=300
//	GET /healthz
//
// Documents are read from the configured data directory as <data>.json. The
// default document is "summary" for bar charts and "ai_ratio" for pie charts.
// Every request renders into its own container, so requests never share a
// chart tree.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sketchfit/pkg/buildinfo"
	"github.com/matzehuels/sketchfit/pkg/dashboard"
	"github.com/matzehuels/sketchfit/pkg/errors"
	"github.com/matzehuels/sketchfit/pkg/observability"
	"github.com/matzehuels/sketchfit/pkg/pipeline"
	"github.com/matzehuels/sketchfit/pkg/sketch"
)

// Default documents per chart kind.
const (
	DefaultBarData = "summary"
	DefaultPieData = "ai_ratio"
)

// Config configures the chart server.
type Config struct {
	// Address is the HTTP listen address (default ":8080").
	Address string

	// DataDir holds the dashboard documents.
	DataDir string

	// Runner renders and caches charts. A runner without a cache is used
	// when nil.
	Runner *pipeline.Runner

	// Chart holds the default chart options; query parameters override it.
	Chart *sketch.Options

	Logger *log.Logger

	// ReadTimeout is the HTTP read timeout.
	ReadTimeout time.Duration

	// WriteTimeout is the HTTP write timeout.
	WriteTimeout time.Duration
}

// Server is the chart HTTP server.
type Server struct {
	config     Config
	httpServer *http.Server
	router     chi.Router
}

// New creates a chart server.
func New(cfg Config) *Server {
	if cfg.Address == "" {
		cfg.Address = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 30 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}

	s := &Server{config: cfg}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Route("/charts/{kind}", func(r chi.Router) {
		r.Get("/", s.handleChart)
		r.Get("/geometry", s.handleGeometry)
	})
	return r
}

// Start listens on the configured address and serves until Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.config.Logger.Info("serving charts", "addr", s.config.Address, "data", s.config.DataDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// observe reports every request to the HTTP hooks and the debug log.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.config.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// healthResponse is the body of /healthz.
type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	result, err := s.render(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	if result.CacheHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.SVG)
}

func (s *Server) handleGeometry(w http.ResponseWriter, r *http.Request) {
	result, err := s.render(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result.Geometry)
}

// render runs the pipeline for the chart a request describes.
func (s *Server) render(r *http.Request) (*pipeline.Result, error) {
	opts, name, err := s.requestOptions(r)
	if err != nil {
		return nil, err
	}
	data, err := s.readDocument(name)
	if err != nil {
		return nil, err
	}
	return s.config.Runner.Execute(r.Context(), data, opts)
}

// requestOptions builds pipeline options from the route and query.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, string, error) {
	kind := chi.URLParam(r, "kind")
	q := r.URL.Query()

	chart := sketch.Options{}
	if s.config.Chart != nil {
		chart = *s.config.Chart
	}
	if v := q.Get("title"); v != "" {
		chart.Title = v
	}
	if v := q.Get("legend_position"); v != "" {
		chart.LegendPosition = sketch.Position(v)
	}

	opts := pipeline.Options{
		Kind:   kind,
		Series: dashboard.Series(q.Get("series")),
		Chart:  &chart,
	}
	fields := []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"legend_scale", &chart.LegendScale},
		{"legend_font_size", &chart.LegendFontSize},
	}
	for _, f := range fields {
		raw := q.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return pipeline.Options{}, "", errors.New(errors.ErrCodeInvalidInput, "%s must be a number (got %q)", f.name, raw)
		}
		*f.dst = v
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return pipeline.Options{}, "", err
	}

	name := q.Get("data")
	if name == "" {
		name = DefaultBarData
		if kind == pipeline.KindPie {
			name = DefaultPieData
		}
	}
	if err := errors.ValidateName(name); err != nil {
		return pipeline.Options{}, "", err
	}
	return opts, name, nil
}

// readDocument loads <name>.json from the data directory.
func (s *Server) readDocument(name string) ([]byte, error) {
	path := filepath.Join(s.config.DataDir, name+".json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "no document named %q", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read document %q", name)
	}
	return data, nil
}

// errorResponse is the JSON body of a failed request.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.config.Logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	if errors.IsContextError(err) {
		return 499
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidKind, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
