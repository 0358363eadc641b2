// Package httpapi serves the presentation producer and the HTML viewer
// over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hapi-suta/runbookforge-sub002/internal/deck"
	"github.com/hapi-suta/runbookforge-sub002/internal/journal"
	"github.com/hapi-suta/runbookforge-sub002/internal/layout"
	"github.com/hapi-suta/runbookforge-sub002/internal/loader"
	"github.com/hapi-suta/runbookforge-sub002/internal/pptx"
	"github.com/hapi-suta/runbookforge-sub002/internal/viewer"
)

// maxBody caps request bodies.
const maxBody = "4M"

// Recorder stores export metadata. *journal.Journal satisfies it.
type Recorder interface {
	Record(ctx context.Context, e journal.Entry) (journal.Entry, error)
}

// Config holds HTTP server configuration.
type Config struct {
	Host   string
	Port   int
	Layout layout.Options
}

// Option configures a Server.
type Option func(*Server)

// WithDeck preloads a document for GET /deck and GET /deck.pptx. source
// is recorded in the journal.
func WithDeck(doc *deck.Document, source string) Option {
	return func(s *Server) {
		s.doc, s.source = doc, source
	}
}

// WithJournal records every successful export.
func WithJournal(r Recorder) Option {
	return func(s *Server) {
		s.journal = r
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with
// and served from. Defaults to a fresh registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithClock sets the clock stamped into produced packages.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// Server provides HTTP endpoints for deckc.
type Server struct {
	echo     *echo.Echo
	logger   *zap.Logger
	config   *Config
	metrics  *Metrics
	registry *prometheus.Registry
	journal  Recorder
	now      func() time.Time

	doc    *deck.Document
	source string
	deck   *layout.Deck
}

// NewServer creates a server. A preloaded document is compiled once here.
func NewServer(logger *zap.Logger, cfg *Config, opts ...Option) (*Server, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{Host: "localhost", Port: 8080}
	}

	s := &Server{
		logger: logger,
		config: cfg,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = NewMetrics(s.registry)

	if s.doc != nil {
		d, err := layout.Compile(s.doc, cfg.Layout)
		if err != nil {
			return nil, fmt.Errorf("compile preloaded deck: %w", err)
		}
		s.deck = d
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(maxBody))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})
	s.echo = e
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.echo.Group("/api/v1")
	v1.POST("/presentations/export", s.handleExport)
	v1.POST("/presentations/compile", s.handleCompile)

	if s.deck != nil {
		s.echo.GET("/deck", s.handleDeck)
		s.echo.GET("/deck.pptx", s.handleDeckDownload)
	}
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler { return s.echo }

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// SlideInfo describes one physical slide in a CompileResponse.
type SlideInfo struct {
	Number   int    `json:"number"`
	Source   int    `json:"source"`
	Part     int    `json:"part"`
	Parts    int    `json:"parts"`
	Kind     string `json:"kind"`
	Title    string `json:"title,omitempty"`
	HasNotes bool   `json:"has_notes"`
}

// CompileResponse is the response body for POST /api/v1/presentations/compile.
type CompileResponse struct {
	Title       string      `json:"title"`
	Fingerprint string      `json:"fingerprint"`
	RenderHash  string      `json:"render_hash"`
	SlideCount  int         `json:"slide_count"`
	Slides      []SlideInfo `json:"slides"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// readDocument decodes the request body as a presentation document.
func (s *Server) readDocument(c echo.Context) (*deck.Document, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
	}
	doc, err := loader.Decode(loader.Source{Name: "request", Format: loader.FormatJSON, Data: body})
	if err != nil {
		s.logger.Warn("invalid presentation document", zap.Error(err))
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid presentation document: "+err.Error())
	}
	return doc, nil
}

func (s *Server) handleExport(c echo.Context) error {
	doc, err := s.readDocument(c)
	if err != nil {
		s.metrics.observe(outcomeInvalid, 0, 0)
		return err
	}
	d, err := layout.Compile(doc, s.config.Layout)
	if err != nil {
		return s.exportFailed(err)
	}
	return s.sendPackage(c, d, "request")
}

func (s *Server) handleDeckDownload(c echo.Context) error {
	return s.sendPackage(c, s.deck, s.source)
}

func (s *Server) sendPackage(c echo.Context, d *layout.Deck, source string) error {
	start := time.Now()
	var buf bytes.Buffer
	if err := pptx.Write(&buf, d, pptx.WithClock(s.now)); err != nil {
		return s.exportFailed(err)
	}
	s.metrics.observe(outcomeOK, d.Len(), buf.Len())
	s.logger.Info("presentation exported",
		zap.String("fingerprint", d.Fingerprint),
		zap.Int("slides", d.Len()),
		zap.Int("bytes", buf.Len()),
		zap.Duration("duration", time.Since(start)),
	)
	s.record(c.Request().Context(), d, source, buf.Len())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s.pptx"`, Filename(d.Title)))
	return c.Blob(http.StatusOK, pptx.ContentType, buf.Bytes())
}

func (s *Server) exportFailed(err error) error {
	s.metrics.observe(outcomeFailed, 0, 0)
	s.logger.Error("failed to generate presentation", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, "failed to generate presentation")
}

// record logs the export in the journal. Journal failures never fail the
// request.
func (s *Server) record(ctx context.Context, d *layout.Deck, source string, size int) {
	if s.journal == nil {
		return
	}
	_, err := s.journal.Record(ctx, journal.Entry{
		Fingerprint: d.Fingerprint,
		Title:       d.Title,
		Source:      source,
		Slides:      d.Len(),
		Bytes:       int64(size),
	})
	if err != nil {
		s.logger.Warn("failed to record export", zap.Error(err))
	}
}

func (s *Server) handleCompile(c echo.Context) error {
	doc, err := s.readDocument(c)
	if err != nil {
		return err
	}
	d, err := layout.Compile(doc, s.config.Layout)
	if err != nil {
		s.logger.Error("failed to compile presentation", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compile presentation")
	}
	renderHash, err := d.RenderHash()
	if err != nil {
		s.logger.Error("failed to hash compiled presentation", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to compile presentation")
	}

	resp := CompileResponse{
		Title:       d.Title,
		Fingerprint: d.Fingerprint,
		RenderHash:  renderHash,
		SlideCount:  d.Len(),
		Slides:      make([]SlideInfo, 0, d.Len()),
	}
	for _, rs := range d.Slides {
		resp.Slides = append(resp.Slides, SlideInfo{
			Number:   rs.Index + 1,
			Source:   rs.Source + 1,
			Part:     rs.Part,
			Parts:    rs.Parts,
			Kind:     string(rs.Kind),
			Title:    rs.Title,
			HasNotes: rs.Notes != "",
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// handleDeck renders the preloaded deck. ?slide=N is 1-based and clamps;
// anything unparsable opens the first slide.
func (s *Server) handleDeck(c echo.Context) error {
	n, err := strconv.Atoi(c.QueryParam("slide"))
	if err != nil {
		n = 1
	}
	v := viewer.New(s.deck, viewer.WithStart(n-1))

	var buf bytes.Buffer
	if err := viewer.RenderHTML(&buf, v, viewer.Links{Base: "/deck", Download: "/deck.pptx"}); err != nil {
		s.logger.Error("failed to render deck", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render deck")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
