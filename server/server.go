package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/homedeck/homedeck/pkg/config"
	"github.com/homedeck/homedeck/pkg/content"
	"github.com/homedeck/homedeck/pkg/domain"
	"github.com/homedeck/homedeck/pkg/feed"
	"github.com/homedeck/homedeck/pkg/metrics"
	"github.com/homedeck/homedeck/pkg/power"
	"github.com/homedeck/homedeck/pkg/summary"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/model.go -pkg mocks -skip-ensure -fmt goimports . ModelService
//go:generate moq -out mocks/power.go -pkg mocks -skip-ensure -fmt goimports . PowerController
//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . PageExtractor
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . SummaryCache
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/worker.go -pkg mocks -skip-ensure -fmt goimports . BacklogWorker

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// ModelService reports on the locally hosted model server
type ModelService interface {
	Check(ctx context.Context) (available bool, message string)
	Models(ctx context.Context) ([]string, error)
	GPUs(ctx context.Context) []string
}

// PowerController drives the configured home machines
type PowerController interface {
	Statuses(ctx context.Context) []power.DeviceStatus
	Wake(name string) error
	Shutdown(ctx context.Context, name string) error
	Reset(name string) error
}

// FeedFetcher loads current items for a feed source
type FeedFetcher interface {
	Fetch(ctx context.Context, src feed.Source) ([]domain.FeedItem, error)
}

// PageExtractor pulls article text out of a web page
type PageExtractor interface {
	Extract(ctx context.Context, url string) content.Result
}

// Summarizer produces a summary for article text, serving cached results
type Summarizer interface {
	Summarize(ctx context.Context, req summary.Request) string
}

// SummaryCache reads previously produced summaries
type SummaryCache interface {
	Get(ctx context.Context, link string) (string, bool)
}

// ArticleStore persists saved articles
type ArticleStore interface {
	Save(ctx context.Context, article *domain.SavedArticle) error
	List(ctx context.Context) ([]domain.SavedArticle, error)
	Get(ctx context.Context, link string) (*domain.SavedArticle, error)
	Delete(ctx context.Context, articleID int64) error
}

// BacklogWorker is one background auto-summary run over a feed backlog
type BacklogWorker interface {
	Start(ctx context.Context, backlog []domain.FeedItem, model string)
	Stop()
	Running() bool
	State() summary.State
	Drain() []domain.SummaryUpdate
}

// WorkerFactory builds a fresh worker for every backlog run, a worker runs
// at most once
type WorkerFactory func() BacklogWorker

// Deps bundles the services the handlers talk to
type Deps struct {
	Model     ModelService
	Power     PowerController
	Registry  *feed.Registry
	Fetcher   FeedFetcher
	Extractor PageExtractor
	Summarize Summarizer
	Cache     SummaryCache
	Articles  ArticleStore
	Prefs     *config.Prefs
	Usage     *metrics.Tracker
	NewWorker WorkerFactory
}

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	deps    Deps
	version string
	debug   bool

	view feedView

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		deps:    deps,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		s.view.stopWorker() // the background worker must not outlive the server
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("homedeck", "homedeck", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /settings", s.settingsHandler)
		r.HandleFunc("PUT /settings", s.updateSettingsHandler)
		r.HandleFunc("GET /usage", s.usageHandler)

		r.HandleFunc("GET /devices", s.devicesHandler)
		r.HandleFunc("POST /devices/{name}/wake", s.wakeHandler)
		r.HandleFunc("POST /devices/{name}/shutdown", s.shutdownHandler)
		r.HandleFunc("POST /devices/{name}/reset", s.resetHandler)

		r.HandleFunc("GET /news/sources", s.sourcesHandler)
		r.HandleFunc("GET /news/feed", s.newsFeedHandler)
		r.HandleFunc("GET /news/updates", s.updatesHandler)
		r.HandleFunc("POST /news/summarize", s.summarizeHandler)
		r.HandleFunc("GET /news/articles", s.articlesHandler)
		r.HandleFunc("POST /news/articles", s.saveArticleHandler)
		r.HandleFunc("DELETE /news/articles/{id}", s.deleteArticleHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
