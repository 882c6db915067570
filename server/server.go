package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/clubhub-app/clubhub/server/auth"
	"github.com/clubhub-app/clubhub/server/database"
	"github.com/clubhub-app/clubhub/server/hub"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

func New(cfg Config) (*Server, error) {
	funcs := template.FuncMap{
		"dev": func() bool {
			return cfg.Dev
		},
	}

	var staticFS http.FileSystem
	var t func() *template.Template
	var reloadNotifier *reloadNotifier
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(templateFuncs).
				Funcs(funcs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}
		reloadNotifier = newReloadNotifier()
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(templateFuncs).
			Funcs(funcs).
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	s := &Server{
		Cfg:            cfg,
		HTTPClient:     httpClient,
		Hub:            hub.New(cfg.Hub, httpClient),
		Auth:           auth.New(cfg.Auth),
		DB:             db,
		StaticFS:       staticFS,
		Templates:      t,
		ReloadNotifier: reloadNotifier,
		Notifier:       newNotifier(cfg.Notifications),
	}
	s.server = &http.Server{
		Addr: cfg.Server.Addr,
	}

	if cfg.Dev && reloadNotifier != nil {
		s.stopDevWatcher = startDevWatcher("server/", reloadNotifier)
	}

	return s, nil
}

type Server struct {
	Cfg            Config
	HTTPClient     *http.Client
	Hub            *hub.Client
	Auth           *auth.Auth
	DB             *database.Database
	StaticFS       http.FileSystem
	Templates      func() *template.Template
	ReloadNotifier *reloadNotifier
	Notifier       *Notifier

	server         *http.Server
	stopDevWatcher context.CancelFunc
}

// Handler sets the root http handler; the web package wires the routes to
// avoid an import cycle.
func (s *Server) Handler(h http.Handler) {
	s.server.Handler = h
}

func (s *Server) Start() {
	go s.cleanupSessions()

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Notifier.Send(ctx, "Club Hub started")
}

func (s *Server) Stop() {
	if s.stopDevWatcher != nil {
		s.stopDevWatcher()
	}
	if s.ReloadNotifier != nil {
		s.ReloadNotifier.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Failed to close database", slog.Any("err", err))
	}
}

func (s *Server) cleanupSessions() {
	for {
		s.doCleanupSessions()
		time.Sleep(1 * time.Hour)
	}
}

func (s *Server) doCleanupSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	rows, err := s.DB.DeleteExpiredSessions(ctx)
	if err != nil {
		slog.Error("failed to cleanup expired sessions", slog.Any("err", err))
		return
	}

	if rows > 0 {
		s.Notifier.Send(ctx, fmt.Sprintf("Cleaned up `%d` expired sessions", rows))
	}
}
