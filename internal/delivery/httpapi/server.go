package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fcclubs/internal/application"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 1 << 16
)

// Notifier runs one notification round for a club.
type Notifier interface {
	Notify(ctx context.Context, clubName string) (application.NotifyResult, error)
}

type Server struct {
	addr     string
	notifier Notifier
	logger   application.Logger
	srv      *http.Server
}

func NewServer(addr string, notifier Notifier, logger application.Logger) *Server {
	s := &Server{addr: addr, notifier: notifier, logger: logger}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Router wires the HTTP routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/notify", s.handleNotify)

	return r
}

func (s *Server) Name() string {
	return "notify http server"
}

func (s *Server) Init() error {
	return nil
}

func (s *Server) Run(_ context.Context) {
	s.logger.Info("notify endpoint listening on %s", s.addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server stopped: %v", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("http server shutdown: %v", err)
	}
}
