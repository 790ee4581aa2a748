// Package httpapi exposes the account and assistant endpoints over HTTP/JSON.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fruitie/internal/logging"
	"github.com/dmitrijs2005/fruitie/internal/server/auth"
	"github.com/dmitrijs2005/fruitie/internal/server/models"
	"github.com/dmitrijs2005/fruitie/internal/server/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// UserService is the account API the handlers depend on.
type UserService interface {
	Register(ctx context.Context, in services.NewUser) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(token string) (auth.Identity, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd services.ProfileUpdate) (*models.User, error)
}

// ChatService answers assistant messages.
type ChatService interface {
	Reply(ctx context.Context, message, page string) (string, error)
}

type HTTPServer struct {
	address        string
	users          UserService
	chat           ChatService
	logger         logging.Logger
	allowedOrigins []string
}

func NewHTTPServer(a string, l logging.Logger, us UserService, cs ChatService, allowedOrigins []string) *HTTPServer {
	return &HTTPServer{
		address:        a,
		logger:         l.With("module", "http_server"),
		users:          us,
		chat:           cs,
		allowedOrigins: allowedOrigins,
	}
}

// Router builds the chi route tree.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(cors(s.allowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.register)
		r.Post("/auth/login", s.login)

		r.Group(func(r chi.Router) {
			r.Use(s.authenticator)
			r.Get("/profile", s.profile)
			r.Patch("/profile", s.updateProfile)
		})

		r.Post("/ai-chat", s.aiChat)
		r.Post("/chat", s.legacyChat)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		Error(w, http.StatusNotFound, "not found")
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
