// Package httpapi exposes the diary services as a JSON API over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/diary/internal/logging"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/services"
)

// UserService is the identity surface used by the auth endpoints.
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.TokenBundle, error)
	Login(ctx context.Context, email, password string) (*services.TokenBundle, error)
}

// EntryService is the owner-scoped entry surface used by the posts endpoints.
type EntryService interface {
	List(ctx context.Context, userID int64, page, pageSize int) (*models.EntryPage, error)
	Get(ctx context.Context, id, userID int64) (*models.Entry, error)
	Create(ctx context.Context, userID int64, title, content, mood string) (*models.Entry, error)
	Update(ctx context.Context, id, userID int64, title, content, mood string) (*models.Entry, error)
	Delete(ctx context.Context, id, userID int64) error
}

// ExportService uploads a snapshot of a user's entries.
type ExportService interface {
	Export(ctx context.Context, userID int64) (*services.ExportResult, error)
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           UserService
	entries         EntryService
	exports         ExportService
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us UserService, es EntryService, xs ExportService, secretKey string, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		entries:         es,
		exports:         xs,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}
}

// Run listens on the configured address and serves until ctx is cancelled,
// then drains in-flight requests for at most shutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
