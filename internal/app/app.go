package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	commentrepo "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres/comment"
	dispatchrepo "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres/dispatch"
	historyrepo "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres/history"
	shelfrepo "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres/shelf"
	"github.com/heartmarshall/hpc-dispatch/internal/adapter/provider/userservice"
	"github.com/heartmarshall/hpc-dispatch/internal/auth"
	"github.com/heartmarshall/hpc-dispatch/internal/config"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/service/dispatch"
	"github.com/heartmarshall/hpc-dispatch/internal/service/report"
	"github.com/heartmarshall/hpc-dispatch/internal/service/shelf"
	"github.com/heartmarshall/hpc-dispatch/internal/transport/middleware"
	"github.com/heartmarshall/hpc-dispatch/internal/transport/rest"
)

type identityVerifier interface {
	Verify(ctx context.Context, token string) (domain.User, error)
}

// Run connects to the database, applies migrations when enabled and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return err
		}
	}

	srv, err := NewServer(cfg, pool, logger)
	if err != nil {
		return err
	}
	defer srv.Close()

	return srv.ListenAndServe(ctx)
}

// Server is the HTTP front of the service together with the resources it owns.
type Server struct {
	http        *http.Server
	log         *slog.Logger
	cfg         config.ServerConfig
	limiter     *middleware.RateLimiter
	identityCli *http.Client
}

// NewServer builds repositories, services and the router on top of pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*Server, error) {
	verifier, identityCli, err := newVerifier(cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	dispatches := dispatchrepo.New(pool)
	history := historyrepo.New(pool)
	comments := commentrepo.New(pool)
	shelves := shelfrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	handlers := rest.Handlers{
		System: rest.NewSystemHandler(pool, rest.SystemInfo{
			Service:    ServiceName,
			Version:    Version,
			MockAuth:   cfg.Auth.MockEnabled(),
			MockTokens: mockTokens(cfg.Auth),
		}),
		Dispatch: rest.NewDispatchHandler(
			dispatch.NewService(logger, dispatches, history, comments, shelves, tx),
			logger,
		),
		Shelf: rest.NewShelfHandler(
			shelf.NewService(logger, shelves, dispatches, tx),
			logger,
		),
		Report: rest.NewReportHandler(
			report.NewService(logger, dispatches, shelves, cfg.Dispatch),
			logger,
		),
	}

	var (
		limiter   *middleware.RateLimiter
		rateLimit middleware.Middleware
	)
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}
	global := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimit,
	)

	router := rest.NewRouter(handlers, global, middleware.Auth(verifier, logger))

	return &Server{
		http: &http.Server{
			Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		log:         logger,
		cfg:         cfg.Server,
		limiter:     limiter,
		identityCli: identityCli,
	}, nil
}

// Handler exposes the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe blocks until ctx is cancelled or the listener fails, then
// drains in-flight requests within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// Close releases background resources. The pool is owned by the caller.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	if s.identityCli != nil {
		s.identityCli.CloseIdleConnections()
	}
}

// newVerifier picks the identity verifier for mode. Only the remote mode owns
// an HTTP client.
func newVerifier(cfg config.AuthConfig, logger *slog.Logger) (identityVerifier, *http.Client, error) {
	switch cfg.Mode {
	case config.AuthModeRemote:
		client := &http.Client{Timeout: cfg.RequestTimeout}
		return userservice.NewVerifier(cfg.UserServiceURL, client, logger), client, nil
	case config.AuthModeMock:
		logger.Warn("mock authentication is enabled", slog.Any("tokens", auth.MockTokens()))
		return auth.NewMockVerifier(), nil, nil
	case config.AuthModeJWT:
		return auth.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

func mockTokens(cfg config.AuthConfig) []string {
	if !cfg.MockEnabled() {
		return nil
	}
	return auth.MockTokens()
}
