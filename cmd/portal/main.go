package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // served on ${PPROF_PORT} only
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "freightforge/internal/app"
	"freightforge/internal/entities"
	"freightforge/internal/handlers/rest/account_approve_post"
	"freightforge/internal/handlers/rest/account_reject_post"
	"freightforge/internal/handlers/rest/account_verification_post"
	"freightforge/internal/handlers/rest/accounts_pending_get"
	"freightforge/internal/handlers/rest/accounts_post"
	"freightforge/internal/handlers/rest/healthcheck_head"
	"freightforge/internal/handlers/rest/ping_get"
	"freightforge/internal/handlers/rest/quotes_post"
	"freightforge/internal/handlers/rest/sessions_post"
	"freightforge/internal/handlers/rest/shipments_get"
	"freightforge/internal/handlers/rest/shipments_post"
	"freightforge/internal/handlers/rest/waybill_deliver_post"
	"freightforge/internal/handlers/rest/waybill_document_get"
	"freightforge/internal/handlers/rest/waybill_get"
	"freightforge/internal/pkg/config"
	"freightforge/internal/pkg/dotenv"
	metrics_system "freightforge/internal/pkg/metrics"
	"freightforge/internal/pkg/middlewares/auth"
	"freightforge/internal/pkg/middlewares/cors"
	"freightforge/internal/pkg/middlewares/graceful_shutdown"
	"freightforge/internal/pkg/middlewares/metrics"
	"freightforge/internal/pkg/middlewares/rate_limiter"
	"freightforge/internal/pkg/middlewares/timeout"
	"freightforge/pkg/logger"
	"freightforge/pkg/logger/zap_adapter"
	"freightforge/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const systemMetricsInterval = 15 * time.Second

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("app", "freightforge-portal"))

	mainLog.Info("starting freightforge portal")

	if err := dotenv.Load(os.Args[1:]); err != nil {
		mainLog.Error("load .env", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdown contexts derive from context.Background on purpose
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	infra, err := connectInfrastructure(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer infra.Close(runLog)

	portal, err := application.InitializeApplication(ctx, log, infra.driver, infra.challenges, infra.publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx outlives SIGTERM and is cancelled only after server.Shutdown
	// so in-flight requests can finish.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, portal, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil channel when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var pprofErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		pprofErr = pprofServer.Shutdown(shutdownCtx)
		if pprofErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", pprofErr))
		}
	}

	stopOngoingGracefully()
	if err != nil || pprofErr != nil {
		runLog.Info("graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	portal *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	router.Handle("/accounts", accounts_post.New(log, portal.ServiceRegistration)).Methods(http.MethodPost)
	router.Handle("/accounts/verification", account_verification_post.New(log, portal.ServiceRegistration)).Methods(http.MethodPost)
	router.Handle("/sessions", sessions_post.New(log, portal.ServiceSessions)).Methods(http.MethodPost)
	router.Handle("/waybills/{ref}", waybill_get.New(log, portal.ServiceWaybills)).Methods(http.MethodGet)
	router.Handle("/waybills/{ref}/document", waybill_document_get.New(log, portal.ServiceWaybills)).Methods(http.MethodGet)

	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(auth.Middleware(log, portal.Tokens))
	authenticated.Handle("/quotes", quotes_post.New(log, portal.ServiceBooking)).Methods(http.MethodPost)
	authenticated.Handle("/shipments", shipments_post.New(log, portal.ServiceBooking)).Methods(http.MethodPost)
	authenticated.Handle("/shipments", shipments_get.New(log, portal.ServiceWaybills)).Methods(http.MethodGet)
	authenticated.Handle("/waybills/{ref}/deliver", waybill_deliver_post.New(log, portal.ServiceWaybills)).Methods(http.MethodPost)

	admin := router.NewRoute().Subrouter()
	admin.Use(auth.Middleware(log, portal.Tokens), auth.RequireRole(entities.RoleAdmin))
	admin.Handle("/accounts/pending", accounts_pending_get.New(log, portal.ServiceAccounts)).Methods(http.MethodGet)
	admin.Handle("/accounts/{id}/approve", account_approve_post.New(log, portal.ServiceAccounts)).Methods(http.MethodPost)
	admin.Handle("/accounts/{id}/reject", account_reject_post.New(log, portal.ServiceAccounts)).Methods(http.MethodPost)

	// Wrapped outside the router so that CORS preflights, which match no
	// route, still get answered.
	withCORS := cors.Middleware(cfg.CORSAllowedOrigins)(router)
	return graceful_shutdown.Middleware(isShuttingDown, ongoingCtx)(withCORS)
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
