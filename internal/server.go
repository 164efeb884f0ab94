package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/workoutsheet/internal/auth"
	"github.com/2beens/workoutsheet/internal/config"
	"github.com/2beens/workoutsheet/internal/middleware"
	"github.com/2beens/workoutsheet/internal/misc"
	"github.com/2beens/workoutsheet/internal/session"
	"github.com/2beens/workoutsheet/internal/sheets"
	"github.com/2beens/workoutsheet/internal/telemetry/metrics"
	"github.com/2beens/workoutsheet/internal/telemetry/tracing"
	"github.com/2beens/workoutsheet/internal/tracker"
)

const sessionsCleanupInterval = 8 * time.Hour

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config

	redisClient    *redis.Client
	loginChecker   *auth.LoginChecker
	authService    *auth.Service
	trackerService *tracker.Service
	sheetsCloser   io.Closer

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "workoutsheet-backend", rdb)
	if err != nil {
		return nil, err
	}

	s, err := newServer(params, rdb)
	if err != nil {
		otelShutdown()
		return nil, err
	}
	s.otelShutdown = otelShutdown

	go func() {
		ticker := time.NewTicker(sessionsCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.authService.ScanAndClean(ctx)
			}
		}
	}()

	return s, nil
}

func newServer(params NewServerParams, rdb *redis.Client) (*Server, error) {
	cfg := params.Config

	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager("workoutsheet", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	users, err := auth.NewStaticCredentialStore(cfg.Users)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	provider, closer, err := newSheetsProvider(cfg)
	if err != nil {
		return nil, err
	}

	trackerService := tracker.NewService(
		sheets.InstrumentedProvider{
			Provider:       provider,
			MetricsManager: metricsManager,
		},
		sheets.NewWorksheetLister(cfg.WorksheetsSkipOrDefault(), cfg.WorksheetsMax, cfg.WorksheetsCacheTTLSeconds),
		session.NewStore(rdb, session.DefaultTTL),
		metricsManager,
	)

	return &Server{
		config:      cfg,
		versionInfo: params.VersionInfo,

		redisClient:    rdb,
		authService:    auth.NewAuthService(users, auth.DefaultTTL, rdb),
		loginChecker:   auth.NewLoginChecker(auth.DefaultTTL, rdb),
		trackerService: trackerService,
		sheetsCloser:   closer,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   func() {},
	}, nil
}

func newSheetsProvider(cfg *config.Config) (sheets.Provider, io.Closer, error) {
	switch cfg.SheetBackend {
	case config.SheetBackendXlsx:
		xlsxClient, err := sheets.OpenXlsx(cfg.XlsxPath)
		if err != nil {
			return nil, nil, err
		}
		log.Debugf("using xlsx workbook: %s", cfg.XlsxPath)
		return sheets.StaticProvider{Client: xlsxClient}, xlsxClient, nil
	case config.SheetBackendGoogle:
		log.Debugf("using google spreadsheet: %s", cfg.SpreadsheetID)
		return sheets.NewGoogleProvider(cfg.SpreadsheetID), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown sheet backend: %s", cfg.SheetBackend)
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("workoutsheet-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.trackerService, s.metricsManager)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin)

	trackerHandler := tracker.NewHandler(s.trackerService)
	trackerHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins...))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitRequestBody(middleware.DefaultMaxRequestBodyBytes))

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(s.promRegistry))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.sheetsCloser != nil {
		if err := s.sheetsCloser.Close(); err != nil {
			log.Errorf("failed to close workbook: %s", err)
		}
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
