package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/wallfit/internal/auth"
	"github.com/2beens/wallfit/internal/config"
	"github.com/2beens/wallfit/internal/dashboard"
	"github.com/2beens/wallfit/internal/db"
	"github.com/2beens/wallfit/internal/goals"
	"github.com/2beens/wallfit/internal/middleware"
	"github.com/2beens/wallfit/internal/misc"
	"github.com/2beens/wallfit/internal/profile"
	"github.com/2beens/wallfit/internal/programs"
	"github.com/2beens/wallfit/internal/telemetry/metrics"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/internal/weight"
	"github.com/2beens/wallfit/internal/workouts"
	"github.com/2beens/wallfit/pkg"
)

// supabase issues user access tokens for this audience
const accessTokenAudience = "authenticated"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config    *config.Config
	dbPool    *pgxpool.Pool
	catalogue *programs.Catalogue

	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter
	authChecker auth.Checker

	// metrics
	metricsManager      *metrics.Manager
	promRegistry        *prometheus.Registry
	metricsUsername     string
	metricsPasswordHash string
	otelShutdown        func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	JWTSecret               string
	AuthProviderAPIKey      string
	MetricsUsername         string
	MetricsPasswordHash     string
	VersionInfo             string
	HoneycombTracingEnabled bool
	Migrate                 bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		SSLMode:        cfg.PostgresSSLMode,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if params.Migrate || cfg.MigrateOnStartup {
		if err := db.Migrate(dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("wallfit", "backend", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
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
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "wallfit-backend", rdb)
	if err != nil {
		return nil, err
	}

	authChecker, err := newAuthChecker(cfg, params, metricsManager)
	if err != nil {
		return nil, err
	}

	catalogue, err := programs.NewBuiltinCatalogue()
	if err != nil {
		return nil, fmt.Errorf("load programs catalogue: %w", err)
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		catalogue:   catalogue,
		versionInfo: params.VersionInfo,

		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),
		authChecker: authChecker,

		// telemetry
		metricsManager:      metricsManager,
		promRegistry:        promRegistry,
		metricsUsername:     params.MetricsUsername,
		metricsPasswordHash: params.MetricsPasswordHash,
		otelShutdown:        otelShutdown,
	}, nil
}

// newAuthChecker verifies tokens locally when a signing secret is configured
// for it, otherwise asks the identity provider and caches its answers.
func newAuthChecker(cfg *config.Config, params NewServerParams, metricsManager *metrics.Manager) (auth.Checker, error) {
	if cfg.AuthVerifyLocallyJWT {
		if params.JWTSecret == "" {
			return nil, errors.New("local jwt verification enabled, but jwt secret not set")
		}
		log.Debugln("verifying access tokens locally")
		return auth.NewJWTChecker(params.JWTSecret, accessTokenAudience), nil
	}

	if cfg.AuthProviderURL == "" {
		return nil, errors.New("auth provider url not set")
	}
	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}
	providerChecker := auth.NewProviderChecker(cfg.AuthProviderURL, params.AuthProviderAPIKey, tracedHttpClient)
	log.Debugf("verifying access tokens via [%s]", cfg.AuthProviderURL)
	return auth.NewCachedChecker(
		providerChecker,
		cfg.AuthCacheSizeMB,
		cfg.AuthCacheTTLSeconds,
		metricsManager,
	), nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	goalsRepo := goals.NewRepo(s.dbPool)
	weightRepo := weight.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)

	misc.NewHandler(s.dbPool, s.redisClient, s.versionInfo).SetupRoutes(r)
	workouts.NewHandler(workoutsRepo, s.metricsManager).SetupRoutes(r)
	goals.NewHandler(goalsRepo, s.metricsManager).SetupRoutes(r)
	weight.NewHandler(weight.NewService(weightRepo, profileRepo), s.metricsManager).SetupRoutes(r)
	profile.NewHandler(profileRepo, workoutsRepo, s.metricsManager).SetupRoutes(r)
	dashboard.NewHandler(workoutsRepo, goalsRepo, weightRepo, s.config.WeeklyCaloriesGoal).SetupRoutes(r)
	programs.NewHandler(s.catalogue, workoutsRepo, s.metricsManager).SetupRoutes(r)

	// all the rest - unhandled paths
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONError(w, http.StatusNotFound, "not found")
	})

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.authChecker, s.metricsManager)
	rateLimitWindow := time.Duration(s.config.RateLimitWindowMin) * time.Minute

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.FrontendURLs))
	r.Use(middleware.RateLimit(
		s.rateLimiter,
		s.metricsManager,
		middleware.NewLimit(s.config.RateLimitRequests, rateLimitWindow),
	))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) metricsRouterSetup() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	r.Use(middleware.BasicAuth(s.metricsUsername, s.metricsPasswordHash))
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

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           s.metricsRouterSetup(),
		ReadHeaderTimeout: 10 * time.Second,
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
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
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
