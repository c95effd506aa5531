package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/2beens/wallfit/internal"
	"github.com/2beens/wallfit/internal/config"
	"github.com/2beens/wallfit/internal/db"
	"github.com/2beens/wallfit/internal/logging"
	"github.com/2beens/wallfit/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFilePath := flag.String("envfile", ".env", "optional .env file with secrets")
	migrate := flag.Bool("migrate", false, "apply database migrations on startup")
	migrateDown := flag.Bool("migrate-down", false, "roll back the latest database migration and exit")
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for WALLFIT_METRICS_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := pkg.HashPassword(*hashPassword, pkg.MetricsPasswordCost)
		if err != nil {
			log.Fatalf("hash password: %s", err)
		}
		fmt.Println(hash)
		return
	}

	fmt.Println("starting ...")

	if err := config.LoadEnvFile(*envFilePath); err != nil {
		panic(err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "wallfit-service",
		Release:          versionInfo,
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	if versionInfo != "" {
		log.Tracef("running version: %s", versionInfo)
	}

	dbPassword := os.Getenv("WALLFIT_DB_PASSWORD")
	if dbPassword == "" {
		log.Warnln("db password not set. use WALLFIT_DB_PASSWORD")
	}

	if *migrateDown {
		if err := rollbackLatestMigration(cfg, dbPassword); err != nil {
			log.Fatalf("migrate down: %s", err)
		}
		return
	}

	redisPassword := os.Getenv("WALLFIT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use WALLFIT_REDIS_PASS")
	}

	jwtSecret := os.Getenv("WALLFIT_JWT_SECRET")
	if cfg.AuthVerifyLocallyJWT && jwtSecret == "" {
		log.Errorf("jwt secret not set. use WALLFIT_JWT_SECRET")
	}

	if providerURL := os.Getenv("WALLFIT_AUTH_PROVIDER_URL"); providerURL != "" {
		cfg.AuthProviderURL = providerURL
	}
	authProviderAPIKey := os.Getenv("WALLFIT_AUTH_PROVIDER_API_KEY")
	if !cfg.AuthVerifyLocallyJWT && authProviderAPIKey == "" {
		log.Errorf("auth provider api key not set. use WALLFIT_AUTH_PROVIDER_API_KEY")
	}

	metricsUsername := os.Getenv("WALLFIT_METRICS_USERNAME")
	metricsPasswordHash := os.Getenv("WALLFIT_METRICS_PASSWORD_HASH")
	if metricsUsername == "" || metricsPasswordHash == "" {
		log.Warnln("metrics basic auth disabled. use WALLFIT_METRICS_USERNAME and WALLFIT_METRICS_PASSWORD_HASH")
		metricsUsername = ""
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			DBPassword:              dbPassword,
			RedisPassword:           redisPassword,
			JWTSecret:               jwtSecret,
			AuthProviderAPIKey:      authProviderAPIKey,
			MetricsUsername:         metricsUsername,
			MetricsPasswordHash:     metricsPasswordHash,
			VersionInfo:             versionInfo,
			HoneycombTracingEnabled: honeycombEnabled,
			Migrate:                 *migrate,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

func rollbackLatestMigration(cfg *config.Config, dbPassword string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: dbPassword,
		SSLMode:    cfg.PostgresSSLMode,
	})
	if err != nil {
		return err
	}
	defer dbPool.Close()

	return db.MigrateDown(dbPool)
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(pkg.BytesToString(stdout)), nil
}
