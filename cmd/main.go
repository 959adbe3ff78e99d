package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/health"

	grpchealth "github.com/dtroode/recipebox-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/recipebox-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/recipebox-server/internal/api/grpc/server"
	restctx "github.com/dtroode/recipebox-server/internal/api/rest/context"
	restrouter "github.com/dtroode/recipebox-server/internal/api/rest/router"
	restserver "github.com/dtroode/recipebox-server/internal/api/rest/server"
	"github.com/dtroode/recipebox-server/internal/config"
	"github.com/dtroode/recipebox-server/internal/logger"
	"github.com/dtroode/recipebox-server/internal/model"
	"github.com/dtroode/recipebox-server/internal/password"
	"github.com/dtroode/recipebox-server/internal/repository/postgres"
	"github.com/dtroode/recipebox-server/internal/server"
	"github.com/dtroode/recipebox-server/internal/service"
	"github.com/dtroode/recipebox-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	statements, err := postgres.SessionStatements(cfg.Database.TimeZone, cfg.Database.Isolation)
	if err != nil {
		logger.Fatal("invalid database session settings", "error", err)
	}

	hasher, err := password.NewBcrypt(cfg.Bcrypt.Cost, cfg.Bcrypt.Concurrency)
	if err != nil {
		logger.Fatal("invalid bcrypt settings", "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN(), postgres.PoolOptions{
		MaxConns:        cfg.Database.MaxConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	pool := postgres.NewPool(db.DB, cfg.Database.AcquireTimeout)
	repos := postgres.NewRepositories()

	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), cfg.JWT.TTL, logger)
	authService := service.NewAuth(repos, hasher, tokenService, logger)
	recipeService := service.NewRecipe(repos, logger)

	rest := restrouter.New(
		authService,
		recipeService,
		tokenService,
		pool,
		statements,
		restctx.NewManager(),
		cfg.CORS.AllowedOrigins,
		logger,
	)
	servers := []model.Server{
		restserver.NewHTTPServer(rest.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout),
	}

	var wg sync.WaitGroup

	if cfg.GRPC.Enabled {
		healthServer := health.NewServer()
		reporter := grpchealth.NewReporter(healthServer, db, cfg.GRPC.HealthInterval, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			reporter.Run(ctx)
		}()

		s := grpcrouter.New(healthServer, logger).Register()
		servers = append(servers, grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.GRPC.Port)))
	}

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
