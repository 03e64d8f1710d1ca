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

	"github.com/joho/godotenv"

	httpctx "github.com/dtroode/sociable-server/internal/api/http/context"
	"github.com/dtroode/sociable-server/internal/api/http/handler"
	"github.com/dtroode/sociable-server/internal/api/http/middleware"
	"github.com/dtroode/sociable-server/internal/api/http/router"
	"github.com/dtroode/sociable-server/internal/config"
	"github.com/dtroode/sociable-server/internal/logger"
	"github.com/dtroode/sociable-server/internal/model"
	"github.com/dtroode/sociable-server/internal/repository/postgres"
	"github.com/dtroode/sociable-server/internal/security"
	"github.com/dtroode/sociable-server/internal/server"
	"github.com/dtroode/sociable-server/internal/service"
	"github.com/dtroode/sociable-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	directoryRepo := postgres.NewDirectoryRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	hasher := security.NewHasher(cfg.Hash.Cost, cfg.Hash.MaxConcurrency)
	ctxMgr := httpctx.NewManager()

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	postService := service.NewPost(postRepo, logger)
	profileService := service.NewProfile(profileRepo, logger)
	followService := service.NewFollow(followRepo, logger)
	directoryService := service.NewDirectory(directoryRepo, logger)

	handlers := router.Handlers{
		Auth:     handler.NewAuth(authService, ctxMgr, logger),
		Post:     handler.NewPost(postService, ctxMgr, logger),
		Profile:  handler.NewProfile(profileService, ctxMgr, logger),
		Follow:   handler.NewFollow(followService, ctxMgr, logger),
		Users:    handler.NewUsers(directoryService, ctxMgr, logger),
		Security: handler.NewSecurity(logger),
	}

	authMW := middleware.NewAuthenticate(tokenManager, ctxMgr, logger)
	loggingMW := middleware.NewLogging(logger)

	httpServer := server.NewHTTPServer(
		router.New(handlers, authMW, loggingMW, logger),
		fmt.Sprintf(":%s", cfg.HTTP.Port),
	)

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
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
