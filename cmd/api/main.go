package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	_ "vip_mudancas/docs"
	"vip_mudancas/internal/adapter/http/routes"
	"vip_mudancas/internal/infrastructure/config"
	"vip_mudancas/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           VIP Mudanças API
// @version         1.0
// @description     Back-office API for clients, moving quotes and collaborator activity, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	logger.SetGlobal(l)
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg); err != nil {
		l.Fatalf("Failed to startup the application: %+v", err)
	}
}
