package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"neonburro-api/internal/config"
	"neonburro-api/internal/db"
	"neonburro-api/internal/logger"
	"neonburro-api/internal/migrate"
)

func main() {
	cfg := config.FromEnv()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()
	pool, err := db.ConnectPostgres(ctx, cfg.DBConnString)
	if err != nil {
		zlog.Fatal("connect postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		zlog.Fatal("apply migrations", zap.Error(err))
	}

	zlog.Info("migrations applied")
}
