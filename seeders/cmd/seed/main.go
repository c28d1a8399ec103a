package main

import (
	"context"

	"go.uber.org/zap"

	"gedoc/pkg/config"
	"gedoc/pkg/database/postgresql"
	"gedoc/pkg/logger"
	"gedoc/seeders"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()
	ctx := context.Background()

	pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("falha na conexão com o PostgreSQL", zap.Error(err))
	}
	defer pool.Close()

	if err := postgresql.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal("falha nas migrações", zap.Error(err))
	}

	if err := seeders.Run(ctx, pool, log); err != nil {
		log.Fatal("falha ao aplicar seeds", zap.Error(err))
	}
}
