package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/storage/postgres"
)

type DBOptions struct {
	PingTO time.Duration
}

func OpenDB(ctx context.Context, cfg *config.DatabaseConfig, opt DBOptions) (*sql.DB, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("neither DATABASE_URL nor DB_HOST is set")
	}
	if opt.PingTO == 0 {
		opt.PingTO = 3 * time.Second
	}

	db, err := postgres.NewConnection(ctx, cfg, opt.PingTO)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return db, nil
}
