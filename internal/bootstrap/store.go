package bootstrap

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/repository"
	"github.com/saicharan1203/portfolio-backend/internal/storage/postgres"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// StoreSelection is the persistence backend chosen once at startup.
type StoreSelection struct {
	Store   repository.Store
	Backend string
	DB      *sql.DB // nil for the memory backend
}

func (s *StoreSelection) Close() {
	if s != nil && s.DB != nil {
		s.DB.Close()
	}
}

// OpenStore connects to PostgreSQL when it is configured and reachable, and
// falls back to the in-memory store otherwise. A schema error keeps the
// PostgreSQL store: its operations then fail as storage unavailable.
func OpenStore(ctx context.Context, cfg *config.DatabaseConfig, log logrus.FieldLogger) *StoreSelection {
	if !cfg.Enabled() {
		log.Info("no database configured, using in-memory store")
		return memorySelection()
	}

	db, err := OpenDB(ctx, cfg, DBOptions{})
	if err != nil {
		log.WithError(err).Warn("database unavailable, using in-memory store")
		return memorySelection()
	}

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.WithError(err).Error("failed to apply database schema")
	}

	log.Info("using postgres store")
	return &StoreSelection{
		Store:   repository.NewPostgresStore(db),
		Backend: BackendPostgres,
		DB:      db,
	}
}

func memorySelection() *StoreSelection {
	return &StoreSelection{Store: repository.NewMemoryStore(), Backend: BackendMemory}
}
