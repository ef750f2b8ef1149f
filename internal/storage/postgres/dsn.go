package postgres

import (
	"fmt"

	"github.com/saicharan1203/portfolio-backend/config"
)

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the
// discrete DB_* settings.
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)
}
