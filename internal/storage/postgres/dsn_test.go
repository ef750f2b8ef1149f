package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saicharan1203/portfolio-backend/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host: "db", Port: 5433, User: "owner", Password: "secret", Name: "portfolio", SSLMode: "require",
	}
	assert.Equal(t, "host=db port=5433 user=owner password=secret dbname=portfolio sslmode=require", DSN(cfg))

	cfg.URL = "postgres://owner@db/portfolio"
	assert.Equal(t, "postgres://owner@db/portfolio", DSN(cfg))
}
