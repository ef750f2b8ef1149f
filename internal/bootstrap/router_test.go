package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saicharan1203/portfolio-backend/config"
	"github.com/saicharan1203/portfolio-backend/internal/logging"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/service"
)

func newTestApp(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logging.Discard()
	stores := OpenStore(context.Background(), &config.DatabaseConfig{}, log)
	require.Equal(t, BackendMemory, stores.Backend)

	_, err := service.Seed(context.Background(), stores.Store, log)
	require.NoError(t, err)

	cfg := &config.Config{Redis: config.RedisConfig{ContactChannel: "portfolio:contact"}}
	notifier, cleanup := BuildNotifier(cfg, log)
	t.Cleanup(cleanup)

	r, h := BuildRouter(RouterDeps{
		ServiceName:    "portfolio-backend",
		Version:        "test",
		AllowedOrigins: origins,
		Backend:        stores.Backend,
		Store:          stores.Store,
		Notifier:       notifier,
		Log:            log,
	})
	t.Cleanup(h.Wait)
	return r
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRouter_SeededCatalog(t *testing.T) {
	r := newTestApp(t, nil)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var projects []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &projects))
	assert.Len(t, projects, 6)

	rr = serve(r, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var skills []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &skills))
	assert.Len(t, skills, 12)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestRouter_ContactWithoutMailConfig(t *testing.T) {
	r := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(r, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRouter_UnknownAPIRoute(t *testing.T) {
	r := newTestApp(t, nil)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"message":"Not Found"}`, rr.Body.String())
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	r := newTestApp(t, nil)

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &health))
	assert.Equal(t, "memory", health["store"])
	assert.Equal(t, "disabled", health["db"])

	serve(r, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	rr = serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "portfolio_http_requests_total")
}

func TestRouter_CORS(t *testing.T) {
	r := newTestApp(t, []string{"https://me.example"})

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("Origin", "https://me.example")
	rr := serve(r, req)
	assert.Equal(t, "https://me.example", rr.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = serve(r, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestOpenStore_UnreachableDatabaseFallsBack(t *testing.T) {
	cfg := &config.DatabaseConfig{
		URL:          "postgres://u:p@127.0.0.1:1/portfolio?sslmode=disable&connect_timeout=1",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	stores := OpenStore(context.Background(), cfg, logging.Discard())
	defer stores.Close()

	assert.Equal(t, BackendMemory, stores.Backend)
	assert.Nil(t, stores.DB)
}
