package bootstrap

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	httpapi "github.com/saicharan1203/portfolio-backend/internal/api/http"
	"github.com/saicharan1203/portfolio-backend/internal/api/http/middleware"
	"github.com/saicharan1203/portfolio-backend/internal/metrics"
	"github.com/saicharan1203/portfolio-backend/internal/notify"
	portfoliohttp "github.com/saicharan1203/portfolio-backend/internal/portfolio/http"
	"github.com/saicharan1203/portfolio-backend/internal/portfolio/repository"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Backend        string
	DB             *sql.DB
	Store          repository.Store
	Notifier       notify.Notifier
	Recipient      string
	Log            logrus.FieldLogger
}

// BuildRouter wires middleware, health, metrics and the portfolio API. The
// returned handler must be drained with Wait on shutdown.
func BuildRouter(dep RouterDeps) (*gin.Engine, *portfoliohttp.Handler) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(metrics.Middleware())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Backend, dep.DB)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	handler := portfoliohttp.New(dep.Store, dep.Notifier, dep.Recipient, dep.Log)
	handler.Register(api)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, portfoliohttp.ErrorResponse{Message: "Not Found"})
	})

	return r, handler
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
