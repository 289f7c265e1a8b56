// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected,
//     including the presence tracker (created at process start, no
//     persistence, no teardown)
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/minecode21-boop/social-applinxx2cs/internal/config"
	"github.com/minecode21-boop/social-applinxx2cs/internal/http/handlers"
	"github.com/minecode21-boop/social-applinxx2cs/internal/http/middleware"
	"github.com/minecode21-boop/social-applinxx2cs/internal/presence"
	"github.com/minecode21-boop/social-applinxx2cs/internal/repo"
	"github.com/minecode21-boop/social-applinxx2cs/internal/services"
)

// friendRepoShim adapts the repository free functions to the
// services.FriendRepo interface expected by FriendService. This keeps the
// service decoupled from the concrete repo package while reusing existing
// functions.
type friendRepoShim struct{}

// AddFriendPair proxies repo.AddFriendPair.
func (friendRepoShim) AddFriendPair(ctx context.Context, db *gorm.DB, user, friend string) error {
	return repo.AddFriendPair(ctx, db, user, friend)
}

// ListFriendNames proxies repo.ListFriendNames.
func (friendRepoShim) ListFriendNames(ctx context.Context, db *gorm.DB, user string) ([]string, error) {
	return repo.ListFriendNames(ctx, db, user)
}

// UserExists proxies repo.UserExists.
func (friendRepoShim) UserExists(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	return repo.UserExists(ctx, db, username)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. gzip, CORS, security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tracker *presence.Tracker, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging (bodies are never logged: they carry credentials)
	r.Use(middleware.Logger())

	// 4) Panic recovery to plain-text 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit. Payloads are single text lines; 64 KiB is
	// already generous for a chat message.
	r.Use(limitBody(64 << 10))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) Compression, CORS, security headers
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Optional Swagger UI
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))
	}

	// Optional static landing page
	if cfg.StaticIndex != "" {
		r.StaticFile("/", cfg.StaticIndex)
	}

	// Service construction over the shared DB and tracker
	accountSvc := &services.AccountService{DB: db, Presence: tracker}
	friendSvc := &services.FriendService{DB: db, Repo: friendRepoShim{}, Presence: tracker}
	chatSvc := &services.ChatService{DB: db, Presence: tracker}
	h := handlers.New(accountSvc, friendSvc, chatSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)
		api.POST("/addfriend", h.AddFriend)
		api.POST("/getfriends", h.GetFriends)
		api.POST("/send", h.Send)
		api.POST("/getchat", h.GetChat)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints using http.MaxBytesReader. Requests exceeding the cap cause
// downstream body reads to error, which the handlers reject as malformed.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
