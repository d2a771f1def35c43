package router

import (
	"context"
	"html/template"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/stemsi/asistnet-backend/internal/config"
	"github.com/stemsi/asistnet-backend/internal/handler"
	"github.com/stemsi/asistnet-backend/internal/metrics"
	"github.com/stemsi/asistnet-backend/internal/middleware"
	"github.com/stemsi/asistnet-backend/internal/response"
	"github.com/stemsi/asistnet-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Profile      *handler.ProfileHandler
	Attendance   *handler.AttendanceHandler
	Search       *handler.SearchHandler
	Notification *handler.NotificationHandler
	WS           *handler.WSHandler
	Page         *handler.PageHandler
	System       *handler.SystemHandler
}

// Deps carries the shared infrastructure the router wires into middleware.
type Deps struct {
	Config      *config.Config
	Log         zerolog.Logger
	AuthService *service.AuthService
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Templates   *template.Template
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background goroutines owned by middleware (rate limiter sweeps).
func SetupRouter(ctx context.Context, deps Deps, handlers *Handlers) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// Request ID first so recovery and access logs can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.RequestLogger(deps.Log, "/health", "/metrics"))
	router.Use(middleware.Instrument(deps.Metrics))

	// ─── CORS ──────────────────────────────────────────────────────────
	// Restrict to AllowedOrigins when set; otherwise allow all so the
	// static pages work from any dev host.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())

	if deps.Templates != nil {
		router.SetHTMLTemplate(deps.Templates)
	}

	// Static assets with a one-day cache.
	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(86400))
	{
		staticGroup.Static("/", cfg.StaticDir)
	}

	router.GET("/health", handlers.System.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	// ─── Pages ─────────────────────────────────────────────────────────
	for _, p := range handler.Pages {
		router.GET(p.Path, handlers.Page.Render(p))
	}

	// ─── JSON API ──────────────────────────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.NoStore())
	{
		login := []gin.HandlerFunc{handlers.Auth.Login}
		if cfg.LoginRateLimit > 0 {
			limiter := middleware.NewRateLimiter(ctx, cfg.LoginRateLimit, time.Minute)
			login = append([]gin.HandlerFunc{limiter.Middleware()}, login...)
		}
		api.POST("/login", login...)
		api.GET("/auth/me", middleware.RequireJWT(deps.AuthService), handlers.Auth.Me)

		api.GET("/user/profile", handlers.Profile.GetProfile)
		api.POST("/user/update", handlers.Profile.UpdateProfile)
		api.GET("/user/attendance", handlers.Attendance.GetAttendance)

		api.GET("/search", handlers.Search.Search)
		api.GET("/notifications", handlers.Notification.ListNotifications)
	}

	// ─── WebSocket ─────────────────────────────────────────────────────
	router.GET("/ws/notifications", handlers.WS.NotificationStream)

	router.NoRoute(handlers.Page.NotFound)

	return router
}
