// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/parkview/go-grievance-backend/docs"
	"github.com/parkview/go-grievance-backend/internal/config"
	"github.com/parkview/go-grievance-backend/internal/http/handlers"
	"github.com/parkview/go-grievance-backend/internal/http/middleware"
	"github.com/parkview/go-grievance-backend/internal/repo"
	"github.com/parkview/go-grievance-backend/internal/services"
	"github.com/parkview/go-grievance-backend/internal/session"
	"github.com/parkview/go-grievance-backend/internal/uploads"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting, CORS
// and security headers, health and metrics endpoints, and then mounts the
// versioned public API under /api/v*.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured request logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per session/IP)
//  8. CORS and Security headers
//  9. gzip compression
//
// Session resolution (middleware.Authenticate) runs on the API group only, so
// /health and /metrics stay token-free.
func RegisterRoutes(r *gin.Engine, store *repo.Store, sessions *session.Manager, uploadStore *uploads.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured request logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (6 MiB: 5 MiB attachment + form overhead)
	r.Use(limitBody(6 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per session/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyBySessionOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// 9) Compress JSON payloads; xlsx downloads are already deflate-compressed
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedExtensions([]string{".xlsx"})))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Interactive API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← store
	authSvc := services.NewAuthService(store, cfg.ServiceRegion)
	compSvc := services.NewComplaintService(store)
	boardSvc := services.NewBoardService(store)
	annSvc := services.NewAnnouncementService(store)
	h := handlers.New(authSvc, compSvc, boardSvc, annSvc, sessions, uploadStore, cfg.ServiceRegion)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	api.Use(middleware.Authenticate(sessions))
	{
		// Authentication
		api.POST("/auth/login", h.Login)
		api.POST("/auth/logout", middleware.RequireAuth(), h.Logout)

		// Reference data
		api.GET("/categories", h.ListCategories)

		// Complaints
		api.POST("/complaints", middleware.RequireAuth(), h.SubmitComplaint)
		api.GET("/complaints", middleware.RequireAuth(), h.ListComplaints)
		api.GET("/complaints/:id", middleware.RequireAuth(), h.GetComplaint)
		api.PATCH("/complaints/:id", middleware.RequireAdmin(), h.UpdateComplaint)

		// Feedback on resolved complaints
		api.POST("/complaints/:id/feedback", middleware.RequireAuth(), h.AttachFeedback)
		api.GET("/feedback", middleware.RequireAdmin(), h.ListFeedback)
		api.GET("/feedback/summary", middleware.RequireAdmin(), h.FeedbackSummary)

		// Administrative reports
		api.GET("/reports/stats", middleware.RequireAdmin(), h.Stats)
		api.GET("/reports/map", middleware.RequireAdmin(), h.MapPoints)
		api.GET("/reports/export.xlsx", middleware.RequireAdmin(), h.ExportComplaints)

		// Community board
		api.GET("/board/posts", middleware.RequireAuth(), h.ListPosts)
		api.POST("/board/posts", middleware.RequireAuth(), h.CreatePost)
		api.POST("/board/posts/:id/vote", middleware.RequireAuth(), h.VotePost)

		// Announcements
		api.GET("/announcements", middleware.RequireAuth(), h.ListAnnouncements)
		api.POST("/announcements", middleware.RequireAdmin(), h.PublishAnnouncement)

		// Help assistant
		api.POST("/assistant/messages", middleware.RequireAuth(), h.AssistantMessage)
		api.GET("/assistant/messages", middleware.RequireAuth(), h.AssistantHistory)

		// Attachments
		api.POST("/uploads", middleware.RequireAuth(), h.Upload)
		api.GET("/uploads/:name", middleware.RequireAuth(), h.ServeUpload)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
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
