package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/database"
	"github.com/sendsafe/sendsafe-api/internal/http/handler"
	"github.com/sendsafe/sendsafe-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/sendsafe/sendsafe-api/docs" // Import generated swagger docs
)

// Handlers groups the HTTP handlers mounted under /api/v1
type Handlers struct {
	Auth         *handler.AuthHandler
	Contact      *handler.ContactHandler
	Group        *handler.GroupHandler
	Draft        *handler.DraftHandler
	Template     *handler.TemplateHandler
	Email        *handler.EmailHandler
	Profile      *handler.ProfileHandler
	SenderDomain *handler.SenderDomainHandler
}

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter
	handlers       Handlers
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	handlers Handlers,
) *Router {
	return &Router{
		cfg:            cfg,
		logger:         logger,
		db:             db,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		handlers:       handlers,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	if rt.cfg.Server.EnableMetrics {
		r.Use(middleware.Metrics)
	}
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP) // Apply IP-based rate limiting globally

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health check (readiness probe with detailed stats)
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
			})
			return
		}

		writeHealth(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"stats": map[string]interface{}{
				"max_open_connections": stats.MaxOpenConnections,
				"open_connections":     stats.OpenConnections,
				"in_use":               stats.InUse,
				"idle":                 stats.Idle,
				"wait_count":           stats.WaitCount,
				"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
			},
		})
	})

	// Combined readiness check
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		checks := make(map[string]interface{})
		status := http.StatusOK

		if err := database.HealthCheck(rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			checks["database"] = map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			}
			status = http.StatusServiceUnavailable
		} else {
			checks["database"] = map[string]interface{}{"status": "healthy"}
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}
		writeHealth(w, status, map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	})

	if rt.cfg.Server.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	h := rt.handlers

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			r.Get("/auth/me", h.Auth.Me)

			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.Contact.List)
				r.Post("/", h.Contact.Create)
				r.Post("/import", h.Contact.Import)
				r.Get("/export", h.Contact.Export)
				r.Post("/fix-columns", h.Contact.FixColumns)
				r.Post("/enrich", h.Contact.Enrich)
				r.Post("/delete", h.Contact.DeleteMany)
				r.Patch("/{id}", h.Contact.Update)
				r.Delete("/{id}", h.Contact.Delete)
			})

			r.Route("/groups", func(r chi.Router) {
				r.Get("/", h.Group.List)
				r.Post("/", h.Group.Create)
				r.Get("/memberships", h.Group.ListMemberships)
				r.Delete("/{id}", h.Group.Delete)
				r.Post("/{id}/contacts", h.Group.AddContacts)
				r.Delete("/{id}/contacts/{contactId}", h.Group.RemoveContact)
			})

			r.Route("/drafts", func(r chi.Router) {
				r.Get("/", h.Draft.List)
				r.Post("/", h.Draft.Create)
				r.Get("/{id}", h.Draft.Get)
				r.Patch("/{id}", h.Draft.Update)
				r.Delete("/{id}", h.Draft.Delete)
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", h.Template.List)
				r.Post("/", h.Template.Create)
				r.Post("/analyze", h.Template.Analyze)
				r.Put("/{id}", h.Template.Update)
				r.Delete("/{id}", h.Template.Delete)
			})

			r.Route("/emails", func(r chi.Router) {
				r.Get("/", h.Email.List)
				r.Post("/generate", h.Email.Generate)
				r.Post("/approve-all", h.Email.ApproveAll)
				r.Post("/send-approved", h.Email.SendApproved)
				r.Get("/{id}", h.Email.Get)
				r.Patch("/{id}", h.Email.Update)
				r.Delete("/{id}", h.Email.Delete)
				r.Post("/{id}/approve", h.Email.Approve)
				r.Post("/{id}/request-review", h.Email.RequestReview)
				r.Post("/{id}/send", h.Email.Send)
			})

			r.Get("/profile", h.Profile.GetProfile)
			r.Put("/profile", h.Profile.UpdateProfile)
			r.Get("/usage", h.Profile.GetUsage)
			r.Get("/invoices", h.Profile.ListInvoices)

			r.Route("/sender-domain", func(r chi.Router) {
				r.Get("/", h.SenderDomain.Get)
				r.Post("/", h.SenderDomain.Add)
				r.Post("/verify", h.SenderDomain.Verify)
				r.Delete("/", h.SenderDomain.Remove)
			})
		})
	})

	return r
}

func writeHealth(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
