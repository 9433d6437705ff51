package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"agencyhub/internal/config"
	"agencyhub/internal/domain"
	"agencyhub/internal/handler"
	"agencyhub/internal/middleware"
	"agencyhub/internal/service"
)

// Handlers bundles all HTTP handlers wired by Setup.
type Handlers struct {
	Auth         *handler.AuthHandler
	Invoice      *handler.InvoiceHandler
	Notification *handler.NotificationHandler
	Message      *handler.MessageHandler
	Project      *handler.ProjectHandler
	Contact      *handler.ContactHandler
	Feedback     *handler.FeedbackHandler
	Push         *handler.PushHandler
	Upload       *handler.UploadHandler
	User         *handler.UserHandler
	Health       *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers, publicLimiter *limiter.Limiter) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "Accept", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public routes; the write endpoints share an IP rate limit
	rateLimited := api.Group("")
	rateLimited.Use(middleware.RateLimit(publicLimiter))
	rateLimited.POST("/contact", h.Contact.Submit)
	rateLimited.POST("/notifications/callback", h.Notification.Callback)

	api.GET("/feedback/testimonials", h.Feedback.Testimonials)
	api.GET("/push/vapid-public-key", h.Push.PublicKey)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	invoices := protected.Group("/invoices")
	invoices.POST("", middleware.RequireRole(domain.RoleAdmin), h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/summary", h.Invoice.Summary)
	invoices.GET("/export", middleware.RequireRole(domain.RoleAdmin), h.Invoice.Export)
	invoices.GET("/:id", h.Invoice.GetByID)
	invoices.PUT("/:id/status", middleware.RequireRole(domain.RoleAdmin), h.Invoice.UpdateStatus)
	invoices.POST("/:id/report-payment", middleware.RequireRole(domain.RoleClient), h.Invoice.ReportPayment)
	invoices.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Invoice.Delete)

	notifications := protected.Group("/notifications")
	notifications.POST("", middleware.RequireRole(domain.RoleAdmin), h.Notification.Send)
	notifications.POST("/broadcast", middleware.RequireRole(domain.RoleAdmin), h.Notification.Broadcast)
	notifications.GET("", h.Notification.List)
	notifications.GET("/unread-count", h.Notification.UnreadCount)
	notifications.PUT("/read-all", h.Notification.MarkAllRead)
	notifications.PUT("/:id/read", h.Notification.MarkRead)
	notifications.DELETE("/:id", h.Notification.Delete)

	messages := protected.Group("/messages")
	messages.POST("", h.Message.Send)
	messages.GET("", h.Message.List)
	messages.GET("/:id", h.Message.GetByID)
	messages.POST("/:id/reply", h.Message.Reply)
	messages.PUT("/:id/read", h.Message.MarkRead)
	messages.DELETE("/:id", h.Message.Delete)

	projects := protected.Group("/projects")
	projects.POST("", middleware.RequireRole(domain.RoleAdmin), h.Project.Create)
	projects.GET("", h.Project.List)
	projects.GET("/:id", h.Project.GetByID)
	projects.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Project.Update)
	projects.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Project.Delete)

	contacts := protected.Group("/contacts")
	contacts.Use(middleware.RequireRole(domain.RoleAdmin))
	contacts.GET("", h.Contact.List)
	contacts.PUT("/:id/status", h.Contact.UpdateStatus)
	contacts.DELETE("/:id", h.Contact.Delete)

	feedback := protected.Group("/feedback")
	feedback.POST("", middleware.RequireRole(domain.RoleClient), h.Feedback.Submit)
	feedback.GET("", middleware.RequireRole(domain.RoleAdmin), h.Feedback.List)
	feedback.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Feedback.Moderate)

	push := protected.Group("/push")
	push.POST("/subscribe", h.Push.Subscribe)
	push.DELETE("/unsubscribe", h.Push.Unsubscribe)

	protected.POST("/uploads", h.Upload.Upload)

	users := protected.Group("/users")
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.PUT("/:id", h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Deactivate)

	return r
}
