package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sis/backend/internal/domain/identity"
	"github.com/sis/backend/internal/infrastructure/auth"
	"github.com/sis/backend/internal/infrastructure/config"
	"github.com/sis/backend/internal/infrastructure/logger"
	"github.com/sis/backend/internal/interfaces/http/handler"
	"github.com/sis/backend/internal/interfaces/http/middleware"
)

// Handlers groups the endpoint handlers wired into the router
type Handlers struct {
	Auth        *handler.AuthHandler
	Application *handler.ApplicationHandler
	Payment     *handler.PaymentHandler
	Invoice     *handler.InvoiceHandler
	Document    *handler.DocumentHandler
	Enrollment  *handler.EnrollmentHandler
	Program     *handler.ProgramHandler
	Health      *handler.HealthHandler
}

// New builds the gin engine with the full middleware chain and all routes
// mounted under /api/v1.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.GET("/health", h.Health.Check)

	api := engine.Group("/api/v1")

	// Public endpoints: prospective students browse programs and apply
	// before they have an account.
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/programs", h.Program.List)
	api.GET("/programs/:id", h.Program.Get)
	api.POST("/applications", h.Application.Submit)

	authenticated := api.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))

	staff := authenticated.Group("")
	staff.Use(middleware.RequireRoles(
		string(identity.RoleAdmission),
		string(identity.RoleRegistrar),
		string(identity.RoleFinance),
		string(identity.RoleAdmin),
	))
	staff.GET("/applications", h.Application.List)
	staff.GET("/applications/:id", h.Application.Get)

	admissions := authenticated.Group("")
	admissions.Use(middleware.RequireRoles(
		string(identity.RoleAdmission),
		string(identity.RoleAdmin),
	))
	admissions.POST("/applications/:id/approve", h.Application.Approve)
	admissions.POST("/applications/:id/reject", h.Application.Reject)

	finance := authenticated.Group("")
	finance.Use(middleware.RequireRoles(
		string(identity.RoleFinance),
		string(identity.RoleAdmin),
	))
	finance.POST("/payments", h.Payment.Process)

	registrar := authenticated.Group("")
	registrar.Use(middleware.RequireRoles(
		string(identity.RoleRegistrar),
		string(identity.RoleAdmin),
	))
	registrar.POST("/enrollments", h.Enrollment.EnrollSemester)
	registrar.POST("/course-registrations", h.Enrollment.RegisterCourses)

	// Invoice and document reads are open to any authenticated user.
	// Students see their own records through the same endpoints.
	authenticated.GET("/invoices/:id", h.Invoice.Get)
	authenticated.GET("/invoices/:id/payments", h.Invoice.ListPayments)
	authenticated.GET("/students/:id/invoices", h.Invoice.ListForStudent)
	authenticated.GET("/documents/:kind/:id", h.Document.Generate)

	return engine
}
