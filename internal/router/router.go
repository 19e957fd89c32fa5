// Package router builds the gin engine and its route table.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/saarthi-api/api/swagger"
	"github.com/noah-isme/saarthi-api/internal/handler"
	"github.com/noah-isme/saarthi-api/internal/middleware"
	"github.com/noah-isme/saarthi-api/internal/models"
	"github.com/noah-isme/saarthi-api/internal/service"
	"github.com/noah-isme/saarthi-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/saarthi-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/saarthi-api/pkg/middleware/requestid"
)

// Options configures the engine.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Tokens         middleware.TokenValidator
}

// Handlers groups every HTTP handler mounted by New.
type Handlers struct {
	Users         *handler.UserHandler
	Auth          *handler.AuthHandler
	Chat          *handler.ChatHandler
	Assessments   *handler.AssessmentHandler
	Students      *handler.StudentHandler
	Interventions *handler.InterventionHandler
	Analytics     *handler.AnalyticsHandler
	Metrics       *handler.MetricsHandler
}

// New returns a gin engine serving the API under opts.APIPrefix. An empty prefix mounts it at the root.
func New(opts Options, h Handlers) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)
	api.Use(middleware.OptionalJWT(opts.Tokens), middleware.Audit(opts.Logger))

	api.GET("/users", h.Users.List)
	api.GET("/users/:id", h.Users.Get)
	api.POST("/users", h.Users.Create)

	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", middleware.JWT(opts.Tokens), h.Auth.Me)

	api.GET("/chat/:userId", h.Chat.History)
	api.POST("/chat", h.Chat.Send)

	api.GET("/assessments", h.Assessments.List)
	api.GET("/assessments/:id", h.Assessments.Get)
	api.POST("/assessments", h.Assessments.Create)
	api.PUT("/assessments/:id", h.Assessments.Update)

	api.GET("/student-assessments/:studentId", h.Students.ListAssessments)
	api.POST("/student-assessments", h.Students.CreateAssessment)
	api.PUT("/student-assessments/:id", h.Students.UpdateAssessment)

	api.GET("/student-progress/:studentId", h.Students.ListProgress)
	api.POST("/student-progress", h.Students.CreateProgress)
	api.PUT("/student-progress/:id", h.Students.UpdateProgress)

	api.GET("/interventions", h.Interventions.List)
	api.POST("/interventions", h.Interventions.Create)
	api.PUT("/interventions/:id", h.Interventions.Update)

	analytics := api.Group("/analytics", middleware.JWT(opts.Tokens))
	analytics.GET("/risk", middleware.RequireRoles(models.RoleEducator, models.RoleAdmin), h.Analytics.Risk)
	analytics.GET("/risk/export", middleware.RequireRoles(models.RoleEducator, models.RoleAdmin), h.Analytics.Export)
	analytics.GET("/system", middleware.RequireRoles(models.RoleAdmin), h.Analytics.System)

	return r
}
