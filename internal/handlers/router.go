package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/services"
	"github.com/SAP-F-2025/kumi-math-service/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const serviceName = "kumi-math-service"

// HealthCheck is a named dependency probe reported by /health
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HandlerManager struct {
	childHandler    *ChildHandler
	sessionHandler  *SessionHandler
	resultHandler   *ResultHandler
	resourceHandler *ResourceHandler
	healthChecks    []HealthCheck
	logger          utils.Logger
}

func NewHandlerManager(serviceManager *services.Manager, logger utils.Logger, checks ...HealthCheck) *HandlerManager {
	return &HandlerManager{
		childHandler: NewChildHandler(
			serviceManager.Child,
			serviceManager.Result,
			serviceManager.LearningPath,
			serviceManager.Dashboard,
			logger,
		),
		sessionHandler:  NewSessionHandler(serviceManager.Assessment, logger),
		resultHandler:   NewResultHandler(serviceManager.Result, serviceManager.Export, logger),
		resourceHandler: NewResourceHandler(serviceManager.Resource, logger),
		healthChecks:    checks,
		logger:          logger,
	}
}

// CORSMiddleware allows the listed browser origins to call the API
func CORSMiddleware(origins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", hm.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Child routes
		children := v1.Group("/children")
		{
			children.POST("", hm.childHandler.CreateChild)
			children.GET("", hm.childHandler.ListChildren)
			children.GET("/:id", hm.childHandler.GetChild)
			children.GET("/:id/dashboard", hm.childHandler.GetDashboard)
			children.GET("/:id/results", hm.childHandler.ListResults)
			children.GET("/:id/results/latest", hm.childHandler.GetLatestResult)
			children.GET("/:id/learning-path", hm.childHandler.GetLearningPath)
			children.POST("/:id/activities/:activity_id/complete", hm.childHandler.CompleteActivity)
		}

		// Assessment session routes
		sessions := v1.Group("/assessments/sessions")
		{
			sessions.POST("", hm.sessionHandler.StartSession)
			sessions.GET("/:id", hm.sessionHandler.GetSession)
			sessions.POST("/:id/answers", hm.sessionHandler.SubmitAnswer)
			sessions.POST("/:id/next", hm.sessionHandler.NextQuestion)
			sessions.POST("/:id/prev", hm.sessionHandler.PrevQuestion)
			sessions.POST("/:id/pause", hm.sessionHandler.PauseSession)
			sessions.POST("/:id/resume", hm.sessionHandler.ResumeSession)
			sessions.POST("/:id/finish", hm.sessionHandler.FinishSession)
		}

		v1.POST("/mastery/evaluate", hm.resultHandler.EvaluateMastery)

		results := v1.Group("/results")
		{
			results.GET("/:id", hm.resultHandler.GetResult)
			results.GET("/:id/export", hm.resultHandler.ExportResult)
		}

		// Catalog routes
		v1.GET("/concepts", hm.resourceHandler.ListConcepts)
		resourceRoutes := v1.Group("/resources")
		{
			resourceRoutes.GET("", hm.resourceHandler.ListResources)
			resourceRoutes.GET("/types", hm.resourceHandler.ListResourceTypes)
		}
	}
}

// Health reports 503 when any dependency probe fails
func (hm *HandlerManager) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(hm.healthChecks))
	for _, hc := range hm.healthChecks {
		if err := hc.Check(ctx); err != nil {
			hm.logger.Warn("Health check failed", "check", hc.Name, "error", err)
			checks[hc.Name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[hc.Name] = "ok"
	}

	state := "healthy"
	if status != http.StatusOK {
		state = "unhealthy"
	}
	c.JSON(status, gin.H{
		"status":  state,
		"service": serviceName,
		"checks":  checks,
	})
}
