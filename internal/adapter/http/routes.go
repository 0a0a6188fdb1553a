package http

import (
	"github.com/gin-gonic/gin"

	"github.com/le0623/slack-app-demo/internal/adapter/http/handlers"
	"github.com/le0623/slack-app-demo/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, automationHandler *handlers.AutomationHandler) {
	r.GET("/", automationHandler.Status)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/tasks", automationHandler.ListTasks)
		api.GET("/tasks/:id", automationHandler.GetTask)
		api.GET("/approvals", automationHandler.ListApprovals)
		api.GET("/approvals/:id", automationHandler.GetApproval)
	}
}
