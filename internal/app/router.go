package app

import (
	"lingua_backend/docs"
	"lingua_backend/internal/config"
	"lingua_backend/internal/middleware"
	"lingua_backend/internal/model"
	"lingua_backend/internal/repository"
	"lingua_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, userRepo *repository.UserRepository, cfg *config.Store) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(userRepo))
	{
		authGroup.GET("/users/me", c.user.Profile)
		authGroup.PATCH("/users/me", c.user.UpdateProfile)
		authGroup.POST("/users/me/avatar", c.user.UploadAvatar)

		authGroup.GET("/placement/tests", c.placement.ListTests)
		authGroup.GET("/placement/tests/:id", c.placement.GetTest)
		authGroup.POST("/placement/tests/:id/submit", c.placement.SubmitTest)
		authGroup.GET("/placement/results", c.placement.History)

		authGroup.POST("/roadmaps/generate", c.roadmap.Generate)
		authGroup.GET("/roadmaps/current", c.roadmap.Current)
		authGroup.GET("/roadmaps/:id/modules", c.roadmap.Modules)
		authGroup.GET("/modules/:id", c.roadmap.ModuleDetail)
		authGroup.GET("/modules/:id/tasks", c.task.Templates)

		authGroup.POST("/tasks/:id/attempt", c.task.SubmitAttempt)
		authGroup.GET("/tasks/attempts", c.task.Attempts)

		authGroup.GET("/dialogue/scenarios", c.dialogue.Scenarios)
		authGroup.POST("/dialogue/sessions", c.dialogue.StartSession)
		authGroup.GET("/dialogue/sessions", c.dialogue.Sessions)
		authGroup.GET("/dialogue/sessions/:id", c.dialogue.GetSession)
		authGroup.POST("/dialogue/sessions/:id/message", c.dialogue.SendMessage)
		authGroup.POST("/dialogue/sessions/:id/end", c.dialogue.EndSession)

		authGroup.GET("/progress/overview", c.progress.Overview)
		authGroup.GET("/progress/modules/:id", c.progress.ModuleProgress)

		authGroup.GET("/gamification/profile", c.gamification.Profile)
		authGroup.POST("/gamification/daily-check-in", c.gamification.CheckIn)
	}

	// Admin content management
	adminGroup := router.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		adminGroup.POST("/placement/tests", c.admin.CreatePlacementTest)
		adminGroup.POST("/tasks/templates", c.admin.CreateTaskTemplate)
		adminGroup.POST("/dialogue/scenarios", c.admin.CreateScenario)
	}
}
