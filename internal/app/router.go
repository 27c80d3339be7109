package app

import (
	"learning_path_backend/internal/middleware"
	"learning_path_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware())
	{
		api.GET("/health", c.health.HealthCheck)

		// 课程进度
		courses := api.Group("/courses")
		{
			courses.GET("", c.course.ListCourses)
			courses.POST("", c.course.AddCourse)
			courses.GET("/aggregate", c.course.Aggregate)
			courses.GET("/export", c.course.Export)
			courses.POST("/bulk-adjust", c.course.BulkAdjust)
			courses.PUT("/:name/completion", c.course.SetCompletion)
			courses.PATCH("/:name/metadata", c.course.SetMetadata)
			courses.DELETE("/:name", c.course.RemoveCourse)
		}

		// 看板
		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("", c.dashboard.GetOverview)
			dashboard.POST("/study-hours", c.dashboard.LogStudyHours)
			dashboard.GET("/forecast", c.dashboard.GetForecast)
			dashboard.GET("/insights", c.dashboard.GetInsights)
		}

		// 学习助手
		chat := api.Group("/chat")
		{
			chat.POST("/messages", c.chat.SendMessage)
			chat.GET("/history", c.chat.GetHistory)
			chat.DELETE("/history", c.chat.ClearHistory)
			chat.GET("/quick-prompts", c.chat.QuickPrompts)
		}

		// 快照
		state := api.Group("/state")
		{
			state.POST("/save", c.snapshot.Save)
			state.POST("/load", c.snapshot.Load)
		}
	}
}
