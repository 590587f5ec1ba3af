package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"projecthub-backend/internal/api/handlers"
	"projecthub-backend/internal/api/middleware"
	"projecthub-backend/internal/auth"
	"projecthub-backend/internal/config"
	"projecthub-backend/internal/logger"
	"projecthub-backend/internal/repository"
	"projecthub-backend/internal/service"
	"projecthub-backend/internal/store"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(s *store.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validate := validator.New()
	log := logger.New()
	latency := time.Duration(cfg.MockLatencyMS) * time.Millisecond

	// Initialize repositories
	userRepo := repository.NewUserRepository(s)
	projectRepo := repository.NewProjectRepository(s)
	taskRepo := repository.NewTaskRepository(s)
	notificationRepo := repository.NewNotificationRepository(s)
	activityRepo := repository.NewActivityRepository(s)

	// Initialize services
	userService := service.NewUserService(userRepo, validate, latency)
	projectService := service.NewProjectService(projectRepo, activityRepo, notificationRepo, validate, log, latency)
	taskService := service.NewTaskService(taskRepo, activityRepo, notificationRepo, validate, log, latency)
	notificationService := service.NewNotificationService(notificationRepo, validate, latency)
	activityService := service.NewActivityService(activityRepo, validate, latency)

	// Initialize auth
	sessionTTL := time.Duration(cfg.SessionTTLMin) * time.Minute
	authService := auth.NewAuthService(cfg.JWTSecret, cfg.MockPassword, sessionTTL, userRepo)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(s)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	activityHandler := handlers.NewActivityHandler(activityService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.GET("/me", authHandler.Me)
	}

	// API v1 routes. Reads work without a session; "my" queries resolve the
	// session opportunistically, attributed mutations require one.
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.OptionalAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/all", userHandler.GetAllUsers)
			users.GET("/active", userHandler.GetActiveUsers)
			users.GET("/search", userHandler.SearchUsers)
			users.GET("/role/:role", userHandler.GetUsersByRole)
			users.GET("/me/stats", userHandler.GetMyStats)
			users.POST("", userHandler.CreateUser)
			users.POST("/reset-password", userHandler.ResetPassword)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
			users.POST("/:id/deactivate", userHandler.DeactivateUser)
			users.POST("/:id/activate", userHandler.ActivateUser)
			users.GET("/:id/stats", userHandler.GetUserStats)
		}

		// Project routes
		projects := v1.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/my", projectHandler.GetMyProjects)
			projects.GET("/overdue", projectHandler.GetOverdueProjects)
			projects.GET("/status-counts", projectHandler.GetProjectStatusCounts)
			projects.GET("/status/:status", projectHandler.GetProjectsByStatus)
			projects.GET("/search", projectHandler.SearchProjects)
			projects.POST("", authMiddleware.RequireAuth(), projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/details", projectHandler.GetProjectWithDetails)
			projects.PUT("/:id", authMiddleware.RequireAuth(), projectHandler.UpdateProject)
			projects.DELETE("/:id", authMiddleware.RequireAuth(), projectHandler.DeleteProject)
			projects.GET("/:id/members", projectHandler.GetProjectMembers)
			projects.POST("/:id/members", authMiddleware.RequireAuth(), projectHandler.AddProjectMember)
			projects.PUT("/:id/members/:userId", authMiddleware.RequireAuth(), projectHandler.UpdateProjectMemberRole)
			projects.DELETE("/:id/members/:userId", authMiddleware.RequireAuth(), projectHandler.RemoveProjectMember)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/my", taskHandler.GetMyTasks)
			tasks.GET("/overdue", taskHandler.GetOverdueTasks)
			tasks.GET("/due-soon", taskHandler.GetTasksDueSoon)
			tasks.GET("/status-counts", taskHandler.GetTaskStatusCounts)
			tasks.GET("/status/:status", taskHandler.GetTasksByStatus)
			tasks.GET("/search", taskHandler.SearchTasks)
			tasks.GET("/project/:projectId", taskHandler.GetTasksByProject)
			tasks.POST("", authMiddleware.RequireAuth(), taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", authMiddleware.RequireAuth(), taskHandler.UpdateTask)
			tasks.DELETE("/:id", authMiddleware.RequireAuth(), taskHandler.DeleteTask)
			tasks.POST("/:id/assign", authMiddleware.RequireAuth(), taskHandler.AssignTask)
			tasks.POST("/:id/status", authMiddleware.RequireAuth(), taskHandler.UpdateTaskStatus)
			tasks.POST("/:id/progress", authMiddleware.RequireAuth(), taskHandler.UpdateTaskProgress)
			tasks.GET("/:id/comments", taskHandler.GetTaskComments)
			tasks.POST("/:id/comments", authMiddleware.RequireAuth(), taskHandler.AddTaskComment)
		}

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("/my", notificationHandler.GetMyNotifications)
			notifications.GET("/my/unread", notificationHandler.GetUnreadNotifications)
			notifications.GET("/my/counts", notificationHandler.GetNotificationCounts)
			notifications.POST("/my/read-all", authMiddleware.RequireAuth(), notificationHandler.MarkAllNotificationsRead)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.POST("/bulk", notificationHandler.CreateNotificationsBulk)
			notifications.POST("/:id/read", notificationHandler.MarkNotificationRead)
			notifications.POST("/:id/unread", notificationHandler.MarkNotificationUnread)
			notifications.DELETE("/:id", notificationHandler.DeleteNotification)
		}

		// Activity routes
		activities := v1.Group("/activities")
		{
			activities.GET("/recent", activityHandler.GetRecentActivities)
			activities.GET("/search", activityHandler.SearchActivities)
			activities.GET("/stats", activityHandler.GetActivityStats)
			activities.GET("/project/:projectId", activityHandler.GetProjectActivities)
			activities.POST("", activityHandler.RecordActivity)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(s *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(s)
	router.GET("/health", healthHandler.Health)

	return router
}
