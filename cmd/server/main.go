package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/taskboard/task-user-api/internal/config"
	"github.com/taskboard/task-user-api/internal/database"
	"github.com/taskboard/task-user-api/internal/handlers"
	"github.com/taskboard/task-user-api/internal/repository"
	"github.com/taskboard/task-user-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	taskService := services.NewTaskService(taskRepo, userRepo)
	userService := services.NewUserService(userRepo, taskRepo)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task User API is running",
		})
	})

	// User routes
	users := r.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.GET("/:id/tasks", userHandler.ListUserTasks)
	}

	// Task routes
	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("", taskHandler.ListTasks)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
		tasks.PATCH("/:id", taskHandler.PartialUpdateTask)
		tasks.DELETE("/:id", taskHandler.DeleteTask)
		tasks.PUT("/:id/assign/:userId", taskHandler.AssignTask)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
