package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sanjaiduresh/Niral-backend/internal/config"
	"github.com/sanjaiduresh/Niral-backend/internal/database"
	"github.com/sanjaiduresh/Niral-backend/internal/handler"
	"github.com/sanjaiduresh/Niral-backend/internal/middleware"
	"github.com/sanjaiduresh/Niral-backend/internal/models"
	"github.com/sanjaiduresh/Niral-backend/internal/repository"
	"github.com/sanjaiduresh/Niral-backend/internal/service"
	"github.com/sanjaiduresh/Niral-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize the session token manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.TokenTTL)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, hospitalRepo, departmentRepo, auditRepo, jwtManager)
	hospitalService := service.NewHospitalService(hospitalRepo, departmentRepo, userRepo, auditRepo)
	departmentService := service.NewDepartmentService(departmentRepo, userRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	hospitalHandler := handler.NewHospitalHandler(hospitalService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-directory-backend",
		})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(jwtManager), authHandler.Me)
	}

	// Hospital routes (reads public, writes privileged)
	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.List)
		hospitals.GET("/:id", hospitalHandler.Get)
		hospitals.GET("/:id/departments", hospitalHandler.Departments)

		hospitals.POST("",
			middleware.AdminOrBootstrap(jwtManager, cfg.Server.BootstrapKey),
			hospitalHandler.Create)
		hospitals.PUT("/:id",
			middleware.AuthMiddleware(jwtManager),
			middleware.RequireRoles(models.RoleAdmin),
			hospitalHandler.Update)
	}

	// Department routes (reads public, writes admin-only)
	departments := r.Group("/departments")
	{
		departments.GET("", departmentHandler.List)
		departments.GET("/:id", departmentHandler.Get)
		departments.GET("/:id/doctors", departmentHandler.Doctors)

		departments.POST("",
			middleware.AuthMiddleware(jwtManager),
			middleware.RequireRoles(models.RoleAdmin),
			departmentHandler.Create)
		departments.PUT("/:id",
			middleware.AuthMiddleware(jwtManager),
			middleware.RequireRoles(models.RoleAdmin),
			departmentHandler.Update)
	}

	// 10. Start server with graceful shutdown on interrupt
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
