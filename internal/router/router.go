// internal/router/router.go
package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fanwell/fanwell-backend/internal/config"
	"github.com/fanwell/fanwell-backend/internal/handlers"
	"github.com/fanwell/fanwell-backend/internal/middleware"
	"github.com/fanwell/fanwell-backend/internal/services"
	"github.com/fanwell/fanwell-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage service: %w", err)
	}
	directoryService := services.NewDirectoryService(db)
	credibilityService := services.NewCredibilityService(db, &cfg.Moderation)
	suspensionService := services.NewSuspensionService(db)
	reportLimiter := services.NewSlidingWindowLimiter(db)

	reportService := services.NewReportService(db, &cfg.Moderation, directoryService, credibilityService, reportLimiter)
	enforcementService := services.NewEnforcementService(db, credibilityService, notificationService)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(reportService, storageService)
	adminHandler := handlers.NewAdminHandler(reportService, enforcementService, credibilityService, suspensionService, storageService)

	// Set JWT secret and listing page cap
	utils.SetJWTSecret(cfg.JWT.SecretKey)
	utils.SetMaxPageSize(cfg.Moderation.MaxPageSize)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Report intake
		reports := v1.Group("/reports")
		reports.Use(middleware.AuthRequired(), middleware.SuspensionGate(suspensionService))
		{
			reports.POST("", reportHandler.CreateReport)
			reports.POST("/evidence", middleware.UploadRateLimit(), reportHandler.UploadEvidence)
			reports.GET("/mine", reportHandler.GetMyReports)
		}

		// Admin review surface
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			adminReports := admin.Group("/reports")
			{
				adminReports.GET("", adminHandler.GetReports)
				adminReports.GET("/:id", adminHandler.GetReportDetail)
				adminReports.PUT("/:id/review", adminHandler.ReviewReport)
			}

			adminReporters := admin.Group("/reporters")
			{
				adminReporters.GET("/:id/credibility", adminHandler.GetReporterCredibility)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("/:id/suspensions", adminHandler.GetSuspensionHistory)
			}

			admin.GET("/audit-logs", adminHandler.GetAuditLogs)

			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", adminHandler.GetDashboardStats)
			}
		}
	}

	return r, nil
}
