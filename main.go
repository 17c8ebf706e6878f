package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/QUARTER-salon/practice-tracker/config"
	"github.com/QUARTER-salon/practice-tracker/controllers"
	"github.com/QUARTER-salon/practice-tracker/middleware"
	"github.com/QUARTER-salon/practice-tracker/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := config.ConnectDatabase(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	db := config.GetDB()
	if err := config.MigrateDatabase(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}
	logger.Info("database migration completed")

	// Export archival is optional; the app runs without a bucket.
	var archiver services.Archiver
	if cfg.AWSS3Bucket != "" {
		s3Archiver, err := services.NewS3Archiver(context.Background(), cfg.AWSRegion, cfg.AWSS3Bucket)
		if err != nil {
			logger.Warn("export archival disabled", zap.Error(err))
		} else {
			archiver = s3Archiver
		}
	}

	sessions := services.NewSessionService(db, logger, cfg.SessionSecret, cfg.SessionTTLMinutes)
	auth := services.NewAuthService(db, logger, sessions)
	master := services.NewMasterService(db, logger)
	form := services.NewFormService(db, logger)
	practice := services.NewPracticeService(db, logger)
	report := services.NewReportService(db, logger)
	export := services.NewExportService(logger, archiver)
	importer := services.NewImportService(db, logger)

	router := setupRouter(cfg, auth, sessions, master, form, practice, report, export, importer)

	addr := ":" + cfg.Port
	logger.Info("server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// setupRouter wires middleware, controllers and routes onto a Gin engine.
func setupRouter(
	cfg *config.Config,
	auth *services.AuthService,
	sessions *services.SessionService,
	master *services.MasterService,
	form *services.FormService,
	practice *services.PracticeService,
	report *services.ReportService,
	export *services.ExportService,
	importer *services.ImportService,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	router.Use(middleware.SessionAuth(sessions))

	router.LoadHTMLGlob("templates/*")

	authController := controllers.NewAuthController(auth)
	masterController := controllers.NewMasterController(master)
	practiceController := controllers.NewPracticeController(practice, form, master)
	reportController := controllers.NewReportController(report, export)
	importController := controllers.NewImportController(importer)
	pageController := controllers.NewPageController(auth)

	router.GET("/", pageController.Render)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)

		v1.POST("/auth/login", authController.Login)
		v1.POST("/auth/logout", authController.Logout)
		v1.GET("/auth/session", authController.Session)

		// Federated login requires a valid identity token from the
		// external provider before any session exists.
		v1.POST("/auth/federated", middleware.EnsureValidIdentityToken(cfg), authController.FederatedLogin)

		authed := v1.Group("", middleware.RequireLogin())
		{
			authed.POST("/practice-records", practiceController.Submit)
			authed.GET("/trainers", practiceController.Trainers)
			authed.GET("/tech-categories", practiceController.TechCategories)
			authed.GET("/tech-details", practiceController.TechDetails)
			authed.GET("/inventory", practiceController.Inventory)
		}

		admin := v1.Group("/admin", middleware.RequireLogin(), middleware.RequireAdmin(auth))
		{
			admin.GET("/stores", masterController.GetStores)
			admin.POST("/stores", masterController.AddStore)
			admin.PUT("/stores", masterController.RenameStore)
			admin.DELETE("/stores", masterController.DeleteStore)

			admin.GET("/roles", masterController.GetRoles)
			admin.POST("/roles", masterController.AddRole)
			admin.PUT("/roles", masterController.RenameRole)
			admin.DELETE("/roles", masterController.DeleteRole)

			admin.GET("/trainers", masterController.GetTrainers)
			admin.POST("/trainers", masterController.AddTrainer)
			admin.DELETE("/trainers", masterController.DeleteTrainer)

			admin.GET("/tech-categories", masterController.GetTechCategories)
			admin.POST("/tech-categories", masterController.AddTechCategory)
			admin.PUT("/tech-categories", masterController.UpdateTechCategory)
			admin.DELETE("/tech-categories", masterController.DeleteTechCategory)

			admin.GET("/tech-details", masterController.GetTechDetails)
			admin.POST("/tech-details", masterController.AddTechDetail)
			admin.PUT("/tech-details", masterController.UpdateTechDetail)
			admin.DELETE("/tech-details", masterController.DeleteTechDetail)

			admin.GET("/inventory", masterController.GetInventory)
			admin.PUT("/inventory", masterController.SetWigStock)

			admin.GET("/practice-records", reportController.Records)
			admin.GET("/practice-records/export", reportController.Export)
			admin.POST("/import", importController.Import)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Practice Tracker API is running",
	})
}
