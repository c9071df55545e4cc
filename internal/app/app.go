package app

import (
	"fmt"

	"domwork_backend/internal/config"
	"domwork_backend/internal/database"
	"domwork_backend/internal/handlers"
	"domwork_backend/internal/logger"
	"domwork_backend/internal/middleware"
	"domwork_backend/internal/repositories"
	"domwork_backend/internal/routes"
	"domwork_backend/internal/services"
	"domwork_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// 1. Инициализируем сервисы
	serviceContainer := initializeServices(gormDB)

	// 2. Инициализируем хэндлеры
	customValidator := validator.New()
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(gormDB *gorm.DB) *services.ServiceContainer {
	// --- Инициализация репозиториев ---
	workerRepo := repositories.NewWorkerRepository()
	employerRepo := repositories.NewEmployerRepository()
	offerRepo := repositories.NewOfferRepository()

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(gormDB, workerRepo, employerRepo)
	workerService := services.NewWorkerService(gormDB, workerRepo, offerRepo)
	employerService := services.NewEmployerService(gormDB, employerRepo, offerRepo)
	matchingService := services.NewMatchingService(gormDB, workerRepo, employerRepo, offerRepo)

	return &services.ServiceContainer{
		AuthService:     authService,
		WorkerService:   workerService,
		EmployerService: employerService,
		MatchingService: matchingService,
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}
