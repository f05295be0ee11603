package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hostreel_backend/internal/config"
	"hostreel_backend/internal/email"
	"hostreel_backend/internal/handlers"
	"hostreel_backend/internal/logger"
	"hostreel_backend/internal/middleware"
	"hostreel_backend/internal/models"
	"hostreel_backend/internal/queue"
	"hostreel_backend/internal/repositories"
	"hostreel_backend/internal/routes"
	"hostreel_backend/internal/services"
	"hostreel_backend/internal/storage"
	"hostreel_backend/internal/validator"
	"hostreel_backend/internal/workers"
	"hostreel_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
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

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	renderQueue := queue.NewRenderQueue(queue.Config{
		Addr:          cfg.Redis.Addr,
		Password:      cfg.Redis.Password,
		DB:            cfg.Redis.DB,
		RenderQueue:   cfg.Redis.RenderQueue,
		ResultChannel: cfg.Redis.ResultChannel,
	})
	if err := renderQueue.Ping(context.Background()); err != nil {
		logger.Warn("Redis unavailable at startup, render hand-off will retry", "error", err)
	}

	ginRouter, serviceContainer := SetupRouter(cfg, gormDB, renderQueue)

	startWorkers(context.Background(), gormDB, renderQueue, serviceContainer)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB, renderQueue *queue.RenderQueue) (*gin.Engine, *services.ServiceContainer) {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, storageInstance, renderQueue)

	appHandlers := initializeHandlers(serviceContainer)

	wsManager := ws.NewManager()
	go wsManager.Run()
	serviceContainer.NotificationService.SetPusher(wsManager)
	wsHandler := ws.NewWebSocketHandler(wsManager)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter, serviceContainer
}

func initializeServices(cfg *config.Config, storageInstance storage.Storage, renderQueue *queue.RenderQueue) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP not configured, outbound email disabled")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	sessionRepo := repositories.NewSessionRepository()
	propertyRepo := repositories.NewPropertyRepository()
	videoRepo := repositories.NewVideoRepository()
	templateRepo := repositories.NewTemplateRepository()
	timelineRepo := repositories.NewTimelineRepository()
	notificationRepo := repositories.NewNotificationRepository()

	authService := services.NewAuthService(userRepo, sessionRepo)
	propertyService := services.NewPropertyService(propertyRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	videoService := services.NewVideoService(videoRepo, propertyService, notificationService, storageInstance)
	templateService := services.NewTemplateService(templateRepo)
	matchingService := services.NewMatchingService(videoRepo, templateRepo, timelineRepo, userRepo,
		propertyService, notificationService, renderQueue, emailService)
	dashboardService := services.NewDashboardService(propertyService, videoService, matchingService)

	return &services.ServiceContainer{
		AuthService:         authService,
		PropertyService:     propertyService,
		VideoService:        videoService,
		TemplateService:     templateService,
		MatchingService:     matchingService,
		NotificationService: notificationService,
		DashboardService:    dashboardService,
		EmailService:        emailService,
		Storage:             storageInstance,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, serviceContainer.AuthService),
		PropertyHandler:     handlers.NewPropertyHandler(base, serviceContainer.PropertyService),
		VideoHandler:        handlers.NewVideoHandler(base, serviceContainer.VideoService),
		TemplateHandler:     handlers.NewTemplateHandler(base, serviceContainer.TemplateService),
		MatchingHandler:     handlers.NewMatchingHandler(base, serviceContainer.MatchingService),
		NotificationHandler: handlers.NewNotificationHandler(base, serviceContainer.NotificationService),
		DashboardHandler:    handlers.NewDashboardHandler(base, serviceContainer.DashboardService),
	}
}

func initializeGinRouter(gormDB *gorm.DB) *gin.Engine {
	if config.AppConfig.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}

func startWorkers(ctx context.Context, gormDB *gorm.DB, renderQueue *queue.RenderQueue, serviceContainer *services.ServiceContainer) {
	sessionWorker := workers.NewSessionWorker(gormDB, repositories.NewSessionRepository())
	sessionWorker.Start(ctx)

	renderWorker := workers.NewRenderWorker(gormDB, renderQueue,
		repositories.NewTimelineRepository(), repositories.NewVideoRepository(),
		serviceContainer.MatchingService)
	renderWorker.Start(ctx)

	logger.Info("Background workers started")
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Property{},
		&models.Video{},
		&models.Template{},
		&models.TemplateClip{},
		&models.Timeline{},
		&models.TimelineEntry{},
		&models.Notification{},
	)
}
