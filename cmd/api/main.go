package main

import (
	_ "backend/api/swagger" // swagger docs
	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handler"
	"backend/internal/marketprice"
	"backend/internal/middleware"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/internal/websocket"
	"backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// @title           Sawmill Operations API
// @version         1.0
// @description     Backend for sawmill operations: accounts, scheduling, inventory, maintenance, sales and the board-foot calculator.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger.Init(cfg.Server.Env, cfg.Log.Level)
	log := logger.Get()
	defer log.Sync() //nolint:errcheck

	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		log.Fatal("database seed failed", zap.Error(err))
	}
	middleware.InitModuleMiddleware(db)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Repository -> Service -> Handler
	txManager := repository.NewTransactionManager(db)
	accountRepo := repository.NewAccountRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	referenceRepo := repository.NewReferenceRepository(db)

	marketClient := marketprice.New(cfg.Market.PriceURL, cfg.Market.Timeout)

	accountService := service.NewAccountService(accountRepo)
	scheduleService := service.NewScheduleService(scheduleRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, txManager, wsHub)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, inventoryRepo, txManager, wsHub)
	salesService := service.NewSalesService(salesRepo)
	calculatorService := service.NewCalculatorService(referenceRepo, marketClient)
	referenceService := service.NewReferenceService(referenceRepo)

	accountHandler := handler.NewAccountHandler(accountService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	salesHandler := handler.NewSalesHandler(salesService)
	calculatorHandler := handler.NewCalculatorHandler(calculatorService)
	referenceHandler := handler.NewReferenceHandler(referenceService)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), logger.Middleware(log))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	api := router.Group("")

	// Token-free endpoints: login/register, the public calculator and the
	// public slice of the Q&A board.
	accountHandler.RegisterRoutes(api)
	calculatorHandler.RegisterPublicRoutes(api)
	referenceHandler.RegisterPublicRoutes(api)

	// Everything below carries its own role or module gate.
	scheduleHandler.RegisterRoutes(api)
	inventoryHandler.RegisterRoutes(api)
	maintenanceHandler.RegisterRoutes(api)
	salesHandler.RegisterRoutes(api)
	calculatorHandler.RegisterRoutes(api)
	referenceHandler.RegisterRoutes(api)

	log.Info("server listening", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
