package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"menu-bridge/config"
	"menu-bridge/pkg/broker"
	"menu-bridge/pkg/cache"
	"menu-bridge/pkg/i18n"
	"menu-bridge/pkg/logger"
	"menu-bridge/pkg/middleware"
	"menu-bridge/pkg/postgres"
	"menu-bridge/pkg/search"
	"menu-bridge/pkg/validator"

	catH "menu-bridge/internal/category/handler"
	catRepoPkg "menu-bridge/internal/category/repository"
	catUCPkg "menu-bridge/internal/category/usecase"

	prodH "menu-bridge/internal/product/handler"
	prodRepoPkg "menu-bridge/internal/product/repository"
	prodUCPkg "menu-bridge/internal/product/usecase"

	snapH "menu-bridge/internal/snapshot/handler"
	snapListenerPkg "menu-bridge/internal/snapshot/listener"
	snapUCPkg "menu-bridge/internal/snapshot/usecase"

	trRepoPkg "menu-bridge/internal/translation/repository"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n (embedded locale files)
	if err := i18n.Init(); err != nil {
		log.Printf("Failed to load embedded locales: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     false,
		DisableStacktrace: false,
	}

	if cfg.Server.AppEnv == "development" || cfg.Server.AppEnv == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	catRepo := catRepoPkg.NewPGRepository(db)
	prodRepo := prodRepoPkg.NewPGRepository(db)
	trRepo := trRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka Consumer
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()
	appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, trRepo, redisClient, esClient, appLogger, cfg.Menu.DefaultLang)
	catUC := catUCPkg.NewCategoryUseCase(catRepo, prodRepo, trRepo, appLogger, cfg.Menu.DefaultLang)
	snapUC := snapUCPkg.NewSnapshotUseCase(
		prodRepo, catRepo, trRepo, redisClient, appLogger,
		cfg.Menu.SupportedLangs, cfg.Menu.DefaultLang,
		time.Duration(cfg.Menu.SnapshotTTL)*time.Second,
	)

	// 6.5 Initialize Listener
	catalogListener := snapListenerPkg.NewCatalogListener(kafkaConsumer, prodUC, catUC, snapUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go catalogListener.Start(ctx)

	// 7. Initialize Handlers
	val := validator.New()
	prodHandler := prodH.NewProductHandler(prodUC, val, appLogger)
	catHandler := catH.NewCategoryHandler(catUC, appLogger)
	snapHandler := snapH.NewSnapshotHandler(snapUC, appLogger)

	// 8. Start HTTP Server
	if cfg.Server.AppEnv != "development" && cfg.Server.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.AllowOrigins))
	router.Use(middleware.Language(cfg.Menu.SupportedLangs, cfg.Menu.DefaultLang))
	router.Use(middleware.RequestLogger(appLogger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", catHandler.ListCategories)
		v1.GET("/menu", snapHandler.GetMenu)
		v1.GET("/menu/summary", catHandler.MenuSummary)
		v1.GET("/products", prodHandler.ListProducts)
		v1.GET("/products/:id", prodHandler.GetProduct)
		v1.POST("/products/:id/quote", prodHandler.Quote)
		v1.POST("/cache/reload", snapHandler.Reload)
		v1.GET("/cache/status", snapHandler.Status)
		v1.DELETE("/cache/clear", snapHandler.Clear)
	}

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	// Graceful Shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
