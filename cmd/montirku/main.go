package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/montirku/montirku/internal/pkg/config"
	"github.com/montirku/montirku/internal/pkg/database"
	"github.com/montirku/montirku/internal/pkg/health"
	"github.com/montirku/montirku/internal/pkg/logger"
	"github.com/montirku/montirku/internal/pkg/middleware"
	natspkg "github.com/montirku/montirku/internal/pkg/nats"
	"github.com/montirku/montirku/internal/pkg/server"
	chatGateway "github.com/montirku/montirku/services/chat/gateway"
	chatHandler "github.com/montirku/montirku/services/chat/handler"
	chatRepository "github.com/montirku/montirku/services/chat/repository"
	chatUsecase "github.com/montirku/montirku/services/chat/usecase"
	directoryHandler "github.com/montirku/montirku/services/directory/handler"
	directoryRepository "github.com/montirku/montirku/services/directory/repository"
	directoryUsecase "github.com/montirku/montirku/services/directory/usecase"
	identityHandler "github.com/montirku/montirku/services/identity/handler"
	identityRepository "github.com/montirku/montirku/services/identity/repository"
	identityUsecase "github.com/montirku/montirku/services/identity/usecase"
	ratingHandler "github.com/montirku/montirku/services/rating/handler"
	ratingRepository "github.com/montirku/montirku/services/rating/repository"
	ratingUsecase "github.com/montirku/montirku/services/rating/usecase"
	requestGateway "github.com/montirku/montirku/services/request/gateway"
	requestHandler "github.com/montirku/montirku/services/request/handler"
	requestRepository "github.com/montirku/montirku/services/request/repository"
	requestUsecase "github.com/montirku/montirku/services/request/usecase"
	shopGateway "github.com/montirku/montirku/services/shop/gateway"
	shopHandler "github.com/montirku/montirku/services/shop/handler"
	shopRepository "github.com/montirku/montirku/services/shop/repository"
	shopUsecase "github.com/montirku/montirku/services/shop/usecase"
)

const appName = "montirku"

func main() {
	configPath := flag.String("config", ".env", "path to the environment file")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.NewZapLogger(configs.Logger, appName)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	// Initialize MongoDB
	mongoClient, err := database.NewMongoClient(configs.Mongo)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", logger.Err(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize PostgreSQL (shop)
	postgresClient, err := database.NewPostgresClient(configs.Postgres)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Repositories
	identityRepo := identityRepository.NewIdentityRepository(configs, mongoClient)
	identityCache := identityRepository.NewIdentityCacheRepository(configs, redisClient)
	directoryRepo := directoryRepository.NewDirectoryRepository(configs, mongoClient, redisClient)
	requestRepo := requestRepository.NewRequestRepository(configs, mongoClient)
	ratingRepo := ratingRepository.NewRatingRepository(configs, mongoClient)
	chatRepo := chatRepository.NewChatRepository(mongoClient)
	shopRepo := shopRepository.NewShopRepository(postgresClient.GetDB())

	// Gateways
	requestGW := requestGateway.NewRequestGW(mongoClient, natsClient)
	chatGW := chatGateway.NewChatGW(natsClient)
	paymentGW := shopGateway.NewPaymentGW(configs.Shop.PaymentKeyID, configs.Shop.PaymentKeySecret)

	// Use cases
	identityUC := identityUsecase.NewIdentityUC(configs, identityRepo, identityCache)
	directoryUC := directoryUsecase.NewDirectoryUC(configs, directoryRepo)
	requestUC := requestUsecase.NewRequestUC(configs, requestRepo, requestGW)
	ratingUC := ratingUsecase.NewRatingUC(configs, ratingRepo)
	chatUC := chatUsecase.NewChatUC(chatRepo, chatGW)
	shopUC := shopUsecase.NewShopUC(configs, shopRepo, paymentGW)

	// Echo router and middlewares
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.Check{Name: "mongo", Pinger: mongoClient},
		health.Check{Name: "redis", Pinger: redisClient},
		health.Check{Name: "postgres", Pinger: postgresClient},
	)

	identityHandler.NewHandler(identityUC).RegisterRoutes(e, configs.JWT)
	directoryHandler.NewHandler(directoryUC).RegisterRoutes(e, configs.JWT)
	requestHandler.NewHandler(requestUC).RegisterRoutes(e, configs.JWT)
	ratingHandler.NewHandler(ratingUC).RegisterRoutes(e, configs.JWT)
	chatHandler.NewHandler(chatUC).RegisterRoutes(e, configs.JWT)
	shopHandler.NewHandler(shopUC).RegisterRoutes(e, configs.JWT)

	// Cleanup order mirrors startup order reversed
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return mongoClient.Close(ctx)
	})

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Error during shutdown", logger.Err(err))
	}
}
