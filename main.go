// File: dinebot/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dinebot/config"
	"dinebot/database"
	restaurantRepo "dinebot/database/repository/restaurant"
	"dinebot/handlers"
	"dinebot/middleware"
	"dinebot/routes"
	"dinebot/services/dialog"
	"dinebot/services/fulfillment"
	"dinebot/services/nlu"
	"dinebot/services/notification"
	"dinebot/services/session"
	"dinebot/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	directory := restaurantRepo.NewMongoRestaurantRepo()

	// Fulfillment queue client.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	emitter := fulfillment.NewQueueEmitter(
		queueClient,
		config.AppConfig.TaskMaxRetry,
		config.AppConfig.TaskTimeout,
		logger,
	)

	notifier := notification.NewSMSGatewaySender(
		config.AppConfig.SMSGatewayURL,
		config.AppConfig.SMSGatewayKey,
		config.AppConfig.ExternalTimeout,
		logger,
	)

	// Start the fulfillment worker in the background.
	worker := &fulfillment.Worker{
		Index:       directory,
		Directory:   directory,
		Notifier:    notifier,
		CallTimeout: config.AppConfig.ExternalTimeout,
		Logger:      logger,
		Rand:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	fulfillment.StartWorker(worker)

	// Services.
	dialogService := &dialog.DefaultDialogService{
		Emitter: emitter,
		Logger:  logger,
	}
	nluClient := nlu.NewClient(
		config.AppConfig.NLUEngineURL,
		config.AppConfig.NLUBotName,
		config.AppConfig.ExternalTimeout,
	)
	sessionStore := session.NewRedisStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMins)*time.Minute,
	)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Chat:   handlers.NewChatHandler(nluClient, sessionStore, logger),
		Dialog: handlers.NewDialogHandler(dialogService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
