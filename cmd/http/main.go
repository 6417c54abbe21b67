package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/app/delivery/http/controllers"
	"mna-assessment-service/internal/app/delivery/http/middlewares"
	"mna-assessment-service/internal/app/delivery/http/routers"
	"mna-assessment-service/internal/app/drivers/database"
	"mna-assessment-service/internal/app/drivers/logger"
	"mna-assessment-service/internal/app/drivers/messaging"
	"mna-assessment-service/internal/app/drivers/storage"
	"mna-assessment-service/internal/app/services/core/assessments"
	"mna-assessment-service/internal/app/services/core/questionnaires"
	"mna-assessment-service/internal/app/services/shared/events"
	"mna-assessment-service/internal/app/services/shared/idempotency"
	"mna-assessment-service/internal/app/services/shared/redis"
	sharedStorage "mna-assessment-service/internal/app/services/shared/storage"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	location := config.LoadLocation(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Location:       location,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error while bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.String("address", internalConfig.App.Address),
			zap.String("port", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Assessment store
	mongoDatabase := bootstrap.MongoDB.Database(bootstrap.DriverConfig.MongoDB.DbName)
	collectionName := bootstrap.DriverConfig.MongoDB.CollectionName
	err := database.EnsureAssessmentIndexes(ctx, mongoDatabase.Collection(collectionName))
	if err != nil {
		bootstrap.Logger.Warn("Failed to ensure assessment indexes", zap.Error(err))
	}
	assessmentRepository := assessments.NewAssessmentMongoRepository(mongoDatabase, collectionName)

	// Idempotency
	var idempotencyService contracts.IdempotencyService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		idempotencyService = idempotency.NewIdempotencyService(redisRepository, bootstrap.Logger)
	}

	// Events
	var eventPublisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		queue := bootstrap.InternalConfig.RabbitMQ.AssessmentEventQueue
		channel := messaging.DeclareQueue(bootstrap.RabbitMQ, queue)
		eventPublisher = events.NewEventPublisher(channel, queue, bootstrap.Logger)
	}

	// Archived exports
	var exportStorage contracts.Storage
	if bootstrap.Minio != nil {
		err = storage.EnsureBucket(ctx, bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName)
		if err != nil {
			return err
		}
		exportStorage = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Usecases
	assessmentUsecase := assessments.NewAssessmentUsecase(
		assessmentRepository,
		idempotencyService,
		eventPublisher,
		exportStorage,
		bootstrap.InternalConfig,
		bootstrap.Location,
		bootstrap.Logger,
	)
	questionnaireUsecase := questionnaires.NewQuestionnaireUsecase(bootstrap.Logger)

	// Controllers
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, assessmentUsecase, bootstrap.InternalConfig)
	questionnaireController := controllers.NewQuestionnaireController(bootstrap.Logger, questionnaireUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController(bootstrap.Logger, assessmentUsecase, bootstrap.InternalConfig)

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		assessmentController,
		questionnaireController,
		healthController,
	)
	return nil
}
