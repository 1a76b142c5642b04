package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"registrar-service/internal/app/config"
	"registrar-service/internal/app/delivery/http/controllers"
	"registrar-service/internal/app/delivery/http/middlewares"
	"registrar-service/internal/app/delivery/http/routers"
	"registrar-service/internal/app/drivers/database"
	"registrar-service/internal/app/drivers/logger"
	"registrar-service/internal/app/drivers/messaging"
	"registrar-service/internal/app/services/core/auth"
	"registrar-service/internal/app/services/core/schedules"
	"registrar-service/internal/app/services/core/session"
	"registrar-service/internal/app/services/core/subjects"
	"registrar-service/internal/app/services/core/users"
	"registrar-service/internal/app/services/shared/events"
	"registrar-service/internal/app/services/shared/locker"
	"registrar-service/internal/app/services/shared/redis"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()
	requestLog := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		RequestLogger:  requestLog,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("address", internalConfig.App.Port))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Info("shutdown signal received, waiting for pending requests")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := rabbitMQ.Close(); err != nil {
		log.Warn("error closing rabbitmq connection", zap.Error(err))
	}
	if err := redisClient.Close(); err != nil {
		log.Warn("error closing redis client", zap.Error(err))
	}
	if err := mongoDB.Disconnect(context.Background()); err != nil {
		log.Warn("error disconnecting mongo client", zap.Error(err))
	}

	log.Info("server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(bootstrap.Logger)
	eventPublisher := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.ScheduleEventQueue)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger, bootstrap.RequestLogger)

	// Users
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, bootstrap.Logger)
	userController := controllers.NewUserController(userUsecase, bootstrap.Logger)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, redisRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(authUsecase, bootstrap.Logger)

	// Subjects
	subjectMongoRepository := subjects.NewSubjectMongoRepository(bootstrap.MongoDB, dbName)
	subjectUsecase := subjects.NewSubjectUsecase(subjectMongoRepository, bootstrap.Logger)
	subjectController := controllers.NewSubjectController(subjectUsecase, bootstrap.Logger)

	// Schedules
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(bootstrap.MongoDB, dbName)
	scheduleUsecase := schedules.NewScheduleUsecase(scheduleMongoRepository, lockerService, eventPublisher, bootstrap.Logger)
	scheduleController := controllers.NewScheduleController(scheduleUsecase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		subjectController,
		scheduleController,
	)
}
