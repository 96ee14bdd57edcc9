package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie_tracker/api"
	"movie_tracker/configs"
	"movie_tracker/db"
	"movie_tracker/db/mongodb"
	"movie_tracker/db/rabbitmq"
	"movie_tracker/db/redis"
	"movie_tracker/internal/handler"
	"movie_tracker/internal/repository"
	"movie_tracker/internal/service"
	"movie_tracker/pkg/logger"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Tracker
// @version					1.0
// @description				Watchlist, likes, dislikes and watched history of the movie tracker mobile app.
// @termsOfService				http://swagger.io/terms/
// @contact.name				API Support
// @contact.url				http://www.swagger.io/support
// @contact.email				support@swagger.io
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()
	appLogger := logger.Init(configs.GetConfigs().LogLevel, configs.GetConfigs().LogJson)

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     configs.GetConfigs().SentryDns,
		Release: configs.GetConfigs().SentryRelease,
		// Set TracesSampleRate to 1.0 to capture 100%
		// of transactions for performance monitoring.
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	database, err := db.NewDatabase(configs.GetConfigs().DbUrl)
	if err != nil {
		log.Fatalf("could not initialize postgres database connection: %s", err)
	}
	if configs.GetConfigs().DbAutoMigrate {
		if err = database.Migrate(); err != nil {
			log.Fatalf("could not migrate postgres database: %s", err)
		}
	}

	go redis.ConnectRedis()

	stopConfigs := make(chan struct{})
	var adminSvc *service.AdminService
	var mongoDB *mongodb.MongoDatabase
	if configs.GetConfigs().MongodbDatabaseUrl != "" {
		mongoDB, err = mongodb.NewDatabase(configs.GetConfigs().MongodbDatabaseUrl, configs.GetConfigs().MongodbDatabaseName)
		if err != nil {
			log.Fatalf("could not initialize mongodb database connection: %s", err)
		}
		adminSvc = service.NewAdminService(repository.NewAdminRepository(mongoDB.GetDB()))
		go configs.LoadDbConfigs(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := adminSvc.FetchDbConfigs(ctx)
			if err != nil {
				appLogger.Error("could not load dynamic configs", "error", err)
			}
			return err
		}, 15*time.Minute, stopConfigs)
	} else {
		appLogger.Warn("MONGODB_DATABASE_URL is empty, dynamic configs are disabled")
		adminSvc = service.NewAdminService(nil)
	}

	var publisher service.IActivityPublisher
	var rabbit *rabbitmq.Publisher
	if configs.GetConfigs().RabbitmqUrl != "" {
		rabbit, err = rabbitmq.NewPublisher(configs.GetConfigs().RabbitmqUrl, configs.GetConfigs().ActivityExchange)
		if err != nil {
			appLogger.Error("could not connect to rabbitmq, activity events are disabled", "error", err)
		} else {
			publisher = rabbit
		}
	}
	activitySvc := service.NewActivityService(publisher)
	activitySvc.Start()

	cacheSvc := service.NewCacheService()

	userRep := repository.NewUserRepository(database.GetDB())
	userSvc := service.NewUserService(userRep, cacheSvc)
	userHandler := handler.NewUserHandler(userSvc)

	movieRep := repository.NewMovieRepository(database.GetDB())
	movieSvc := service.NewMovieService(movieRep, service.NewCatalogService(), cacheSvc, activitySvc)
	movieHandler := handler.NewMovieHandler(movieSvc)

	adminHandler := handler.NewAdminHandler(adminSvc)

	api.InitRouter(api.Handlers{
		Movie: movieHandler,
		User:  userHandler,
		Admin: adminHandler,
	}, cacheSvc)

	go func() {
		if err := api.Start("0.0.0.0:" + configs.GetConfigs().Port); err != nil {
			log.Fatalf("could not start server: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down")
	if err := api.Shutdown(10 * time.Second); err != nil {
		appLogger.Error("server shutdown failed", "error", err)
	}
	close(stopConfigs)
	activitySvc.Stop()
	if rabbit != nil {
		_ = rabbit.Close()
	}
	if mongoDB != nil {
		_ = mongoDB.Close()
	}
	_ = redis.CloseRedis()
	database.Close()
}
