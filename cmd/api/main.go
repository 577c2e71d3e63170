package main

import (
	"log"
	"movie_discovery/api"
	"movie_discovery/configs"
	"movie_discovery/db/mongodb"
	"movie_discovery/db/redis"
	"movie_discovery/internal/handler"
	"movie_discovery/internal/repository"
	"movie_discovery/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Movie Discovery
// @version					1.0
// @description				Backend of the movie discovery app: catalog browsing, trending searches, saved movies.
// @contact.name				API Support
// @license.name				Apache 2.0
// @license.url				http://www.apache.org/licenses/LICENSE-2.0.html
// @BasePath					/
// @schemes					https
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	go redis.ConnectRedis()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	go configs.LoadDbConfigs(mongoDB.GetDB())

	searchRep := repository.NewSearchRepository(mongoDB.GetDB())
	searchSvc := service.NewSearchService(searchRep)
	searchHandler := handler.NewSearchHandler(searchSvc)

	savedRep := repository.NewSavedRepository(mongoDB.GetDB())
	savedSvc := service.NewSavedService(savedRep)
	savedHandler := handler.NewSavedHandler(savedSvc)

	userRep := repository.NewUserRepository(mongoDB.GetDB())
	userSvc := service.NewUserService(userRep)
	userHandler := handler.NewUserHandler(userSvc)

	catalogSvc := service.NewCatalogService()
	posterSvc := service.NewPosterService()
	movieHandler := handler.NewMovieHandler(catalogSvc, posterSvc, searchSvc)

	api.InitRouter(movieHandler, searchHandler, savedHandler, userHandler)
	api.Start("0.0.0.0:" + configs.GetConfigs().Port)
}
