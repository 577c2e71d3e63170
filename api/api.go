package api

import (
	"context"
	"errors"
	"fmt"
	"movie_discovery/api/middleware"
	_ "movie_discovery/docs"
	"movie_discovery/internal/handler"
	"movie_discovery/pkg/response"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

func InitRouter(
	movieHandler *handler.MovieHandler,
	searchHandler *handler.SearchHandler,
	savedHandler *handler.SavedHandler,
	userHandler *handler.UserHandler,
) {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: middleware.CorsAllowedOrigin,
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	movieRoutes := router.Group("v1/movies")
	{
		movieRoutes.Get("/", movieHandler.GetMovies)
		movieRoutes.Get("/genres", movieHandler.GetGenres)
		movieRoutes.Get("/poster/:width/*", movieHandler.GetPoster)
		movieRoutes.Get("/:movieId", movieHandler.GetMovieById)
	}

	searchRoutes := router.Group("v1/search")
	{
		searchRoutes.Get("/trending", searchHandler.Trending)
		searchRoutes.Put("/:movieId", searchHandler.RecordSearch)
	}

	savedRoutes := router.Group("v1/saved")
	{
		savedRoutes.Post("/", savedHandler.CreateSavedMovie)
		savedRoutes.Get("/", savedHandler.ListSavedMovies)
		savedRoutes.Get("/movie/:movieId", savedHandler.GetSavedByMovie)
		savedRoutes.Patch("/:id", savedHandler.UpdateSavedMovie)
		savedRoutes.Delete("/:id", savedHandler.DeleteSavedMovie)
	}

	userRoutes := router.Group("v1/user")
	{
		userRoutes.Post("/signup", userHandler.Signup)
		userRoutes.Post("/login", userHandler.Login)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), timeout)

		defer func() {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				c.SendStatus(fiber.StatusGatewayTimeout)
			}
			cancel()
		}()

		return c.Next()
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Server is up and running",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}
