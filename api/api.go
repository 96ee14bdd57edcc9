package api

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"movie_tracker/api/middleware"
	"movie_tracker/configs"
	_ "movie_tracker/docs"
	"movie_tracker/internal/handler"
	"movie_tracker/internal/service"
	"movie_tracker/pkg/logger"
	"movie_tracker/pkg/response"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

var router *fiber.App

type Handlers struct {
	Movie *handler.MovieHandler
	User  *handler.UserHandler
	Admin *handler.AdminHandler
}

func InitRouter(handlers Handlers, cache service.ICacheService) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			logger.Named("http").Error("request failed", "path", c.Path(), "error", err)
		}

		if code == fiber.StatusNotFound {
			return response.ResponseError(c, "Not found", code)
		}
		return response.ResponseError(c, "Internal Error", code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1 ||
				slices.Index(configs.GetDbConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Duration(configs.GetConfigs().RequestTimeoutSec) * time.Second))
	router.Use(recover.New())
	if configs.GetConfigs().LogRequests {
		router.Use(fiberLogger.New())
	}
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	authMiddleware := middleware.NewAuthMiddleware(cache)

	authRoutes := router.Group("api/auth")
	{
		authRoutes.Post("/register", handlers.User.Register)
		authRoutes.Post("/login", handlers.User.Login)
		authRoutes.Get("/validate", authMiddleware, handlers.User.Validate)
		authRoutes.Post("/logout", authMiddleware, handlers.User.Logout)
	}

	movieRoutes := router.Group("api/movies", authMiddleware)
	{
		movieRoutes.Get("/counts", handlers.Movie.GetMovieCounts)
		movieRoutes.Get("/:tmdbId/status", handlers.Movie.GetMovieStatus)
		movieRoutes.Put("/:tmdbId/rating", handlers.Movie.RateMovie)
		movieRoutes.Get("/:list", handlers.Movie.GetMovieList)
		movieRoutes.Post("/:action", handlers.Movie.ToggleAction)
	}

	adminRoutes := router.Group("v1/admin", authMiddleware, middleware.AdminMiddleware)
	{
		adminRoutes.Get("/fetch_configs", handlers.Admin.FetchDbConfigs)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	router.Get("/swagger/*", swagger.HandlerDefault) // default

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func Shutdown(timeout time.Duration) error {
	if router == nil {
		return nil
	}
	return router.ShutdownWithTimeout(timeout)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)

		defer func() {
			// check if context timeout was reached
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				_ = response.ResponseError(c, "Request timeout", fiber.StatusGatewayTimeout)
			}

			//cancel to clear resources after finished
			cancel()
		}()

		// queries started by handlers are bound to the deadline
		c.SetUserContext(ctx)
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
