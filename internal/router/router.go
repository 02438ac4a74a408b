package router

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"hoaxify/internal/config"
	apperrors "hoaxify/internal/errors"
	"hoaxify/internal/handler"
	"hoaxify/internal/logger"
	"hoaxify/internal/service"
	"hoaxify/internal/validation"
)

// BasePath prefixes every API route.
const BasePath = "/api/1.0"

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log *logger.Logger,
	authService service.AuthService,
	userHandler *handler.UserHandler,
	hoaxHandler *handler.HoaxHandler,
	authHandler *handler.AuthHandler,
) {
	e.HideBanner = true
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if cfg.StorageBackend == config.StorageLocal {
		e.Static("/images", cfg.UploadPath)
	}

	requireAuth := Authenticate(authService, false)
	optionalAuth := Authenticate(authService, true)

	api := e.Group(BasePath)

	api.POST("/users", userHandler.Register)
	api.GET("/users", userHandler.List, optionalAuth)
	api.GET("/users/:username", userHandler.GetByUsername)
	api.PUT("/users/:id", userHandler.Update, requireAuth)

	api.POST("/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout, requireAuth)

	api.POST("/hoaxes", hoaxHandler.Create, requireAuth)
	api.GET("/hoaxes", hoaxHandler.ListAll)
	api.GET("/hoaxes/:id", hoaxHandler.Relative)
	api.GET("/users/:username/hoaxes", hoaxHandler.ListForUser)
	api.GET("/users/:username/hoaxes/:id", hoaxHandler.Relative)
}

// Authenticate verifies the bearer token and stores its claims under
// handler.CallerKey. With optional set, requests without a valid token pass
// through anonymously.
func Authenticate(authService service.AuthService, optional bool) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.CallerKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.VerifyAccessToken(c.Request().Context(), token)
		},
		ContinueOnIgnoredError: optional,
		ErrorHandler: func(c echo.Context, err error) error {
			if optional {
				return nil
			}
			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr).SetInternal(err)
		},
	})
}

func requestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}
