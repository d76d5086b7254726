package router

import (
	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"pcosrisk/internal/auth"
	"pcosrisk/internal/config"
	"pcosrisk/internal/handler"
	applog "pcosrisk/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger zerolog.Logger,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	assessmentHandler *handler.AssessmentHandler,
	healthHandler *handler.HealthHandler,
) {
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(applog.RequestID())
	e.Use(applog.Logger(logger))
	e.Use(applog.Recovery(logger))
	e.Use(applog.SecurityHeaders())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// Secured routes (require a bearer token whose subject is an active user).
	// Middleware is attached per route so unknown paths still 404.
	secured := []echo.MiddlewareFunc{
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return jwtService.Verify(token)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return handler.Unauthorized(c)
			},
		}),
		authHandler.Authenticate,
	}

	e.GET("/auth/me", authHandler.Me, secured...)
	e.POST("/assessments", assessmentHandler.Create, secured...)
	e.GET("/assessments", assessmentHandler.List, secured...)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
