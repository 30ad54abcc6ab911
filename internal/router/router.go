package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogapi/internal/config"
	"blogapi/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	roleHandler *handler.RoleHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Auth routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// User routes (public)
	api.GET("/user", userHandler.ListUsers)
	api.POST("/user", userHandler.CreateUser)
	api.GET("/user/:id", userHandler.GetUser)
	api.PUT("/user/:id", userHandler.UpdateUser)
	api.PATCH("/user/:id", userHandler.UpdateUser)
	api.DELETE("/user/:id", userHandler.DeleteUser)

	// Role routes (require JWT authentication)
	role := api.Group("/role", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))
	role.GET("", roleHandler.ListRoles)
	role.POST("", roleHandler.CreateRole)
	role.GET("/:id", roleHandler.GetRole)
	role.PUT("/:id", roleHandler.UpdateRole)
	role.PATCH("/:id", roleHandler.UpdateRole)
	role.DELETE("/:id", roleHandler.DeleteRole)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
