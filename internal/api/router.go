package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/spendbook/expenses-api/docs"
	"github.com/spendbook/expenses-api/internal/api/handler"
	"github.com/spendbook/expenses-api/internal/core/service"
	"github.com/spendbook/expenses-api/internal/infrastructure/db/memory"
	"github.com/spendbook/expenses-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Both collections start empty; their stores live for the router's lifetime.
func NewRouter(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: strings.Split(cfg.CORSOrigins, ","),
	}))
	e.Use(echoprometheus.NewMiddleware("expenses"))

	// --- Dependencies ---
	userRepo := memory.NewUserRepository()
	expenseRepo := memory.NewExpenseRepository()
	userService := service.NewUserService(userRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, userRepo, log)
	userHandler := handler.NewUserHandler(userService)
	expenseHandler := handler.NewExpenseHandler(expenseService)

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.GET("/users/:id", userHandler.Get)
	e.POST("/users", userHandler.Create)
	e.PATCH("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Expense routes ---
	e.GET("/expenses", expenseHandler.List)
	e.GET("/expenses/:id", expenseHandler.Get)
	e.POST("/expenses", expenseHandler.Create)
	e.PATCH("/expenses/:id", expenseHandler.Update)
	e.DELETE("/expenses/:id", expenseHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
