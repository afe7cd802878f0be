package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/smartshop/assistant-api/internal/api/handler"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	userService ports.UserService,
	productService ports.ProductService,
	assistantService ports.AssistantService,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("smartshop"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	assistantHandler := handler.NewAssistantHandler(assistantService, log)
	healthHandler := handler.NewHealthHandler()

	// --- User routes ---
	e.GET("/users", userHandler.List)
	e.POST("/users", userHandler.Create)
	e.GET("/users/:id", userHandler.Get)
	e.PUT("/users/:id", userHandler.Update)
	e.DELETE("/users/:id", userHandler.Delete)

	// --- Product routes ---
	e.GET("/products", productHandler.List)
	e.POST("/products", productHandler.Create)
	// Category route first: it must not be captured by /products/:id.
	e.GET("/products/category/:category", productHandler.ListByCategory)
	e.GET("/products/:id", productHandler.Get)
	e.PUT("/products/:id", productHandler.Update)
	e.DELETE("/products/:id", productHandler.Delete)
	e.PUT("/products/:id/stock", productHandler.UpdateStock)

	// --- Assistant routes ---
	e.POST("/chat", assistantHandler.Chat)
	e.POST("/recommendations", assistantHandler.Recommendations)
	e.POST("/visual-search", assistantHandler.VisualSearch)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
