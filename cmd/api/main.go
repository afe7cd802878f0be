package main

import (
	"context"
	"errors"
	"net/http"

	_ "github.com/smartshop/assistant-api/docs" // swagger docs

	"github.com/smartshop/assistant-api/internal/api"
	"github.com/smartshop/assistant-api/internal/core/service"
	"github.com/smartshop/assistant-api/internal/infrastructure/config"
	"github.com/smartshop/assistant-api/internal/infrastructure/llm"
	"github.com/smartshop/assistant-api/internal/infrastructure/memory"
	"github.com/smartshop/assistant-api/pkg/logger"
)

// @title SmartShop Assistant API
// @version 1.0
// @description CRUD resource management for users and products plus an LLM-backed shopping assistant (chat and product recommendations).
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The stores are process-wide singletons owned by main: one instance
	// per resource type, handed to the services explicitly.
	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()

	generator, err := llm.New(cfg.LLM, nil, log)
	if err != nil {
		log.Fatal().Err(err).Str("provider", cfg.LLM.Provider).Msg("LLM client init failed")
	}

	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	assistantService := service.NewAssistantService(generator, log)

	e := api.NewRouter(userService, productService, assistantService, log)

	log.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Env).
		Str("llm_provider", cfg.LLM.Provider).
		Msg("starting server")

	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
