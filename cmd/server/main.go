package main

import (
	"log"
	"net/http"

	_ "carevo/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"carevo/internal/ai"
	"carevo/internal/auth"
	"carevo/internal/cache"
	"carevo/internal/config"
	"carevo/internal/db"
	"carevo/internal/handler"
	"carevo/internal/model"
	"carevo/internal/repository"
	"carevo/internal/router"
	"carevo/internal/service"
)

// @title Carevo API
// @version 1.0
// @description Student account and AI career-guidance service.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Println("warning: GEMINI_API_KEY not set, AI endpoints will fail")
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.ChatMessage{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	chatRepo := repository.NewChatRepository(gormDB)

	// AI provider
	aiClient := ai.NewClient(ai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		Timeout:    cfg.AITimeout,
		MaxRetries: cfg.AIMaxRetries,
	})

	// Services
	creds := auth.NewCredentialManager()
	profileValidator := service.NewProfileValidator()
	accountService := service.NewAccountService(userRepo, creds, profileValidator, cacheClient)
	aiService := service.NewAIService(aiClient, userRepo, chatRepo, cfg.ChatContextTurns)

	// Handlers
	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(accountService)
	aiHandler := handler.NewAIHandler(aiService)

	router.Register(e, authHandler, userHandler, aiHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
