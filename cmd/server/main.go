package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jiji-learning/jiji-backend/pkg/config"
	"github.com/jiji-learning/jiji-backend/pkg/database"
	"github.com/jiji-learning/jiji-backend/pkg/resources"
	"github.com/jiji-learning/jiji-backend/pkg/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Setup structured logging
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(handler))

	// Database Connection
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize Schema
	if err := db.InitSchema(context.Background()); err != nil {
		slog.Error("Failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// Initialize Service & Handler
	store := resources.NewStore(db)
	svc := server.NewService(store)
	h := server.NewHandler(svc)

	// Web Server Setup
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(server.RequestLogger(), gin.Recovery())

	// CORS Setup
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	h.RegisterRoutes(r)

	slog.Info("Jiji backend starting", "port", cfg.Port)
	slog.Info("Routes", "health", "GET /health", "ask", "POST /ask-jiji")
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
