// File: showphaze/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"showphaze/config"
	"showphaze/handlers"
	"showphaze/middleware"
	"showphaze/routes"
	"showphaze/services/booking"
	"showphaze/services/catalog"
	ai "showphaze/services/intelligence"
	"showphaze/services/transcription"
	"showphaze/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()
	sessionCache := utils.GetSessionCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	catalogClient := catalog.NewClient(
		config.AppConfig.CatalogAPIURL,
		time.Duration(config.AppConfig.CatalogTimeoutSeconds)*time.Second,
	)
	geminiClient := ai.NewGeminiClient(
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.LLMModel,
		float32(config.AppConfig.LLMTemperature),
	)
	extractor := ai.NewGeminiExtractor(geminiClient)
	sessionStore := ai.NewRedisSessionStore(sessionCache, utils.SessionCacheTTL)
	transcriber := transcription.NewGoogleTranscriber(config.AppConfig.GoogleServiceAccountFile)

	// Core formatter service.
	formatter := booking.NewFormatterService(catalogClient)

	// Handlers.
	agentHandler := handlers.NewAgentHandler(extractor, formatter, sessionStore)
	sttHandler := handlers.NewSTTHandler(transcriber)

	routes.RegisterRoutes(router, agentHandler, sttHandler)

	utils.StartHealthMonitor(sessionCache, config.AppConfig.CatalogAPIURL)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
