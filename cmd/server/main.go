package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"

	"campusai-backend/internal/config"
	"campusai-backend/internal/handlers"
	"campusai-backend/internal/logging"
	"campusai-backend/internal/metrics"
	"campusai-backend/internal/router"
	"campusai-backend/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)
	log.Info("🚀 Starting Campus AI Backend...")
	log.WithField("env", cfg.Env).Info("✓ Environment variables loaded")

	metrics.Register()

	// ──── Step 2: Model Gateway ────
	// A missing key only logs a warning here; AI calls fail until it is set.
	geminiService := services.NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTemperature)
	defer geminiService.Close()
	if geminiService.Enabled() {
		log.WithField("model", cfg.GeminiModel).Info("✓ Gemini gateway configured")
	}

	// ──── Step 3: Services & Handlers ────
	assistantService := services.NewAssistantService(geminiService)
	fileExtractService := services.NewFileExtractService()

	aiHandler := handlers.NewAIHandler(assistantService)
	documentHandler := handlers.NewDocumentHandler(fileExtractService, cfg.MaxUploadBytes())

	// ──── Step 4: Start HTTP Server ────
	r := router.New(aiHandler, documentHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		log.WithError(err).Fatal("✗ Failed to listen")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Infof("✓ Campus AI Backend ready on http://localhost:%s", cfg.Port)
	log.Infof("  API: http://localhost:%s/api/ai", cfg.Port)
	log.Infof("  CORS origin: %s", cfg.FrontendURL)

	if err := serve(server, ln, sigChan, 30*time.Second); err != nil {
		log.WithError(err).Error("Server error")
		return
	}
	log.Info("✓ Server stopped")
}

// serve runs server on ln until stop fires, then drains in-flight requests for
// up to drain before returning. It only returns after the drain has finished.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, drain time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-stop

		log.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), drain)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Error("Graceful shutdown did not complete")
		}
	}()

	if err := server.Serve(ln); err != http.ErrServerClosed {
		return err
	}

	<-done
	return nil
}
