package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/wellbeing/backend/internal/cache"
	"github.com/JonnyWalker81/wellbeing/backend/internal/config"
	"github.com/JonnyWalker81/wellbeing/backend/internal/handlers"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/middleware"
	"github.com/JonnyWalker81/wellbeing/backend/internal/repository"
	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
	"github.com/JonnyWalker81/wellbeing/backend/pkg/supabase"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(cfg.LoggerConfig())
	logger.SetDefault(log)

	log.Info("Starting wellbeing API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
		logger.String("timezone", cfg.Analytics.Timezone),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	moodRepo := repository.NewMoodRepository(supabaseClient)
	taskRepo := repository.NewTaskRepository(supabaseClient)

	// Initialize services
	insightsService, err := newInsightsService(cfg, moodRepo, taskRepo, log)
	if err != nil {
		return err
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimit, time.Minute)
		defer limiter.Close()
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger:         log,
		Verifier:       supabaseClient,
		Insights:       insightsService,
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Production:     cfg.IsProduction(),
		RateLimiter:    limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", logger.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// newInsightsService wires the cache and analytics defaults from config
func newInsightsService(cfg *config.Config, moodRepo repository.MoodRepository, taskRepo repository.TaskRepository, log logger.Logger) (service.InsightsService, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	reportCache, err := cache.New(cfg.CacheConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	return service.NewInsightsService(moodRepo, taskRepo, reportCache, service.Options{
		DefaultWindow: wellbeing.Window(cfg.Analytics.DefaultWindow),
		Location:      loc,
		DisplayLimit:  cfg.Analytics.DisplayLimit,
	}), nil
}
