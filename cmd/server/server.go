package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/destinyrpg/destiny-api/internal/config"
	"github.com/destinyrpg/destiny-api/internal/deck"
	"github.com/destinyrpg/destiny-api/internal/errors"
	v1alpha1 "github.com/destinyrpg/destiny-api/internal/handlers/api/v1alpha1"
	"github.com/destinyrpg/destiny-api/internal/orchestrators/resolution"
	"github.com/destinyrpg/destiny-api/internal/pkg/clock"
	"github.com/destinyrpg/destiny-api/internal/pkg/idgen"
	"github.com/destinyrpg/destiny-api/internal/redis"
	actioncatalog "github.com/destinyrpg/destiny-api/internal/repositories/action_catalog"
	actionresult "github.com/destinyrpg/destiny-api/internal/repositories/action_result"
	careerstats "github.com/destinyrpg/destiny-api/internal/repositories/career_stats"
)

var httpPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the Destiny API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides HTTP_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.HTTPPort = httpPort
	}

	redisClient, err := redis.NewClient(cfg.RedisAddress, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	catalogRepo, err := actioncatalog.NewRedisRepository(&actioncatalog.Config{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create action catalog repository: %w", err)
	}

	resultRepo, err := actionresult.NewRedisRepository(&actionresult.Config{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create action result repository: %w", err)
	}

	statsRepo, err := careerstats.NewRedisRepository(&careerstats.Config{
		Client: redisClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create career stats repository: %w", err)
	}

	if cfg.SeedCatalog {
		if err := seedCatalog(ctx, catalogRepo); err != nil {
			return fmt.Errorf("failed to seed action catalog: %w", err)
		}
	}

	resolutionService, err := resolution.NewOrchestrator(&resolution.Config{
		ActionCatalogRepo: catalogRepo,
		ActionResultRepo:  resultRepo,
		CareerStatsRepo:   statsRepo,
		Deck:              deck.New(&deck.Config{Seed: cfg.DeckSeed}),
		IDGenerator:       idgen.NewUUID("res"),
		Clock:             clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create resolution service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ResolutionService: resolutionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create resolution handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/api/v1alpha1", handler.Routes())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down HTTP server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// seedCatalog loads the default actions, skipping any that already exist
func seedCatalog(ctx context.Context, repo actioncatalog.Repository) error {
	for _, action := range actioncatalog.DefaultActions() {
		_, err := repo.Create(ctx, actioncatalog.CreateInput{Definition: action})
		if errors.IsAlreadyExists(err) {
			continue
		}
		if err != nil {
			return err
		}
		slog.Info("Seeded action", "action_id", action.ID)
	}
	return nil
}
