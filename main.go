package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"comment_monitor/config"
	"comment_monitor/db"
	"comment_monitor/handlers"
	"comment_monitor/logger"
	"comment_monitor/models"
	"comment_monitor/repository"
	"comment_monitor/services"
)

var (
	cfg         *config.Config
	autoMigrate bool
	ownerID     string
)

var rootCmd = &cobra.Command{
	Use:   "comment_monitor",
	Short: "Keyword monitoring and comment drafting for social profiles",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if err := logger.Init(cfg); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		if err := db.Init(cfg); err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		logger.Info("database connected",
			"driver", cfg.DB.Driver,
			"max_open_conns", cfg.DB.MaxOpenConns,
			"max_idle_conns", cfg.DB.MaxIdleConns)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db.DB != nil {
			db.DB.Close()
		}
	},
	RunE: serve,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  serve,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Run one monitoring pass for an owner and print the summary",
	RunE:  monitorOnce,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), db.DB, cfg.DB.Driver); err != nil {
			return err
		}
		logger.Info("schema applied", "driver", cfg.DB.Driver)
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "apply the schema before serving")
	monitorCmd.Flags().StringVar(&ownerID, "owner", "", "owner id to monitor for")
	_ = monitorCmd.MarkFlagRequired("owner")

	rootCmd.AddCommand(serveCmd, monitorCmd, migrateCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

type app struct {
	monitor  *services.MonitorService
	handlers *handlers.Handler
}

func buildApp() (*app, error) {
	store := repository.New(db.DB, cfg.DB.Driver)
	client := &http.Client{Timeout: cfg.SampleTimeout()}

	registry := services.NewPlatformRegistry()
	for name, feed := range cfg.Sampler.Platforms {
		platform := models.Platform(name)
		if !platform.Valid() {
			logger.Warn("ignoring sampler for unknown platform", "platform", name)
			continue
		}
		registry.Register(platform, services.NewFeedSampler(feed, client, cfg.Monitor.MaxPostsPerRun))
	}
	if len(registry.Platforms()) == 0 {
		logger.Warn("no platform samplers configured, runs will report every profile as failed")
	}

	var composer services.Composer
	if c := services.NewOpenAIComposer(cfg); c != nil {
		composer = c
		logger.Info("openai composer enabled", "model", cfg.OpenAI.Model)
	}

	monitor := services.NewMonitorService(store, registry, services.NewDrafter(composer), services.MonitorOptionsFromConfig(cfg))
	if cfg.Telegram.BotToken != "" {
		notifier, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.APIEndpoint, &http.Client{Timeout: 10 * time.Second})
		if err != nil {
			logger.Warn("telegram notifications disabled", "error", err)
		} else {
			monitor.SetNotifier(notifier)
		}
	}

	auth, err := services.NewAuthenticator(cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		monitor:  monitor,
		handlers: &handlers.Handler{
			Monitor:    monitor,
			Keywords:   services.NewKeywordService(store),
			Profiles:   services.NewProfileService(store, cfg.Limits.MaxProfiles),
			Comments:   services.NewCommentService(store),
			Settings:   services.NewSettingsService(store, cfg.Limits.DefaultDailyLimit),
			Reports:    services.NewReportService(store),
			History:    services.NewHistoryService(store),
			Auth:       auth,
			CORSOrigin: cfg.Server.CORSOrigin,
			RunTimeout: cfg.RunTimeout(),
		},
	}, nil
}

func serve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if autoMigrate {
		if err := db.Migrate(ctx, db.DB, cfg.DB.Driver); err != nil {
			return err
		}
	}

	a, err := buildApp()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handlers.NewRouter(a.handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", cfg.Server.Addr)
		logger.Info("swagger docs available", "url", fmt.Sprintf("http://%s/swagger/index.html", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.RunTimeout())
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func monitorOnce(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RunTimeout())
	defer cancel()
	summary, err := a.monitor.Run(ctx, ownerID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}
