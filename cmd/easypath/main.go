// EasyPath server — conversational flow engine, realtime event hub, and
// messaging gateway in one process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/easypath-ai/easypath/pkg/api"
	"github.com/easypath-ai/easypath/pkg/cleanup"
	"github.com/easypath-ai/easypath/pkg/config"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/database"
	"github.com/easypath-ai/easypath/pkg/engine"
	"github.com/easypath-ai/easypath/pkg/engineclient"
	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/services"
	"github.com/easypath-ai/easypath/pkg/session"
	"github.com/easypath-ai/easypath/pkg/telegram"
	"github.com/easypath-ai/easypath/pkg/version"
	"github.com/easypath-ai/easypath/pkg/wspool"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configFile := flag.String("config",
		getEnv("CONFIG_FILE", ""),
		"Path to optional YAML settings overlay")
	flag.Parse()

	// Load .env before resolving settings
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"error", err)
	}

	// 1. Resolve settings
	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load settings", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))
	slog.Info("Starting EasyPath",
		"version", version.Full(), "addr", cfg.Addr(), "flows_dir", cfg.FlowsDir)

	ctx := context.Background()

	// 2. Connect to PostgreSQL and apply migrations
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Session store: Redis when configured, in-process otherwise
	var store session.Store
	if cfg.RedisURL != "" {
		redisStore, err := session.NewRedisStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		if err := redisStore.Ping(ctx); err != nil {
			slog.Error("Redis ping failed", "error", err)
			os.Exit(1)
		}
		store = redisStore
		slog.Info("Session store: Redis", "ttl", cfg.SessionTTL)
	} else {
		store = session.NewMemoryStore()
		slog.Warn("Session store: in-process memory; sessions are lost on restart")
	}

	// 4. LLM client
	llmClient := llm.NewOpenAIClient(cfg.LLM)

	// 5. Realtime hub, publisher, and engine runner
	connManager := events.NewConnectionManager(cfg.WSWriteTimeout)
	publisher := events.NewPublisher(connManager)
	orch := engine.NewOrchestrator(llmClient, publisher)
	runner := engine.NewRunner(store, orch, publisher)
	connManager.SetHandler(runner)
	slog.Info("Flow engine initialized")

	// 6. Gateway services over the database
	cipher, err := crypto.New(cfg.BotTokenSecret)
	if err != nil {
		slog.Error("Failed to initialize token cipher; set BOT_TOKEN_SECRET", "error", err)
		os.Exit(1)
	}
	botService := services.NewBotService(dbClient.Client, cipher)
	conversationService := services.NewConversationService(dbClient.Client)
	variableService := services.NewVariableService(dbClient.Client)
	slog.Info("Gateway services initialized")

	retention := cleanup.NewService(cleanup.Config{
		IdleCloseAfter: cfg.RetentionIdleClose,
		ArchiveAfter:   cfg.RetentionArchive,
		Interval:       cfg.RetentionInterval,
	}, conversationService)
	retention.Start(ctx)
	defer retention.Stop()

	// 7. Telegram adapter with its streaming pool and HTTP fallback
	pool := wspool.NewPool(wspool.Config{
		BaseURL:        cfg.EngineWSBaseURL,
		ConnectTimeout: cfg.WSConnectTimeout,
		CleanupDelay:   cfg.WSCleanupDelay,
	})
	engineClient := engineclient.New(cfg.EngineHTTPBaseURL)
	telegramService := telegram.NewService(botService, conversationService, variableService, pool, engineClient, telegram.Config{
		WebhookBaseURL: cfg.WebhookBaseURL,
	})
	pool.SetVariableObserver(telegramService)

	// 8. HTTP server
	flows := func(_ context.Context, flowID int) ([]byte, error) {
		return os.ReadFile(filepath.Join(cfg.FlowsDir, fmt.Sprintf("%d.json", flowID)))
	}
	httpServer := api.NewServer(api.Deps{
		DB:            dbClient,
		Store:         store,
		Runner:        runner,
		Publisher:     publisher,
		ConnManager:   connManager,
		Bots:          botService,
		Conversations: conversationService,
		Variables:     variableService,
		Telegram:      telegramService,
		Flows:         flows,
	})

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Addr())
		if err := httpServer.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 9. Re-point Telegram webhooks once the listener is up
	if cfg.WebhookBaseURL != "" {
		go func() {
			webhookCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if _, err := telegramService.UpdateAllWebhooks(webhookCtx); err != nil {
				slog.Error("Startup webhook update failed", "error", err)
			}
		}()
	} else {
		slog.Warn("WEBHOOK_BASE_URL not set; Telegram webhooks will not be registered")
	}

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	pool.Close()

	slog.Info("Shutdown complete")
}
