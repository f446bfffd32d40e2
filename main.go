package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lidorubov/neurosales/api"
	"github.com/lidorubov/neurosales/config"
	"github.com/lidorubov/neurosales/llm"
	"github.com/lidorubov/neurosales/notify"
	"github.com/lidorubov/neurosales/script"
	"github.com/lidorubov/neurosales/service"
	"github.com/lidorubov/neurosales/store"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting sales agent",
		zap.Int("port", cfg.HTTPPort),
		zap.String("model", cfg.OpenAIModel),
		zap.String("script_version", cfg.ScriptVersion),
		zap.Int("notification_targets", len(cfg.TelegramChatIDs)))

	systemPrompt := script.System(cfg.CompanyName)

	conversations, err := newStore(cfg, systemPrompt)
	if err != nil {
		logger.Fatal("failed to initialize store", zap.Error(err))
	}
	defer conversations.Close()

	completer := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, llm.Options{
		Model:       cfg.OpenAIModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}, cfg.CompletionTimeout)

	sender := notify.NewTelegram(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.NotifyTimeout)
	targets := cfg.TelegramChatIDs
	if cfg.TelegramBotToken == "" {
		// Without a token there is nothing to deliver with; the dispatcher
		// falls back to local lead logging.
		targets = nil
	}
	dispatcher := notify.NewDispatcher(sender, targets, cfg.CompanyName, logger)

	svc := service.New(conversations, completer, dispatcher, cfg.NotifyTimeout, logger)

	h := api.NewHandler(svc, cfg.ScriptVersion)

	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h.RegisterRoutes(e, cfg.StaticDir)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server gracefully", zap.Error(err))
	}

	// Drain in-flight lead notifications before exiting.
	if err := svc.Close(); err != nil {
		logger.Error("failed to drain lead dispatches", zap.Error(err))
	}

	logger.Info("sales agent stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if level == "debug" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zcfg.Build()
}

func newStore(cfg *config.Config, systemPrompt string) (store.Conversations, error) {
	if cfg.DatabaseURL != "" {
		return store.NewSQLite(cfg.DatabaseURL, systemPrompt)
	}
	return store.NewMemory(systemPrompt), nil
}
