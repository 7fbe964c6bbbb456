// ABOUTME: Entry point for the exchanger bot
// ABOUTME: Loads config, sets up logging and runs the Telegram bridge

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	"github.com/Donlord192/SmartExchangerBot/internal/config"
	"github.com/Donlord192/SmartExchangerBot/internal/telegram"
)

const banner = `
                          _                       _
 ___ _ __ ___   __ _ _ __| |_    _____  _____| |__   __ _ _ __   __ _  ___ _ __
/ __| '_ ' _ \ / _' | '__| __|  / _ \ \/ / __| '_ \ / _' | '_ \ / _' |/ _ \ '__|
\__ \ | | | | | (_| | |  | |_  |  __/>  < (__| | | | (_| | | | | (_| |  __/ |
|___/_| |_| |_|\__,_|_|   \__|  \___/_/\_\___|_| |_|\__,_|_| |_|\__, |\___|_|
                                                                |___/
`

// getConfigPath returns the path to the bot config file.
// Priority: EXCHANGER_CONFIG env var > ./config.toml
func getConfigPath() string {
	if envPath := os.Getenv("EXCHANGER_CONFIG"); envPath != "" {
		return envPath
	}
	return "config.toml"
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	// A .env file is optional; the config expands ${VAR} references either way.
	_ = godotenv.Load()

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	logger := setupLogger(cfg.Logging.Level, cfg.Logging.Format)

	// Setup graceful shutdown context first - all operations should respect it
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bridge, err := telegram.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating telegram bridge: %w", err)
	}

	// Print startup info
	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("Bot:      @%s\n", bridge.BotUsername())
	green.Print("    ▶ ")
	fmt.Printf("Operator: %d\n", cfg.Telegram.OperatorID)
	fmt.Println()

	logger.Info("starting exchanger bot")
	return bridge.Run(ctx)
}

func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
