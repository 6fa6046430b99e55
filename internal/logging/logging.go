package logging

import (
	"log/slog"
	"os"

	"payfast-store-demo/internal/config"
)

// Setup installs the process-wide slog default from config. Format
// "json" is what production log shipping expects; anything else gets a
// human-readable text handler.
func Setup(cfg config.Log) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
