package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a JSON slog handler tagged with the service name as the
// process-wide default. Level comes from LOG_LEVEL, defaulting to info.
func Setup(serviceName string) {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler).With("service", serviceName))
}
