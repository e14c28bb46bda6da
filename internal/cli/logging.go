package cli

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// newLogger builds the structured logger for a command run. Logs go to w,
// never to command output.
func newLogger(cfg types.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.LogFormat == types.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case types.LogLevelDebug:
		return slog.LevelDebug
	case types.LogLevelInfo:
		return slog.LevelInfo
	case types.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
