package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
)

type loggerKey struct{}

// newLogger builds a charmbracelet/log logger writing to w at the given level.
func newLogger(w io.Writer, level charmlog.Level) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: false,
	})

	return logger
}

// withLogger installs logger into ctx, retrievable by loggerFromContext.
func withLogger(ctx context.Context, logger *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// loggerFromContext returns the logger installed by withLogger, or a
// silent fallback if none was installed (e.g. in a test calling cli
// internals directly).
func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*charmlog.Logger); ok {
		return logger
	}

	return charmlog.New(io.Discard)
}
