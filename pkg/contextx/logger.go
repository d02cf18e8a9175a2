package contextx

import (
	"context"
	"fmt"
	"log/slog"
)

type contextKeyLogger struct{}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKeyLogger{}, logger)
}

func LoggerFromContext(ctx context.Context) (*slog.Logger, error) {
	logger, ok := ctx.Value(contextKeyLogger{}).(*slog.Logger)
	if !ok {
		return nil, fmt.Errorf("logger: %w", ErrNoValue)
	}

	return logger, nil
}

// LoggerFromContextOrDefault returns the context logger or slog.Default().
func LoggerFromContextOrDefault(ctx context.Context) *slog.Logger {
	logger, err := LoggerFromContext(ctx)
	if err != nil {
		return slog.Default()
	}

	return logger
}
