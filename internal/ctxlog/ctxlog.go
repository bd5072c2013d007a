// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Setup creates a JSON logger on stderr tagged with the program name,
// makes it the default and stores it in the context. Stdout is left
// untouched for program output.
func Setup(ctx context.Context, name string) context.Context {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("app", name)
	slog.SetDefault(logger)

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func Close(ctx context.Context, name string, closer io.Closer) error {
	logger := Get(ctx)
	err := closer.Close()
	if err != nil {
		logger.Error("failed to close", "closer", name, "error", err)
		return err
	}
	return nil
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
