package processor

import "context"

// Logger specifies a contextual, structured logger.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)         {}
func (nopLogger) Error(context.Context, string, error, ...any) {}
