package infrastructure

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/google/uuid"

	apperrors "hrreport/internal/errors"
)

// GenerateRunID creates a new unique run ID using UUID v4
func GenerateRunID() string {
	return uuid.New().String()
}

// EnsureRunID ensures the context has a run ID, generating one if needed
func EnsureRunID(ctx context.Context) context.Context {
	if GetRunID(ctx) == "" {
		return WithRunID(ctx, GenerateRunID())
	}
	return ctx
}

// WithComponent creates a logger with a component field
func WithComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = GetLogger()
	}
	return logger.With(slog.String("component", component))
}

// WithError creates a logger with an error field. Application errors also
// add an app_error group with their type and context.
func WithError(logger *slog.Logger, err error) *slog.Logger {
	if err == nil {
		return logger
	}
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return logger.With(slog.String("error", err.Error()), slog.Any("app_error", appErr))
	}
	return logger.With(slog.String("error", err.Error()))
}
