package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/middleware"
)

// BaseService gives every service a request-scoped logger tagged with the
// service name.
type BaseService struct {
	name string
}

func newBaseService(name string) BaseService {
	return BaseService{name: name}
}

// GetLogger returns the request logger stored by the logging middleware,
// or slog.Default outside a request.
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.name == "" {
		return logger
	}
	return logger.With(slog.String("service", s.name))
}

func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	s.GetLogger(ctx).Error(msg, append([]any{slog.String("error", err.Error())}, keyvals...)...)
}

func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
