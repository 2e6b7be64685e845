package bootstrap

import (
	"context"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit events through zap, tagged with the service
// name and whatever request, user and project the event belongs to.
type StdoutAuditLogger struct {
	service string
	logger  *zap.Logger
	now     func() time.Time
}

func NewStdoutAuditLogger(service string, logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutAuditLogger{
		service: service,
		logger:  l.Named("audit"),
		now:     time.Now,
	}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("service", l.service),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Time("at", l.now().UTC()),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid := contextutil.GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("user_id", uid))
	}

	meta := make(map[string]any, len(entry.Meta))
	for k, v := range entry.Meta {
		if k == "project_id" {
			fields = append(fields, zap.Any("project_id", v))
			continue
		}
		meta[k] = v
	}
	if len(meta) > 0 {
		fields = append(fields, zap.Any("meta", meta))
	}

	l.logger.Info("audit event", fields...)
}
