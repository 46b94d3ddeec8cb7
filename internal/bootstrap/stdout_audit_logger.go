package bootstrap

import (
	"context"

	"go-salon/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the process logger. Entries
// carry the request id when one is in the context, so an operator action can
// be traced from the audit line back to its API call.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Any("meta", entry.Meta),
	)
}
