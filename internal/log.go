package internal

import (
	"context"
	"log/slog"
)

// LogEnabled reports whether l would emit a record at level lvl. A nil
// logger is always disabled.
func LogEnabled(l *slog.Logger, lvl slog.Level) bool {
	return l != nil && l.Handler().Enabled(context.Background(), lvl)
}

// LogAttrs is a nil-safe wrapper used by every package logger in this
// module so call sites never need to guard against a missing logger.
func LogAttrs(l *slog.Logger, level slog.Level, msg string, attrs ...slog.Attr) {
	if l != nil {
		l.LogAttrs(context.Background(), level, msg, attrs...)
	}
}
