package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger sends gorm's output to slog. Only failed and slow statements are traced;
// record-not-found is an expected outcome of lookups and stays quiet.
type queryLogger struct {
	level     logger.LogLevel
	slowQuery time.Duration
}

func newQueryLogger(slowQuery time.Duration) logger.Interface {
	return &queryLogger{level: logger.Warn, slowQuery: slowQuery}
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Info {
		slog.InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Warn {
		slog.WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= logger.Error {
		slog.ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		sql, rows := fc()
		slog.ErrorContext(ctx, "SQL statement failed", "elapsed", elapsed, "rows", rows, "sql", sql, "error", err)
	case l.slowQuery > 0 && elapsed > l.slowQuery && l.level >= logger.Warn:
		sql, rows := fc()
		slog.WarnContext(ctx, "Slow SQL statement", "elapsed", elapsed, "threshold", l.slowQuery, "rows", rows, "sql", sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		slog.DebugContext(ctx, "SQL statement", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
