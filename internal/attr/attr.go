// Package attr provides slog attribute helpers so call sites stay terse
// and field names stay consistent across modules.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/fore-golf/fore-api/internal/types"
)

func String(key, value string) slog.Attr      { return slog.String(key, value) }
func Int(key string, value int) slog.Attr     { return slog.Int(key, value) }
func Bool(key string, value bool) slog.Attr   { return slog.Bool(key, value) }
func Any(key string, value any) slog.Attr     { return slog.Any(key, value) }
func Duration(key string, d time.Duration) slog.Attr { return slog.Duration(key, d) }
func Float64(key string, value float64) slog.Attr    { return slog.Float64(key, value) }
func Time(key string, t time.Time) slog.Attr  { return slog.Time(key, t) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func UserID(id types.UserID) slog.Attr     { return slog.String("user_id", string(id)) }
func CourseID(id types.CourseID) slog.Attr { return slog.String("course_id", string(id)) }
func RoundID(id types.RoundID) slog.Attr   { return slog.String("round_id", string(id)) }

type correlationIDKey struct{}

// WithCorrelationID stores a correlation id on the context for later
// extraction by ExtractCorrelationID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, correlationID)
}

// ExtractCorrelationID returns the correlation id attribute from the
// context, or an empty attribute when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}

// CorrelationIDFromMsg returns the correlation id attribute carried in a
// watermill message's metadata.
func CorrelationIDFromMsg(msg *message.Message) slog.Attr {
	return slog.String("correlation_id", middleware.MessageCorrelationID(msg))
}
