package obs

import (
	"context"
	"googleapi-client/internal/platform/logger"
	"time"

	"github.com/google/uuid"
)

// WithRequestID returns ctx carrying id, generating one when id is empty.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.NewString()
	}
	return context.WithValue(ctx, logger.RequestIDKey, id)
}

// RequestID returns the request id stored in ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(logger.RequestIDKey).(string)
	return id
}

// Time logs the duration of op when the returned func is deferred.
//
//	defer obs.Time(ctx, log, "engine.nearestRoads")(&err)
func Time(ctx context.Context, log *logger.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)
		l := log.WithContext(ctx)

		if errp != nil && *errp != nil {
			l.Debug("op failed", "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		l.Debug("op done", "op", name, "dur_ms", dur.Milliseconds())
	}
}
