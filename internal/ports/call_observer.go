package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// One executed outbound API call. Requests that fail validation never
// produce a Call.
type Call struct {
	ID         uuid.UUID
	RequestID  string
	Endpoint   string
	Outcome    string
	HTTPStatus int
	Duration   time.Duration
	At         time.Time
	Err        string
}

// Contract for anything that wants to see executed calls (metrics, journals).
type CallObserver interface {
	// Record a completed call. Implementations must not block the caller for long.
	ObserveCall(ctx context.Context, call Call)
}
