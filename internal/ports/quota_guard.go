package ports

import "context"

// Contract for a per-endpoint call budget checked before each outbound call.
type QuotaGuard interface {
	// Consume one unit of the endpoint's budget, or fail with
	// apperr.KindQuotaExceeded when none is left.
	Allow(ctx context.Context, endpoint string) error
}
