package ports

import "context"

// Querier executes one kind of validated request. *engine.Engine satisfies it
// for every endpoint; tests substitute mocks.
type Querier[Req, Resp any] interface {
	Query(ctx context.Context, req Req) (*Resp, error)
}
