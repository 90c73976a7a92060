package services

import (
	"context"
	"errors"
	"fmt"
	"googleapi-client/internal/domain"
	"googleapi-client/internal/maps/roads"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/ports"
	"sort"

	"golang.org/x/sync/errgroup"
)

const (
	// ChunkSize is the largest number of points the Roads API accepts per call.
	ChunkSize = roads.MaxPoints - 1

	defaultConcurrency = 4
)

type NearestRoadsQuerier = ports.Querier[*roads.NearestRoadsRequest, roads.NearestRoadsResponse]

// RoadsBatcher snaps point lists of any length by splitting them into
// chunks the Roads API accepts and querying the chunks concurrently.
type RoadsBatcher struct {
	nearest     NearestRoadsQuerier
	concurrency int
	defaultKey  string
}

func NewRoadsBatcher(nearest NearestRoadsQuerier, concurrency int) (*RoadsBatcher, error) {
	if nearest == nil {
		return nil, errors.New("roads batcher: querier is nil")
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &RoadsBatcher{nearest: nearest, concurrency: concurrency}, nil
}

// WithDefaultKey sets the key used when NearestRoads is called without one.
func (b *RoadsBatcher) WithDefaultKey(key string) *RoadsBatcher {
	b.defaultKey = key
	return b
}

// NearestRoads returns the snapped points of all chunks with OriginalIndex
// rebased onto points, ordered by that index. The first failing chunk
// cancels the rest.
func (b *RoadsBatcher) NearestRoads(ctx context.Context, key string, points []domain.Coordinate) ([]roads.SnappedPoint, error) {
	if key == "" {
		key = b.defaultKey
	}
	if key == "" {
		return nil, apperr.New(apperr.KindMissingKey, "Key is required").WithField("key")
	}
	if len(points) == 0 {
		return nil, apperr.New(apperr.KindMissingPoints, "Points is required").WithField("points")
	}

	chunks := chunk(points, ChunkSize)
	results := make([][]roads.SnappedPoint, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			resp, err := b.nearest.Query(gctx, &roads.NearestRoadsRequest{Key: key, Points: c})
			if err != nil {
				return fmt.Errorf("nearest roads chunk %d/%d: %w", i+1, len(chunks), err)
			}

			offset := i * ChunkSize
			out := make([]roads.SnappedPoint, 0, len(resp.SnappedPoints))
			for _, sp := range resp.SnappedPoints {
				if sp.OriginalIndex != nil {
					idx := *sp.OriginalIndex + offset
					sp.OriginalIndex = &idx
				}
				out = append(out, sp)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []roads.SnappedPoint
	for _, r := range results {
		all = append(all, r...)
	}

	// A point near several roads yields several snapped points with the
	// same index; keep their relative order.
	sort.SliceStable(all, func(i, j int) bool {
		return index(all[i]) < index(all[j])
	})
	return all, nil
}

func index(sp roads.SnappedPoint) int {
	if sp.OriginalIndex == nil {
		return -1
	}
	return *sp.OriginalIndex
}

func chunk[T any](items []T, size int) [][]T {
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
