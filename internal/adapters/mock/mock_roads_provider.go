// Package mock provides in-memory stand-ins for the remote APIs.
package mock

import (
	"context"
	"googleapi-client/internal/domain"
	"googleapi-client/internal/maps/roads"
	"sync"
)

// MockRoad maps an input point to the road position it snaps to. Points
// without a MockRoad are treated as far from any road.
type MockRoad struct {
	Point   domain.Coordinate
	Snapped domain.Coordinate
	PlaceID string
}

// MockRoadsProvider answers nearest roads queries from a fixed table and
// records every request it receives.
type MockRoadsProvider struct {
	m map[domain.Coordinate]MockRoad

	mu       sync.Mutex
	requests []*roads.NearestRoadsRequest
	FailOn   int // 1-based call number that returns Err; 0 never fails
	Err      error
}

func NewMockRoadsProvider(roadsList []MockRoad) *MockRoadsProvider {
	m := make(map[domain.Coordinate]MockRoad, len(roadsList))
	for _, r := range roadsList {
		m[r.Point] = r
	}
	return &MockRoadsProvider{m: m}
}

func (p *MockRoadsProvider) Query(ctx context.Context, req *roads.NearestRoadsRequest) (*roads.NearestRoadsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := req.QueryParams(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.requests = append(p.requests, req)
	n := len(p.requests)
	p.mu.Unlock()

	if p.FailOn > 0 && n == p.FailOn {
		return nil, p.Err
	}

	resp := &roads.NearestRoadsResponse{}
	for i, pt := range req.Points {
		r, ok := p.m[pt]
		if !ok {
			continue
		}
		idx := i
		resp.SnappedPoints = append(resp.SnappedPoints, roads.SnappedPoint{
			Location:      domain.RoadsCoordinate{Latitude: r.Snapped.Lat, Longitude: r.Snapped.Lng},
			OriginalIndex: &idx,
			PlaceID:       r.PlaceID,
		})
	}
	return resp, nil
}

// Requests returns the requests received so far.
func (p *MockRoadsProvider) Requests() []*roads.NearestRoadsRequest {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]*roads.NearestRoadsRequest, len(p.requests))
	copy(out, p.requests)
	return out
}
