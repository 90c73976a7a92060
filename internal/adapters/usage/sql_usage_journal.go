// Package usage journals executed API calls to Postgres.
package usage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"googleapi-client/internal/platform/logger"
	"googleapi-client/internal/platform/obs"
	"googleapi-client/internal/ports"
	"strings"
	"time"
)

// SQLUsageJournal stores one row per executed call. It implements
// ports.CallObserver so it can be attached to every engine.
type SQLUsageJournal struct {
	DB  *sql.DB
	log *logger.Logger
}

func NewSQLUsageJournal(db *sql.DB, log *logger.Logger) *SQLUsageJournal {
	if log == nil {
		log = logger.Nop()
	}
	return &SQLUsageJournal{DB: db, log: log}
}

// EndpointUsage aggregates the calls of one endpoint.
type EndpointUsage struct {
	Endpoint      string
	Calls         int64
	Failures      int64
	AvgDurationMs float64
	LastCalledAt  time.Time
}

// ObserveCall records call. Failures are logged, not returned.
func (s *SQLUsageJournal) ObserveCall(ctx context.Context, call ports.Call) {
	// The caller's context may already be done when a call failed on timeout.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := s.Record(ctx, call); err != nil {
		s.log.WithContext(ctx).DatabaseError("usage.record", err)
	}
}

// Record inserts a single call.
func (s *SQLUsageJournal) Record(ctx context.Context, call ports.Call) error {
	return s.RecordMany(ctx, []ports.Call{call})
}

// RecordMany inserts calls in one transaction. Rows already present (same
// id) are left untouched.
func (s *SQLUsageJournal) RecordMany(ctx context.Context, calls []ports.Call) (err error) {
	defer obs.Time(ctx, s.log, "usage.RecordMany")(&err)

	if s.DB == nil {
		return errors.New("usage journal: db is nil")
	}
	if len(calls) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record usage: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO api_calls (id, request_id, endpoint, outcome, http_status, duration_ms, called_at, error)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return fmt.Errorf("record usage: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, c := range calls {
		if strings.TrimSpace(c.Endpoint) == "" {
			return errors.New("record usage: empty endpoint")
		}

		if _, err := stmt.ExecContext(ctx,
			c.ID, c.RequestID, c.Endpoint, c.Outcome, c.HTTPStatus,
			c.Duration.Milliseconds(), c.At.UTC(), c.Err,
		); err != nil {
			return fmt.Errorf("record usage endpoint=%q: %w", c.Endpoint, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("record usage commit: %w", err)
	}
	return nil
}

// Summary aggregates calls made since the given instant, busiest endpoint
// first.
func (s *SQLUsageJournal) Summary(ctx context.Context, since time.Time) (_ []EndpointUsage, err error) {
	defer obs.Time(ctx, s.log, "usage.Summary")(&err)

	if s.DB == nil {
		return nil, errors.New("usage journal: db is nil")
	}

	q := `
	SELECT endpoint,
		COUNT(*),
		COUNT(*) FILTER (WHERE outcome <> 'ok'),
		COALESCE(AVG(duration_ms), 0),
		MAX(called_at)
	FROM api_calls
	WHERE called_at >= $1
	GROUP BY endpoint
	ORDER BY COUNT(*) DESC, endpoint;
	`

	rows, err := s.DB.QueryContext(ctx, q, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("usage summary: query api_calls table: %w", err)
	}
	defer rows.Close()

	var out []EndpointUsage
	for rows.Next() {
		var u EndpointUsage
		if err := rows.Scan(&u.Endpoint, &u.Calls, &u.Failures, &u.AvgDurationMs, &u.LastCalledAt); err != nil {
			return nil, fmt.Errorf("usage summary: scan rows: %w", err)
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("usage summary: row iteration: %w", err)
	}

	return out, nil
}

// Prune deletes calls older than before and returns how many were removed.
func (s *SQLUsageJournal) Prune(ctx context.Context, before time.Time) (int64, error) {
	if s.DB == nil {
		return 0, errors.New("usage journal: db is nil")
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM api_calls WHERE called_at < $1;`, before.UTC())
	if err != nil {
		return 0, fmt.Errorf("prune usage: %w", err)
	}
	return res.RowsAffected()
}
