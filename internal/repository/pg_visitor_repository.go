package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// VisitorRepository defines the persistence interface for visitor
// tracking records.
type VisitorRepository interface {
	// RecordHit upserts the visitor keyed by hit.IPAddress and appends
	// one visit event, atomically.
	RecordHit(ctx context.Context, hit model.VisitorHit, at time.Time) error
	Count(ctx context.Context) (int, error)
	CountReturning(ctx context.Context) (int, error)
	Recent(ctx context.Context, limit int) ([]*model.Visitor, error)
}

// PgVisitorRepository is the PostgreSQL implementation of VisitorRepository.
type PgVisitorRepository struct {
	pool *pgxpool.Pool
}

// NewPgVisitorRepository creates a PgVisitorRepository backed by the given pool.
func NewPgVisitorRepository(pool *pgxpool.Pool) *PgVisitorRepository {
	return &PgVisitorRepository{pool: pool}
}

var _ VisitorRepository = (*PgVisitorRepository)(nil)

// RecordHit is a single conditional upsert: a first-time address
// creates the row with one visit event; a known address appends the
// event, flips is_returning and bumps last_seen_at. Concurrent hits
// from the same address each append exactly one event.
func (r *PgVisitorRepository) RecordHit(ctx context.Context, hit model.VisitorHit, at time.Time) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO visitors (id, ip_address, user_agent, referrer, visits, is_returning, first_seen_at, last_seen_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''),
		         jsonb_build_array(jsonb_build_object('page', $5::text, 'visited_at', $6::timestamptz)),
		         FALSE, $6, $6)
		 ON CONFLICT (ip_address) DO UPDATE SET
			visits       = visitors.visits || jsonb_build_object('page', $5::text, 'visited_at', $6::timestamptz),
			is_returning = TRUE,
			user_agent   = COALESCE(NULLIF($3, ''), visitors.user_agent),
			last_seen_at = $6`,
		uuid.NewString(), hit.IPAddress, hit.UserAgent, hit.Referrer, hit.Page, at,
	)
	return err
}

// Count returns the number of distinct visitor records.
func (r *PgVisitorRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&n)
	return n, err
}

// CountReturning returns the number of visitors seen more than once.
func (r *PgVisitorRepository) CountReturning(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE is_returning`).Scan(&n)
	return n, err
}

// Recent returns the most recently seen visitors.
func (r *PgVisitorRepository) Recent(ctx context.Context, limit int) ([]*model.Visitor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, ip_address, COALESCE(user_agent, ''), COALESCE(referrer, ''),
		        visits, is_returning, first_seen_at, last_seen_at
		 FROM visitors ORDER BY last_seen_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVisitors(rows)
}

func scanVisitors(rows pgx.Rows) ([]*model.Visitor, error) {
	var visitors []*model.Visitor
	for rows.Next() {
		var v model.Visitor
		var visitsJSON []byte
		if err := rows.Scan(&v.ID, &v.IPAddress, &v.UserAgent, &v.Referrer,
			&visitsJSON, &v.IsReturning, &v.FirstSeenAt, &v.LastSeenAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(visitsJSON, &v.Visits); err != nil {
			return nil, err
		}
		visitors = append(visitors, &v)
	}
	return visitors, rows.Err()
}
