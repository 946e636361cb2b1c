package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/di-awab/priseitup/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled
// PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// InsertAppraisal persists one appraisal record, assigning an ID when the
// caller did not.
func (s *PostgresStore) InsertAppraisal(ctx context.Context, a *domain.Appraisal) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	args := pgx.NamedArgs{
		"id":          a.ID,
		"device_type": string(a.DeviceType),
		"brand":       a.Brand,
		"model":       a.Model,
		"specs":       a.Specs,
		"condition":   string(a.Condition),
		"region":      a.Region,
		"amount":      a.Amount,
		"base_source": string(a.BaseSource),
	}

	if err := s.pool.QueryRow(ctx, queryInsertAppraisal, args).Scan(&a.CreatedAt); err != nil {
		return fmt.Errorf("inserting appraisal: %w", err)
	}
	return nil
}

// GetAppraisal retrieves one appraisal by ID.
func (s *PostgresStore) GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error) {
	a := &domain.Appraisal{}
	err := s.pool.QueryRow(ctx, queryGetAppraisal, id).Scan(
		&a.ID, &a.DeviceType, &a.Brand, &a.Model, &a.Specs,
		&a.Condition, &a.Region, &a.Amount, &a.BaseSource, &a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting appraisal %s: %w", id, err)
	}
	return a, nil
}

// ListAppraisals returns a filtered, paginated history page plus the total
// count matching the filters.
func (s *PostgresStore) ListAppraisals(
	ctx context.Context,
	opts *AppraisalQuery,
) ([]domain.Appraisal, int, error) {
	if opts == nil {
		opts = &AppraisalQuery{}
	}

	listSQL, countSQL, args := buildListQuery(opts)

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting appraisals: %w", err)
	}

	rows, err := s.pool.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing appraisals: %w", err)
	}
	defer rows.Close()

	var out []domain.Appraisal
	for rows.Next() {
		var a domain.Appraisal
		if err := rows.Scan(
			&a.ID, &a.DeviceType, &a.Brand, &a.Model, &a.Specs,
			&a.Condition, &a.Region, &a.Amount, &a.BaseSource, &a.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scanning appraisal row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating appraisal rows: %w", err)
	}

	return out, total, nil
}

// CountAppraisals returns the total number of stored appraisals.
func (s *PostgresStore) CountAppraisals(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, queryCountAppraisals).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting appraisals: %w", err)
	}
	return n, nil
}

// GetStats aggregates totals and per-device-type averages.
func (s *PostgresStore) GetStats(ctx context.Context) (*domain.AppraisalStats, error) {
	stats := &domain.AppraisalStats{
		ByDeviceType: map[string]int{},
		AvgByDevice:  map[string]float64{},
	}

	if err := s.pool.QueryRow(ctx, queryStatsTotals).Scan(&stats.Total, &stats.AvgAmount); err != nil {
		return nil, fmt.Errorf("querying appraisal totals: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryStatsByDevice)
	if err != nil {
		return nil, fmt.Errorf("querying per-device stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			deviceType string
			count      int
			avg        float64
		)
		if err := rows.Scan(&deviceType, &count, &avg); err != nil {
			return nil, fmt.Errorf("scanning per-device stats: %w", err)
		}
		stats.ByDeviceType[deviceType] = count
		stats.AvgByDevice[deviceType] = avg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating per-device stats: %w", err)
	}

	return stats, nil
}

// DeleteAppraisalsBefore removes records older than cutoff.
func (s *PostgresStore) DeleteAppraisalsBefore(
	ctx context.Context,
	cutoff time.Time,
) (int64, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteBefore, cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning appraisals: %w", err)
	}
	return tag.RowsAffected(), nil
}
