// Package store defines the datastore abstraction for appraisal history.
// Business logic depends on the Store interface, never on concrete
// implementations, so handlers and the engine are testable without a
// running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/di-awab/priseitup/pkg/types"
)

// ErrNotFound is returned when a requested appraisal does not exist.
var ErrNotFound = errors.New("appraisal not found")

// AppraisalQuery defines optional filters for history queries.
type AppraisalQuery struct {
	DeviceType *string
	Brand      *string
	Limit      int // default 50
	Offset     int
	OrderBy    string // "created_at" (default) or "amount"
}

// Store defines all data access operations for the appraisal service.
type Store interface {
	InsertAppraisal(ctx context.Context, a *domain.Appraisal) error
	GetAppraisal(ctx context.Context, id string) (*domain.Appraisal, error)
	ListAppraisals(ctx context.Context, opts *AppraisalQuery) ([]domain.Appraisal, int, error)
	CountAppraisals(ctx context.Context) (int, error)
	GetStats(ctx context.Context) (*domain.AppraisalStats, error)

	// DeleteAppraisalsBefore removes records older than cutoff and
	// returns how many rows went away. Used by the retention job.
	DeleteAppraisalsBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
