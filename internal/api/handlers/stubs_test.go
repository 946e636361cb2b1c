package handlers_test

import (
	"context"
	"math/rand"
	"time"

	"github.com/di-awab/priseitup/internal/engine"
	"github.com/di-awab/priseitup/internal/market"
	"github.com/di-awab/priseitup/internal/recommend"
	"github.com/di-awab/priseitup/internal/store"
	"github.com/di-awab/priseitup/pkg/pricing"
	domain "github.com/di-awab/priseitup/pkg/types"
)

// stubStore is a hand-rolled in-memory Store for handler tests.
type stubStore struct {
	appraisals []domain.Appraisal
	stats      *domain.AppraisalStats

	insertErr error
	listErr   error
	statsErr  error
	pingErr   error
}

func (s *stubStore) InsertAppraisal(_ context.Context, a *domain.Appraisal) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	if a.ID == "" {
		a.ID = "00000000-0000-0000-0000-000000000001"
	}
	a.CreatedAt = time.Now()
	s.appraisals = append(s.appraisals, *a)
	return nil
}

func (s *stubStore) GetAppraisal(_ context.Context, id string) (*domain.Appraisal, error) {
	for i := range s.appraisals {
		if s.appraisals[i].ID == id {
			return &s.appraisals[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubStore) ListAppraisals(
	_ context.Context,
	_ *store.AppraisalQuery,
) ([]domain.Appraisal, int, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	return s.appraisals, len(s.appraisals), nil
}

func (s *stubStore) CountAppraisals(context.Context) (int, error) {
	return len(s.appraisals), nil
}

func (s *stubStore) GetStats(context.Context) (*domain.AppraisalStats, error) {
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	if s.stats != nil {
		return s.stats, nil
	}
	return &domain.AppraisalStats{}, nil
}

func (s *stubStore) DeleteAppraisalsBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (s *stubStore) Migrate(context.Context) error { return nil }

func (s *stubStore) Ping(context.Context) error { return s.pingErr }

// newTestEngine builds an engine over the stub store with pinned random
// sequences.
func newTestEngine(st store.Store) *engine.Engine {
	return engine.New(
		st,
		pricing.NewEstimator(pricing.WithRand(rand.New(rand.NewSource(1)))),
		market.NewSampler(market.WithRand(rand.New(rand.NewSource(2)))),
		recommend.NewGenerator(recommend.WithRand(rand.New(rand.NewSource(3)))),
	)
}
