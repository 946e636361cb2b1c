//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/di-awab/priseitup/internal/store"
	domain "github.com/di-awab/priseitup/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("pit_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testAppraisal() *domain.Appraisal {
	return &domain.Appraisal{
		DeviceType: domain.DeviceSmartphone,
		Brand:      "Apple",
		Model:      "iPhone 13 Pro",
		Specs:      "256gb",
		Condition:  domain.ConditionGood,
		Region:     "us",
		Amount:     540,
		BaseSource: domain.BaseMarket,
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_InsertAppraisal(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("assigns ID and created_at", func(t *testing.T) {
		a := testAppraisal()
		require.NoError(t, s.InsertAppraisal(ctx, a))
		assert.NotEmpty(t, a.ID)
		assert.False(t, a.CreatedAt.IsZero())
	})

	t.Run("keeps caller-supplied ID", func(t *testing.T) {
		a := testAppraisal()
		a.ID = "caller-id-1"
		require.NoError(t, s.InsertAppraisal(ctx, a))
		assert.Equal(t, "caller-id-1", a.ID)

		got, err := s.GetAppraisal(ctx, "caller-id-1")
		require.NoError(t, err)
		assert.Equal(t, "Apple", got.Brand)
	})
}

func TestPostgresStore_GetAppraisal(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		a := testAppraisal()
		require.NoError(t, s.InsertAppraisal(ctx, a))

		got, err := s.GetAppraisal(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "iPhone 13 Pro", got.Model)
		assert.Equal(t, domain.ConditionGood, got.Condition)
		assert.InDelta(t, 540, got.Amount, 0.01)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetAppraisal(ctx, "nonexistent")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_ListAppraisals(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	for i := range 3 {
		a := testAppraisal()
		a.Amount = float64(400 + i*100)
		require.NoError(t, s.InsertAppraisal(ctx, a))
	}
	laptop := testAppraisal()
	laptop.DeviceType = domain.DeviceLaptop
	laptop.Brand = "Dell"
	laptop.Model = "XPS 15"
	laptop.Amount = 900
	require.NoError(t, s.InsertAppraisal(ctx, laptop))

	t.Run("no filters", func(t *testing.T) {
		got, total, err := s.ListAppraisals(ctx, &store.AppraisalQuery{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, got, 4)
	})

	t.Run("device type filter", func(t *testing.T) {
		dt := "laptop"
		got, total, err := s.ListAppraisals(ctx, &store.AppraisalQuery{DeviceType: &dt})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "Dell", got[0].Brand)
	})

	t.Run("brand filter ignores case", func(t *testing.T) {
		brand := "apple"
		got, total, err := s.ListAppraisals(ctx, &store.AppraisalQuery{Brand: &brand})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, got, 3)
	})

	t.Run("order by amount", func(t *testing.T) {
		got, _, err := s.ListAppraisals(ctx, &store.AppraisalQuery{OrderBy: "amount"})
		require.NoError(t, err)
		require.NotEmpty(t, got)
		assert.InDelta(t, 900, got[0].Amount, 0.01)
	})

	t.Run("pagination total count is correct", func(t *testing.T) {
		got, total, err := s.ListAppraisals(ctx, &store.AppraisalQuery{Limit: 2, Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, got, 1)
	})
}

func TestPostgresStore_CountAndStats(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	phone := testAppraisal()
	phone.Amount = 500
	require.NoError(t, s.InsertAppraisal(ctx, phone))

	laptop := testAppraisal()
	laptop.DeviceType = domain.DeviceLaptop
	laptop.Amount = 1000
	require.NoError(t, s.InsertAppraisal(ctx, laptop))

	n, err := s.CountAppraisals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.InDelta(t, 750, stats.AvgAmount, 0.01)
	assert.Equal(t, 1, stats.ByDeviceType["smartphone"])
	assert.Equal(t, 1, stats.ByDeviceType["laptop"])
	assert.InDelta(t, 1000, stats.AvgByDevice["laptop"], 0.01)
}

func TestPostgresStore_GetStats_Empty(t *testing.T) {
	s := setupPostgres(t)

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Total)
	assert.Zero(t, stats.AvgAmount)
	assert.Empty(t, stats.ByDeviceType)
}

func TestPostgresStore_DeleteAppraisalsBefore(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	a := testAppraisal()
	require.NoError(t, s.InsertAppraisal(ctx, a))

	t.Run("cutoff in the past removes nothing", func(t *testing.T) {
		pruned, err := s.DeleteAppraisalsBefore(ctx, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, pruned)
	})

	t.Run("cutoff in the future removes everything", func(t *testing.T) {
		pruned, err := s.DeleteAppraisalsBefore(ctx, time.Now().Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(1), pruned)

		n, err := s.CountAppraisals(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestPostgresStore_Migrate_Idempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}
