package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// testSnapshotCacheSetup is a helper struct to hold test dependencies
type testSnapshotCacheSetup struct {
	cache     *SnapshotCache
	miniRedis *miniredis.Miniredis
	ctx       context.Context
}

// setupTestSnapshotCache creates a test cache backed by miniredis
func setupTestSnapshotCache(t *testing.T) *testSnapshotCacheSetup {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	cache := NewSnapshotCache(SnapshotCacheConfig{
		Addr: mr.Addr(),
		TTL:  5 * time.Minute,
	}, zerolog.Nop())

	return &testSnapshotCacheSetup{
		cache:     cache,
		miniRedis: mr,
		ctx:       context.Background(),
	}
}

func (s *testSnapshotCacheSetup) cleanup() {
	s.cache.Close()
	s.miniRedis.Close()
}

func testSnapshot() *models.FeedSnapshot {
	return &models.FeedSnapshot{
		League:    "Primeira Liga",
		SportKey:  "soccer_portugal_primeira_liga",
		FetchedAt: time.Date(2025, 4, 12, 10, 0, 0, 0, time.UTC),
		Events: []models.FeedEvent{
			{
				ID:           "evt-1",
				HomeTeam:     "FC Porto",
				AwayTeam:     "SL Benfica",
				CommenceTime: time.Date(2025, 4, 12, 19, 30, 0, 0, time.UTC),
				Bookmakers: []models.BookmakerQuote{
					{
						Key: "bet365",
						Markets: []models.FeedMarket{{
							Key: models.MarketH2H,
							Outcomes: []models.FeedOutcome{
								{Name: "FC Porto", Price: decimal.NewFromFloat(1.50)},
								{Name: "Draw", Price: decimal.NewFromFloat(4.00)},
								{Name: "SL Benfica", Price: decimal.NewFromFloat(6.00)},
							},
						}},
					},
				},
			},
		},
	}
}

// TestSetGet_Roundtrip tests snapshot caching and retrieval
func TestSetGet_Roundtrip(t *testing.T) {
	setup := setupTestSnapshotCache(t)
	defer setup.cleanup()

	require.NoError(t, setup.cache.Set(setup.ctx, testSnapshot()))
	assert.True(t, setup.miniRedis.Exists("snapshot:soccer_portugal_primeira_liga"))

	got, err := setup.cache.Get(setup.ctx, "soccer_portugal_primeira_liga")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Primeira Liga", got.League)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "FC Porto", got.Events[0].HomeTeam)

	market, ok := got.Events[0].Bookmakers[0].Market(models.MarketH2H)
	require.True(t, ok)
	assert.True(t, market.Outcomes[0].Price.Equal(decimal.NewFromFloat(1.50)))
}

// TestGet_MissReturnsNil tests that a cache miss is not an error
func TestGet_MissReturnsNil(t *testing.T) {
	setup := setupTestSnapshotCache(t)
	defer setup.cleanup()

	got, err := setup.cache.Get(setup.ctx, "soccer_epl")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestSet_AgeInvalidation tests TTL-based expiry
func TestSet_AgeInvalidation(t *testing.T) {
	setup := setupTestSnapshotCache(t)
	defer setup.cleanup()

	require.NoError(t, setup.cache.Set(setup.ctx, testSnapshot()))

	setup.miniRedis.FastForward(6 * time.Minute)

	got, err := setup.cache.Get(setup.ctx, "soccer_portugal_primeira_liga")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

// TestSet_LastWriterWins tests the documented race policy: a racing
// double-fetch overwrites cleanly, values stay whole
func TestSet_LastWriterWins(t *testing.T) {
	setup := setupTestSnapshotCache(t)
	defer setup.cleanup()

	first := testSnapshot()
	require.NoError(t, setup.cache.Set(setup.ctx, first))

	second := testSnapshot()
	second.FetchedAt = first.FetchedAt.Add(time.Minute)
	second.Events = append(second.Events, models.FeedEvent{ID: "evt-2"})
	require.NoError(t, setup.cache.Set(setup.ctx, second))

	got, err := setup.cache.Get(setup.ctx, "soccer_portugal_primeira_liga")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.FetchedAt, got.FetchedAt.UTC())
	assert.Len(t, got.Events, 2)
}

// TestPing tests connection checks against miniredis
func TestPing(t *testing.T) {
	setup := setupTestSnapshotCache(t)
	defer setup.cleanup()

	assert.NoError(t, setup.cache.Ping(setup.ctx))

	setup.miniRedis.Close()
	assert.Error(t, setup.cache.Ping(setup.ctx))
}
