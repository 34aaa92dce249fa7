package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/consensus-odds-service/internal/mocks"
	"github.com/cypherlabdev/consensus-odds-service/internal/models"
	"github.com/cypherlabdev/consensus-odds-service/internal/naming"
)

// testServiceSetup is a helper struct to hold test dependencies
type testServiceSetup struct {
	mockProvider  *mocks.MockFeedProvider
	mockCache     *mocks.MockSnapshotCache
	mockPublisher *mocks.MockRecordPublisher
	service       *ResolutionService
	ctrl          *gomock.Controller
}

// setupTestService creates a resolution service with mocked dependencies
func setupTestService(t *testing.T) *testServiceSetup {
	ctrl := gomock.NewController(t)

	mockProvider := mocks.NewMockFeedProvider(ctrl)
	mockCache := mocks.NewMockSnapshotCache(ctrl)
	mockPublisher := mocks.NewMockRecordPublisher(ctrl)
	registry := naming.NewRegistry()

	svc := NewResolutionService(mockProvider, mockCache, mockPublisher, registry, zerolog.Nop())

	return &testServiceSetup{
		mockProvider:  mockProvider,
		mockCache:     mockCache,
		mockPublisher: mockPublisher,
		service:       svc,
		ctrl:          ctrl,
	}
}

// cleanup cleans up test resources
func (s *testServiceSetup) cleanup() {
	s.ctrl.Finish()
}

var testKickoff = time.Date(2025, 4, 12, 15, 0, 0, 0, time.UTC)

func serviceTestRequest() models.ResolutionRequest {
	return models.ResolutionRequest{
		HomeTeam:        "Sporting CP",
		AwayTeam:        "FC Porto",
		League:          naming.LeaguePrimeiraLiga,
		TargetDate:      testKickoff,
		SeasonStartYear: 2024,
	}
}

func serviceTestEvent() models.FeedEvent {
	price := func(name string, v float64) models.FeedOutcome {
		return models.FeedOutcome{Name: name, Price: decimal.NewFromFloat(v)}
	}
	return models.FeedEvent{
		ID:           "evt-sporting-porto",
		SportKey:     "soccer_portugal_primeira_liga",
		HomeTeam:     "Sporting Lisbon",
		AwayTeam:     "FC Porto",
		CommenceTime: testKickoff,
		Bookmakers: []models.BookmakerQuote{
			{
				Key: "bet365",
				Markets: []models.FeedMarket{
					{Key: models.MarketH2H, Outcomes: []models.FeedOutcome{
						price("Sporting Lisbon", 2.10),
						price("Draw", 3.40),
						price("FC Porto", 3.60),
					}},
				},
			},
			{
				Key: "pinnacle",
				Markets: []models.FeedMarket{
					{Key: models.MarketH2H, Outcomes: []models.FeedOutcome{
						price("Sporting Lisbon", 2.05),
						price("Draw", 3.50),
						price("FC Porto", 3.70),
					}},
				},
			},
		},
	}
}

func serviceTestSnapshot() *models.FeedSnapshot {
	return &models.FeedSnapshot{
		League:    naming.LeaguePrimeiraLiga,
		SportKey:  "soccer_portugal_primeira_liga",
		FetchedAt: testKickoff.Add(-time.Hour),
		Events:    []models.FeedEvent{serviceTestEvent()},
	}
}

// TestResolve_CacheHit tests that a fresh snapshot is served from cache
// without touching the provider
func TestResolve_CacheHit(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().
		Get(gomock.Any(), "soccer_portugal_primeira_liga").
		Return(serviceTestSnapshot(), nil)
	setup.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, result.Outcome.Status)
	require.NotNil(t, result.Record)
	assert.Equal(t, "Sp Lisbon", result.Record.HomeTeam)
	assert.Equal(t, "Porto", result.Record.AwayTeam)
	assert.Equal(t, "Sporting Lisbon", result.Record.ProviderHomeTeam)
	assert.Equal(t, "2024/2025", result.Record.Season)
	assert.True(t, result.Record.B365H.Equal(decimal.NewFromFloat(2.10)))
	assert.Equal(t, 2, result.Record.H2HCoverage)
}

// TestResolve_CacheMiss tests the fetch-and-cache path
func TestResolve_CacheMiss(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().
		Get(gomock.Any(), "soccer_portugal_primeira_liga").
		Return(nil, nil)
	setup.mockProvider.EXPECT().
		FetchOdds(gomock.Any(), "soccer_portugal_primeira_liga").
		Return([]models.FeedEvent{serviceTestEvent()}, nil)
	setup.mockCache.EXPECT().
		Set(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *models.FeedSnapshot) error {
			assert.Equal(t, naming.LeaguePrimeiraLiga, snapshot.League)
			assert.Equal(t, "soccer_portugal_primeira_liga", snapshot.SportKey)
			assert.Len(t, snapshot.Events, 1)
			return nil
		})
	setup.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(nil)

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, result.Outcome.Status)
}

// TestResolve_CacheSetFailureIsNonFatal tests that a cache write failure
// does not fail the request
func TestResolve_CacheSetFailureIsNonFatal(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	setup.mockProvider.EXPECT().
		FetchOdds(gomock.Any(), gomock.Any()).
		Return([]models.FeedEvent{serviceTestEvent()}, nil)
	setup.mockCache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	setup.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, result.Outcome.Status)
}

// TestResolve_ProviderUnavailable tests that fetch failure surfaces the
// provider error
func TestResolve_ProviderUnavailable(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, nil)
	setup.mockProvider.EXPECT().
		FetchOdds(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrProviderUnavailable)

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	assert.ErrorIs(t, err, models.ErrProviderUnavailable)
	assert.Nil(t, result.Record)
}

// TestResolve_LeagueNotSupported tests rejection of unknown leagues before
// any feed access
func TestResolve_LeagueNotSupported(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	req := serviceTestRequest()
	req.League = "Eredivisie"

	_, err := setup.service.Resolve(context.Background(), req)

	assert.ErrorIs(t, err, models.ErrLeagueNotSupported)
}

// TestResolve_NotFound tests that an empty window maps to
// ErrNoCandidatesInWindow
func TestResolve_NotFound(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	snapshot := serviceTestSnapshot()
	snapshot.Events = nil
	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(snapshot, nil)

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	assert.ErrorIs(t, err, models.ErrNoCandidatesInWindow)
	assert.Equal(t, models.StatusNotFound, result.Outcome.Status)
}

// TestResolve_Ambiguous tests that an ambiguous outcome is returned without
// an error and without publishing
func TestResolve_Ambiguous(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	snapshot := serviceTestSnapshot()
	// Two near-identical fixtures outside the match window but inside the
	// disambiguation window
	eventA := serviceTestEvent()
	eventA.ID = "evt-a"
	eventA.HomeTeam = "Estoril"
	eventA.AwayTeam = "Arouca"
	eventA.CommenceTime = testKickoff.Add(3 * 24 * time.Hour)
	eventB := eventA
	eventB.ID = "evt-b"
	eventB.CommenceTime = testKickoff.Add(5 * 24 * time.Hour)
	snapshot.Events = []models.FeedEvent{eventA, eventB}
	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(snapshot, nil)

	req := serviceTestRequest()
	req.HomeTeam = "Famalicao"
	req.AwayTeam = "Gil Vicente"

	result, err := setup.service.Resolve(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusAmbiguous, result.Outcome.Status)
	assert.Nil(t, result.Record)
	assert.Len(t, result.Outcome.Candidates, 2)
	assert.Equal(t, "evt-a", result.Outcome.Candidates[0].EventID)
}

// TestResolve_ExplicitEventID tests that a caller-selected event bypasses
// the matching tiers
func TestResolve_ExplicitEventID(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(serviceTestSnapshot(), nil)
	setup.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	req := serviceTestRequest()
	req.HomeTeam = "completely wrong"
	req.AwayTeam = "names here"
	req.EventID = "evt-sporting-porto"

	result, err := setup.service.Resolve(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, result.Outcome.Status)
	assert.Equal(t, "evt-sporting-porto", result.Record.EventID)
}

// TestResolve_PublishFailureIsNonFatal tests that downstream delivery
// failure does not fail the request
func TestResolve_PublishFailureIsNonFatal(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	setup.mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(serviceTestSnapshot(), nil)
	setup.mockPublisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	result, err := setup.service.Resolve(context.Background(), serviceTestRequest())

	require.NoError(t, err)
	require.NotNil(t, result.Record)
}

// TestLeagues tests the roster listing
func TestLeagues(t *testing.T) {
	setup := setupTestService(t)
	defer setup.cleanup()

	leagues := setup.service.Leagues()

	assert.Len(t, leagues, 6)
	assert.Contains(t, leagues[naming.LeaguePremierLeague], "Man City")
	assert.Contains(t, leagues[naming.LeaguePrimeiraLiga], "Sp Lisbon")
}
