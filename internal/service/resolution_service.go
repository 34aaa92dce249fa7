package service

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
	"github.com/cypherlabdev/consensus-odds-service/internal/naming"
	"github.com/cypherlabdev/consensus-odds-service/internal/resolve"
	"github.com/cypherlabdev/consensus-odds-service/pkg/consensus"
)

var resolutionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "consensus_odds_resolutions_total",
		Help: "Resolution requests by outcome",
	},
	[]string{"outcome"},
)

// Result carries the resolution outcome and, when resolved, the assembled
// consensus record
type Result struct {
	Outcome models.ResolutionOutcome
	Record  *models.ConsensusOddsRecord
}

// ResolutionService runs the full pipeline for one request: snapshot
// acquisition, fixture resolution, market extraction, consensus aggregation
// and record assembly. Stateless across requests; safe for concurrent use.
type ResolutionService struct {
	provider  FeedProvider
	cache     SnapshotCache
	publisher RecordPublisher
	registry  *naming.Registry
	resolver  *resolve.Resolver
	extractor *consensus.Extractor
	logger    zerolog.Logger
}

// NewResolutionService creates the pipeline service
func NewResolutionService(
	provider FeedProvider,
	cache SnapshotCache,
	publisher RecordPublisher,
	registry *naming.Registry,
	logger zerolog.Logger,
) *ResolutionService {
	return &ResolutionService{
		provider:  provider,
		cache:     cache,
		publisher: publisher,
		registry:  registry,
		resolver:  resolve.NewResolver(registry, logger),
		extractor: consensus.NewExtractor(logger),
		logger:    logger.With().Str("component", "resolution_service").Logger(),
	}
}

// Resolve runs one resolution request end to end. Ambiguous is a non-error
// outcome: err is nil and the caller inspects Result.Outcome. Fatal failures
// are always one of the taxonomy errors (ErrLeagueNotSupported,
// ErrProviderUnavailable, ErrNoCandidatesInWindow).
func (s *ResolutionService) Resolve(ctx context.Context, req models.ResolutionRequest) (Result, error) {
	sportKey, ok := s.registry.SportKey(req.League)
	if !ok {
		resolutionsTotal.WithLabelValues("league_not_supported").Inc()
		return Result{}, fmt.Errorf("%w: %s", models.ErrLeagueNotSupported, req.League)
	}

	snapshot, err := s.snapshot(ctx, req.League, sportKey)
	if err != nil {
		resolutionsTotal.WithLabelValues("provider_unavailable").Inc()
		return Result{}, err
	}

	outcome := s.resolveEvent(req, snapshot)

	switch outcome.Status {
	case models.StatusResolved:
		record := s.assembleRecord(req, outcome.Event)
		s.publishRecord(ctx, record)
		resolutionsTotal.WithLabelValues("resolved").Inc()
		return Result{Outcome: outcome, Record: record}, nil

	case models.StatusAmbiguous:
		resolutionsTotal.WithLabelValues("ambiguous").Inc()
		return Result{Outcome: outcome}, nil

	default:
		resolutionsTotal.WithLabelValues("not_found").Inc()
		return Result{Outcome: outcome}, fmt.Errorf("%w: %s vs %s in %s around %s",
			models.ErrNoCandidatesInWindow, req.HomeTeam, req.AwayTeam, req.League,
			req.TargetDate.Format("2006-01-02"))
	}
}

// snapshot serves the league feed from cache when fresh, fetching otherwise.
// Racing requests may double-fetch; both writes store whole immutable values
// and the last writer wins, so no locking is needed here.
func (s *ResolutionService) snapshot(ctx context.Context, league, sportKey string) (*models.FeedSnapshot, error) {
	cached, err := s.cache.Get(ctx, sportKey)
	if err != nil {
		s.logger.Warn().Err(err).Str("sport_key", sportKey).Msg("snapshot cache error, fetching fresh")
	}
	if cached != nil {
		s.logger.Debug().
			Str("sport_key", sportKey).
			Time("fetched_at", cached.FetchedAt).
			Int("events", len(cached.Events)).
			Msg("serving feed snapshot from cache")
		return cached, nil
	}

	events, err := s.provider.FetchOdds(ctx, sportKey)
	if err != nil {
		return nil, err
	}

	snapshot := &models.FeedSnapshot{
		League:    league,
		SportKey:  sportKey,
		FetchedAt: time.Now().UTC(),
		Events:    events,
	}
	if err := s.cache.Set(ctx, snapshot); err != nil {
		// Cache errors never fail the request
		s.logger.Warn().Err(err).Str("sport_key", sportKey).Msg("failed to cache feed snapshot")
	}
	return snapshot, nil
}

// resolveEvent honors an explicit event selection before running the
// matching tiers
func (s *ResolutionService) resolveEvent(req models.ResolutionRequest, snapshot *models.FeedSnapshot) models.ResolutionOutcome {
	if req.EventID != "" {
		for i := range snapshot.Events {
			if snapshot.Events[i].ID == req.EventID {
				s.logger.Info().
					Str("event_id", req.EventID).
					Msg("using caller-selected event")
				return models.Resolved(&snapshot.Events[i])
			}
		}
		s.logger.Warn().
			Str("event_id", req.EventID).
			Msg("selected event not in snapshot, falling back to matching tiers")
	}
	return s.resolver.Resolve(req, snapshot.Events)
}

func (s *ResolutionService) assembleRecord(req models.ResolutionRequest, event *models.FeedEvent) *models.ConsensusOddsRecord {
	h2h := consensus.Aggregate(s.extractor.ExtractH2H(event), consensus.DefaultH2HChains, models.H2HSides)
	totals := consensus.Aggregate(s.extractor.ExtractTotals(event), consensus.DefaultTotalsChains, models.TotalsSides)

	record := consensus.Assemble(event, consensus.Fixture{
		League:          req.League,
		HomeTeam:        s.canonicalName(event.HomeTeam, req.League),
		AwayTeam:        s.canonicalName(event.AwayTeam, req.League),
		SeasonStartYear: req.SeasonStartYear,
	}, h2h, totals)

	s.logger.Info().
		Str("home_team", record.HomeTeam).
		Str("away_team", record.AwayTeam).
		Int("h2h_coverage", record.H2HCoverage).
		Int("totals_coverage", record.TotalsCoverage).
		Msg("assembled consensus record")
	return &record
}

// canonicalName maps a provider spelling to the canonical club name, keeping
// the raw spelling when the alias tables don't know it
func (s *ResolutionService) canonicalName(raw, league string) string {
	if club, ok := s.registry.ResolveAlias(raw, league); ok {
		return club.Name
	}
	return raw
}

func (s *ResolutionService) publishRecord(ctx context.Context, record *models.ConsensusOddsRecord) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, record); err != nil {
		// Downstream delivery never fails the request
		s.logger.Warn().
			Err(err).
			Str("event_id", record.EventID).
			Msg("failed to publish consensus record")
	}
}

// Ready reports whether the service's cache dependency is reachable
func (s *ResolutionService) Ready(ctx context.Context) error {
	return s.cache.Ping(ctx)
}

// Leagues exposes the supported leagues and their canonical club rosters
func (s *ResolutionService) Leagues() map[string][]string {
	out := make(map[string][]string)
	for _, league := range s.registry.Leagues() {
		out[league] = s.registry.Roster(league)
	}
	return out
}
