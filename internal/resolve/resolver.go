package resolve

import (
	"sort"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
	"github.com/cypherlabdev/consensus-odds-service/internal/naming"
)

// FuzzyThreshold is the minimum similarity both sides of a candidate must
// clear before the fuzzy tier may select it
const FuzzyThreshold = 0.7

// Resolver picks the single feed event matching a resolution request, or
// surfaces a disambiguation set. Matching tiers run strictly in order; a later
// tier never overrides an earlier tier's success.
type Resolver struct {
	registry *naming.Registry
	logger   zerolog.Logger
}

// NewResolver creates a fixture resolver over the given alias registry
func NewResolver(registry *naming.Registry, logger zerolog.Logger) *Resolver {
	return &Resolver{
		registry: registry,
		logger:   logger.With().Str("component", "resolver").Logger(),
	}
}

// Resolve applies the matching tiers (exact alias, fuzzy similarity,
// disambiguation) to the feed snapshot. Deterministic for a fixed request and
// feed: ties inside a tier break on closest kickoff to the target date, then
// lexicographic provider home name.
func (r *Resolver) Resolve(req models.ResolutionRequest, events []models.FeedEvent) models.ResolutionOutcome {
	candidates := FilterWindow(events, req.TargetDate, MatchWindow)

	if event, ok := r.exactTier(req, candidates); ok {
		r.logger.Info().
			Str("home_team", event.HomeTeam).
			Str("away_team", event.AwayTeam).
			Time("kickoff", event.CommenceTime).
			Msg("resolved fixture via exact alias tier")
		return models.Resolved(event)
	}

	if event, ok := r.fuzzyTier(req, candidates); ok {
		r.logger.Info().
			Str("home_team", event.HomeTeam).
			Str("away_team", event.AwayTeam).
			Time("kickoff", event.CommenceTime).
			Msg("resolved fixture via fuzzy tier")
		return models.Resolved(event)
	}

	return r.disambiguate(req, events)
}

// exactTier matches both event sides to the target clubs through the alias
// registry, in either orientation.
func (r *Resolver) exactTier(req models.ResolutionRequest, candidates []models.FeedEvent) (*models.FeedEvent, bool) {
	targetHome, okHome := r.registry.ResolveAlias(req.HomeTeam, req.League)
	targetAway, okAway := r.registry.ResolveAlias(req.AwayTeam, req.League)
	if !okHome || !okAway {
		r.logger.Debug().
			Str("home_team", req.HomeTeam).
			Str("away_team", req.AwayTeam).
			Str("league", req.League).
			Msg("target clubs not in alias tables, skipping exact tier")
		return nil, false
	}

	var matched []*models.FeedEvent
	for i := range candidates {
		event := &candidates[i]
		eventHome, okH := r.registry.ResolveAlias(event.HomeTeam, req.League)
		eventAway, okA := r.registry.ResolveAlias(event.AwayTeam, req.League)
		if !okH || !okA {
			continue
		}
		straight := eventHome == targetHome && eventAway == targetAway
		swapped := eventHome == targetAway && eventAway == targetHome
		if straight || swapped {
			matched = append(matched, event)
		}
	}

	if len(matched) == 0 {
		return nil, false
	}
	sortByProximity(matched, req.TargetDate)
	return matched[0], true
}

// fuzzyTier scores every candidate against the known spellings of the target
// clubs. A candidate qualifies only if both sides clear the threshold in one
// orientation, and only the unique highest-scoring candidate is selected; a
// tie at the top falls through to disambiguation.
func (r *Resolver) fuzzyTier(req models.ResolutionRequest, candidates []models.FeedEvent) (*models.FeedEvent, bool) {
	homeSpellings := r.targetSpellings(req.HomeTeam, req.League)
	awaySpellings := r.targetSpellings(req.AwayTeam, req.League)

	var best *models.FeedEvent
	bestScore := 0.0
	tied := false

	for i := range candidates {
		event := &candidates[i]
		eventHome := naming.Normalize(event.HomeTeam)
		eventAway := naming.Normalize(event.AwayTeam)

		straight := minScore(
			bestSimilarity(homeSpellings, eventHome),
			bestSimilarity(awaySpellings, eventAway),
		)
		swapped := minScore(
			bestSimilarity(homeSpellings, eventAway),
			bestSimilarity(awaySpellings, eventHome),
		)
		score := straight
		if swapped > score {
			score = swapped
		}
		if score <= FuzzyThreshold {
			continue
		}

		switch {
		case score > bestScore:
			best = event
			bestScore = score
			tied = false
		case score == bestScore:
			tied = true
		}
	}

	if best == nil || tied {
		if tied {
			r.logger.Debug().
				Float64("score", bestScore).
				Msg("fuzzy tier tie at top score, falling through")
		}
		return nil, false
	}
	return best, true
}

// disambiguate rebuilds the candidate list over the wide window, sorted by
// kickoff time ascending
func (r *Resolver) disambiguate(req models.ResolutionRequest, events []models.FeedEvent) models.ResolutionOutcome {
	wide := FilterWindow(events, req.TargetDate, DisambiguationWindow)
	if len(wide) == 0 {
		r.logger.Warn().
			Str("league", req.League).
			Time("target_date", req.TargetDate).
			Msg("no candidate fixtures even in disambiguation window")
		return models.NotFound()
	}

	sort.SliceStable(wide, func(i, j int) bool {
		return wide[i].CommenceTime.Before(wide[j].CommenceTime)
	})

	summaries := make([]models.CandidateSummary, 0, len(wide))
	for _, e := range wide {
		summaries = append(summaries, models.CandidateSummary{
			EventID:      e.ID,
			HomeTeam:     e.HomeTeam,
			AwayTeam:     e.AwayTeam,
			CommenceTime: e.CommenceTime,
		})
	}

	r.logger.Info().
		Int("candidates", len(summaries)).
		Str("home_team", req.HomeTeam).
		Str("away_team", req.AwayTeam).
		Msg("resolution ambiguous, returning candidate list")
	return models.Ambiguous(summaries)
}

// targetSpellings returns every normalized spelling to compare a target club
// against. Unknown clubs fall back to their own normalized form.
func (r *Resolver) targetSpellings(raw, league string) []string {
	if club, ok := r.registry.ResolveAlias(raw, league); ok {
		return r.registry.Spellings(club)
	}
	return []string{naming.Normalize(raw)}
}

// bestSimilarity returns the highest similarity between any known spelling
// and the candidate name
func bestSimilarity(spellings []string, name string) float64 {
	best := 0.0
	for _, s := range spellings {
		if sim := similarity(s, name); sim > best {
			best = sim
		}
	}
	return best
}

// similarity is a bounded 0-1 ratio derived from Levenshtein distance over
// normalized names
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// sortByProximity orders events by distance of kickoff from the target date,
// then lexicographically by provider home name
func sortByProximity(events []*models.FeedEvent, target time.Time) {
	sort.SliceStable(events, func(i, j int) bool {
		di := absDuration(events[i].CommenceTime.Sub(target))
		dj := absDuration(events[j].CommenceTime.Sub(target))
		if di != dj {
			return di < dj
		}
		return events[i].HomeTeam < events[j].HomeTeam
	})
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
