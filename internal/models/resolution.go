package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrProviderUnavailable means the feed fetch failed after bounded retries.
// Fatal for the request.
var ErrProviderUnavailable = errors.New("odds provider unavailable")

// ErrNoCandidatesInWindow means the disambiguation window held no events at all
var ErrNoCandidatesInWindow = errors.New("no candidate fixtures in window")

// ErrLeagueNotSupported means the requested league has no provider sport key
var ErrLeagueNotSupported = errors.New("league not supported by odds provider")

// ResolutionRequest asks for the consensus odds of one specific fixture.
// EventID, when set, is an explicit selection from a previous Ambiguous
// outcome and bypasses the matching tiers.
type ResolutionRequest struct {
	ID              uuid.UUID
	HomeTeam        string
	AwayTeam        string
	League          string
	TargetDate      time.Time
	SeasonStartYear int
	EventID         string
}

// ResolutionStatus tags the outcome of fixture resolution
type ResolutionStatus string

const (
	// StatusResolved means exactly one feed event was selected
	StatusResolved ResolutionStatus = "resolved"
	// StatusAmbiguous means resolution needs caller input to pick a candidate
	StatusAmbiguous ResolutionStatus = "ambiguous"
	// StatusNotFound means no candidates existed even in the wide window
	StatusNotFound ResolutionStatus = "not_found"
)

// CandidateSummary annotates one disambiguation candidate
type CandidateSummary struct {
	EventID      string    `json:"event_id"`
	HomeTeam     string    `json:"home_team"`
	AwayTeam     string    `json:"away_team"`
	CommenceTime time.Time `json:"commence_time"`
}

// ResolutionOutcome is the tagged result of resolving a request against a
// feed snapshot. Event is set only for StatusResolved; Candidates only for
// StatusAmbiguous, ordered by kickoff time ascending.
type ResolutionOutcome struct {
	Status     ResolutionStatus
	Event      *FeedEvent
	Candidates []CandidateSummary
}

// Resolved builds a successful outcome
func Resolved(event *FeedEvent) ResolutionOutcome {
	return ResolutionOutcome{Status: StatusResolved, Event: event}
}

// Ambiguous builds an outcome that needs caller disambiguation
func Ambiguous(candidates []CandidateSummary) ResolutionOutcome {
	return ResolutionOutcome{Status: StatusAmbiguous, Candidates: candidates}
}

// NotFound builds an empty outcome
func NotFound() ResolutionOutcome {
	return ResolutionOutcome{Status: StatusNotFound}
}
