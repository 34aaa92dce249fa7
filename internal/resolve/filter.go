package resolve

import (
	"time"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

const (
	// MatchWindow bounds how far a candidate kickoff may sit from the
	// requested date during resolution
	MatchWindow = 24 * time.Hour
	// DisambiguationWindow is the wider net used only to build the
	// human-facing candidate list when resolution fails
	DisambiguationWindow = 7 * 24 * time.Hour
)

// FilterWindow keeps events whose kickoff falls within
// [target-window, target+window], bounds inclusive. Side-effect free; the
// input slice is never mutated.
func FilterWindow(events []models.FeedEvent, target time.Time, window time.Duration) []models.FeedEvent {
	from := target.Add(-window)
	to := target.Add(window)

	var kept []models.FeedEvent
	for _, e := range events {
		if e.CommenceTime.Before(from) || e.CommenceTime.After(to) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
