package consensus

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// Extractor reads per-bookmaker quotes off a resolved feed event and keeps
// only the complete ones. Incomplete quotes are dropped entirely, never
// partially counted.
type Extractor struct {
	logger zerolog.Logger
}

// NewExtractor creates a market extractor
func NewExtractor(logger zerolog.Logger) *Extractor {
	return &Extractor{
		logger: logger.With().Str("component", "extractor").Logger(),
	}
}

// ExtractH2H collects complete head-to-head quotes: all three outcomes
// (home/draw/away) present with positive prices. Outcome labels are matched
// against the literal provider team names first, then against generic
// home/draw/away tokens.
func (e *Extractor) ExtractH2H(event *models.FeedEvent) []models.CompleteQuote {
	var complete []models.CompleteQuote
	for _, quote := range dedupeBookmakers(event.Bookmakers) {
		market, ok := quote.Market(models.MarketH2H)
		if !ok {
			continue
		}

		prices := map[models.Side]decimal.Decimal{}
		for _, outcome := range market.Outcomes {
			side, ok := h2hSide(outcome.Name, event)
			if !ok {
				e.logger.Debug().
					Str("bookmaker", quote.Key).
					Str("outcome", outcome.Name).
					Msg("dropping unrecognized h2h outcome label")
				continue
			}
			prices[side] = outcome.Price
		}

		if !hasAllSides(prices, models.H2HSides) {
			e.logger.Warn().
				Str("bookmaker", quote.Key).
				Str("event_id", event.ID).
				Str("market", string(models.MarketH2H)).
				Msg("market data absent, dropping incomplete quote")
			continue
		}
		complete = append(complete, models.CompleteQuote{Bookmaker: quote.Key, Prices: prices})
	}
	return complete
}

// ExtractTotals collects complete over/under quotes at the fixed 2.5 line:
// both legs present with positive prices. Legs at other points are ignored.
func (e *Extractor) ExtractTotals(event *models.FeedEvent) []models.CompleteQuote {
	var complete []models.CompleteQuote
	for _, quote := range dedupeBookmakers(event.Bookmakers) {
		market, ok := quote.Market(models.MarketTotals)
		if !ok {
			continue
		}

		prices := map[models.Side]decimal.Decimal{}
		for _, outcome := range market.Outcomes {
			if !outcome.Point.Equal(models.TotalsLine) {
				continue
			}
			switch {
			case strings.EqualFold(outcome.Name, "Over"):
				prices[models.SideOver] = outcome.Price
			case strings.EqualFold(outcome.Name, "Under"):
				prices[models.SideUnder] = outcome.Price
			default:
				e.logger.Debug().
					Str("bookmaker", quote.Key).
					Str("outcome", outcome.Name).
					Msg("dropping unrecognized totals outcome label")
			}
		}

		if !hasAllSides(prices, models.TotalsSides) {
			e.logger.Warn().
				Str("bookmaker", quote.Key).
				Str("event_id", event.ID).
				Str("market", string(models.MarketTotals)).
				Msg("market data absent, dropping incomplete quote")
			continue
		}
		complete = append(complete, models.CompleteQuote{Bookmaker: quote.Key, Prices: prices})
	}
	return complete
}

// h2hSide maps an outcome label to a side of the fixture
func h2hSide(label string, event *models.FeedEvent) (models.Side, bool) {
	switch label {
	case event.HomeTeam:
		return models.SideHome, true
	case event.AwayTeam:
		return models.SideAway, true
	}
	switch {
	case strings.EqualFold(label, "home"):
		return models.SideHome, true
	case strings.EqualFold(label, "away"):
		return models.SideAway, true
	case strings.EqualFold(label, "draw"):
		return models.SideDraw, true
	}
	return "", false
}

// hasAllSides reports whether every required leg carries a positive price
func hasAllSides(prices map[models.Side]decimal.Decimal, sides []models.Side) bool {
	for _, side := range sides {
		price, ok := prices[side]
		if !ok || !price.IsPositive() {
			return false
		}
	}
	return true
}

// dedupeBookmakers keeps one quote per bookmaker key. If the feed carries the
// same bookmaker twice the last occurrence wins, in the position it was first
// seen, so downstream feed-order fallbacks stay deterministic.
func dedupeBookmakers(quotes []models.BookmakerQuote) []models.BookmakerQuote {
	index := make(map[string]int, len(quotes))
	out := make([]models.BookmakerQuote, 0, len(quotes))
	for _, q := range quotes {
		if i, seen := index[q.Key]; seen {
			out[i] = q
			continue
		}
		index[q.Key] = len(out)
		out = append(out, q)
	}
	return out
}
