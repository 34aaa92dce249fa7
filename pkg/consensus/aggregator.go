package consensus

import (
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// PreferenceChain names one primary bookmaker code and the fixed substitution
// order consulted when the preferred bookmaker lacks data. Bookmakers with
// complete quotes that appear in no chain still extend every chain in feed
// order, so a primary slot only stays empty when the market has no coverage
// at all.
type PreferenceChain struct {
	Code  string
	Order []string
}

// DefaultH2HChains are the head-to-head substitution chains the downstream
// dataset columns are named after
var DefaultH2HChains = []PreferenceChain{
	{Code: "B365", Order: []string{"bet365", "pinnacle", "unibet_eu", "betfair_ex_eu"}},
	{Code: "BW", Order: []string{"bwin", "unibet_eu", "betfair_ex_eu", "pinnacle"}},
	{Code: "PS", Order: []string{"pinnacle", "betfair_ex_eu", "unibet_eu"}},
}

// DefaultTotalsChains are the substitution chains for the 2.5-line totals market
var DefaultTotalsChains = []PreferenceChain{
	{Code: "B365", Order: []string{"bet365", "pinnacle", "unibet_eu"}},
	{Code: "PS", Order: []string{"pinnacle", "betfair_ex_eu", "unibet_eu"}},
}

// AggregateResult carries the consensus for one market: the quote chosen for
// each primary code with its substitution provenance, plus Max/Avg statistics
// over every complete quote.
type AggregateResult struct {
	Assigned   map[string]models.CompleteQuote
	Provenance map[string]string
	Max        map[models.Side]decimal.Decimal
	Avg        map[models.Side]decimal.Decimal
	Coverage   int
}

// Aggregate computes the consensus over a market's complete quotes. It never
// errors: missing coverage degrades to empty assignments and zero statistics.
// Deterministic for a fixed quote slice and chain set.
func Aggregate(quotes []models.CompleteQuote, chains []PreferenceChain, sides []models.Side) AggregateResult {
	result := AggregateResult{
		Assigned:   make(map[string]models.CompleteQuote, len(chains)),
		Provenance: make(map[string]string, len(chains)),
		Max:        make(map[models.Side]decimal.Decimal, len(sides)),
		Avg:        make(map[models.Side]decimal.Decimal, len(sides)),
		Coverage:   len(quotes),
	}

	byBookmaker := make(map[string]models.CompleteQuote, len(quotes))
	for _, q := range quotes {
		byBookmaker[q.Bookmaker] = q
	}

	// Named canonical fields via the substitution chains. A bookmaker fills
	// at most one primary slot per market.
	taken := make(map[string]bool, len(chains))
	for _, chain := range chains {
		for _, bookmaker := range extendWithFeedOrder(chain.Order, quotes) {
			quote, ok := byBookmaker[bookmaker]
			if !ok || taken[bookmaker] {
				continue
			}
			result.Assigned[chain.Code] = quote
			result.Provenance[chain.Code] = bookmaker
			taken[bookmaker] = true
			break
		}
	}

	// Max/Avg over the full complete-quote set, not just the chosen bookmakers
	for _, side := range sides {
		maxPrice := decimal.Zero
		sum := decimal.Zero
		for _, q := range quotes {
			price := q.Prices[side]
			if price.GreaterThan(maxPrice) {
				maxPrice = price
			}
			sum = sum.Add(price)
		}
		result.Max[side] = maxPrice
		if len(quotes) > 0 {
			result.Avg[side] = sum.Div(decimal.NewFromInt(int64(len(quotes)))).Round(2)
		} else {
			result.Avg[side] = decimal.Zero
		}
	}

	return result
}

// extendWithFeedOrder appends quote bookmakers missing from the fixed order,
// preserving feed order
func extendWithFeedOrder(order []string, quotes []models.CompleteQuote) []string {
	known := make(map[string]bool, len(order))
	for _, b := range order {
		known[b] = true
	}
	extended := make([]string, 0, len(order)+len(quotes))
	extended = append(extended, order...)
	for _, q := range quotes {
		if !known[q.Bookmaker] {
			known[q.Bookmaker] = true
			extended = append(extended, q.Bookmaker)
		}
	}
	return extended
}
