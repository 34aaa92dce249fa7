package consensus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

func h2hQuote(bookmaker string, home, draw, away float64) models.CompleteQuote {
	return models.CompleteQuote{
		Bookmaker: bookmaker,
		Prices: map[models.Side]decimal.Decimal{
			models.SideHome: dec(home),
			models.SideDraw: dec(draw),
			models.SideAway: dec(away),
		},
	}
}

func totalsQuote(bookmaker string, over, under float64) models.CompleteQuote {
	return models.CompleteQuote{
		Bookmaker: bookmaker,
		Prices: map[models.Side]decimal.Decimal{
			models.SideOver:  dec(over),
			models.SideUnder: dec(under),
		},
	}
}

// TestAggregate_H2HConsensus tests the primary-code assignment and statistics
// over two complete quotes
func TestAggregate_H2HConsensus(t *testing.T) {
	quotes := []models.CompleteQuote{
		h2hQuote("bet365", 1.50, 4.00, 6.00),
		h2hQuote("bwin", 1.60, 3.80, 5.50),
	}

	result := Aggregate(quotes, DefaultH2HChains, models.H2HSides)

	require.Contains(t, result.Assigned, "B365")
	require.Contains(t, result.Assigned, "BW")
	assert.True(t, result.Assigned["B365"].Prices[models.SideHome].Equal(dec(1.50)))
	assert.True(t, result.Assigned["BW"].Prices[models.SideHome].Equal(dec(1.60)))
	assert.Equal(t, "bet365", result.Provenance["B365"])
	assert.Equal(t, "bwin", result.Provenance["BW"])

	assert.True(t, result.Max[models.SideHome].Equal(dec(1.60)))
	assert.True(t, result.Avg[models.SideHome].Equal(dec(1.55)))
	assert.Equal(t, 2, result.Coverage)
}

// TestAggregate_SubstitutionProvenance tests the fallback chain when the
// preferred bookmaker is absent
func TestAggregate_SubstitutionProvenance(t *testing.T) {
	quotes := []models.CompleteQuote{
		h2hQuote("pinnacle", 1.40, 4.20, 7.00),
	}

	result := Aggregate(quotes, DefaultH2HChains, models.H2HSides)

	require.Contains(t, result.Assigned, "B365")
	assert.True(t, result.Assigned["B365"].Prices[models.SideHome].Equal(dec(1.40)))
	assert.Equal(t, "pinnacle", result.Provenance["B365"])
}

// TestAggregate_BookmakerFillsAtMostOneSlot tests that substitution never
// assigns the same bookmaker to two primary codes in one market
func TestAggregate_BookmakerFillsAtMostOneSlot(t *testing.T) {
	quotes := []models.CompleteQuote{
		h2hQuote("pinnacle", 1.40, 4.20, 7.00),
	}

	result := Aggregate(quotes, DefaultH2HChains, models.H2HSides)

	assert.Len(t, result.Assigned, 1)
	assert.NotContains(t, result.Assigned, "BW")
	assert.NotContains(t, result.Assigned, "PS")
}

// TestAggregate_FeedOrderFallback tests that bookmakers outside every fixed
// chain still fill empty slots in feed order
func TestAggregate_FeedOrderFallback(t *testing.T) {
	quotes := []models.CompleteQuote{
		h2hQuote("nordicbet", 1.45, 4.10, 6.50),
		h2hQuote("betsson", 1.48, 4.05, 6.20),
	}

	result := Aggregate(quotes, DefaultH2HChains, models.H2HSides)

	assert.Equal(t, "nordicbet", result.Provenance["B365"])
	assert.Equal(t, "betsson", result.Provenance["BW"])
	assert.NotContains(t, result.Assigned, "PS")
}

// TestAggregate_TotalsScenario tests the three-bookmaker totals consensus
func TestAggregate_TotalsScenario(t *testing.T) {
	quotes := []models.CompleteQuote{
		totalsQuote("bet365", 1.90, 1.95),
		totalsQuote("bwin", 1.85, 2.00),
		totalsQuote("pinnacle", 2.00, 1.80),
	}

	result := Aggregate(quotes, DefaultTotalsChains, models.TotalsSides)

	assert.True(t, result.Max[models.SideOver].Equal(dec(2.00)), "Max>2.5 = %s", result.Max[models.SideOver])
	assert.True(t, result.Avg[models.SideOver].Equal(dec(1.92)), "Avg>2.5 = %s", result.Avg[models.SideOver])
	assert.True(t, result.Max[models.SideUnder].Equal(dec(2.00)), "Max<2.5 = %s", result.Max[models.SideUnder])
	assert.True(t, result.Avg[models.SideUnder].Equal(dec(1.92)), "Avg<2.5 = %s", result.Avg[models.SideUnder])
	assert.Equal(t, 3, result.Coverage)
}

// TestAggregate_MaxAvgMinOrdering tests the Max >= Avg >= min invariant
func TestAggregate_MaxAvgMinOrdering(t *testing.T) {
	cases := [][]models.CompleteQuote{
		{h2hQuote("bet365", 1.50, 4.00, 6.00)},
		{h2hQuote("bet365", 1.50, 4.00, 6.00), h2hQuote("bwin", 1.60, 3.80, 5.50)},
		{
			h2hQuote("bet365", 2.10, 3.30, 3.60),
			h2hQuote("bwin", 2.05, 3.40, 3.55),
			h2hQuote("pinnacle", 2.15, 3.25, 3.70),
			h2hQuote("unibet_eu", 2.00, 3.50, 3.50),
		},
	}

	for _, quotes := range cases {
		result := Aggregate(quotes, DefaultH2HChains, models.H2HSides)
		for _, side := range models.H2HSides {
			min := quotes[0].Prices[side]
			for _, q := range quotes {
				if q.Prices[side].LessThan(min) {
					min = q.Prices[side]
				}
			}
			assert.True(t, result.Max[side].GreaterThanOrEqual(result.Avg[side]),
				"side %s: max %s < avg %s", side, result.Max[side], result.Avg[side])
			assert.True(t, result.Avg[side].GreaterThanOrEqual(min.Round(2).Sub(dec(0.01))),
				"side %s: avg %s < min %s", side, result.Avg[side], min)
		}
	}
}

// TestAggregate_EmptyQuotes tests degradation to defaults without error
func TestAggregate_EmptyQuotes(t *testing.T) {
	result := Aggregate(nil, DefaultH2HChains, models.H2HSides)

	assert.Empty(t, result.Assigned)
	assert.Empty(t, result.Provenance)
	assert.Equal(t, 0, result.Coverage)
	for _, side := range models.H2HSides {
		assert.True(t, result.Max[side].IsZero())
		assert.True(t, result.Avg[side].IsZero())
	}
}

// TestAggregate_Deterministic tests repeat-run stability
func TestAggregate_Deterministic(t *testing.T) {
	quotes := []models.CompleteQuote{
		h2hQuote("nordicbet", 1.45, 4.10, 6.50),
		h2hQuote("pinnacle", 1.40, 4.20, 7.00),
		h2hQuote("betsson", 1.48, 4.05, 6.20),
	}

	first := Aggregate(quotes, DefaultH2HChains, models.H2HSides)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Aggregate(quotes, DefaultH2HChains, models.H2HSides))
	}
}
