package consensus

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/consensus-odds-service/internal/models"
)

// Fixture carries the resolved identity of the match being assembled
type Fixture struct {
	League          string
	HomeTeam        string // canonical home club name
	AwayTeam        string // canonical away club name
	SeasonStartYear int
}

// Assemble merges resolver and aggregator output into the fixed-schema
// consensus record. Pure: no network, no I/O. Every schema field is present
// in every record; fields without coverage keep their zero value.
func Assemble(event *models.FeedEvent, fixture Fixture, h2h, totals AggregateResult) models.ConsensusOddsRecord {
	kickoff := event.CommenceTime.UTC()

	record := models.ConsensusOddsRecord{
		ID:               uuid.New(),
		League:           fixture.League,
		HomeTeam:         fixture.HomeTeam,
		AwayTeam:         fixture.AwayTeam,
		ProviderHomeTeam: event.HomeTeam,
		ProviderAwayTeam: event.AwayTeam,
		EventID:          event.ID,
		Kickoff:          kickoff,
		Day:              kickoff.Day(),
		Month:            int(kickoff.Month()),
		Year:             kickoff.Year(),
		DayOfWeek:        kickoff.Weekday().String(),

		B365H: assignedPrice(h2h, "B365", models.SideHome),
		B365D: assignedPrice(h2h, "B365", models.SideDraw),
		B365A: assignedPrice(h2h, "B365", models.SideAway),
		BWH:   assignedPrice(h2h, "BW", models.SideHome),
		BWD:   assignedPrice(h2h, "BW", models.SideDraw),
		BWA:   assignedPrice(h2h, "BW", models.SideAway),
		PSH:   assignedPrice(h2h, "PS", models.SideHome),
		PSD:   assignedPrice(h2h, "PS", models.SideDraw),
		PSA:   assignedPrice(h2h, "PS", models.SideAway),

		MaxH: statOrZero(h2h.Max, models.SideHome),
		MaxD: statOrZero(h2h.Max, models.SideDraw),
		MaxA: statOrZero(h2h.Max, models.SideAway),
		AvgH: statOrZero(h2h.Avg, models.SideHome),
		AvgD: statOrZero(h2h.Avg, models.SideDraw),
		AvgA: statOrZero(h2h.Avg, models.SideAway),

		B365Over:  assignedPrice(totals, "B365", models.SideOver),
		B365Under: assignedPrice(totals, "B365", models.SideUnder),
		PSOver:    assignedPrice(totals, "PS", models.SideOver),
		PSUnder:   assignedPrice(totals, "PS", models.SideUnder),
		MaxOver:   statOrZero(totals.Max, models.SideOver),
		MaxUnder:  statOrZero(totals.Max, models.SideUnder),
		AvgOver:   statOrZero(totals.Avg, models.SideOver),
		AvgUnder:  statOrZero(totals.Avg, models.SideUnder),

		H2HProvenance:    copyProvenance(h2h.Provenance),
		TotalsProvenance: copyProvenance(totals.Provenance),
		H2HCoverage:      h2h.Coverage,
		TotalsCoverage:   totals.Coverage,

		AssembledAt: time.Now().UTC(),
	}

	if fixture.SeasonStartYear > 0 {
		record.Season = fmt.Sprintf("%d/%d", fixture.SeasonStartYear, fixture.SeasonStartYear+1)
	}

	return record
}

func assignedPrice(result AggregateResult, code string, side models.Side) decimal.Decimal {
	quote, ok := result.Assigned[code]
	if !ok {
		return decimal.Zero
	}
	return quote.Prices[side]
}

func statOrZero(stats map[models.Side]decimal.Decimal, side models.Side) decimal.Decimal {
	if price, ok := stats[side]; ok {
		return price
	}
	return decimal.Zero
}

// copyProvenance keeps the record self-contained and always non-nil
func copyProvenance(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for code, bookmaker := range src {
		out[code] = bookmaker
	}
	return out
}
