package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side labels one outcome of a market after quote extraction
type Side string

const (
	SideHome  Side = "home"
	SideDraw  Side = "draw"
	SideAway  Side = "away"
	SideOver  Side = "over"
	SideUnder Side = "under"
)

// H2HSides and TotalsSides list the required legs per market kind
var (
	H2HSides    = []Side{SideHome, SideDraw, SideAway}
	TotalsSides = []Side{SideOver, SideUnder}
)

// CompleteQuote is a bookmaker's quote for one market with every required
// leg present. Quotes missing any leg never become a CompleteQuote.
type CompleteQuote struct {
	Bookmaker string
	Prices    map[Side]decimal.Decimal
}

// ConsensusOddsRecord is the schema-stable output row for one resolved
// fixture. Every field is present in every record; fields with no bookmaker
// coverage stay at their zero value. JSON tags follow the column names the
// downstream dataset uses.
type ConsensusOddsRecord struct {
	ID       uuid.UUID `json:"id"`
	League   string    `json:"league"`
	Season   string    `json:"season,omitempty"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`

	// Raw provider spellings, kept for traceability
	ProviderHomeTeam string `json:"provider_home_team"`
	ProviderAwayTeam string `json:"provider_away_team"`

	EventID   string    `json:"event_id"`
	Kickoff   time.Time `json:"kickoff_utc"`
	Day       int       `json:"day"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	DayOfWeek string    `json:"day_of_week"`

	// Head-to-head named fields
	B365H decimal.Decimal `json:"B365H"`
	B365D decimal.Decimal `json:"B365D"`
	B365A decimal.Decimal `json:"B365A"`
	BWH   decimal.Decimal `json:"BWH"`
	BWD   decimal.Decimal `json:"BWD"`
	BWA   decimal.Decimal `json:"BWA"`
	PSH   decimal.Decimal `json:"PSH"`
	PSD   decimal.Decimal `json:"PSD"`
	PSA   decimal.Decimal `json:"PSA"`

	// Head-to-head consensus statistics
	MaxH decimal.Decimal `json:"MaxH"`
	MaxD decimal.Decimal `json:"MaxD"`
	MaxA decimal.Decimal `json:"MaxA"`
	AvgH decimal.Decimal `json:"AvgH"`
	AvgD decimal.Decimal `json:"AvgD"`
	AvgA decimal.Decimal `json:"AvgA"`

	// Totals (2.5 line) named fields and statistics
	B365Over   decimal.Decimal `json:"B365>2.5"`
	B365Under  decimal.Decimal `json:"B365<2.5"`
	PSOver     decimal.Decimal `json:"PS>2.5"`
	PSUnder    decimal.Decimal `json:"PS<2.5"`
	MaxOver    decimal.Decimal `json:"Max>2.5"`
	MaxUnder   decimal.Decimal `json:"Max<2.5"`
	AvgOver    decimal.Decimal `json:"Avg>2.5"`
	AvgUnder   decimal.Decimal `json:"Avg<2.5"`

	// Which bookmaker actually filled each named slot
	H2HProvenance    map[string]string `json:"h2h_provenance"`
	TotalsProvenance map[string]string `json:"totals_provenance"`

	// Number of bookmakers with complete quotes per market
	H2HCoverage    int `json:"h2h_coverage"`
	TotalsCoverage int `json:"totals_coverage"`

	AssembledAt time.Time `json:"assembled_at"`
}
