package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketKey identifies a provider market type
type MarketKey string

const (
	// MarketH2H is the head-to-head 1X2 market (home win / draw / away win)
	MarketH2H MarketKey = "h2h"
	// MarketTotals is the over/under goals market at a fixed line
	MarketTotals MarketKey = "totals"
)

// TotalsLine is the fixed goal line extracted from totals markets
var TotalsLine = decimal.NewFromFloat(2.5)

// FeedOutcome is one priced outcome inside a provider market
type FeedOutcome struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Point decimal.Decimal `json:"point,omitempty"`
}

// FeedMarket is one market (h2h or totals) quoted by a bookmaker
type FeedMarket struct {
	Key      MarketKey     `json:"key"`
	Outcomes []FeedOutcome `json:"outcomes"`
}

// BookmakerQuote holds all markets one bookmaker quotes for an event
type BookmakerQuote struct {
	Key     string       `json:"key"`
	Title   string       `json:"title,omitempty"`
	Markets []FeedMarket `json:"markets"`
}

// FeedEvent is a single upcoming fixture as delivered by the odds provider.
// Immutable once fetched; team names are the provider's raw spellings.
type FeedEvent struct {
	ID           string           `json:"id"`
	SportKey     string           `json:"sport_key"`
	HomeTeam     string           `json:"home_team"`
	AwayTeam     string           `json:"away_team"`
	CommenceTime time.Time        `json:"commence_time"`
	Bookmakers   []BookmakerQuote `json:"bookmakers"`
}

// Market returns the named market from a bookmaker's quote. If the feed
// carries duplicates for the same (bookmaker, market) pair the last one wins.
func (b *BookmakerQuote) Market(key MarketKey) (FeedMarket, bool) {
	var found FeedMarket
	var ok bool
	for _, m := range b.Markets {
		if m.Key == key {
			found = m
			ok = true
		}
	}
	return found, ok
}

// FeedSnapshot is one immutable fetch of a league's feed, shared by every
// resolution request served from it until it ages out of the cache.
type FeedSnapshot struct {
	League    string      `json:"league"`
	SportKey  string      `json:"sport_key"`
	FetchedAt time.Time   `json:"fetched_at"`
	Events    []FeedEvent `json:"events"`
}
