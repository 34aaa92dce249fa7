package naming

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalClub is the canonical identity of a club within a league
type CanonicalClub struct {
	League string
	Name   string
}

var diacriticsStripper = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw club-name string: diacritics stripped,
// lowercased, every non-alphanumeric character removed. Pure and idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	folded, _, err := transform.String(diacriticsStripper, raw)
	if err != nil {
		folded = raw
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Registry holds the immutable alias reference data, built once at startup
// and safe for unsynchronized concurrent reads.
type Registry struct {
	aliases   map[string]map[string]string // league -> normalized alias -> canonical name
	overrides map[string]map[string]string // checked before aliases, per league
	spellings map[CanonicalClub][]string   // canonical club -> known normalized spellings
	rosters   map[string][]string          // league -> canonical club names
	sportKeys map[string]string            // league -> provider sport key
}

// NewRegistry builds the registry from the packaged reference tables
func NewRegistry() *Registry {
	r := &Registry{
		aliases:   make(map[string]map[string]string, len(leagueAliases)),
		overrides: make(map[string]map[string]string, len(leagueOverrides)),
		spellings: make(map[CanonicalClub][]string),
		rosters:   make(map[string][]string, len(leagueAliases)),
		sportKeys: make(map[string]string, len(leagueSportKeys)),
	}

	for league, key := range leagueSportKeys {
		r.sportKeys[league] = key
	}

	for league, table := range leagueAliases {
		byAlias := make(map[string]string, len(table))
		seen := make(map[string]bool)
		for alias, canonical := range table {
			byAlias[Normalize(alias)] = canonical
			club := CanonicalClub{League: league, Name: canonical}
			r.spellings[club] = append(r.spellings[club], Normalize(alias))
			if !seen[canonical] {
				seen[canonical] = true
				r.rosters[league] = append(r.rosters[league], canonical)
			}
		}
		r.aliases[league] = byAlias
		sort.Strings(r.rosters[league])
	}

	for league, table := range leagueOverrides {
		byAlias := make(map[string]string, len(table))
		for alias, canonical := range table {
			byAlias[Normalize(alias)] = canonical
			club := CanonicalClub{League: league, Name: canonical}
			r.spellings[club] = append(r.spellings[club], Normalize(alias))
		}
		r.overrides[league] = byAlias
	}

	// Every canonical name resolves to itself
	for league, roster := range r.rosters {
		for _, name := range roster {
			normalized := Normalize(name)
			if _, ok := r.aliases[league][normalized]; !ok {
				r.aliases[league][normalized] = name
			}
			club := CanonicalClub{League: league, Name: name}
			r.spellings[club] = append(r.spellings[club], normalized)
		}
	}

	for club, spellings := range r.spellings {
		r.spellings[club] = dedupe(spellings)
	}

	return r
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// ResolveAlias maps a raw club-name spelling to its canonical club. The
// league-scoped override table is consulted before the general alias table so
// known provider mismatches cannot be masked by generic normalization.
func (r *Registry) ResolveAlias(raw, league string) (CanonicalClub, bool) {
	normalized := Normalize(raw)
	if normalized == "" {
		return CanonicalClub{}, false
	}

	if table, ok := r.overrides[league]; ok {
		if canonical, ok := table[normalized]; ok {
			return CanonicalClub{League: league, Name: canonical}, true
		}
	}
	if table, ok := r.aliases[league]; ok {
		if canonical, ok := table[normalized]; ok {
			return CanonicalClub{League: league, Name: canonical}, true
		}
	}
	return CanonicalClub{}, false
}

// Spellings returns every known normalized spelling of a club, the canonical
// name included. Used by the fuzzy resolution tier.
func (r *Registry) Spellings(club CanonicalClub) []string {
	return r.spellings[club]
}

// SportKey maps a league name to the provider's sport key
func (r *Registry) SportKey(league string) (string, bool) {
	key, ok := r.sportKeys[league]
	return key, ok
}

// Leagues lists the supported league names, sorted
func (r *Registry) Leagues() []string {
	leagues := make([]string, 0, len(r.sportKeys))
	for league := range r.sportKeys {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)
	return leagues
}

// Roster lists the canonical club names of a league, sorted
func (r *Registry) Roster(league string) []string {
	return r.rosters[league]
}
