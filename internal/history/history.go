// Package history holds the match history of a single team and the
// filtered views the statistics are computed over.
package history

import (
	"context"
	"hltvstats/internal/reference"
	"hltvstats/lib/scrapers/hltv"
	"log/slog"
	"slices"
)

// RecordFetcher is implemented by *hltv.Client.
type RecordFetcher interface {
	FetchRecords(ctx context.Context, teamId string) ([]hltv.MatchRecord, error)
}

// TeamHistory is the match history of one team, most recent match first.
// It is built once and never refreshed.
type TeamHistory struct {
	team    reference.Team
	records []hltv.MatchRecord
}

func New(team reference.Team, records []hltv.MatchRecord) TeamHistory {
	return TeamHistory{
		team:    team,
		records: slices.Clone(records),
	}
}

// Load fetches and builds the history of a team. Fetch and parse errors
// are returned unchanged.
func Load(ctx context.Context, fetcher RecordFetcher, team reference.Team) (TeamHistory, error) {
	records, err := fetcher.FetchRecords(ctx, team.Id)
	if err != nil {
		return TeamHistory{}, err
	}
	slog.DebugContext(ctx, "loaded team history", "team", team.Name, "matches", len(records))
	return New(team, records), nil
}

func (h TeamHistory) Team() reference.Team {
	return h.team
}

func (h TeamHistory) Len() int {
	return len(h.records)
}

// All returns every record in history order.
func (h TeamHistory) All() []hltv.MatchRecord {
	return slices.Clone(h.records)
}

// Latest returns the most recent match.
func (h TeamHistory) Latest() (hltv.MatchRecord, bool) {
	if len(h.records) == 0 {
		return hltv.MatchRecord{}, false
	}
	return h.records[0], true
}

// Query selects records by opponent and map. An empty field matches
// anything, as does Map == reference.AllMaps.
type Query struct {
	Opponent string
	Map      string
}

func (q Query) matches(r hltv.MatchRecord) bool {
	if q.Opponent != "" && r.Opponent != q.Opponent {
		return false
	}
	if q.Map != "" && q.Map != reference.AllMaps && r.Map != q.Map {
		return false
	}
	return true
}

// Filter returns the records matching the query, in history order.
func (h TeamHistory) Filter(q Query) []hltv.MatchRecord {
	var out []hltv.MatchRecord
	for _, r := range h.records {
		if q.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Opponents lists the distinct opponents, in order of their most recent
// match.
func (h TeamHistory) Opponents() []string {
	return distinct(h.records, func(r hltv.MatchRecord) string { return r.Opponent })
}

// Maps lists the distinct maps played, in order of their most recent
// match.
func (h TeamHistory) Maps() []string {
	return distinct(h.records, func(r hltv.MatchRecord) string { return r.Map })
}

func distinct(records []hltv.MatchRecord, key func(hltv.MatchRecord) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
