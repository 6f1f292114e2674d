// Package stats computes win/loss ratios over a team's match history.
package stats

import (
	"fmt"
	"hltvstats/internal/history"
	"hltvstats/lib/scrapers/hltv"
)

// NoMatches is how an empty Ratio renders.
const NoMatches = "no matches found"

// Ratio is the win/loss split of a set of matches. Every match is either a
// win or a loss, so Wins + Losses is always the number of matches.
type Ratio struct {
	Wins   int
	Losses int
}

func Compute(records []hltv.MatchRecord) Ratio {
	var r Ratio
	for _, record := range records {
		if record.Won() {
			r.Wins++
		} else {
			r.Losses++
		}
	}
	return r
}

func (r Ratio) Total() int {
	return r.Wins + r.Losses
}

// Percentage is the share of matches won, from 0 to 100. There is no
// percentage for an empty sample, ok is false in that case.
func (r Ratio) Percentage() (percentage float64, ok bool) {
	if r.Total() == 0 {
		return 0, false
	}
	return 100 * float64(r.Wins) / float64(r.Total()), true
}

// String renders the ratio as "7W-3L (70%)".
func (r Ratio) String() string {
	percentage, ok := r.Percentage()
	if !ok {
		return NoMatches
	}
	return fmt.Sprintf("%dW-%dL (%.0f%%)", r.Wins, r.Losses, percentage)
}

// AgainstOpponent is the ratio against one opponent on any map.
func AgainstOpponent(h history.TeamHistory, opponent string) Ratio {
	return Compute(h.Filter(history.Query{Opponent: opponent}))
}

// OnMap is the ratio on one map against any opponent.
func OnMap(h history.TeamHistory, mapName string) Ratio {
	return Compute(h.Filter(history.Query{Map: mapName}))
}

// AgainstOpponentOnMap is the ratio against one opponent on one map.
func AgainstOpponentOnMap(h history.TeamHistory, opponent, mapName string) Ratio {
	return Compute(h.Filter(history.Query{Opponent: opponent, Map: mapName}))
}

// IndividualResults returns the matches behind AgainstOpponentOnMap.
func IndividualResults(h history.TeamHistory, opponent, mapName string) []hltv.MatchRecord {
	return h.Filter(history.Query{Opponent: opponent, Map: mapName})
}

// Summary bundles the three ratios and the individual results for one
// team/opponent/map selection.
type Summary struct {
	Team     string
	Opponent string
	Map      string

	AgainstOpponent      Ratio
	OnMap                Ratio
	AgainstOpponentOnMap Ratio
	Results              []hltv.MatchRecord
}

func Summarize(h history.TeamHistory, opponent, mapName string) Summary {
	return Summary{
		Team:                 h.Team().Name,
		Opponent:             opponent,
		Map:                  mapName,
		AgainstOpponent:      AgainstOpponent(h, opponent),
		OnMap:                OnMap(h, mapName),
		AgainstOpponentOnMap: AgainstOpponentOnMap(h, opponent, mapName),
		Results:              IndividualResults(h, opponent, mapName),
	}
}
