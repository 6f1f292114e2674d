// Package report renders statistics and match histories for the terminal.
package report

import (
	"fmt"
	"hltvstats/internal/history"
	"hltvstats/internal/reference"
	"hltvstats/internal/stats"
	"hltvstats/lib/scrapers/hltv"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Records renders matches as a table, one row per match in the given
// order.
func Records(w io.Writer, records []hltv.MatchRecord) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Date", "Team", "Score", "Opponent", "Map", "Event", "Result"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Date, r.Team, r.Score, r.Opponent, r.Map, r.Event, r.Result})
	}
	t.Render()
}

// Summary writes the opponent, map and opponent-on-map ratios followed by
// the individual matches against the opponent on the map.
func Summary(w io.Writer, s stats.Summary) {
	fmt.Fprintf(w, "Against %s: %s\n", s.Opponent, s.AgainstOpponent)
	fmt.Fprintf(w, "%s: %s\n", s.Map, s.OnMap)
	fmt.Fprintf(w, "Against %s on %s: %s\n", s.Opponent, s.Map, s.AgainstOpponentOnMap)

	if len(s.Results) == 0 {
		fmt.Fprintf(w, "Individual results: %s\n", stats.NoMatches)
		return
	}
	fmt.Fprintln(w, "Individual results:")
	Records(w, s.Results)
}

// History writes a team's whole match history and its overall ratio.
func History(w io.Writer, h history.TeamHistory) {
	all := h.All()
	fmt.Fprintf(w, "%s (%s): %s\n", h.Team().Name, h.Team().Id, stats.Compute(all))

	latest, ok := h.Latest()
	if !ok {
		return
	}
	fmt.Fprintf(w, "Latest: %s\n", latest)
	Records(w, all)
}

// Teams renders the team reference list with the numbers the interactive
// menu uses.
func Teams(w io.Writer, teams []reference.Team) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Team", "Id"})
	for i, team := range teams {
		t.AppendRow(table.Row{i + 1, team.Name, team.Id})
	}
	t.Render()
}
