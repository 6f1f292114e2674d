// Package app wires the reference lists, the fetcher and the statistics
// together into the operations exposed by the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"hltvstats/internal/assert"
	"hltvstats/internal/history"
	"hltvstats/internal/menu"
	"hltvstats/internal/reference"
	"hltvstats/internal/report"
	"hltvstats/internal/stats"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("hltvstats/app")

type App struct {
	Fetcher history.RecordFetcher
	Teams   []reference.Team
	Maps    []string
}

func New(fetcher history.RecordFetcher, teams []reference.Team, maps []string) App {
	assert.NotNil(fetcher)
	assert.MinLen(teams, 2)
	for _, t := range teams {
		assert.NotEmptyStr(t.Id)
	}

	return App{
		Fetcher: fetcher,
		Teams:   teams,
		Maps:    maps,
	}
}

func (a App) loadHistory(ctx context.Context, team reference.Team) (history.TeamHistory, error) {
	ctx, span := tracer.Start(ctx, "app:loadHistory")
	defer span.End()
	span.SetAttributes(
		attribute.String("team", team.Name),
		attribute.String("team_id", team.Id),
	)

	h, err := history.Load(ctx, a.Fetcher, team)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to load team history")
		return history.TeamHistory{}, fmt.Errorf("load history of %s: %w", team.Name, err)
	}
	span.SetAttributes(attribute.Int("matches", h.Len()))
	return h, nil
}

// Interactive asks for a team, an opponent and a map and then prints the
// summary for that selection. Choosing 0 at any prompt returns nil without
// printing anything else.
func (a App) Interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	prompter := menu.NewPrompter(in, out)

	team, opponent, err := prompter.SelectTeams(ctx, a.Teams)
	if errors.Is(err, menu.ErrExit) {
		fmt.Fprintln(out, "Exiting hltvstats...")
		return nil
	}
	if err != nil {
		return err
	}

	h, err := a.loadHistory(ctx, team)
	if err != nil {
		return err
	}

	mapName, err := prompter.SelectMap(ctx, a.Maps)
	if errors.Is(err, menu.ErrExit) {
		fmt.Fprintln(out, "Exiting hltvstats...")
		return nil
	}
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "selection", "team", team.Name, "opponent", opponent.Name, "map", mapName)
	report.Summary(out, stats.Summarize(h, opponent.Name, mapName))
	return nil
}

// Compare prints the summary for a selection given by name, team and
// opponent are looked up with reference.FindTeam.
func (a App) Compare(ctx context.Context, out io.Writer, teamQuery, opponentQuery, mapQuery string) error {
	team, err := reference.FindTeam(a.Teams, teamQuery)
	if err != nil {
		return err
	}
	opponent, err := reference.FindTeam(a.Teams, opponentQuery)
	if err != nil {
		return err
	}
	if team == opponent {
		return fmt.Errorf("team and opponent are both %s", team.Name)
	}

	mapName := reference.AllMaps
	if mapQuery != "" {
		var ok bool
		mapName, ok = reference.FindMap(a.Maps, mapQuery)
		if !ok {
			return fmt.Errorf("unknown map %q", mapQuery)
		}
	}

	h, err := a.loadHistory(ctx, team)
	if err != nil {
		return err
	}

	report.Summary(out, stats.Summarize(h, opponent.Name, mapName))
	return nil
}

// History prints the whole match history of a team.
func (a App) History(ctx context.Context, out io.Writer, teamQuery string) error {
	team, err := reference.FindTeam(a.Teams, teamQuery)
	if err != nil {
		return err
	}
	h, err := a.loadHistory(ctx, team)
	if err != nil {
		return err
	}
	report.History(out, h)
	return nil
}

// ListTeams prints the team reference list.
func (a App) ListTeams(out io.Writer) {
	report.Teams(out, a.Teams)
}
