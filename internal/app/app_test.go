package app

import (
	"bytes"
	"context"
	"errors"
	"hltvstats/internal/reference"
	"hltvstats/lib/scrapers/hltv"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	records map[string][]hltv.MatchRecord
	err     error
	calls   []string
}

func (f *fakeFetcher) FetchRecords(_ context.Context, teamId string) ([]hltv.MatchRecord, error) {
	f.calls = append(f.calls, teamId)
	if f.err != nil {
		return nil, f.err
	}
	return f.records[teamId], nil
}

func record(opponent, mapName, result string) hltv.MatchRecord {
	return hltv.MatchRecord{
		Date:     "1/2/19",
		Team:     "Astralis",
		Opponent: opponent,
		Score:    "16-10",
		Map:      mapName,
		Event:    "BLAST Pro",
		Result:   result,
	}
}

func testApp() (App, *fakeFetcher) {
	fetcher := &fakeFetcher{
		records: map[string][]hltv.MatchRecord{
			"6665": {
				record("Natus Vincere", "Inferno", "W"),
				record("Natus Vincere", "Inferno", "L"),
				record("FaZe", "Nuke", "W"),
			},
		},
	}
	return App{
		Fetcher: fetcher,
		Teams: []reference.Team{
			{Name: "Astralis", Id: "6665"},
			{Name: "Natus Vincere", Id: "4608"},
			{Name: "FaZe", Id: "6667"},
		},
		Maps: []string{"Inferno", "Nuke"},
	}, fetcher
}

func TestInteractive(t *testing.T) {
	a, fetcher := testApp()

	var out bytes.Buffer
	err := a.Interactive(context.Background(), strings.NewReader("1\n2\n1\n"), &out)
	require.NoError(t, err)
	require.Equal(t, []string{"6665"}, fetcher.calls)

	rendered := out.String()
	require.Contains(t, rendered, "Against Natus Vincere: 1W-1L (50%)\n")
	require.Contains(t, rendered, "Inferno: 1W-1L (50%)\n")
	require.Contains(t, rendered, "Against Natus Vincere on Inferno: 1W-1L (50%)\n")
}

func TestInteractiveExit(t *testing.T) {
	a, fetcher := testApp()

	var out bytes.Buffer
	err := a.Interactive(context.Background(), strings.NewReader("0\n"), &out)
	require.NoError(t, err)
	require.Empty(t, fetcher.calls)
	require.Contains(t, out.String(), "Exiting")

	out.Reset()
	err = a.Interactive(context.Background(), strings.NewReader("1\n2\n0\n"), &out)
	require.NoError(t, err)
	require.NotContains(t, out.String(), "Against")
}

func TestInteractiveNoHistory(t *testing.T) {
	a, _ := testApp()

	var out bytes.Buffer
	err := a.Interactive(context.Background(), strings.NewReader("3\n1\n3\n"), &out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "Against Astralis: no matches found\n")
	require.Contains(t, out.String(), "ALL: no matches found\n")
}

func TestInteractiveErrors(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "fetch error",
			err:  &hltv.FetchError{TeamId: "6665", StatusCode: 503, Err: errors.New("unavailable")},
			check: func(t *testing.T, err error) {
				var fetchErr *hltv.FetchError
				require.ErrorAs(t, err, &fetchErr)
			},
		},
		{
			name: "parse error",
			err:  &hltv.ParseError{Reason: "expected 6 tokens, got 5"},
			check: func(t *testing.T, err error) {
				var parseErr *hltv.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			a, fetcher := testApp()
			fetcher.err = test.err

			var out bytes.Buffer
			err := a.Interactive(context.Background(), strings.NewReader("1\n2\n1\n"), &out)
			test.check(t, err)
			require.NotContains(t, out.String(), "Against")
		})
	}
}

func TestCompare(t *testing.T) {
	a, _ := testApp()

	var out bytes.Buffer
	err := a.Compare(context.Background(), &out, "astralis", "natus vincere", "inferno")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Against Natus Vincere on Inferno: 1W-1L (50%)\n")

	out.Reset()
	err = a.Compare(context.Background(), &out, "Astralis", "FaZe", "")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Against FaZe on ALL: 1W-0L (100%)\n")

	err = a.Compare(context.Background(), &out, "Astralis", "Astralis", "")
	require.Error(t, err)

	err = a.Compare(context.Background(), &out, "Astralis", "FaZe", "Dust2")
	require.ErrorContains(t, err, "unknown map")

	err = a.Compare(context.Background(), &out, "Vitality", "FaZe", "")
	require.ErrorIs(t, err, reference.ErrTeamNotFound)
}

func TestHistory(t *testing.T) {
	a, _ := testApp()

	var out bytes.Buffer
	err := a.History(context.Background(), &out, "Astralis")
	require.NoError(t, err)
	require.Contains(t, out.String(), "Astralis (6665): 2W-1L (67%)")

	out.Reset()
	a.ListTeams(&out)
	require.Contains(t, out.String(), "FaZe")
}

func TestNew(t *testing.T) {
	a, fetcher := testApp()
	created := New(fetcher, a.Teams, a.Maps)
	require.Equal(t, a.Teams, created.Teams)

	require.Panics(t, func() { New(nil, a.Teams, a.Maps) })
	require.Panics(t, func() { New(fetcher, a.Teams[:1], a.Maps) })

	var typedNil *fakeFetcher
	require.Panics(t, func() { New(typedNil, a.Teams, a.Maps) })

	noId := []reference.Team{{Name: "Astralis", Id: "6665"}, {Name: "FaZe"}}
	require.Panics(t, func() { New(fetcher, noId, a.Maps) })
}

func TestInteractiveCanceled(t *testing.T) {
	a, fetcher := testApp()
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Interactive(ctx, in, io.Discard)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, fetcher.calls)
}
