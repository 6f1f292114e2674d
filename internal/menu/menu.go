// Package menu implements the numbered selection prompts of the
// interactive CLI.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"hltvstats/internal/reference"
	"io"
	"strconv"
	"strings"
)

// ErrExit is returned when the user picks 0.
var ErrExit = errors.New("exit requested")

type scanResult struct {
	text string
	err  error
}

type Prompter struct {
	out     io.Writer
	scanner *bufio.Scanner
	// pending is the line currently being read in the background, it
	// outlives a canceled readLine so the next read picks it up.
	pending chan scanResult
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// readLine waits for the next line of input or for ctx to be done,
// whichever comes first.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if p.pending == nil {
		pending := make(chan scanResult, 1)
		p.pending = pending
		go func() {
			if p.scanner.Scan() {
				pending <- scanResult{text: p.scanner.Text()}
				return
			}
			err := p.scanner.Err()
			if err == nil {
				err = io.ErrUnexpectedEOF
			}
			pending <- scanResult{err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-p.pending:
		p.pending = nil
		return res.text, res.err
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// readChoice prompts until the input is a number from 0 to limit. 0 is
// ErrExit. Only plain digits are accepted, so "+1" and "-0" re-prompt.
func (p *Prompter) readChoice(ctx context.Context, prompt string, limit int, invalid string) (int, error) {
	for {
		fmt.Fprint(p.out, prompt)
		line, err := p.readLine(ctx)
		if err != nil {
			return 0, fmt.Errorf("read selection: %w", err)
		}

		line = strings.TrimSpace(line)
		if !isDigits(line) {
			fmt.Fprintln(p.out, invalid)
			continue
		}
		choice, err := strconv.Atoi(line)
		if err != nil || choice > limit {
			fmt.Fprintln(p.out, invalid)
			continue
		}
		if choice == 0 {
			return 0, ErrExit
		}
		return choice, nil
	}
}

func (p *Prompter) ShowTeams(teams []reference.Team) {
	fmt.Fprintln(p.out, "Please select a team: (enter team number)")
	for i, t := range teams {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, t.Name)
	}
	fmt.Fprintln(p.out, "\n0: Exit program")
}

// SelectTeams asks for a team and then for a different team to be its
// opponent.
func (p *Prompter) SelectTeams(ctx context.Context, teams []reference.Team) (team reference.Team, opponent reference.Team, err error) {
	if len(teams) < 2 {
		return team, opponent, fmt.Errorf("need at least 2 teams to select from, have %d", len(teams))
	}

	p.ShowTeams(teams)

	const invalid = "Please enter a valid team number."
	first, err := p.readChoice(ctx, "Team: ", len(teams), invalid)
	if err != nil {
		return team, opponent, err
	}
	for {
		second, err := p.readChoice(ctx, "Opponent: ", len(teams), invalid)
		if err != nil {
			return team, opponent, err
		}
		if second == first {
			fmt.Fprintln(p.out, "Please enter a non-duplicate team.")
			continue
		}
		return teams[first-1], teams[second-1], nil
	}
}

func (p *Prompter) ShowMaps(maps []string) {
	fmt.Fprintln(p.out, "Please select a map: (enter map number)")
	for i, m := range maps {
		fmt.Fprintf(p.out, "%d: %s\n", i+1, m)
	}
	fmt.Fprintf(p.out, "%d: %s\n", len(maps)+1, reference.AllMaps)
}

// SelectMap asks for a map, the entry after the last map is
// reference.AllMaps.
func (p *Prompter) SelectMap(ctx context.Context, maps []string) (string, error) {
	p.ShowMaps(maps)

	choice, err := p.readChoice(ctx, "Map: ", len(maps)+1, "Please enter a valid map number.")
	if err != nil {
		return "", err
	}
	if choice == len(maps)+1 {
		return reference.AllMaps, nil
	}
	return maps[choice-1], nil
}
