package hltv

import (
	"fmt"
	"hltvstats/lib/textutil"
	"strings"
)

// SplitNameRounds splits a "<name> <rounds>" token into its name and rounds
// won. The last whitespace separated field is the rounds count and every
// field before it, joined with single spaces, is the name. The rounds
// field is passed through as displayed (ex. "16" or "(16)"); only a token
// with fewer than two fields is a *ParseError.
//
// A name that itself ends in a number is ambiguous: "Team 7 16" yields
// name "Team 7", but a token with the score missing like "Team 7" yields
// name "Team" and 7 rounds. This is a known limitation of the upstream
// layout and is not guessed around.
func SplitNameRounds(token string) (name string, rounds string, err error) {
	fields := strings.Fields(token)
	if len(fields) < 2 {
		return "", "", &ParseError{
			Reason: fmt.Sprintf("expected \"<name> <rounds>\", got %q", token),
			Tokens: []string{token},
		}
	}

	rounds = fields[len(fields)-1]
	return textutil.CollapseFields(fields[:len(fields)-1]), rounds, nil
}
