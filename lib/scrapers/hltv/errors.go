package hltv

import (
	"fmt"
	"strings"
)

// FetchError is returned when the match history page for a team could not
// be retrieved: transport failures, timeouts, non-2xx responses and empty
// bodies.
type FetchError struct {
	TeamId string
	// StatusCode is 0 when no response was received.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("hltv: fetch matches for team %q: status %d: %v", e.TeamId, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("hltv: fetch matches for team %q: %v", e.TeamId, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a match section does not decompose into a
// complete match record.
type ParseError struct {
	Reason string
	Tokens []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"hltv: parse match: %s (tokens: [%s])",
		e.Reason,
		strings.Join(quoteAll(e.Tokens), ", "),
	)
}

func quoteAll(tokens []string) []string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return quoted
}
