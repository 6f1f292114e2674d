package hltv

import (
	"fmt"
	"hltvstats/lib/htmlutil"
	"strings"

	"golang.org/x/net/html"
)

// ResultWin is the only outcome code counted as a win, every other code
// (including draws, if upstream ever reports them) is a loss.
const ResultWin = "W"

// MatchTokenCount is the number of text tokens in a match section.
const MatchTokenCount = 6

const (
	tokenDate = iota
	tokenTeam
	tokenOpponent
	tokenMap
	tokenEvent
	tokenResult
)

// MatchRecord is one completed match from a team's history. Records are
// plain values, nothing modifies one after BuildRecord returns it.
type MatchRecord struct {
	// Date is kept exactly as upstream displays it (ex. "1/2/19").
	Date     string
	Team     string
	Opponent string
	// Score is "<team rounds>-<opponent rounds>".
	Score  string
	Map    string
	Event  string
	Result string
}

func (r MatchRecord) Won() bool {
	return r.Result == ResultWin
}

// Tokens reverses BuildRecordFromTokens, returning the six tokens the
// record was built from.
func (r MatchRecord) Tokens() []string {
	teamRounds, opponentRounds, _ := strings.Cut(r.Score, "-")
	return []string{
		r.Date,
		r.Team + " " + teamRounds,
		r.Opponent + " " + opponentRounds,
		r.Map,
		r.Event,
		r.Result,
	}
}

func (r MatchRecord) String() string {
	return fmt.Sprintf(
		"%s %s %s %s on %s (%s) %s",
		r.Date, r.Team, r.Score, r.Opponent, r.Map, r.Event, r.Result,
	)
}

// RawMatchNode is a single match section of the history page, not yet
// interpreted.
type RawMatchNode struct {
	Node *html.Node
}

// Tokens returns the section's non-empty text in document order.
func (n RawMatchNode) Tokens() []string {
	return htmlutil.TextTokens(n.Node)
}

// HTML reserializes the section.
func (n RawMatchNode) HTML() (string, error) {
	return htmlutil.Render(n.Node)
}

// BuildRecord extracts the text tokens of a match section and builds a
// record out of them.
func BuildRecord(node RawMatchNode) (MatchRecord, error) {
	return BuildRecordFromTokens(node.Tokens())
}

// BuildRecordFromTokens builds a record from the positional tokens
// [date, "team rounds", "opponent rounds", map, event, result].
// Anything other than exactly six non-empty tokens is a *ParseError.
func BuildRecordFromTokens(tokens []string) (MatchRecord, error) {
	if len(tokens) != MatchTokenCount {
		return MatchRecord{}, &ParseError{
			Reason: fmt.Sprintf("expected %d tokens, got %d", MatchTokenCount, len(tokens)),
			Tokens: tokens,
		}
	}
	for i, t := range tokens {
		if strings.TrimSpace(t) == "" {
			return MatchRecord{}, &ParseError{
				Reason: fmt.Sprintf("token %d is empty", i),
				Tokens: tokens,
			}
		}
	}

	team, teamRounds, err := SplitNameRounds(tokens[tokenTeam])
	if err != nil {
		return MatchRecord{}, err
	}
	opponent, opponentRounds, err := SplitNameRounds(tokens[tokenOpponent])
	if err != nil {
		return MatchRecord{}, err
	}

	return MatchRecord{
		Date:     tokens[tokenDate],
		Team:     team,
		Opponent: opponent,
		Score:    teamRounds + "-" + opponentRounds,
		Map:      tokens[tokenMap],
		Event:    tokens[tokenEvent],
		Result:   tokens[tokenResult],
	}, nil
}
