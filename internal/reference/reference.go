// Package reference reads the team and map lists the CLI offers for
// selection.
package reference

import (
	"bufio"
	"errors"
	"fmt"
	"hltvstats/lib/textutil"
	"io"
	"os"
	"strings"

	"github.com/antzucaro/matchr"
)

// AllMaps is the map selection meaning "any map". It is reserved and
// never the name of a real map.
const AllMaps = "ALL"

// minimum Jaro-Winkler similarity for FindTeam to accept a fuzzy match
const findTeamThreshold = 0.85

var ErrTeamNotFound = errors.New("team not found")

type Team struct {
	Name string
	// Id is the upstream team id, it is passed through as-is.
	Id string
}

// ParseTeams reads one team per line in the form "<name> <id>", where the
// name may contain spaces and the id is the last whitespace separated
// field. Blank lines are skipped.
func ParseTeams(r io.Reader) ([]Team, error) {
	var teams []Team
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected \"<name> <id>\", got %q", lineNo, scanner.Text())
		}
		teams = append(teams, Team{
			Name: textutil.CollapseFields(fields[:len(fields)-1]),
			Id:   fields[len(fields)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}

// ParseMaps reads one map name per line, blank lines are skipped.
func ParseMaps(r io.Reader) ([]string, error) {
	var maps []string
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		if name == AllMaps {
			return nil, fmt.Errorf("line %d: %q is reserved", lineNo, AllMaps)
		}
		maps = append(maps, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return maps, nil
}

func LoadTeams(path string) ([]Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	teams, err := ParseTeams(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return teams, nil
}

func LoadMaps(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	maps, err := ParseMaps(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return maps, nil
}

// FindTeam looks a team up by name or id. Names are compared normalized
// (case and whitespace insensitive), if nothing matches exactly the most
// similar name is used as long as it is similar enough.
func FindTeam(teams []Team, query string) (Team, error) {
	normalized := textutil.NormalizeName(query)
	if normalized == "" {
		return Team{}, fmt.Errorf("%w: empty query", ErrTeamNotFound)
	}

	for _, t := range teams {
		if textutil.NormalizeName(t.Name) == normalized || t.Id == query {
			return t, nil
		}
	}

	var best Team
	var bestSimilarity float64
	for _, t := range teams {
		similarity := matchr.JaroWinkler(textutil.NormalizeName(t.Name), normalized, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = t
		}
	}
	if bestSimilarity < findTeamThreshold {
		return Team{}, fmt.Errorf("%w: %q", ErrTeamNotFound, query)
	}
	return best, nil
}

// FindMap returns the canonical spelling of a map name, matched case
// insensitively. AllMaps is always accepted.
func FindMap(maps []string, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if strings.EqualFold(query, AllMaps) {
		return AllMaps, true
	}
	for _, m := range maps {
		if strings.EqualFold(m, query) {
			return m, true
		}
	}
	return "", false
}
