package testutil

import (
	"fmt"
	"hltvstats/lib/scrapers/hltv"
	"math/rand"
	"strconv"
)

// RandomSwitch returns a function that will output various integers at different weights.
//
// Ex. RandomSwitch(2, 3, 5) will return a function that will output:
//   - `0` 20% of the time
//   - `1` 30% of the time
//   - `2` 50% of the time
func RandomSwitch(weights ...int) func(rndm *rand.Rand) int {
	if len(weights) == 0 {
		panic("a random switch must have at least 1 probability")
	}

	var sum int
	for _, p := range weights {
		if p <= 0 {
			panic("weights must be positive")
		}
		sum += p
	}

	return func(rndm *rand.Rand) int {
		value := rndm.Intn(sum)

		threshold := 0
		for i := 0; i < len(weights); i++ {
			threshold += weights[i]
			if value < threshold {
				return i
			}
		}

		panic(fmt.Sprintf("random value generated was out of bounds: %d", value))
	}
}

// RandomString generates a random lowercase string given the pseudo random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range length {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}

var resultSwitch = RandomSwitch(5, 4, 1)
var results = []string{"W", "L", "T"}

// RandomRecord generates a match against one of the given opponents on one
// of the given maps. Results are weighted towards W and L with the
// occasional unknown code.
func RandomRecord(rndm *rand.Rand, opponents, maps []string) hltv.MatchRecord {
	teamRounds := rndm.Intn(17)
	opponentRounds := rndm.Intn(17)
	return hltv.MatchRecord{
		Date:     fmt.Sprintf("%d/%d/%02d", rndm.Intn(28)+1, rndm.Intn(12)+1, rndm.Intn(20)),
		Team:     "Team " + RandomString(rndm, 6),
		Opponent: opponents[rndm.Intn(len(opponents))],
		Score:    strconv.Itoa(teamRounds) + "-" + strconv.Itoa(opponentRounds),
		Map:      maps[rndm.Intn(len(maps))],
		Event:    RandomString(rndm, 10),
		Result:   results[resultSwitch(rndm)],
	}
}
