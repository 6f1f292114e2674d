package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{name: "Natus Vincere", expected: "natusvincere"},
		{name: "  Team   Liquid\n", expected: "teamliquid"},
		{name: "G2", expected: "g2"},
		{name: "", expected: ""},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, NormalizeName(test.name))
	}
}

func TestCollapseFields(t *testing.T) {
	require.Equal(t, "Ninjas in Pyjamas", CollapseFields([]string{"Ninjas", "in", "Pyjamas"}))
	require.Equal(t, "", CollapseFields(nil))
}
