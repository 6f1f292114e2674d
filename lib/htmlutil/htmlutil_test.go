package htmlutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t testing.TB, markup string) *html.Node {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestTextTokens(t *testing.T) {
	testCases := []struct {
		markup   string
		expected []string
	}{
		{
			markup: `<div>
				<span>1/2/19</span>
				<a href="/team/1">Astralis   16</a>
			</div>`,
			expected: []string{"1/2/19", "Astralis 16"},
		},
		{
			markup:   `<div><b>a</b>b<i>c<u>d</u></i></div>`,
			expected: []string{"a", "b", "c", "d"},
		},
		{
			markup:   `<div><script>var x = 1;</script><style>.a{}</style>text</div>`,
			expected: []string{"text"},
		},
		{
			markup:   `<div>   </div>`,
			expected: nil,
		},
	}

	for _, test := range testCases {
		tokens := TextTokens(parseFragment(t, test.markup))
		if diff := cmp.Diff(test.expected, tokens); diff != "" {
			t.Fatalf("tokens for %q (-want +got):\n%s", test.markup, diff)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	require.Equal(t, "Ninjas in Pyjamas 2", NormalizeText("\n\tNinjas  in  Pyjamas   2 \n"))
	require.Equal(t, "", NormalizeText(" \t\n"))
	require.Equal(t, "ab", NormalizeText("a\u200bb"))
	require.Equal(t, "Dust 2", NormalizeText("Dust\u00a0 2"))
	require.Equal(t, "Natus Vincere", NormalizeText("\u00a0Natus\u00a0\u00a0Vincere\u00a0"))
}

func TestRender(t *testing.T) {
	doc := parseFragment(t, `<div id="a">x</div>`)
	rendered, err := Render(doc)
	require.NoError(t, err)
	require.Contains(t, rendered, `<div id="a">x</div>`)
}
