package htmlutil

import (
	"bytes"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// NormalizeText strips non-printable characters, trims the ends and
// collapses runs of whitespace (including non-breaking spaces) into a
// single space.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(removeNonPrintable(s)), " ")
}

// TextTokens returns the text nodes under `node` in document order,
// each normalized with NormalizeText. Text nodes that are empty after
// normalization (indentation between tags) are skipped, as is the
// content of script and style elements.
func TextTokens(node *html.Node) []string {
	var tokens []string
	collectTokens(node, &tokens)
	return tokens
}

func collectTokens(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	switch node.Type {
	case html.TextNode:
		text := NormalizeText(node.Data)
		if text != "" {
			*out = append(*out, text)
		}
		return
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectTokens(child, out)
	}
}

// Render serializes a node (and its children) back into markup.
func Render(node *html.Node) (string, error) {
	var buffer bytes.Buffer
	err := html.Render(&buffer, node)
	if err != nil {
		return "", err
	}
	return buffer.String(), nil
}
