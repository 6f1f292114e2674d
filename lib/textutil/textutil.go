package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeName lowercases a name and removes all whitespace so that
// "Natus Vincere" and "natus vincere " compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// CollapseFields rejoins the output of strings.Fields with single spaces.
func CollapseFields(fields []string) string {
	return strings.Join(fields, " ")
}
