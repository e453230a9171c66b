// Package mpath implements the materialized path codec and path algebra:
// turning display names into path segments and composing, expanding and
// comparing delimiter-joined paths.
package mpath

import (
	"regexp"
	"strings"
)

var (
	nonWordPattern = regexp.MustCompile(`[^a-z0-9_]+`)
	quoteReplacer  = strings.NewReplacer(`'`, "", `"`, "")
	asciiReplacer  = strings.NewReplacer(asciiTable()...)
)

// foldGroups lists the Latin-1 letters folded by Asciify, keyed by replacement.
var foldGroups = []struct {
	to   string
	from string
}{
	{"A", "ÀÁÂÃÄÅ"},
	{"a", "àáâãäå"},
	{"E", "ÈÉÊË"},
	{"e", "èéêë"},
	{"I", "ÌÍÎÏ"},
	{"i", "ìíîï"},
	{"O", "ÒÓÔÕÖØ"},
	{"o", "òóôõöø"},
	{"U", "ÙÚÛÜ"},
	{"u", "ùúûü"},
	{"Y", "Ý"},
	{"y", "ýÿ"},
	{"N", "Ñ"},
	{"n", "ñ"},
	{"C", "Ç"},
	{"c", "ç"},
	{"AE", "Æ"},
	{"ae", "æ"},
	{"ss", "ß"},
	{"D", "Ð"},
}

func asciiTable() []string {
	var pairs []string
	for _, g := range foldGroups {
		for _, r := range g.from {
			pairs = append(pairs, string(r), g.to)
		}
	}
	return pairs
}

// Asciify replaces accented Latin letters with their closest unaccented
// equivalent. Characters outside the substitution table pass through.
func Asciify(value string) string {
	if value == "" {
		return ""
	}
	return asciiReplacer.Replace(value)
}

// Unquote removes single and double quote characters.
func Unquote(value string) string {
	if value == "" {
		return ""
	}
	return quoteReplacer.Replace(value)
}

// Pathify translates a display value into a path segment: lower case ASCII
// words separated by single dashes, with no leading or trailing dash.
// A value without any letters or digits yields "".
func Pathify(value string) string {
	if value == "" {
		return ""
	}
	s := strings.Map(asciiLower, strings.TrimSpace(Asciify(Unquote(value))))
	s = nonWordPattern.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// asciiLower folds A-Z only. Other letters are left for nonWordPattern.
func asciiLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
