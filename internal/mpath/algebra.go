package mpath

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter separates path segments.
type Delimiter string

// DefaultDelimiter is used when a collection does not configure one.
const DefaultDelimiter Delimiter = "."

// ParseDelimiter validates a configured delimiter. It must be a single
// character that Pathify can never produce inside a segment, and not "%".
func ParseDelimiter(value string) (Delimiter, error) {
	if value == "" {
		return DefaultDelimiter, nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return "", fmt.Errorf("path delimiter must be a single character, got %q", value)
	}
	r, _ := utf8.DecodeRuneInString(value)
	if isSegmentRune(r) {
		return "", fmt.Errorf("path delimiter %q collides with segment characters", value)
	}
	if r == '%' {
		return "", fmt.Errorf("path delimiter %q is reserved for URL escapes", value)
	}
	return Delimiter(value), nil
}

func isSegmentRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}

func (d Delimiter) String() string {
	return string(d)
}

// Compose joins a parent path and a segment. An empty parent path means the
// segment is a root and is returned as is.
func Compose(parentPath, segment string, d Delimiter) string {
	if parentPath == "" {
		return segment
	}
	return parentPath + string(d) + segment
}

// Expand returns every ancestor prefix of path followed by path itself,
// root first: Expand("a.b.c", ".") == ["a", "a.b", "a.b.c"].
func Expand(path string, d Delimiter) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, string(d))
	expanded := make([]string, 0, len(parts))
	for _, part := range parts {
		if len(expanded) == 0 {
			expanded = append(expanded, part)
			continue
		}
		expanded = append(expanded, expanded[len(expanded)-1]+string(d)+part)
	}
	return expanded
}

// IsDescendant reports whether candidate lies strictly below ancestor.
func IsDescendant(candidate, ancestor string, d Delimiter) bool {
	if ancestor == "" {
		return false
	}
	return strings.HasPrefix(candidate, ancestor+string(d))
}

// Parent returns the path one level up, or "" and false for a root path.
func Parent(path string, d Delimiter) (string, bool) {
	i := strings.LastIndex(path, string(d))
	if i < 0 {
		return "", false
	}
	return path[:i], true
}

// Compare orders paths segment by segment, so every path sorts directly
// before its own descendants. Plain byte order breaks that when a sibling
// segment extends another with a byte below the delimiter ("a.b-c" < "a.b.x").
// Among siblings the result matches byte order.
func Compare(a, b string, d Delimiter) int {
	for {
		segA, restA, moreA := strings.Cut(a, string(d))
		segB, restB, moreB := strings.Cut(b, string(d))
		if c := strings.Compare(segA, segB); c != 0 {
			return c
		}
		switch {
		case !moreA && !moreB:
			return 0
		case !moreA:
			return -1
		case !moreB:
			return 1
		}
		a, b = restA, restB
	}
}
