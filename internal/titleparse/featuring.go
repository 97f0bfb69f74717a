package titleparse

import (
	"regexp"
	"strings"

	"tubetag/internal/textutil"
)

// featuringPattern captures a guest credit with an optional surrounding
// parenthesis. The clause ends at the next bracket or the end of the text;
// extractFeaturing widens a parenthesised clause to its closing bracket.
var featuringPattern = regexp.MustCompile(`(?i)\(?\s*\b(?:feat\.|ft\.|featuring\b)\s*([^()]+)\)?`)

// extractFeaturing removes the first featuring clause from s and returns the
// remaining text and the clause. ok is false when s carries no usable clause.
func extractFeaturing(s string) (rest, clause string, ok bool) {
	loc := featuringPattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, "", false
	}
	start, end, clauseEnd := loc[0], loc[1], loc[3]
	if s[start] == '(' {
		if closing := matchingParen(s, start); closing > 0 {
			clauseEnd, end = closing, closing+1
		}
	}
	clause = strings.TrimSpace(s[loc[2]:clauseEnd])
	if clause == "" {
		return s, "", false
	}
	rest = textutil.CollapseSpaces(s[:start] + " " + s[end:])
	return rest, clause, true
}

// matchingParen returns the index of the ')' that closes the '(' at open, or
// -1 when the text is unbalanced.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// applyFeaturing pulls at most one featuring clause out of the result. The
// artist is checked first; the track only when the artist has none.
func applyFeaturing(m *Metadata) bool {
	if rest, clause, ok := extractFeaturing(m.Artist); ok {
		m.Artist = rest
		m.Featuring = &clause
		return true
	}
	if rest, clause, ok := extractFeaturing(m.Track); ok {
		m.Track = rest
		m.Featuring = &clause
		return true
	}
	return false
}
