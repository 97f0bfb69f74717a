package titleparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxNameTokenLen bounds the words around a dash that still read as one
// hyphenated name ("Jean-Luc", "Jay-Z").
const maxNameTokenLen = 15

// Delimiter is one separator the ordered pattern splitter tries.
type Delimiter struct {
	Name     string
	pattern  *regexp.Regexp
	dashLike bool
}

var (
	dashDelimiter   = Delimiter{Name: "dash", pattern: regexp.MustCompile(`-`), dashLike: true}
	colonDelimiter  = Delimiter{Name: "colon", pattern: regexp.MustCompile(`:`)}
	byDelimiter     = Delimiter{Name: "by", pattern: regexp.MustCompile(`(?i)\sby\s`)}
	enDashDelimiter = Delimiter{Name: "en-dash", pattern: regexp.MustCompile(`–`), dashLike: true}
	pipeDelimiter   = Delimiter{Name: "pipe", pattern: regexp.MustCompile(`\|`)}
	emDashDelimiter = Delimiter{Name: "em-dash", pattern: regexp.MustCompile(`—`), dashLike: true}

	delimiterOrder = []Delimiter{
		dashDelimiter,
		colonDelimiter,
		byDelimiter,
		enDashDelimiter,
		pipeDelimiter,
		emDashDelimiter,
	}
)

// Delimiters returns the delimiters in the order the pattern stage tries them.
func Delimiters() []Delimiter {
	out := make([]Delimiter, len(delimiterOrder))
	copy(out, delimiterOrder)
	return out
}

// DelimiterByName looks up a delimiter by its method name (e.g. "dash").
func DelimiterByName(name string) (Delimiter, bool) {
	for _, d := range delimiterOrder {
		if d.Name == name {
			return d, true
		}
	}
	return Delimiter{}, false
}

type splitCandidate struct {
	start, end  int
	spacedLeft  bool
	spacedRight bool
}

// Split cuts text in two at the best occurrence of d that sits outside every
// bracket pair. Dash-like delimiters joining a hyphenated name are skipped.
// Among the remaining candidates the first one with whitespace on both sides
// wins, then the first with whitespace on one side, then the first overall.
// Both halves are trimmed. When no candidate qualifies the text is returned
// unsplit as a single element.
func Split(text string, d Delimiter) []string {
	if d.pattern == nil {
		return []string{text}
	}
	matches := d.pattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []string{text}
	}
	starts := make([]int, len(matches))
	for i, m := range matches {
		starts[i] = m[0]
	}
	depths := bracketDepths(text, starts)

	eligible := make([]splitCandidate, 0, len(matches))
	for i, m := range matches {
		if depths[i] != 0 {
			continue
		}
		if d.dashLike && isHyphenatedName(text, m[0], m[1]) {
			continue
		}
		eligible = append(eligible, newSplitCandidate(text, m[0], m[1]))
	}
	best, ok := pickCandidate(eligible)
	if !ok {
		return []string{text}
	}
	return []string{
		strings.TrimSpace(text[:best.start]),
		strings.TrimSpace(text[best.end:]),
	}
}

func pickCandidate(candidates []splitCandidate) (splitCandidate, bool) {
	for _, c := range candidates {
		if c.spacedLeft && c.spacedRight {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.spacedLeft || c.spacedRight {
			return c, true
		}
	}
	if len(candidates) > 0 {
		return candidates[0], true
	}
	return splitCandidate{}, false
}

func newSplitCandidate(text string, start, end int) splitCandidate {
	c := splitCandidate{start: start, end: end}
	first, _ := utf8.DecodeRuneInString(text[start:end])
	lastInMatch, _ := utf8.DecodeLastRuneInString(text[start:end])
	c.spacedLeft = unicode.IsSpace(first)
	c.spacedRight = unicode.IsSpace(lastInMatch)
	if start > 0 {
		before, _ := utf8.DecodeLastRuneInString(text[:start])
		c.spacedLeft = c.spacedLeft || unicode.IsSpace(before)
	}
	if end < len(text) {
		after, _ := utf8.DecodeRuneInString(text[end:])
		c.spacedRight = c.spacedRight || unicode.IsSpace(after)
	}
	return c
}

// bracketDepths returns the bracket nesting depth in front of each byte
// offset. offsets must be ascending. Depth never drops below zero, so a stray
// closing bracket does not hide later delimiters.
func bracketDepths(text string, offsets []int) []int {
	out := make([]int, len(offsets))
	depth, next := 0, 0
	for i, r := range text {
		for next < len(offsets) && offsets[next] <= i {
			out[next] = depth
			next++
		}
		if next == len(offsets) {
			return out
		}
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth > 0 {
				depth--
			}
		}
	}
	for ; next < len(offsets); next++ {
		out[next] = depth
	}
	return out
}

// isHyphenatedName reports whether the dash at text[start:end] joins two
// capitalised words of at most maxNameTokenLen runes with no whitespace on
// either side, as in "Jean-Luc". Such dashes are part of a name, not a split
// point.
func isHyphenatedName(text string, start, end int) bool {
	if start <= 0 || end >= len(text) {
		return false
	}
	before, _ := utf8.DecodeLastRuneInString(text[:start])
	after, _ := utf8.DecodeRuneInString(text[end:])
	if unicode.IsSpace(before) || unicode.IsSpace(after) {
		return false
	}
	return isNameToken(wordBefore(text[:start])) && isNameToken(wordAfter(text[end:]))
}

func isNameToken(word string) bool {
	if word == "" || utf8.RuneCountInString(word) > maxNameTokenLen {
		return false
	}
	first, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(first)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'' || r == '’'
}

func wordBefore(s string) string {
	i := len(s)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !isWordRune(r) {
			break
		}
		i -= size
	}
	return s[i:]
}

func wordAfter(s string) string {
	for i, r := range s {
		if !isWordRune(r) {
			return s[:i]
		}
	}
	return s
}
