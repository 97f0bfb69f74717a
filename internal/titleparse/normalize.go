package titleparse

import (
	"regexp"
	"strings"

	"tubetag/internal/textutil"
)

var (
	bracketReplacer = strings.NewReplacer("[", "(", "{", "(", "]", ")", "}", ")")

	hashtagPattern     = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
	trackNumberPattern = regexp.MustCompile(`^\d{1,3}(?:\s*-\s+|\.\s+)`)
	outNowPattern      = regexp.MustCompile(`(?i)\s*[-–—|:~]?\s*\bout now\b[\s!.]*$`)
	trailingSeparators = regexp.MustCompile(`[\s\-–—|:~]+$`)

	// promoGroupPattern marks a parenthetical as decoration when any keyword
	// appears in it as a whole word.
	promoGroupPattern = regexp.MustCompile(`(?i)\b(?:official|music video|audio|visualizer|hd|hq|4k|8k|uhd|upgrade|mv|lyrics?|lyric video)\b`)
)

// Normalize returns the cleaned working copy of a title that every matching
// stage operates on. Steps run in a fixed order: emoji removal, whitespace
// collapse, bracket unification, hashtag removal, leading track number
// removal, trailing "out now" removal, then removal of promotional
// parentheticals. Parentheticals that are not promotional survive verbatim.
func Normalize(title string) string {
	s := textutil.StripPictographs(textutil.ToNFC(title))
	s = textutil.CollapseSpaces(s)
	s = bracketReplacer.Replace(s)
	s = hashtagPattern.ReplaceAllString(s, "")
	s = textutil.CollapseSpaces(s)
	s = trackNumberPattern.ReplaceAllString(s, "")
	s = outNowPattern.ReplaceAllString(s, "")
	s = removeGroups(s, isPromoGroup)
	s = textutil.CollapseSpaces(s)
	return trailingSeparators.ReplaceAllString(s, "")
}

// StripEmoji is the only cleanup the channel name receives before matching.
func StripEmoji(channel string) string {
	return textutil.StripPictographs(textutil.ToNFC(channel))
}

func isPromoGroup(inner string) bool {
	return promoGroupPattern.MatchString(inner)
}

func anyGroup(string) bool { return true }

// removeGroups drops every top-level parenthetical whose inner text satisfies
// drop. Nested groups travel with their parent. An unclosed group is kept.
func removeGroups(s string, drop func(inner string) bool) string {
	if !strings.ContainsRune(s, '(') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	depth, start, last := 0, 0, 0
	for i, r := range s {
		switch r {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && drop(s[start+1:i]) {
				b.WriteString(s[last:start])
				last = i + 1
			}
		}
	}
	b.WriteString(s[last:])
	return b.String()
}
