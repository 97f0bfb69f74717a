package titleparse

import (
	"regexp"
	"strings"

	"tubetag/internal/textutil"
)

// trackTags are substrings that mark a span as the track side of a split.
var trackTags = []string{"remix", "bootleg", "edit", "mix", "version", "audio", "official", "lyrics", "feat"}

var parenGroupPattern = regexp.MustCompile(`\([^()]*\)`)

// matchPattern splits the title on the first delimiter (in delimiterOrder)
// that yields two non-empty halves and decides which half is the artist.
func matchPattern(title, channel string) attempt {
	for _, d := range delimiterOrder {
		parts := Split(title, d)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		artist, track := classifyParts(d, parts[0], parts[1], channel)
		return attempt{artist: artist, track: track, method: PatternMethod(d.Name)}
	}
	return attempt{}
}

// classifyParts assigns artist and track roles to the two halves of a split.
// "Track by Artist" is fixed. Otherwise a single track-looking half is the
// track, then a single half that restates the channel is the artist, and
// finally the left half is taken as the artist.
func classifyParts(d Delimiter, first, second, channel string) (artist, track string) {
	if d.Name == byDelimiter.Name {
		return second, first
	}

	firstTrack, secondTrack := looksLikeTrack(first), looksLikeTrack(second)
	switch {
	case firstTrack && !secondTrack:
		return second, first
	case secondTrack && !firstTrack:
		return first, second
	}

	firstChannel, secondChannel := isSimilarToChannel(first, channel), isSimilarToChannel(second, channel)
	switch {
	case firstChannel && !secondChannel:
		return first, second
	case secondChannel && !firstChannel:
		return second, first
	}

	return first, second
}

func looksLikeTrack(part string) bool {
	lower := strings.ToLower(part)
	for _, tag := range trackTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return parenGroupPattern.MatchString(part)
}

// isSimilarToChannel reports whether the part, reduced to lowercase
// alphanumerics, contains the equally reduced channel name. The direction is
// one way: a part shorter than the channel never matches.
func isSimilarToChannel(part, channel string) bool {
	key := textutil.AlnumLower(channel)
	if key == "" {
		return false
	}
	return strings.Contains(textutil.AlnumLower(part), key)
}
