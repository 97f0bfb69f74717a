package titleparse

import (
	"regexp"
	"strings"

	"tubetag/internal/textutil"
)

// Quotes may be straight or curly; the connector is a dash, en dash or colon.
var (
	quotedTrackFirst  = regexp.MustCompile(`^["“”„](.+?)["“”]\s*[-–:]\s*(.+)$`)
	quotedTrackSecond = regexp.MustCompile(`^(.+?)\s*[-–:]\s*["“”„](.+)$`)

	quoteStripper = strings.NewReplacer(`"`, "", "“", "", "”", "", "„", "")
)

// matchQuoted recognizes `"Track" - Artist` and then `Artist - "Track"`.
func matchQuoted(title, _ string) attempt {
	if m := quotedTrackFirst.FindStringSubmatch(title); m != nil {
		if a, ok := quotedAttempt(m[2], m[1]); ok {
			return a
		}
	}
	if m := quotedTrackSecond.FindStringSubmatch(title); m != nil {
		if a, ok := quotedAttempt(m[1], m[2]); ok {
			return a
		}
	}
	return attempt{}
}

func quotedAttempt(artist, track string) (attempt, bool) {
	artist = strings.TrimSpace(artist)
	track = textutil.CollapseSpaces(quoteStripper.Replace(track))
	if artist == "" || track == "" {
		return attempt{}, false
	}
	return attempt{artist: artist, track: track, method: MethodQuoted}, true
}
