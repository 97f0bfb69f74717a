package titleparse

import (
	"regexp"
	"strings"

	"tubetag/internal/textutil"
)

var (
	topicSuffixPattern   = regexp.MustCompile(`(?i)\s*-\s*topic$`)
	channelSuffixPattern = regexp.MustCompile(`(?i)[\s\-_.|]*(?:vevo|official|music|channel|videos|tv)$`)
	leadingThePattern    = regexp.MustCompile(`(?i)^the\s+`)
	camelBoundaryPattern = regexp.MustCompile(`(\p{Ll})(\p{Lu})`)
	channelNoisePattern  = regexp.MustCompile(`official|music|channel|videos|tv`)
)

// matchChannelFallback names the channel as artist and keeps the whole
// normalized title as the track. A channel that yields no artist is no match.
func matchChannelFallback(title, channel string) attempt {
	artist := artistFromChannel(channel)
	if artist == "" {
		// Unlike a named channel, an empty one is not reported as
		// fallback:channel; the title stays unparsed.
		return attempt{}
	}
	return attempt{artist: artist, track: title, method: MethodChannelFallback}
}

// artistFromChannel derives a display artist from a channel name:
// "RickAstleyVEVO" becomes "Rick Astley", "The Weeknd" becomes "Weeknd".
// When stripping leaves nothing the trimmed channel is returned as is.
func artistFromChannel(channel string) string {
	raw := textutil.CollapseSpaces(channel)
	if raw == "" {
		return ""
	}
	name := topicSuffixPattern.ReplaceAllString(raw, "")
	for {
		stripped := channelSuffixPattern.ReplaceAllString(name, "")
		if stripped == name {
			break
		}
		name = stripped
	}
	name = leadingThePattern.ReplaceAllString(strings.TrimSpace(name), "")
	name = camelBoundaryPattern.ReplaceAllString(name, "$1 $2")
	name = textutil.CollapseSpaces(name)
	if name == "" {
		return raw
	}
	return name
}

// channelKey is the comparison form used by the channel override: lowercase
// alphanumerics with the usual channel decorations removed.
func channelKey(channel string) string {
	return channelNoisePattern.ReplaceAllString(textutil.AlnumLower(channel), "")
}

// applyChannelOverride replaces the artist of a low confidence result with
// the channel name when the channel literally appears in the title but not
// yet in the artist.
func applyChannelOverride(m *Metadata) bool {
	if m.Confidence != ConfidenceLow {
		return false
	}
	key := channelKey(m.OriginalChannel)
	if key == "" {
		return false
	}
	if !strings.Contains(strings.ToLower(m.OriginalTitle), key) {
		return false
	}
	if strings.Contains(strings.ToLower(m.Artist), key) {
		return false
	}
	m.Artist = m.OriginalChannel
	m.Parsed = true
	m.Method = MethodChannelMatch
	m.Confidence = ConfidenceFor(MethodChannelMatch)
	return true
}
