package titleparse

import (
	"strings"

	"tubetag/internal/textutil"
)

const (
	maxMusicTitleRunes = 100
	maxMusicTitleWords = 10
)

var (
	nonMusicTags = []string{
		"podcast", "interview", "trailer", "reaction", "review", "documentary",
		"episode", "vlog", "stand-up", "gameplay", "let's play", "shorts",
	}
	musicSignals = []string{
		"music video", "official video", "official audio", "lyric video", "official track",
	}

	apostropheFolder = strings.NewReplacer("’", "'", "‘", "'")
)

// isLongTitle measures the normalized title with every parenthetical removed.
func isLongTitle(normalized string) bool {
	bare := textutil.CollapseSpaces(removeGroups(normalized, anyGroup))
	return textutil.RuneLen(bare) > maxMusicTitleRunes || textutil.WordCount(bare) > maxMusicTitleWords
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// applyNonMusicFilter vetoes a successful parse of a long title that reads
// like talk or video content and carries no music marker. Artist and track
// are left as computed.
func applyNonMusicFilter(m *Metadata, normalized string) bool {
	if !m.Parsed || !isLongTitle(normalized) {
		return false
	}
	lower := apostropheFolder.Replace(strings.ToLower(m.OriginalTitle))
	if !containsAny(lower, nonMusicTags) || containsAny(lower, musicSignals) {
		return false
	}
	m.Parsed = false
	m.Method = MethodFilteredNonMusic
	m.Confidence = ConfidenceFor(MethodFilteredNonMusic)
	return true
}
