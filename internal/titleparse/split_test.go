package titleparse

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		delimiter Delimiter
		want      []string
	}{
		{"spaced dash", "Rick Astley - Never Gonna Give You Up", dashDelimiter, []string{"Rick Astley", "Never Gonna Give You Up"}},
		{"dash inside parentheses", "Song (A - B)", dashDelimiter, []string{"Song (A - B)"}},
		{"dash inside nested brackets", "Song [A (B) - C]", dashDelimiter, []string{"Song [A (B) - C]"}},
		{"dash inside unclosed group", "Song (A - B", dashDelimiter, []string{"Song (A - B"}},
		{"stray closing bracket", "Song) - Artist", dashDelimiter, []string{"Song)", "Artist"}},
		{"hyphenated name alone", "Jean-Luc", dashDelimiter, []string{"Jean-Luc"}},
		{"hyphenated name then split", "Jean-Luc Ponty - Song", dashDelimiter, []string{"Jean-Luc Ponty", "Song"}},
		{"single letter name", "Jay-Z - Song", dashDelimiter, []string{"Jay-Z", "Song"}},
		{"two hyphenated names", "A-B - C-D", dashDelimiter, []string{"A-B", "C-D"}},
		{"lowercase compound is eligible", "artist-track", dashDelimiter, []string{"artist", "track"}},
		{"spaced beats unspaced", "Anti-hero - Taylor", dashDelimiter, []string{"Anti-hero", "Taylor"}},
		{"one side spaced beats none", "pre-fix -Suffix", dashDelimiter, []string{"pre-fix", "Suffix"}},
		{"colon", "Artist: Track", colonDelimiter, []string{"Artist", "Track"}},
		{"by", "Shape of You by Ed Sheeran", byDelimiter, []string{"Shape of You", "Ed Sheeran"}},
		{"by case insensitive", "Lovely BY Billie Eilish", byDelimiter, []string{"Lovely", "Billie Eilish"}},
		{"by needs spaces", "Abby Road", byDelimiter, []string{"Abby Road"}},
		{"en dash", "Radiohead – Creep", enDashDelimiter, []string{"Radiohead", "Creep"}},
		{"pipe", "Daft Punk | Get Lucky", pipeDelimiter, []string{"Daft Punk", "Get Lucky"}},
		{"em dash", "Nirvana — Smells Like Teen Spirit", emDashDelimiter, []string{"Nirvana", "Smells Like Teen Spirit"}},
		{"no delimiter", "Wonderwall", dashDelimiter, []string{"Wonderwall"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.delimiter)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("Split(%q, %s) = %q, want %q", tt.text, tt.delimiter.Name, got, tt.want)
			}
		})
	}
}

func TestIsHyphenatedName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"first names", "Jean-Luc", true},
		{"accented capital", "Émile-Zola", true},
		{"lowercase right", "Jean-luc", false},
		{"lowercase left", "jean-Luc", false},
		{"space before", "Jean -Luc", false},
		{"space after", "Jean- Luc", false},
		{"long token", "Supercalifragilistic-Song", false},
		{"bracket before", "(Live)-Remix", false},
		{"leading dash", "-Luc", false},
		{"trailing dash", "Jean-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := strings.Index(tt.text, "-")
			if got := isHyphenatedName(tt.text, idx, idx+1); got != tt.want {
				t.Errorf("isHyphenatedName(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBracketDepths(t *testing.T) {
	text := "a (b [c] d) e) f"
	offsets := []int{0, 3, 6, 9, 12, 15}
	want := []int{0, 1, 2, 1, 0, 0}
	got := bracketDepths(text, offsets)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("depth at %d = %d, want %d", offsets[i], got[i], want[i])
		}
	}
}

func TestDelimiterOrder(t *testing.T) {
	want := []string{"dash", "colon", "by", "en-dash", "pipe", "em-dash"}
	got := Delimiters()
	if len(got) != len(want) {
		t.Fatalf("Delimiters() len = %d, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Name != want[i] {
			t.Errorf("Delimiters()[%d] = %q, want %q", i, d.Name, want[i])
		}
	}
	if _, ok := DelimiterByName("pipe"); !ok {
		t.Error("DelimiterByName(pipe) not found")
	}
	if _, ok := DelimiterByName("tilde"); ok {
		t.Error("DelimiterByName(tilde) unexpectedly found")
	}
}

func TestSplitDeeplyNestedInputIsLinear(t *testing.T) {
	text := strings.Repeat("(", 5000) + " - " + strings.Repeat(")", 5000) + " - tail"
	got := Split(text, dashDelimiter)
	if len(got) != 2 || got[1] != "tail" {
		t.Fatalf("Split() on nested input returned %d parts, tail %q", len(got), got[len(got)-1])
	}
}
