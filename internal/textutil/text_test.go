package textutil

import "testing"

func TestStripPictographs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no emoji", "Rick Astley - Never Gonna Give You Up", "Rick Astley - Never Gonna Give You Up"},
		{"single emoji", "Song 🔥 Title", "Song  Title"},
		{"zwj family", "A👨‍👩‍👧B", "AB"},
		{"skin tone", "Wave👋🏽 Hello", "Wave Hello"},
		{"flag", "🇺🇸 Anthem", " Anthem"},
		{"keycap", "Top 1️⃣ Hit", "Top  Hit"},
		{"heart with selector", "Love ❤️ Song", "Love  Song"},
		{"accents preserved", "ROSALÍA", "ROSALÍA"},
		{"combining mark preserved", "Beyonce\u0301", "Beyonce\u0301"},
		{"cjk preserved", "米津玄師 - Lemon", "米津玄師 - Lemon"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripPictographs(tt.input); got != tt.want {
				t.Errorf("StripPictographs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Oasis   -   Wonderwall  ", "Oasis - Wonderwall"},
		{"tab\tand\nnewline", "tab and newline"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CollapseSpaces(tt.input); got != tt.want {
			t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestAlnumLower(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"RickAstleyVEVO", "rickastleyvevo"},
		{"Ed Sheeran", "edsheeran"},
		{"AC/DC", "acdc"},
		{"ROSALÍA", "rosala"},
		{"50 Cent", "50cent"},
		{"米津玄師", ""},
	}
	for _, tt := range tests {
		if got := AlnumLower(tt.input); got != tt.want {
			t.Errorf("AlnumLower(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestToNFC(t *testing.T) {
	decomposed := "Beyonce\u0301"
	if got := ToNFC(decomposed); got != "Beyonc\u00e9" {
		t.Fatalf("ToNFC(%q) = %q, want composed form", decomposed, got)
	}
	if got := ToNFC("bad\xffbyte"); got != "badbyte" {
		t.Fatalf("ToNFC repaired = %q, want %q", got, "badbyte")
	}
}

func TestWordCountAndRuneLen(t *testing.T) {
	if got := WordCount("  one two   three "); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
	if got := RuneLen("héllo"); got != 5 {
		t.Errorf("RuneLen = %d, want 5", got)
	}
}
