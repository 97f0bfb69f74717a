package textutil

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// pictographs approximates the Extended_Pictographic property plus the
// emoji-only helpers (regional indicators, tags, keycap, presentation
// selector). Go's unicode tables do not expose the emoji properties.
var pictographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00a9, Hi: 0x00a9, Stride: 1},
		{Lo: 0x00ae, Hi: 0x00ae, Stride: 1},
		{Lo: 0x203c, Hi: 0x203c, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x20e3, Hi: 0x20e3, Stride: 1},
		{Lo: 0x2122, Hi: 0x2122, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x21aa, Stride: 1},
		{Lo: 0x231a, Hi: 0x23ff, Stride: 1},
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1},
		{Lo: 0x25aa, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3299, Stride: 1},
		{Lo: 0xfe0f, Hi: 0xfe0f, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f000, Hi: 0x1faff, Stride: 1},
		{Lo: 0xe0020, Hi: 0xe007f, Stride: 1},
	},
}

// IsPictograph reports whether r is an emoji or pictographic code point.
func IsPictograph(r rune) bool {
	return unicode.Is(pictographs, r)
}

// StripPictographs removes every grapheme cluster that contains a pictographic
// code point. Working on whole clusters drops ZWJ sequences, skin tone
// modifiers, flags and keycaps together with their base character.
// Whitespace is left untouched.
func StripPictographs(s string) string {
	if !strings.ContainsFunc(s, IsPictograph) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		if strings.ContainsFunc(cluster, IsPictograph) {
			continue
		}
		b.WriteString(cluster)
	}
	return b.String()
}
