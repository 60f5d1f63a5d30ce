package asciiart

import (
	"strings"
	"unicode/utf8"
)

/*
AssembleGrid concatenates each row of glyphs and joins the rows with '\n'. The last row is also followed by '\n', so an n row grid contains exactly n newlines.

The result buffer is sized up front from the exact UTF-8 length of every glyph, so the builder never reallocates.
*/
func AssembleGrid(glyphs [][]rune) string {
	size := len(glyphs) // one byte per row for the new line
	for _, row := range glyphs {
		for _, g := range row {
			size += utf8.RuneLen(g)
		}
	}

	var asciiBuilder strings.Builder
	asciiBuilder.Grow(size)

	for _, row := range glyphs {
		for _, g := range row {
			asciiBuilder.WriteRune(g)
		}
		asciiBuilder.WriteByte('\n')
	}

	return asciiBuilder.String()
}
