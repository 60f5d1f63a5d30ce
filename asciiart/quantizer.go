package asciiart

import "image/color"

// BT.709 weights scaled by 10000 so that they sum to exactly 10000 and pure white lands exactly on 1.0
const (
	lumWeightR = 2126
	lumWeightG = 7152
	lumWeightB = 722

	lumScale = (lumWeightR + lumWeightG + lumWeightB) * 255
)

func weightedLuminance(c color.NRGBA) int {
	return lumWeightR*int(c.R) + lumWeightG*int(c.G) + lumWeightB*int(c.B)
}

/*
Luminance returns the ITU-R BT.709 relative luminance of c normalized to [0, 1]:

	L = (0.2126 * R + 0.7152 * G + 0.0722 * B) / 255

The alpha channel is ignored.
*/
func Luminance(c color.NRGBA) float64 {
	l := float64(weightedLuminance(c)) / lumScale

	return min(1, max(0, l))
}

/*
GlyphIndex maps the luminance of c onto an index into a ramp of n glyphs:

	i = floor(L * (n - 1))

If invert is set, the index is mirrored to (n - 1) - i. The result is always in [0, n - 1]. n must be at least 1.
*/
func GlyphIndex(c color.NRGBA, n int, invert bool) int {
	// Integer division floors exactly, which avoids 0.9999... for pure white
	i := weightedLuminance(c) * (n - 1) / lumScale
	i = min(n-1, max(0, i))

	if invert {
		i = (n - 1) - i
	}

	return i
}

// Quantize returns the glyph from glyphs that represents the brightness of c. glyphs must not be empty.
func Quantize(c color.NRGBA, glyphs []rune, invert bool) rune {
	return glyphs[GlyphIndex(c, len(glyphs), invert)]
}
