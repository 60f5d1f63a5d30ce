package asciiart

import "math"

// Dimensions is the planned size of the output grid in glyphs.
type Dimensions struct {
	Columns int
	Rows    int
}

/*
PlanDimensions computes the output grid size for a srcWidth x srcHeight image.

targetWidth is clamped to maxWidth first (when maxWidth > 0), and becomes the column count. The row count follows the source aspect ratio, scaled by cellAspect:

	rows = max(1, floor(srcHeight / srcWidth * columns * cellAspect))

The clamp bounds columns only. Rows grow with srcHeight / srcWidth, so a very tall, narrow source (1x4000 at 500 columns plans 1,100,000 rows) can still produce a huge grid. Callers that accept arbitrary images should check the plan first (see (*AsciiConverter).Plan()) and refuse it if it is too large.

PlanDimensions assumes srcWidth, srcHeight and targetWidth are positive. Convert() checks this before calling it.
*/
func PlanDimensions(srcWidth, srcHeight, targetWidth, maxWidth int, cellAspect float64) Dimensions {
	columns := targetWidth
	if maxWidth > 0 && columns > maxWidth {
		columns = maxWidth
	}

	ratio := float64(srcHeight) / float64(srcWidth)
	rows := int(math.Floor(ratio * float64(columns) * cellAspect))

	return Dimensions{
		Columns: columns,
		Rows:    max(1, rows),
	}
}
