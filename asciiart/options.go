package asciiart

/*
WithCellAspectFactor specifies the correction applied to the row count. Monospace glyphs are usually about twice as tall as they are wide, so the default (0.55) roughly halves the number of rows to keep the art from looking vertically stretched.

Non-positive values are ignored and the default is used instead.
*/
func WithCellAspectFactor(factor float64) AsciiOption {
	if factor <= 0 {
		factor = DefaultCellAspectFactor
	}

	return func(a *AsciiConverter) {
		a.CellAspectFactor = factor
	}
}

/*
WithMaxTargetWidth specifies the upper bound for the number of columns. Requests above the bound are clamped rather than rejected, which keeps memory and time bounded for any caller supplied width.

Non-positive values are ignored and the default (500) is used instead.
*/
func WithMaxTargetWidth(maxWidth int) AsciiOption {
	if maxWidth <= 0 {
		maxWidth = DefaultMaxTargetWidth
	}

	return func(a *AsciiConverter) {
		a.MaxTargetWidth = maxWidth
	}
}
