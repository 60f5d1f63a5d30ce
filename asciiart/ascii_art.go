package asciiart

import (
	"image"
	"math"
)

const (
	// DefaultCellAspectFactor compensates for monospace cells being roughly twice as tall as they are wide.
	DefaultCellAspectFactor = 0.55
	// DefaultMaxTargetWidth is the widest grid the converter will produce. Wider requests are clamped.
	DefaultMaxTargetWidth = 500
)

/*
Params are the validated render parameters for a single conversion.

	- TargetWidth is the number of columns in the output grid (>= 1, clamped to the converter's MaxTargetWidth)
	- Ramp is the glyph ramp used for quantization
	- Invert mirrors the ramp so that bright pixels map to the emptiest glyph
*/
type Params struct {
	TargetWidth int
	Ramp        Ramp
	Invert      bool
}

/*
NewParams builds Params from the string keyed input that collaborators usually collect (a width, a ramp name and an invert flag).

Returns an *InvalidDimensionError if targetWidth < 1, or an *UnknownRampError if rampName is not one of "simple", "detailed" or "blocks".
*/
func NewParams(targetWidth int, rampName string, invert bool) (Params, error) {
	if targetWidth < 1 {
		return Params{}, &InvalidDimensionError{Name: "target width", Value: targetWidth}
	}

	ramp, err := ParseRamp(rampName)
	if err != nil {
		return Params{}, err
	}

	return Params{TargetWidth: targetWidth, Ramp: ramp, Invert: invert}, nil
}

type AsciiConverter struct {
	// CellAspectFactor scales the row count to account for glyph cells being taller than wide. See WithCellAspectFactor()
	CellAspectFactor float64

	// MaxTargetWidth bounds the number of columns. A larger TargetWidth is clamped to this value instead of failing. See WithMaxTargetWidth()
	MaxTargetWidth int
}

type AsciiOption func(*AsciiConverter)

/*
NewDefault initializes a converter with default parameters.

- CellAspectFactor: 0.55
- MaxTargetWidth: 500
*/
func NewDefault() *AsciiConverter {
	return &AsciiConverter{
		CellAspectFactor: DefaultCellAspectFactor,
		MaxTargetWidth:   DefaultMaxTargetWidth,
	}
}

// New initializes a converter with default parameters, then applies options
func New(opts ...AsciiOption) *AsciiConverter {
	ascii := NewDefault()

	for _, o := range opts {
		o(ascii)
	}

	return ascii
}

var defaultConverter = NewDefault()

// Convert runs the default converter. See (*AsciiConverter).Convert()
func Convert(buf PixelBuffer, p Params) (string, error) {
	return defaultConverter.Convert(buf, p)
}

/*
Convert renders buf as a newline delimited grid of glyphs.

All inputs are validated before any stage runs, so either a complete grid or an error is returned, never partial output. The checks happen in this order:
	- source width, source height and p.TargetWidth must be positive (*InvalidDimensionError)
	- p.Ramp must be a known ramp (*UnknownRampError)
	- len(buf.Pix) must equal Width * Height * ChannelCount (*EmptyBufferError)

The grid has min(p.TargetWidth, MaxTargetWidth) columns and a row count derived from the source aspect ratio (see PlanDimensions()). Every row ends with '\n'. Use Plan() to find out how large the grid will be before converting.
*/
func (a *AsciiConverter) Convert(buf PixelBuffer, p Params) (string, error) {
	if err := validate(buf, p); err != nil {
		return "", err
	}

	dim := a.Plan(buf, p)
	samples := SampleGrid(buf, dim)

	glyphs := p.Ramp.Glyphs()
	grid := make([][]rune, dim.Rows)
	cells := make([]rune, dim.Rows*dim.Columns)
	for y, row := range samples {
		grid[y] = cells[y*dim.Columns : (y+1)*dim.Columns]
		for x, c := range row {
			grid[y][x] = Quantize(c, glyphs, p.Invert)
		}
	}

	return AssembleGrid(grid), nil
}

// Plan returns the grid size Convert() would produce for buf and p. It does not validate its inputs.
func (a *AsciiConverter) Plan(buf PixelBuffer, p Params) Dimensions {
	return PlanDimensions(buf.Width, buf.Height, p.TargetWidth, a.MaxTargetWidth, a.CellAspectFactor)
}

/*
ConvertImage converts a decoded image. The image is first copied into a PixelBuffer with FromImage(), see that function for how alpha is handled.
*/
func (a *AsciiConverter) ConvertImage(img image.Image, p Params) (string, error) {
	return a.Convert(FromImage(img), p)
}

func validate(buf PixelBuffer, p Params) error {
	if buf.Width <= 0 {
		return &InvalidDimensionError{Name: "source width", Value: buf.Width}
	}
	if buf.Height <= 0 {
		return &InvalidDimensionError{Name: "source height", Value: buf.Height}
	}
	if p.TargetWidth <= 0 {
		return &InvalidDimensionError{Name: "target width", Value: p.TargetWidth}
	}

	if !p.Ramp.valid() {
		return &UnknownRampError{Name: p.Ramp.String()}
	}

	// Width and Height are positive here, so this rejects any product that would wrap
	if buf.Width > math.MaxInt/ChannelCount/buf.Height {
		return &EmptyBufferError{Len: len(buf.Pix), Width: buf.Width, Height: buf.Height}
	}

	want := buf.Width * buf.Height * ChannelCount
	if len(buf.Pix) != want {
		return &EmptyBufferError{Len: len(buf.Pix), Want: want, Width: buf.Width, Height: buf.Height}
	}

	return nil
}
