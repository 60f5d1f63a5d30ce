// The asciiart package implements the logic for generating ascii art from a decoded image.
//
// The conversion is a pure pipeline over a PixelBuffer: PlanDimensions() sizes the grid,
// SampleGrid() picks one pixel per cell, Quantize() maps each pixel's luminance onto a glyph
// ramp, and AssembleGrid() joins the glyphs into newline delimited text.
//
// This package does no I/O and does not decode images. To convert png, jpeg, gif, bmp, tiff
// or webp files see github.com/nebbyJammin/asciiraster/pkg/imagesrc, or build a PixelBuffer
// yourself with FromImage().
//
// Start by calling New() or NewDefault(). Pass the options into the constructors (see options.go).
// A converter is never modified by Convert(), so one instance can be shared between goroutines.
package asciiart
