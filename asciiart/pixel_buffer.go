package asciiart

import (
	"image"
	"image/color"
)

// ChannelCount is the number of bytes per pixel in a PixelBuffer (R, G, B, A).
const ChannelCount = 4

/*
PixelBuffer is a read only, row major RGBA pixel array. The layout matches image.NRGBA with a stride of 4 * Width, so pixel (x, y) starts at Pix[(x + y * Width) * 4].

The converter never writes to a PixelBuffer. Treat it as immutable once it has been handed to Convert().
*/
type PixelBuffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// NewPixelBuffer allocates a zeroed (transparent black) buffer of width * height pixels
func NewPixelBuffer(width, height int) PixelBuffer {
	return PixelBuffer{
		Pix:    make([]uint8, width*height*ChannelCount),
		Width:  width,
		Height: height,
	}
}

/*
At returns the pixel at x, y. Like the image package, At does not check that x and y are in bounds beyond what the slice access does.
*/
func (b PixelBuffer) At(x, y int) color.NRGBA {
	i := (x + y*b.Width) * ChannelCount
	p := b.Pix[i : i+ChannelCount : i+ChannelCount]

	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set writes the pixel at x, y
func (b PixelBuffer) Set(x, y int, c color.NRGBA) {
	i := (x + y*b.Width) * ChannelCount
	p := b.Pix[i : i+ChannelCount : i+ChannelCount]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

/*
FromImage copies img into a new PixelBuffer. Colors go through color.NRGBAModel, so channels are stored non-premultiplied and the alpha channel is kept as is. The converter ignores alpha entirely, which means a fully transparent pixel renders as whatever its (un-premultiplied) color is.

The returned buffer is anchored at 0, 0 regardless of img.Bounds().Min.
*/
func FromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	buf := NewPixelBuffer(dx, dy)

	if src, ok := img.(*image.NRGBA); ok {
		for y := range dy {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			copy(buf.Pix[y*dx*ChannelCount:(y+1)*dx*ChannelCount], row[:dx*ChannelCount])
		}

		return buf
	}

	for y := range dy {
		for x := range dx {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			buf.Set(x, y, c)
		}
	}

	return buf
}
