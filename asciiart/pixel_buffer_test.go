package asciiart

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPixelBufferSetAt(t *testing.T) {
	buf := NewPixelBuffer(3, 2)
	require.Len(t, buf.Pix, 3*2*ChannelCount)

	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	buf.Set(2, 1, c)

	require.Equal(t, c, buf.At(2, 1))
	require.Equal(t, []uint8{1, 2, 3, 4}, buf.Pix[(2+1*3)*ChannelCount:])
	require.Equal(t, color.NRGBA{}, buf.At(0, 0))
}

func TestFromImage(t *testing.T) {
	t.Run("nrgba sub image", func(t *testing.T) {
		src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		for y := range 4 {
			for x := range 4 {
				src.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 9, A: 128})
			}
		}

		buf := FromImage(src.SubImage(image.Rect(1, 2, 3, 4)))
		require.Equal(t, 2, buf.Width)
		require.Equal(t, 2, buf.Height)
		require.Equal(t, color.NRGBA{R: 1, G: 2, B: 9, A: 128}, buf.At(0, 0))
		require.Equal(t, color.NRGBA{R: 2, G: 3, B: 9, A: 128}, buf.At(1, 1))
	})

	t.Run("gray", func(t *testing.T) {
		src := image.NewGray(image.Rect(0, 0, 2, 1))
		src.SetGray(1, 0, color.Gray{Y: 200})

		buf := FromImage(src)
		require.Equal(t, color.NRGBA{A: 255}, buf.At(0, 0))
		require.Equal(t, color.NRGBA{R: 200, G: 200, B: 200, A: 255}, buf.At(1, 0))
	})

	t.Run("premultiplied", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(0, 0, 1, 1))
		src.SetRGBA(0, 0, color.RGBA{R: 100, A: 200})

		buf := FromImage(src)
		c := buf.At(0, 0)
		require.Equal(t, uint8(200), c.A)
		require.InDelta(t, 127, int(c.R), 1)
	})
}
