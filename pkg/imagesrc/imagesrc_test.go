package imagesrc

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/nebbyJammin/asciiraster/asciiart"
)

// stripes is a 4x2 image with a white top row and a black bottom row.
func stripes() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := range 4 {
		img.SetNRGBA(x, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		img.SetNRGBA(x, 1, color.NRGBA{A: 255})
	}
	return img
}

func encode(t *testing.T, enc func(io.Writer, image.Image) error) []byte {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, enc(&b, stripes()))
	return b.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		format string
		enc    func(io.Writer, image.Image) error
	}{
		{"png", png.Encode},
		{"bmp", bmp.Encode},
		{"tiff", func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf, format, err := Decode(bytes.NewReader(encode(t, tt.enc)))
			require.NoError(t, err)
			require.Equal(t, tt.format, format)
			require.Equal(t, 4, buf.Width)
			require.Equal(t, 2, buf.Height)
			require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, buf.At(3, 0))
			require.Equal(t, color.NRGBA{A: 255}, buf.At(0, 1))
		})
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, _, err := DecodeBytes([]byte("definitely not an image"))
	require.ErrorIs(t, err, image.ErrFormat)
}

func TestDecodeSizeLimit(t *testing.T) {
	_, _, err := Decode(bytes.NewReader(make([]byte, MaxImageBytes+1)))
	require.ErrorIs(t, err, ErrImageTooLarge)
}

// pngHeader returns a png that stops after its IHDR chunk. It is enough for image.DecodeConfig().
func pngHeader(width, height uint32) []byte {
	ihdr := make([]byte, 0, 17)
	ihdr = append(ihdr, "IHDR"...)
	ihdr = binary.BigEndian.AppendUint32(ihdr, width)
	ihdr = binary.BigEndian.AppendUint32(ihdr, height)
	ihdr = append(ihdr, 8, 6, 0, 0, 0) // 8 bit RGBA, not interlaced

	b := []byte("\x89PNG\r\n\x1a\n")
	b = binary.BigEndian.AppendUint32(b, 13)
	b = append(b, ihdr...)
	return binary.BigEndian.AppendUint32(b, crc32.ChecksumIEEE(ihdr))
}

func TestDecodePixelLimit(t *testing.T) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(pngHeader(100000, 100000)))
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, 100000, cfg.Width)

	_, _, err = DecodeBytes(pngHeader(100000, 100000))
	require.ErrorIs(t, err, ErrImageTooLarge)
	require.ErrorContains(t, err, "100000x100000")

	_, _, err = Decode(bytes.NewReader(pngHeader(1, MaxImagePixels+1)))
	require.ErrorIs(t, err, ErrImageTooLarge)

	// Within the budget the header passes and decoding fails on the missing image data
	_, _, err = DecodeBytes(pngHeader(4, 2))
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrImageTooLarge)
}

func TestConvertBytes(t *testing.T) {
	p := asciiart.Params{TargetWidth: 4, Ramp: asciiart.RampSimple}

	out, err := ConvertBytes(asciiart.NewDefault(), encode(t, png.Encode), p)
	require.NoError(t, err)
	require.Equal(t, "@@@@\n", out)

	p.Invert = true
	out, err = ConvertBytes(asciiart.NewDefault(), encode(t, png.Encode), p)
	require.NoError(t, err)
	require.Equal(t, "    \n", out)
}

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stripes.png")
	require.NoError(t, os.WriteFile(path, encode(t, png.Encode), 0o644))

	out, err := ConvertFile(asciiart.NewDefault(), path, asciiart.Params{TargetWidth: 2, Ramp: asciiart.RampBlocks})
	require.NoError(t, err)
	require.Equal(t, "██\n", out)

	_, err = ConvertFile(asciiart.NewDefault(), filepath.Join(t.TempDir(), "missing.png"), asciiart.Params{TargetWidth: 2})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConvertReaderEngineError(t *testing.T) {
	_, err := ConvertReader(asciiart.NewDefault(), bytes.NewReader(encode(t, png.Encode)), asciiart.Params{TargetWidth: 0})

	var dimErr *asciiart.InvalidDimensionError
	require.ErrorAs(t, err, &dimErr)
}

func TestIsImagePath(t *testing.T) {
	for _, p := range []string{"a.png", "b.JPG", "dir/c.jpeg", "d.gif", "e.bmp", "f.tif", "g.TIFF", "h.webp"} {
		require.True(t, IsImagePath(p), p)
	}
	for _, p := range []string{"a.txt", "png", "dir/", "b.svg"} {
		require.False(t, IsImagePath(p), p)
	}
}
