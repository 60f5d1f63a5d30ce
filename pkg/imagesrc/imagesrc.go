// Package imagesrc decodes image files into asciiart.PixelBuffer values and feeds them to a converter.
//
// The png, jpeg, gif, bmp, tiff and webp formats are registered by this package. To support other
// formats, import your decoder for its side effects before calling Decode():
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Only the first frame of an animated gif is used.
package imagesrc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nebbyJammin/asciiraster/asciiart"
)

const (
	// MaxImageBytes caps how much encoded data Decode() reads from a single source.
	MaxImageBytes = 15 << 20
	// MaxImagePixels caps the decoded size. A small file can declare huge dimensions, so this is checked from the header before decoding.
	MaxImagePixels = 50_000_000
)

// ErrImageTooLarge is returned when an encoded image is bigger than MaxImageBytes or declares more than MaxImagePixels pixels.
var ErrImageTooLarge = errors.New("imagesrc: image exceeds size limit")

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// IsImagePath reports whether path has the extension of one of the registered formats
func IsImagePath(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

/*
Decode reads an encoded image from r and returns its pixels along with the format name reported by image.Decode() (for example "png").

At most MaxImageBytes are read. Larger inputs, and images whose header declares more than MaxImagePixels pixels, return ErrImageTooLarge.
*/
func Decode(r io.Reader) (asciiart.PixelBuffer, string, error) {
	lr := &io.LimitedReader{R: r, N: MaxImageBytes + 1}
	data, err := io.ReadAll(lr)
	if err != nil {
		return asciiart.PixelBuffer{}, "", fmt.Errorf("imagesrc: read: %w", err)
	}
	if len(data) > MaxImageBytes {
		return asciiart.PixelBuffer{}, "", ErrImageTooLarge
	}

	return DecodeBytes(data)
}

// DecodeBytes decodes an encoded image held in memory. See Decode()
func DecodeBytes(b []byte) (asciiart.PixelBuffer, string, error) {
	if len(b) > MaxImageBytes {
		return asciiart.PixelBuffer{}, "", ErrImageTooLarge
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		return asciiart.PixelBuffer{}, "", fmt.Errorf("imagesrc: decode: %w", err)
	}
	if cfg.Width > 0 && cfg.Height > MaxImagePixels/cfg.Width {
		return asciiart.PixelBuffer{}, "", fmt.Errorf("%w: %dx%d pixels", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return asciiart.PixelBuffer{}, "", fmt.Errorf("imagesrc: decode: %w", err)
	}

	return asciiart.FromImage(img), format, nil
}

// Load opens and decodes the image file at path. See Decode()
func Load(path string) (asciiart.PixelBuffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return asciiart.PixelBuffer{}, "", err
	}
	defer f.Close()

	buf, format, err := Decode(f)
	if err != nil {
		return asciiart.PixelBuffer{}, "", fmt.Errorf("%s: %w", path, err)
	}

	return buf, format, nil
}

/*
ConvertReader decodes the image in r and converts it with a. Decoding errors and engine errors (see asciiart.Convert()) are both returned.
*/
func ConvertReader(a *asciiart.AsciiConverter, r io.Reader, p asciiart.Params) (string, error) {
	buf, _, err := Decode(r)
	if err != nil {
		return "", err
	}

	return a.Convert(buf, p)
}

// ConvertBytes calls ConvertReader() on an in memory image
func ConvertBytes(a *asciiart.AsciiConverter, b []byte, p asciiart.Params) (string, error) {
	return ConvertReader(a, bytes.NewReader(b), p)
}

// ConvertFile loads the image at path and converts it with a
func ConvertFile(a *asciiart.AsciiConverter, path string, p asciiart.Params) (string, error) {
	buf, _, err := Load(path)
	if err != nil {
		return "", err
	}

	return a.Convert(buf, p)
}
