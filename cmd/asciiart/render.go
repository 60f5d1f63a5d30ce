package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nebbyJammin/asciiraster/asciiart"
	"github.com/nebbyJammin/asciiraster/internal/logs"
	"github.com/nebbyJammin/asciiraster/pkg/imagesrc"
)

var (
	errSomeFailed  = errors.New("some images could not be converted")
	errTooManyRows = errors.New("output would be too tall")
)

// renderer converts paths one at a time. A failing path is reported to errOut and does not stop the rest.
type renderer struct {
	conv    *asciiart.AsciiConverter
	params  asciiart.Params
	maxRows int
	out     io.Writer
	errOut  io.Writer

	converted int
	failed    int
}

func (r *renderer) renderPath(path string) {
	info, err := os.Stat(path)
	if err != nil {
		r.fail(err)
		return
	}

	if info.IsDir() {
		r.renderDir(path)
		return
	}

	r.renderFile(path)
}

// renderDir walks root and converts every file with an image extension, in lexical order
func (r *renderer) renderDir(root string) {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !imagesrc.IsImagePath(path) {
			return nil
		}

		r.renderFile(path)
		return nil
	})

	if err != nil {
		r.fail(err)
	}
}

func (r *renderer) renderFile(path string) {
	start := time.Now()

	buf, format, err := imagesrc.Load(path)
	if err != nil {
		r.fail(err)
		return
	}

	decodeTime := time.Since(start)

	// Rows follow the source aspect ratio and are not bounded by the width clamp
	if dim := r.conv.Plan(buf, r.params); r.maxRows > 0 && dim.Rows > r.maxRows {
		r.fail(fmt.Errorf("%s: %w (%d rows, limit %d)", path, errTooManyRows, dim.Rows, r.maxRows))
		return
	}

	art, err := r.conv.Convert(buf, r.params)
	if err != nil {
		r.fail(fmt.Errorf("%s: %w", path, err))
		return
	}

	if logs.Verbose() {
		convTime := time.Since(start) - decodeTime
		logs.LogV("%s: %s %dx%d, decoding took %dms, conversion took %dms",
			path, format, buf.Width, buf.Height, decodeTime.Milliseconds(), convTime.Milliseconds())
	}

	if _, err := io.WriteString(r.out, art); err != nil {
		r.fail(err)
		return
	}

	r.converted++
}

func (r *renderer) fail(err error) {
	r.failed++
	fmt.Fprintf(r.errOut, "%s\n", err)
}

func (r *renderer) err() error {
	if r.failed == 0 {
		return nil
	}

	return fmt.Errorf("%w (%d failed, %d converted)", errSomeFailed, r.failed, r.converted)
}
