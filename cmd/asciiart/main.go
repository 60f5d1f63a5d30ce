package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"golang.org/x/term"

	"github.com/nebbyJammin/asciiraster/asciiart"
	"github.com/nebbyJammin/asciiraster/internal/logs"
)

// fallbackWidth is used when -w is not given and stdout is not a terminal
const fallbackWidth = 80

type Options struct {
	Width      int     `short:"w" long:"width" description:"Output width in characters. 0 uses the terminal width" default:"0"`
	Ramp       string  `short:"r" long:"ramp" description:"Glyph ramp to use" choice:"simple" choice:"detailed" choice:"blocks" default:"simple"`
	Invert     bool    `short:"i" long:"invert" description:"Invert the brightness mapping (for dark text on a light background)"`
	CellAspect float64 `short:"a" long:"cell-aspect" description:"Row correction for glyph cells being taller than wide" default:"0.55"`
	MaxWidth   int     `long:"max-width" description:"Widths above this are clamped" default:"500"`
	MaxRows    int     `long:"max-rows" description:"Skip images that would render more rows than this. 0 disables the check" default:"2000"`
	Output     string  `short:"o" long:"out" description:"The file to write the output to (default stdout)"`
	Verbose    bool    `short:"V" long:"verbose" description:"Prints timings and image details to stderr"`

	Args struct {
		Paths []string `positional-arg-name:"PATH" description:"Images or directories of images. Read from stdin, one per line, when omitted"`
	} `positional-args:"yes"`
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "[asciiart] %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	var opts Options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprintln(stdout, err)
			return nil
		}
		return err
	}

	logs.SetVerbose(opts.Verbose)

	width := opts.Width
	if width == 0 {
		width = resolveWidth(stdout)
	}

	params, err := asciiart.NewParams(width, opts.Ramp, opts.Invert)
	if err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	conv := asciiart.New(
		asciiart.WithCellAspectFactor(opts.CellAspect),
		asciiart.WithMaxTargetWidth(opts.MaxWidth),
	)

	out := stdout
	if opts.Output != "" {
		f, ferr := os.Create(opts.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		out = f
	}

	w := bufio.NewWriter(out)
	r := &renderer{conv: conv, params: params, maxRows: opts.MaxRows, out: w, errOut: stderr}

	logs.LogV("rendering %d columns with the %s ramp (invert=%t)", width, params.Ramp, params.Invert)

	if len(opts.Args.Paths) == 0 {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			path := strings.TrimSpace(scanner.Text())
			if path == "" {
				continue
			}
			r.renderPath(path)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
	} else {
		for _, path := range opts.Args.Paths {
			r.renderPath(path)
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	return r.err()
}

/*
resolveWidth picks the output width when -w is not given. If stdout is a terminal its column count is used, otherwise fallbackWidth.
*/
func resolveWidth(stdout io.Writer) int {
	f, ok := stdout.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return fallbackWidth
	}

	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		logs.LogV("terminal size unavailable (%v), using %d columns", err, fallbackWidth)
		return fallbackWidth
	}

	return cols
}
