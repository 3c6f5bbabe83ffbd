package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrsketch"
	"github.com/unixdj/qrsketch/coding"
)

var formats = []string{
	"png", "pbm", "pbmi", "utf8", "ascii", "bits",
}

// options are the parsed command line.
type options struct {
	level   coding.Level
	scale   int    // pixels per module
	border  int    // quiet zone in modules
	format  string // output format, "" for default
	fn      string // output file
	decode  bool   // decode bit string
	verbose bool   // debug logging
	help    bool
	version bool
	seen    map[rune]bool // flags given on the command line
}

func (o *options) setLevel(s string) error {
	l, err := coding.ParseLevel(s)
	if err != nil {
		return fmt.Errorf("%q: %w", s, err)
	}
	o.level = l
	return nil
}

func (o *options) setFormat(s string) error {
	for _, v := range formats {
		if s == v {
			o.format = s
			return nil
		}
	}
	return fmt.Errorf("%q: unknown format, use one of: %s",
		s, strings.Join(formats, ", "))
}

var errUsage = errors.New("usage")

// parseArgs parses the command line, including the program name, and
// returns the options and remaining arguments.  Usage is written to
// stderr on error.
func parseArgs(args []string, stderr io.Writer) (*options, []string, error) {
	o := &options{level: coding.L, scale: 10, border: 4}
	set := getopt.New()
	set.SetParameters("[string ...]")
	var lev, format, cfg string
	set.Flag(&o.help, 'h', "show this help")
	set.Flag(&o.version, 'V', "print version")
	set.Flag(&o.verbose, 'v', "log encoding details")
	set.Flag(&o.decode, 'd', "decode a bit string as printed by -t bits")
	set.Flag(&lev, 'l', "error correction level, lowest to highest [l]",
		"l|m|q|h")
	set.Flag(&o.scale, 's', "image pixels per module [10]; "+
		"ignored for types utf8, ascii and bits", "scale")
	set.Flag(&o.border, 'm', "quiet zone modules [4]", "margin")
	set.Flag(&format, 't', "output format, one of: "+
		strings.Join(formats, ", ")+`; "pbmi" has colours inverted; `+
		"if no -o is given and standard output is a TTY, default is "+
		"utf8, otherwise png", "type")
	set.Flag(&o.fn, 'o', `output file, or "-" for standard output`,
		"file")
	set.Flag(&cfg, 'c', "read defaults from TOML file", "file")

	usage := func(err error) (*options, []string, error) {
		fmt.Fprintln(stderr, err)
		set.PrintUsage(stderr)
		return nil, nil, errUsage
	}
	if err := set.Getopt(args, nil); err != nil {
		return usage(err)
	}
	o.seen = make(map[rune]bool)
	for _, r := range "lsmt" {
		if opt := set.Lookup(r); opt != nil && opt.Seen() {
			o.seen[r] = true
		}
	}
	if o.help {
		set.PrintUsage(stderr)
		return o, nil, nil
	}
	if o.seen['l'] {
		if err := o.setLevel(lev); err != nil {
			return usage(err)
		}
	}
	if o.seen['t'] {
		if err := o.setFormat(format); err != nil {
			return usage(err)
		}
	}
	if cfg != "" {
		c, unknown, err := loadConfig(cfg)
		if err != nil {
			return nil, nil, err
		}
		if len(unknown) != 0 {
			return nil, nil, fmt.Errorf("%s: unknown keys: %s",
				cfg, strings.Join(unknown, ", "))
		}
		if err := c.apply(o); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", cfg, err)
		}
	}
	if o.scale < 1 || o.border < 0 {
		return usage(qrsketch.ErrArgs)
	}
	if o.fn == "-" {
		o.fn = ""
	}
	return o, set.Args(), nil
}

// input joins args, or reads standard input and strips the final
// newline.
func input(args []string, stdin io.Reader) (string, error) {
	if len(args) != 0 {
		return strings.Join(args, " "), nil
	}
	var b strings.Builder
	if _, err := io.Copy(&b, stdin); err != nil {
		return "", err
	}
	s, _ := strings.CutSuffix(
		strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	return s, nil
}

// encode writes the symbol for text to w in format o.format.
func encode(w io.Writer, o *options, text string, logger *log.Logger) error {
	sym, err := qrsketch.Encode(text, qrsketch.Level(o.level))
	if err != nil {
		return err
	}
	logger.Debug("encoded",
		"chars", len([]rune(text)),
		"version", sym.Version,
		"level", sym.Level,
		"data", sym.DataBits(),
		"total", sym.Bits.Bits())
	if o.format == "bits" {
		_, err := fmt.Fprintln(w, sym.Bits)
		return err
	}
	scale := o.scale
	if o.format == "utf8" || o.format == "ascii" {
		scale = 1
	}
	bm, err := sym.Bitmap(scale, o.border)
	if err != nil {
		return err
	}
	logger.Debug("rendered", "width", bm.Width, "height", bm.Height,
		"scale", scale, "border", o.border)
	switch o.format {
	case "pbm", "pbmi":
		return bm.EncodePBM(w, o.format == "pbmi")
	case "utf8":
		_, err := fmt.Fprint(w, bm)
		return err
	case "ascii":
		return bm.EncodeASCII(w)
	default:
		return png.Encode(w, bm.Image())
	}
}

// run executes the command and returns the output.
func run(o *options, args []string, stdin io.Reader, logger *log.Logger) ([]byte, error) {
	s, err := input(args, stdin)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if o.decode {
		text, err := qrsketch.Decode(s)
		if err != nil {
			return nil, err
		}
		logger.Debug("decoded", "chars", len([]rune(text)))
		fmt.Fprintln(&b, text)
		return b.Bytes(), nil
	}
	if err := encode(&b, o, s, logger); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "qr"})
	o, args, err := parseArgs(os.Args, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		logger.Fatal(err)
	}
	if o.help {
		return
	}
	if o.version {
		fmt.Println(`qr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
		return
	}
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if o.format == "" && !o.decode {
		if o.fn == "" && isatty.IsTerminal(os.Stdout.Fd()) {
			o.format = "utf8"
		} else {
			o.format = "png"
		}
		logger.Debug("output format", "format", o.format)
	}

	out, err := run(o, args, os.Stdin, logger)
	if err != nil {
		logger.Fatal(err)
	}
	w := os.Stdout
	if o.fn != "" {
		if w, err = os.OpenFile(o.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			logger.Fatal(err)
		}
	}
	_, err = w.Write(out)
	if o.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		logger.Fatal(err)
	}
}
