// Command radmix composites two images through a radial mask.
//
// Usage:
//
//	radmix [flags] main_image background_image [circle_size [edge_fuzz]]
//
// The main image is kept inside a circle of radius circle_size (default 0.5,
// where the image height spans 2 units), the background is resized to fit
// and shown outside, and the two are blended across edge_fuzz (default 0.01).
// The result is written to output.png unless -o says otherwise.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/radmix"
	imageio "github.com/gogpu/radmix/internal/image"
)

const defaultOutput = "output.png"

// Failure categories. Every error returned by run except flag.ErrHelp wraps one of them.
var (
	errMissingArgument = errors.New("missing argument")
	errDecode          = errors.New("decode failed")
	errParse           = errors.New("parse failed")
	errEncode          = errors.New("encode failed")
	errConfig          = errors.New("invalid config")
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "radmix: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("radmix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: radmix [flags] main_image background_image [circle_size [edge_fuzz]]")
		fs.PrintDefaults()
	}

	var (
		configPath = fs.String("config", "", "TOML config file")
		output     = fs.String("o", defaultOutput, "output file (format from extension)")
		filterName = fs.String("filter", radmix.FilterCatmullRom.String(), "background resize filter: catmullrom or bilinear")
		workers    = fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
		verbose    = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", errParse, err)
	}

	logger := newLogger(stderr, *verbose)
	radmix.SetLogger(logger)
	defer radmix.SetLogger(nil)

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath, cfg); err != nil {
			return err
		}
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "workers":
			cfg.Workers = *workers
		case "filter":
			filter, ok := radmix.ParseFilter(*filterName)
			if !ok {
				flagErr = fmt.Errorf("%w: unsupported filter %q", errParse, *filterName)
			}
			cfg.Filter = filter
		}
	})
	if flagErr != nil {
		return flagErr
	}

	pos := fs.Args()
	if len(pos) < 1 {
		return fmt.Errorf("%w: please provide a path to the main image", errMissingArgument)
	}
	if len(pos) < 2 {
		return fmt.Errorf("%w: please provide a path to the background image", errMissingArgument)
	}
	if len(pos) > 4 {
		return fmt.Errorf("%w: unexpected argument %q", errParse, pos[4])
	}
	if len(pos) > 2 {
		v, err := parseFloat(pos[2])
		if err != nil {
			return err
		}
		cfg.Params.CircleSize = v
	}
	if len(pos) > 3 {
		v, err := parseFloat(pos[3])
		if err != nil {
			return err
		}
		cfg.Params.EdgeFuzz = v
	}

	mainImg, err := load(pos[0])
	if err != nil {
		return err
	}
	backImg, err := load(pos[1])
	if err != nil {
		return err
	}

	result, err := radmix.CompositeImage(mainImg, backImg, cfg.Params,
		radmix.WithFilter(cfg.Filter),
		radmix.WithWorkers(cfg.Workers),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", errDecode, err)
	}

	if err := imageio.Save(cfg.Output, result); err != nil {
		return fmt.Errorf("%w: error saving the image: %w", errEncode, err)
	}

	b := result.Bounds()
	logger.Info("wrote composite", "path", cfg.Output, "width", b.Dx(), "height", b.Dy())
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func load(path string) (image.Image, error) {
	img, format, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load image at %q: %w", errDecode, path, err)
	}
	radmix.Logger().Debug("loaded image", "path", path, "format", format.String(),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

func parseFloat(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: couldn't parse %q as a float: %w", errParse, arg, err)
	}
	if err := (radmix.Params{CircleSize: v}).Validate(); err != nil {
		return 0, fmt.Errorf("%w: %q: %w", errParse, arg, err)
	}
	return v, nil
}
