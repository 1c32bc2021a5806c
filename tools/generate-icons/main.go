package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/malonaz/cim-icons/go/flags"
	"github.com/malonaz/cim-icons/go/icon"
	"github.com/malonaz/cim-icons/go/logging"
)

type options struct {
	Logging *logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`

	OutputDir       string `long:"output-dir" description:"Directory the icons are written to" default:"icons"`
	Sizes           []int  `long:"size" description:"Icon edge in pixels, repeatable" default:"192" default:"512"`
	Font            string `long:"font" description:"Preferred font file, the embedded font is used if it cannot be loaded" default:"/System/Library/Fonts/Helvetica.ttc"`
	Background      string `long:"background" description:"Hex background color" default:"#4A90E2"`
	Foreground      string `long:"foreground" description:"Hex text color" default:"#FFFFFF"`
	Title           string `long:"title" description:"Primary label" default:"CIM"`
	Subtitle        string `long:"subtitle" description:"Secondary label" default:"Training"`
	SVG             bool   `long:"svg" description:"Also write a scalable icon.svg"`
	ContinueOnError bool   `long:"continue-on-error" description:"Generate every size even if one fails"`
}

const usage = `
To use this tool:
1. Install Go 1.26+ (fonts are rendered with github.com/golang/freetype and golang.org/x/image)
2. Run: go run ./tools/generate-icons
3. Pass --font=<path.ttf> to use another font, or --output-dir=<dir> to write elsewhere`

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flags.ErrHelp) {
			return
		}
		slog.ErrorContext(ctx, "running", "error", err)
		os.Exit(1)
	}
}

// run returns an error only for invalid flags. Generation failures are reported on stdout.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts := &options{}
	if _, err := flags.ParseArgs(opts, args); err != nil {
		return err
	}
	if err := logging.Init(opts.Logging); err != nil {
		return err
	}

	if err := generate(ctx, opts, stdout); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		fmt.Fprintln(stdout, usage)
		return nil
	}
	fmt.Fprintln(stdout, "\nIcons created successfully!")
	return nil
}

func generate(ctx context.Context, opts *options, stdout io.Writer) error {
	background, err := icon.ParseHexColor(opts.Background)
	if err != nil {
		return fmt.Errorf("parsing background: %v", err)
	}
	foreground, err := icon.ParseHexColor(opts.Foreground)
	if err != nil {
		return fmt.Errorf("parsing foreground: %v", err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %v", err)
	}

	generator, err := icon.NewGenerator(ctx, &icon.Options{
		Background: background,
		Foreground: foreground,
		Labels: []icon.Label{
			{Text: opts.Title, SizeFraction: icon.Title.SizeFraction, CenterFraction: icon.Title.CenterFraction},
			{Text: opts.Subtitle, SizeFraction: icon.Subtitle.SizeFraction, CenterFraction: icon.Subtitle.CenterFraction},
		},
		FontPath: opts.Font,
	})
	if err != nil {
		return fmt.Errorf("creating generator: %v", err)
	}
	slog.DebugContext(ctx, "generating icons", "font", generator.Font().Name(), "sizes", opts.Sizes, "output_dir", opts.OutputDir)

	var errs *multierror.Error
	for _, spec := range icon.DefaultSpecs(opts.OutputDir, opts.Sizes...) {
		if err := generator.Generate(ctx, spec); err != nil {
			if !opts.ContinueOnError {
				return err
			}
			errs = multierror.Append(errs, err)
			continue
		}
		fmt.Fprintf(stdout, "✓ Created %s\n", spec.OutputPath)
	}

	if opts.SVG && len(opts.Sizes) > 0 {
		path := filepath.Join(opts.OutputDir, "icon.svg")
		if err := writeSVG(generator, path, slices.Max(opts.Sizes)); err != nil {
			if !opts.ContinueOnError {
				return err
			}
			errs = multierror.Append(errs, err)
		} else {
			fmt.Fprintf(stdout, "✓ Created %s\n", path)
		}
	}
	return errs.ErrorOrNil()
}

// writeSVG writes a scalable icon whose viewBox matches the largest raster icon.
func writeSVG(generator *icon.Generator, path string, size int) error {
	svgFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file: %v", err)
	}
	defer svgFile.Close()
	if err := generator.RenderSVG(svgFile, size); err != nil {
		return fmt.Errorf("saving SVG file: %v", err)
	}
	return svgFile.Close()
}
