package icon

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
)

// DefaultFontPath is the system font tried before falling back to the embedded one.
const DefaultFontPath = "/System/Library/Fonts/Helvetica.ttc"

var (
	// BrandColor is the icon background, #4A90E2.
	BrandColor = color.RGBA{R: 0x4A, G: 0x90, B: 0xE2, A: 0xFF}
	// White is the label color.
	White = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Options configures a Generator.
type Options struct {
	Background color.RGBA
	Foreground color.RGBA
	Labels     []Label
	// FontPath is optional; the default font is used if it cannot be loaded.
	FontPath string
}

// DefaultOptions returns the options of the CIM Training icon.
func DefaultOptions() *Options {
	return &Options{
		Background: BrandColor,
		Foreground: White,
		Labels:     DefaultLabels(),
		FontPath:   DefaultFontPath,
	}
}

// Generator renders icons.
type Generator struct {
	font       Font
	background color.RGBA
	foreground color.RGBA
	labels     []Label
}

// NewGenerator resolves the font and returns a generator.
func NewGenerator(ctx context.Context, opts *Options) (*Generator, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Background.A != 0xFF {
		return nil, fmt.Errorf("background %s must be opaque", hexString(opts.Background))
	}
	f, err := ResolveFont(ctx, opts.FontPath)
	if err != nil {
		return nil, fmt.Errorf("resolving font: %w", err)
	}
	return &Generator{
		font:       f,
		background: opts.Background,
		foreground: opts.Foreground,
		labels:     opts.Labels,
	}, nil
}

// Font returns the font labels are drawn with.
func (g *Generator) Font() Font { return g.font }

// Generate renders the icon described by spec and writes it as a PNG.
func (g *Generator) Generate(ctx context.Context, spec Spec) error {
	img, err := g.Render(spec.Size)
	if err != nil {
		return fmt.Errorf("rendering %dx%d icon: %w", spec.Size, spec.Size, err)
	}
	if err := SavePNG(spec.OutputPath, img); err != nil {
		return fmt.Errorf("saving %s: %w", spec.OutputPath, err)
	}
	slog.DebugContext(ctx, "generated icon", "size", spec.Size, "path", spec.OutputPath, "font", g.font.Name())
	return nil
}

// Render draws a size×size icon.
func (g *Generator) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(g.background), image.Point{}, draw.Src)

	for _, label := range g.labels {
		if err := g.drawLabel(img, label); err != nil {
			return nil, fmt.Errorf("drawing %q: %w", label.Text, err)
		}
	}
	return img, nil
}

func (g *Generator) drawLabel(img *image.RGBA, label Label) error {
	size := img.Bounds().Dx()
	fontSize := FontSize(size, label.SizeFraction)
	if fontSize < 1 {
		// Nothing to draw below one pixel.
		return nil
	}
	face, err := g.font.Face(fontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	layout := MeasureLabel(face, label.Text, size, label.CenterFraction)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(g.foreground),
		Face: face,
		Dot:  layout.Dot,
	}
	d.DrawString(label.Text)
	return nil
}

// SavePNG encodes img to path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}
