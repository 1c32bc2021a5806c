package icon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// DefaultFontName is the name reported by the built-in fallback font.
const DefaultFontName = "Go Bold"

// Font produces faces of a single typeface at arbitrary pixel sizes.
type Font interface {
	Name() string
	Face(size float64) (font.Face, error)
}

type truetypeFont struct {
	name string
	font *truetype.Font
}

func (f *truetypeFont) Name() string { return f.name }

func (f *truetypeFont) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	return truetype.NewFace(f.font, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

type opentypeFont struct {
	name string
	font *opentype.Font
}

func (f *opentypeFont) Name() string { return f.name }

func (f *opentypeFont) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("creating face: %v", err)
	}
	return face, nil
}

// DefaultFont returns the font embedded in the binary.
func DefaultFont() (Font, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %v", err)
	}
	return &truetypeFont{name: DefaultFontName, font: f}, nil
}

// LoadFontFile loads a TrueType or OpenType font from disk.
// Collections (.ttc / .otc) resolve to their first font.
func LoadFontFile(path string) (Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading font: %v", err)
	}
	collection, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %v", path, err)
	}
	if collection.NumFonts() == 0 {
		return nil, fmt.Errorf("font %s contains no fonts", path)
	}
	f, err := collection.Font(0)
	if err != nil {
		return nil, fmt.Errorf("loading font %s: %v", path, err)
	}
	return &opentypeFont{name: filepath.Base(path), font: f}, nil
}

// ResolveFont returns the font at path, or the default font if it cannot be loaded.
// Load failures are logged and never returned.
func ResolveFont(ctx context.Context, path string) (Font, error) {
	if path != "" {
		f, err := LoadFontFile(path)
		if err == nil {
			slog.DebugContext(ctx, "resolved font", "font", f.Name(), "path", path)
			return f, nil
		}
		slog.DebugContext(ctx, "falling back to default font", "path", path, "error", err)
	}
	return DefaultFont()
}
