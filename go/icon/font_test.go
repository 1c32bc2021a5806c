package icon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadFontFile(t *testing.T) {
	t.Parallel()

	t.Run("truetype file", func(t *testing.T) {
		t.Parallel()
		f, err := LoadFontFile(writeFile(t, "bold.ttf", gobold.TTF))
		require.NoError(t, err)
		require.Equal(t, "bold.ttf", f.Name())

		face, err := f.Face(24)
		require.NoError(t, err)
		defer face.Close()
		require.Positive(t, face.Metrics().Height.Ceil())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFontFile(filepath.Join(t.TempDir(), "missing.ttc"))
		require.Error(t, err)
	})

	t.Run("not a font", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFontFile(writeFile(t, "garbage.ttf", []byte("definitely not a font")))
		require.Error(t, err)
	})
}

func TestResolveFont(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("preferred font", func(t *testing.T) {
		t.Parallel()
		f, err := ResolveFont(ctx, writeFile(t, "preferred.ttf", gobold.TTF))
		require.NoError(t, err)
		require.Equal(t, "preferred.ttf", f.Name())
	})

	for name, path := range map[string]func(t *testing.T) string{
		"no path":      func(t *testing.T) string { return "" },
		"missing file": func(t *testing.T) string { return filepath.Join(t.TempDir(), "Helvetica.ttc") },
		"corrupt file": func(t *testing.T) string { return writeFile(t, "corrupt.ttc", []byte{0, 1, 0, 0, 42}) },
	} {
		path := path
		t.Run("falls back on "+name, func(t *testing.T) {
			t.Parallel()
			f, err := ResolveFont(ctx, path(t))
			require.NoError(t, err)
			require.Equal(t, DefaultFontName, f.Name())
		})
	}
}

func TestFaceRejectsInvalidSize(t *testing.T) {
	f, err := DefaultFont()
	require.NoError(t, err)
	_, err = f.Face(0)
	require.Error(t, err)
}
