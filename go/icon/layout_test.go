package icon

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFontSize(t *testing.T) {
	require.Equal(t, 72.0, FontSize(192, Title.SizeFraction))
	require.Equal(t, 24.0, FontSize(192, Subtitle.SizeFraction))
	require.Equal(t, 192.0, FontSize(512, Title.SizeFraction))
	require.Equal(t, 64.0, FontSize(512, Subtitle.SizeFraction))
	require.Equal(t, 38.0, FontSize(100, Title.SizeFraction))
}

func TestMeasureLabel(t *testing.T) {
	f, err := DefaultFont()
	require.NoError(t, err)

	for _, size := range []int{192, 256, 512, 1024} {
		for _, label := range DefaultLabels() {
			t.Run(fmt.Sprintf("%s at %d", label.Text, size), func(t *testing.T) {
				face, err := f.Face(FontSize(size, label.SizeFraction))
				require.NoError(t, err)
				defer face.Close()

				layout := MeasureLabel(face, label.Text, size, label.CenterFraction)
				require.Positive(t, layout.Width)
				require.Positive(t, layout.Height)

				// Horizontally centered.
				left := layout.Rect.Min.X
				right := size - layout.Rect.Max.X
				require.InDelta(t, left, right, 1, "size=%d rect=%v", size, layout.Rect)

				// Vertical center on the anchor.
				center := float64(layout.Rect.Min.Y+layout.Rect.Max.Y) / 2
				require.InDelta(t, float64(size)*label.CenterFraction, center, 1.5, "size=%d rect=%v", size, layout.Rect)

				// Fully on the canvas.
				require.True(t, layout.Rect.In(image.Rect(0, 0, size, size)), "size=%d rect=%v", size, layout.Rect)
			})
		}
	}
}
