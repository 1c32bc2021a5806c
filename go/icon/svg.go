package icon

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/ajstarks/svgo"
)

// RenderSVG writes a scalable rendition of a size×size icon to w.
// Text is laid out by the SVG renderer, centered on the same anchors as Render.
func (g *Generator) RenderSVG(w io.Writer, size int) error {
	if size <= 0 {
		return fmt.Errorf("invalid icon size %d", size)
	}
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	canvas.Rect(0, 0, size, size, "fill:"+hexString(g.background))

	for _, label := range g.labels {
		y := int(math.Round(float64(size) * label.CenterFraction))
		style := fmt.Sprintf(
			"fill:%s;font-family:Helvetica,Arial,sans-serif;font-weight:bold;font-size:%dpx;text-anchor:middle;dominant-baseline:central",
			hexString(g.foreground), int(FontSize(size, label.SizeFraction)),
		)
		canvas.Text(size/2, y, label.Text, style)
	}
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}
