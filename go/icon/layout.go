package icon

import (
	"image"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Label is a line of text drawn centered on the icon.
type Label struct {
	Text string
	// Font size as a fraction of the icon edge.
	SizeFraction float64
	// Vertical center of the text as a fraction of the icon edge.
	CenterFraction float64
}

var (
	// Title is the primary label.
	Title = Label{Text: "CIM", SizeFraction: 0.375, CenterFraction: 0.45}
	// Subtitle is the secondary label.
	Subtitle = Label{Text: "Training", SizeFraction: 0.125, CenterFraction: 0.70}
)

// DefaultLabels returns the labels of the CIM Training icon.
func DefaultLabels() []Label {
	return []Label{Title, Subtitle}
}

// Layout is the placement of a label on a canvas.
type Layout struct {
	// Width and Height of the measured ink box, in pixels.
	Width  int
	Height int
	// Dot is the baseline origin passed to the drawer.
	Dot fixed.Point26_6
	// Rect is the ink box on the canvas.
	Rect image.Rectangle
}

// FontSize returns round(canvas × fraction).
func FontSize(canvas int, fraction float64) float64 {
	return math.Round(float64(canvas) * fraction)
}

// MeasureLabel centers text horizontally on a canvas of the given edge, with its
// vertical center at centerFraction × canvas. The origin is snapped to whole pixels.
func MeasureLabel(face font.Face, text string, canvas int, centerFraction float64) Layout {
	bounds, _ := font.BoundString(face, text)
	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y

	x := (fixed.I(canvas) - width) / 2
	y := toFixed(float64(canvas)*centerFraction) - height/2
	dot := fixed.P((x - bounds.Min.X).Round(), (y - bounds.Min.Y).Round())

	return Layout{
		Width:  width.Ceil(),
		Height: height.Ceil(),
		Dot:    dot,
		Rect: image.Rect(
			(dot.X+bounds.Min.X).Floor(), (dot.Y+bounds.Min.Y).Floor(),
			(dot.X+bounds.Max.X).Ceil(), (dot.Y+bounds.Max.Y).Ceil(),
		),
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
