package icon

import (
	"fmt"
	"path/filepath"
)

// DefaultSizes are the icon edges required by the web app manifest.
var DefaultSizes = []int{192, 512}

// Spec describes one icon to generate.
type Spec struct {
	Size       int
	OutputPath string
}

// DefaultSpecs returns a spec per size, written to <dir>/icon-<size>.png.
// With no sizes, DefaultSizes is used.
func DefaultSpecs(dir string, sizes ...int) []Spec {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	specs := make([]Spec, 0, len(sizes))
	for _, size := range sizes {
		specs = append(specs, Spec{
			Size:       size,
			OutputPath: filepath.Join(dir, fmt.Sprintf("icon-%d.png", size)),
		})
	}
	return specs
}
