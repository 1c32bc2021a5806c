package icon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSVG(t *testing.T) {
	g := newTestGenerator(t, "")

	buf := &bytes.Buffer{}
	require.NoError(t, g.RenderSVG(buf, 192))
	out := buf.String()
	require.Contains(t, out, `viewBox="0 0 192 192"`)
	require.Contains(t, out, "fill:#4A90E2")
	require.Contains(t, out, ">CIM</text>")
	require.Contains(t, out, ">Training</text>")
	require.Contains(t, out, "font-size:72px")
	require.Contains(t, out, "font-size:24px")
	require.Contains(t, out, `y="86"`)
	require.Contains(t, out, `y="134"`)

	require.Error(t, g.RenderSVG(&bytes.Buffer{}, 0))
}
