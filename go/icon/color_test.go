package icon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"brand", "#4A90E2", BrandColor, false},
		{"no hash", "4a90e2", BrandColor, false},
		{"white", "#FFFFFF", White, false},
		{"whitespace", " #000000 ", color.RGBA{A: 255}, false},
		{"too short", "#FFF", color.RGBA{}, true},
		{"too long", "#FFFFFFFF", color.RGBA{}, true},
		{"not hex", "#GG0000", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.hex)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestHexString(t *testing.T) {
	require.Equal(t, "#4A90E2", hexString(BrandColor))
	require.Equal(t, "#FFFFFF", hexString(White))
}
