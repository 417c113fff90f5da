package backdrop

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hero", "hero"},
		{"hero start", "hero_start"},
		{"  padded  ", "padded"},
		{"v1.2-rc", "v1.2-rc"},
		{"../escape", ".._escape"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeLabel(tt.in), "sanitizeLabel(%q)", tt.in)
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(1, 1, color.NRGBA{R: 0xD2, G: 0xFF, A: 0xFF})
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, writePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 2, 2), got.Bounds())
	r, g, _, _ := got.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xD2D2), r)
	assert.Equal(t, uint32(0xFFFF), g)
}

func TestWritePNGBadPath(t *testing.T) {
	err := writePNG(filepath.Join(t.TempDir(), "missing", "shot.png"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.Error(t, err)
}
