package loaders

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// testImage is a 2x2 image with white, red, green and blue pixels
func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})
	return img
}

func TestSaveImage_RoundTrip(t *testing.T) {
	expected := map[[2]int]core.Vec3{
		{0, 0}: core.NewVec3(1, 1, 1),
		{1, 0}: core.NewVec3(1, 0, 0),
		{0, 1}: core.NewVec3(0, 1, 0),
		{1, 1}: core.NewVec3(0, 0, 1),
	}

	for _, ext := range SupportedFormats() {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out"+ext)
			require.NoError(t, SaveImage(path, testImage()))

			data, err := LoadImage(path)
			require.NoError(t, err)
			require.Equal(t, 2, data.Width)
			require.Equal(t, 2, data.Height)

			for xy, want := range expected {
				got := data.At(xy[0], xy[1])
				assert.True(t, got.ApproxEqual(want, 0.01), "pixel %v: expected %v, got %v", xy, want, got)
			}
		})
	}
}

func TestSaveImage_ExtensionIsCaseInsensitive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "OUT.PNG")
	require.NoError(t, SaveImage(path, testImage()))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveImage_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out", "out.ppm"} {
		err := SaveImage(filepath.Join(dir, name), testImage())
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)

		_, statErr := os.Stat(filepath.Join(dir, name))
		assert.ErrorIs(t, statErr, os.ErrNotExist, "%s must not be created", name)
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadImage(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = LoadImage(garbage)
	assert.Error(t, err)
}
