package renderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

func TestImage_SetAndPixel(t *testing.T) {
	img := NewImage(3, 2)
	img.Set(2, 1, Red, 0.25)
	img.Set(2, 1, Green, 0.5)
	img.Set(2, 1, Blue, 0.75)

	if got := img.Pixel(2, 1); got != core.NewVec3(0.25, 0.5, 0.75) {
		t.Errorf("Expected (0.25, 0.5, 0.75), got %v", got)
	}
	if got := img.Pixel(1, 1); got != (core.Vec3{}) {
		t.Errorf("Expected untouched pixel to stay black, got %v", got)
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	var _ image.Image = NewImage(1, 1)

	img := NewImage(4, 3)
	if img.Bounds() != image.Rect(0, 0, 4, 3) {
		t.Errorf("Expected bounds 4x3, got %v", img.Bounds())
	}

	img.Set(1, 1, Red, 1.5) // Clamped on read
	img.Set(1, 1, Green, -1)
	img.Set(1, 1, Blue, 0.5)

	got := img.At(1, 1).(color.RGBA64)
	expected := color.RGBA64{R: 0xffff, G: 0, B: 0x8000, A: 0xffff}
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}

	if outside := img.At(10, 10); outside != (color.RGBA64{}) {
		t.Errorf("Expected transparent outside the bounds, got %v", outside)
	}
}
