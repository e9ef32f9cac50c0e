package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

// Channel selects one color component of a pixel
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// ImageSink receives rendered pixel values. Render tasks write disjoint
// pixels concurrently, so Set must be safe for that.
type ImageSink interface {
	Width() int
	Height() int
	Set(x, y int, channel Channel, value float64)
}

// Image is an in-memory RGB image with float channels in [0, 1]. It is an
// ImageSink for the renderer and an image.Image for encoders.
type Image struct {
	width  int
	height int
	pixels []float64 // Row-major, three channels per pixel
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pixels: make([]float64, 3*width*height),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Set stores one channel of pixel (x, y)
func (img *Image) Set(x, y int, channel Channel, value float64) {
	img.pixels[3*(y*img.width+x)+int(channel)] = value
}

// Pixel returns the color of pixel (x, y)
func (img *Image) Pixel(x, y int) core.Vec3 {
	i := 3 * (y*img.width + x)
	return core.NewVec3(img.pixels[i], img.pixels[i+1], img.pixels[i+2])
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBA64Model
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image, clamping each channel to [0, 1]
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return color.RGBA64{}
	}

	c := img.Pixel(x, y).Clamp(0, 1)
	return color.RGBA64{
		R: uint16(c.X*0xffff + 0.5),
		G: uint16(c.Y*0xffff + 0.5),
		B: uint16(c.Z*0xffff + 0.5),
		A: 0xffff,
	}
}
