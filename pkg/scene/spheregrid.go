package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, cubed
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of unit spheres. Every row is a group
// node translated into place, so each sphere is positioned by two levels of
// transforms.
func NewSphereGridScene() *Scene {
	const (
		gridSize = 8
		spacing  = 2.5
	)

	b := NewBuilder()
	root := b.Group("root")
	sphere := geometry.NewUnitSphere() // Shared by every sphere node

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	offset := -spacing * float64(gridSize-1) / 2
	for i := 0; i < gridSize; i++ {
		row := b.Group(fmt.Sprintf("row%d", i))
		row.Translate(core.NewVec3(0, 0, offset+float64(i)*spacing))

		for j := 0; j < gridSize; j++ {
			// Hue varies across the row, chroma across rows
			hue := (float64(j) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(i)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			mat := material.NewPhong(color, core.NewVec3(0.3, 0.3, 0.3), 40)
			node := b.Geometry(fmt.Sprintf("sphere%d_%d", i, j), sphere, mat)
			node.Translate(core.NewVec3(offset+float64(j)*spacing, 0, 0))
			must(row.AddChild(node))
		}
		must(root.AddChild(row))
	}

	return &Scene{
		Name: "spheregrid",
		Root: root,
		Camera: Camera{
			Eye:  core.NewVec3(0, 14, 18),
			View: core.NewVec3(0, -14, -18),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 45,
		},
		Ambient: core.NewVec3(0.2, 0.2, 0.2),
		Lights: []lights.PointLight{
			lights.NewPointLight(core.NewVec3(10, 20, 10), core.NewVec3(1, 0.95, 0.9), [3]float64{1, 0, 0.0005}),
		},
		Width:  640,
		Height: 480,
	}
}
