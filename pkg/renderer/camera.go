package renderer

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// Camera generates primary rays through the pixels of an image
type Camera struct {
	eye               core.Vec3
	inverseProjection core.Mat4 // Pixel (x, y, 0) to its point on the image plane in world space
}

// NewCamera builds the pixel-to-world transform for an image of the given
// size. The image plane sits |view| in front of the eye and spans the
// vertical field of view.
func NewCamera(desc scene.Camera, width, height int) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImage, width, height)
	}
	if desc.FovY <= 0 || desc.FovY >= 180 {
		return nil, fmt.Errorf("%w: field of view %g must be in (0, 180)", ErrInvalidCamera, desc.FovY)
	}

	distance := desc.View.Length()
	if distance == 0 {
		return nil, fmt.Errorf("%w: zero view direction", ErrInvalidCamera)
	}
	side := desc.Up.Cross(desc.View)
	if side.Length() == 0 {
		return nil, fmt.Errorf("%w: up %v is parallel to view %v", ErrInvalidCamera, desc.Up, desc.View)
	}

	// Camera basis with w along the view
	u := side.Normalize()
	v := desc.View.Cross(u).Normalize()
	w := desc.View.Normalize()
	rotation := mgl64.Mat4FromCols(u.Vec4(0), v.Vec4(0), w.Vec4(0), mgl64.Vec4{0, 0, 0, 1})

	planeHeight := 2 * distance * math.Tan(desc.FovY*math.Pi/360)
	pixelSize := planeHeight / float64(height)

	// Center the pixel grid on the view axis, flip both axes so x grows to
	// the right and y grows downward, then orient and place it in the world
	inverseProjection := core.Translation(desc.Eye).
		Mul4(rotation).
		Mul4(core.Scaling(core.NewVec3(-pixelSize, -pixelSize, 1))).
		Mul4(core.Translation(core.NewVec3(-float64(width)/2, -float64(height)/2, distance)))

	return &Camera{
		eye:               desc.Eye,
		inverseProjection: inverseProjection,
	}, nil
}

// Ray returns the primary ray from the eye through pixel (x, y)
func (c *Camera) Ray(x, y int) core.Ray {
	pixel := core.TransformPoint(c.inverseProjection, core.NewVec3(float64(x), float64(y), 0))
	return core.NewRay(c.eye, pixel.Subtract(c.eye))
}

