package renderer

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

func defaultCameraDesc() scene.Camera {
	return scene.Camera{
		Eye:  core.NewVec3(0, 0, 5),
		View: core.NewVec3(0, 0, -5),
		Up:   core.NewVec3(0, 1, 0),
		FovY: 60,
	}
}

func TestCamera_CenterPixelLooksAlongView(t *testing.T) {
	tests := []struct {
		name string
		desc scene.Camera
	}{
		{"down -z", defaultCameraDesc()},
		{"oblique", scene.Camera{
			Eye:  core.NewVec3(1, 2, 3),
			View: core.NewVec3(-1, -0.5, -2),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 45,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera, err := NewCamera(tt.desc, 100, 80)
			if err != nil {
				t.Fatalf("NewCamera failed: %v", err)
			}

			ray := camera.Ray(50, 40)
			if !ray.Origin.ApproxEqual(tt.desc.Eye, 1e-12) {
				t.Errorf("Expected origin %v, got %v", tt.desc.Eye, ray.Origin)
			}
			expected := tt.desc.View.Normalize()
			if !ray.Direction.ApproxEqual(expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", expected, ray.Direction)
			}
		})
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	camera, err := NewCamera(defaultCameraDesc(), 100, 100)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// Pixel (0, 0) is the top left corner of the image
	topLeft := camera.Ray(0, 0).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top left ray to point left and up, got %v", topLeft)
	}

	bottomRight := camera.Ray(99, 99).Direction
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected bottom right ray to point right and down, got %v", bottomRight)
	}
}

func TestCamera_VerticalFieldOfView(t *testing.T) {
	desc := defaultCameraDesc()
	camera, err := NewCamera(desc, 64, 48)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// The top edge of the image is half the field of view above the axis
	top := camera.Ray(32, 0).Direction
	angle := math.Acos(top.Dot(desc.View.Normalize())) * 180 / math.Pi
	if math.Abs(angle-desc.FovY/2) > 1e-9 {
		t.Errorf("Expected %g degrees above the view axis, got %g", desc.FovY/2, angle)
	}
}

func TestNewCamera_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*scene.Camera)
		width    int
		height   int
		expected error
	}{
		{"zero width", func(*scene.Camera) {}, 0, 10, ErrInvalidImage},
		{"negative height", func(*scene.Camera) {}, 10, -1, ErrInvalidImage},
		{"zero view", func(c *scene.Camera) { c.View = core.Vec3{} }, 10, 10, ErrInvalidCamera},
		{"up parallel to view", func(c *scene.Camera) { c.Up = core.NewVec3(0, 0, 2) }, 10, 10, ErrInvalidCamera},
		{"zero fov", func(c *scene.Camera) { c.FovY = 0 }, 10, 10, ErrInvalidCamera},
		{"straight angle fov", func(c *scene.Camera) { c.FovY = 180 }, 10, 10, ErrInvalidCamera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := defaultCameraDesc()
			tt.modify(&desc)

			_, err := NewCamera(desc, tt.width, tt.height)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}
