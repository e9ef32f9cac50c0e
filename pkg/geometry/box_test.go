package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
)

func TestBox_FaceNormalsPointOutward(t *testing.T) {
	box := NewBox(core.NewVec3(1, 2, 3), 2)
	center := core.NewVec3(2, 3, 4)

	for i, face := range box.faces {
		toFace := face.points[0].Subtract(center)
		if toFace.Dot(face.normal) <= 0 {
			t.Errorf("Face %d normal %v does not point away from the center", i, face.normal)
		}
		if math.Abs(face.normal.Length()-1) > 1e-12 {
			t.Errorf("Face %d normal %v is not unit length", i, face.normal)
		}
	}
}

func TestBox_Intersect(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), 2)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectHit      bool
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{
			name:           "front face",
			origin:         core.NewVec3(0, 0, 5),
			direction:      core.NewVec3(0, 0, -1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face",
			origin:         core.NewVec3(0.5, 0.5, -5),
			direction:      core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0.5, 0.5, -1),
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "right face",
			origin:         core.NewVec3(5, 0.2, 0.3),
			direction:      core.NewVec3(-1, 0, 0),
			expectHit:      true,
			expectedPoint:  core.NewVec3(1, 0.2, 0.3),
			expectedNormal: core.NewVec3(1, 0, 0),
		},
		{
			name:           "left face",
			origin:         core.NewVec3(-5, 0, 0),
			direction:      core.NewVec3(1, 0, 0),
			expectHit:      true,
			expectedPoint:  core.NewVec3(-1, 0, 0),
			expectedNormal: core.NewVec3(-1, 0, 0),
		},
		{
			name:           "top face",
			origin:         core.NewVec3(0, 5, 0),
			direction:      core.NewVec3(0, -1, 0),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 1, 0),
			expectedNormal: core.NewVec3(0, 1, 0),
		},
		{
			name:           "bottom face",
			origin:         core.NewVec3(0, -5, 0),
			direction:      core.NewVec3(0, 1, 0),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, -1, 0),
			expectedNormal: core.NewVec3(0, -1, 0),
		},
		{
			name:           "inside hits the far face",
			origin:         core.NewVec3(0, 0, 0),
			direction:      core.NewVec3(0, 0, 1),
			expectHit:      true,
			expectedPoint:  core.NewVec3(0, 0, 1),
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:      "miss to the side",
			origin:    core.NewVec3(3, 0, 5),
			direction: core.NewVec3(0, 0, -1),
			expectHit: false,
		},
		{
			name:      "pointing away",
			origin:    core.NewVec3(0, 0, 5),
			direction: core.NewVec3(0, 0, 1),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Intersect(core.NewRay(tt.origin, tt.direction))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}

			tolerance := 1e-9
			if !hit.Point.ApproxEqual(tt.expectedPoint, tolerance) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if !hit.Normal.ApproxEqual(tt.expectedNormal, tolerance) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestBox_Intersect_DiagonalPicksNearestFace(t *testing.T) {
	box := NewBox(core.NewVec3(0, 0, 0), 1)
	// Enters through the front face at z = 1, leaves through the right face at x = 1
	ray := core.NewRay(core.NewVec3(0.25, 0.5, 1.5), core.NewVec3(1, 0, -1))

	hit, isHit := box.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0.75, 0.5, 1), 1e-9) {
		t.Errorf("Expected entry at (0.75, 0.5, 1), got %v", hit.Point)
	}
	if !hit.Normal.ApproxEqual(core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected front face normal, got %v", hit.Normal)
	}
}

func TestUnitCube_SpansUnitInterval(t *testing.T) {
	cube := NewUnitCube()

	hit, isHit := cube.Intersect(core.NewRay(core.NewVec3(0.5, 0.5, 3), core.NewVec3(0, 0, -1)))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !hit.Point.ApproxEqual(core.NewVec3(0.5, 0.5, 1), 1e-9) {
		t.Errorf("Expected hit at (0.5, 0.5, 1), got %v", hit.Point)
	}

	if _, isHit := cube.Intersect(core.NewRay(core.NewVec3(-0.5, 0.5, 3), core.NewVec3(0, 0, -1))); isHit {
		t.Error("Expected miss outside [0, 1]")
	}
}
