package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
)

// ShadowBias is how far shadow and reflection rays start off the surface,
// along its normal
const ShadowBias = 0.01

// WhittedIntegrator shades hits with the Phong model: ambient light, direct
// light from every unoccluded point light, and a mirror reflection bounce
type WhittedIntegrator struct {
	root    Intersector
	ambient core.Vec3
	lights  []lights.PointLight
}

// NewWhittedIntegrator creates a Whitted integrator over a scene root
func NewWhittedIntegrator(root Intersector, ambient core.Vec3, pointLights []lights.PointLight) *WhittedIntegrator {
	return &WhittedIntegrator{
		root:    root,
		ambient: ambient,
		lights:  pointLights,
	}
}

// RayColor computes the color seen along ray. A hit without a material is a
// broken scene and panics.
func (w *WhittedIntegrator) RayColor(ray core.Ray, background core.Vec3, depth int) core.Vec3 {
	hit, isHit := w.root.Intersect(ray)
	if !isHit {
		return background
	}
	if hit.Material == nil {
		panic(fmt.Sprintf("integrator: hit at %v has no material", hit.Point))
	}

	// Secondary rays leave from just above the surface
	offset := hit.Point.Add(hit.Normal.Multiply(ShadowBias))

	color := w.ambient.MultiplyVec(hit.Material.Diffuse())
	for _, light := range w.lights {
		if w.occluded(offset, light) {
			continue
		}
		color = color.Add(w.directLight(ray, hit, light))
	}

	// Mirror reflection, averaged over the lights
	if depth > 0 && len(w.lights) > 0 {
		reflected := core.NewRay(offset, ray.Direction.Reflect(hit.Normal))
		reflectedColor := w.RayColor(reflected, core.Vec3{}, depth-1)
		weight := 1.0 / float64(len(w.lights))
		color = color.Add(reflectedColor.MultiplyVec(hit.Material.Specular()).Multiply(weight))
	}

	return color
}

// occluded casts a shadow ray from origin toward the light. Any hit whose
// distance differs from the light's distance blocks the light.
func (w *WhittedIntegrator) occluded(origin core.Vec3, light lights.PointLight) bool {
	shadowRay := core.NewRay(origin, light.Position.Subtract(origin))
	blocker, isHit := w.root.Intersect(shadowRay)
	if !isHit {
		return false
	}

	blockerDistance := blocker.Distance(origin)
	lightDistance := light.Position.Distance(origin)
	return math.Abs(lightDistance-blockerDistance) > core.MachineEpsilon
}

// directLight returns the diffuse and specular Phong terms of one light at
// the hit point
func (w *WhittedIntegrator) directLight(ray core.Ray, hit core.Intersection, light lights.PointLight) core.Vec3 {
	toLight := light.Position.Subtract(hit.Point)
	distance := toLight.Length()
	toLight = toLight.Normalize()

	radiance := light.Radiance(distance)
	mat := hit.Material

	diffuseBrightness := math.Max(0, hit.Normal.Dot(toLight))
	diffuse := mat.Diffuse().MultiplyVec(radiance).Multiply(diffuseBrightness)

	// No highlight on surfaces facing away from the light
	if diffuseBrightness <= 0 {
		return diffuse
	}

	reflected := toLight.Negate().Reflect(hit.Normal).Normalize()
	toViewer := ray.Origin.Subtract(hit.Point).Normalize()
	specularBrightness := math.Pow(math.Max(0, toViewer.Dot(reflected)), mat.Shininess())
	specular := mat.Specular().MultiplyVec(radiance).Multiply(specularBrightness)

	return diffuse.Add(specular)
}
