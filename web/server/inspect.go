package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/integrator"
	"github.com/df07/go-scenegraph-raytracer/pkg/renderer"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection
type InspectResponse struct {
	Hit       bool                   `json:"hit"`
	Point     [3]float64             `json:"point"`
	Normal    [3]float64             `json:"normal"`
	Distance  float64                `json:"distance"`
	FrontFace bool                   `json:"frontFace"`
	Color     [3]float64             `json:"color"` // Shaded pixel value
	Material  map[string]interface{} `json:"material,omitempty"`
}

// extractMaterialInfo extracts the Phong coefficients of a material
func extractMaterialInfo(mat core.Material) map[string]interface{} {
	kd, ks := mat.Diffuse(), mat.Specular()
	swatch := kd.Clamp(0, 1).Multiply(255)
	return map[string]interface{}{
		"kd":        [3]float64{kd.X, kd.Y, kd.Z},
		"ks":        [3]float64{ks.X, ks.Y, ks.Z},
		"shininess": mat.Shininess(),
		"color":     fmt.Sprintf("#%02x%02x%02x", int(swatch.X), int(swatch.Y), int(swatch.Z)),
	}
}

// inspectPixel casts the primary ray of a pixel and describes the nearest
// surface it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY, depth int) (InspectResponse, error) {
	camera, err := renderer.NewCamera(sceneObj.Camera, sceneObj.Width, sceneObj.Height)
	if err != nil {
		return InspectResponse{}, err
	}
	ray := camera.Ray(pixelX, pixelY)

	tracer := integrator.NewWhittedIntegrator(sceneObj.Root, sceneObj.Ambient, sceneObj.Lights)
	background := renderer.Background(pixelX, pixelY, sceneObj.Width, sceneObj.Height)
	color := tracer.RayColor(ray, background, depth).Clamp(0, 1)

	response := InspectResponse{Color: [3]float64{color.X, color.Y, color.Z}}

	hit, ok := sceneObj.Root.Intersect(ray)
	if !ok {
		return response, nil
	}

	response.Hit = true
	response.Point = [3]float64{hit.Point.X, hit.Point.Y, hit.Point.Z}
	response.Normal = [3]float64{hit.Normal.X, hit.Normal.Y, hit.Normal.Z}
	response.Distance = hit.Distance(ray.Origin)
	response.FrontFace = hit.Normal.Dot(ray.Direction) < 0
	if hit.Material != nil {
		response.Material = extractMaterialInfo(hit.Material)
	}
	return response, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid scene parameters: %w", err))
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid x coordinate"))
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid y coordinate"))
		return
	}

	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, errors.New("pixel coordinates out of bounds"))
		return
	}

	response, err := inspectPixel(sceneObj, pixelX, pixelY, req.Depth)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
