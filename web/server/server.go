package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-scenegraph-raytracer/pkg/loaders"
	"github.com/df07/go-scenegraph-raytracer/pkg/log"
	"github.com/df07/go-scenegraph-raytracer/pkg/renderer"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// Request limits
const (
	minImageSize = 1
	maxImageSize = 2000
	maxWorkers   = 256
	maxDepth     = 16
)

var logger = log.New("server")

// Server handles web requests for the ray tracer
type Server struct {
	port     int
	sceneDir string
}

// NewServer creates a new web server. Scene names in requests resolve to
// built-in scenes or to scene files in sceneDir.
func NewServer(port int, sceneDir string) *Server {
	return &Server{port: port, sceneDir: sceneDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name or scene file
	Width   int    `json:"width"`   // Image width, 0 keeps the scene's
	Height  int    `json:"height"`  // Image height, 0 keeps the scene's
	Workers int    `json:"workers"` // Render tasks, 0 for one per CPU
	Depth   int    `json:"depth"`   // Reflection bounces
	Format  string `json:"format"`  // Image format extension for /api/image
}

// Stats represents render statistics
type Stats struct {
	Width           int     `json:"width"`
	Height          int     `json:"height"`
	TotalPixels     int     `json:"totalPixels"`
	Workers         int     `json:"workers"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

func newStats(stats renderer.RenderStats) Stats {
	return Stats{
		Width:           stats.Width,
		Height:          stats.Height,
		TotalPixels:     stats.TotalPixels,
		Workers:         len(stats.Workers),
		ElapsedMs:       stats.TotalTime.Milliseconds(),
		PixelsPerSecond: stats.PixelsPerSecond(),
	}
}

// Handler returns the API routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/image", s.handleImage)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and scene files
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.sceneDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, err := s.resolveScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	config := renderer.DefaultConfig()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":  sceneName,
		"name":   sceneObj.Name,
		"nodes":  sceneObj.GetNodeCount(),
		"lights": len(sceneObj.Lights),
		"defaults": map[string]interface{}{
			"width":   sceneObj.Width,
			"height":  sceneObj.Height,
			"workers": config.Workers,
			"depth":   config.MaxDepth,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":  map[string]int{"min": minImageSize, "max": maxImageSize},
			"workers": map[string]int{"min": 0, "max": maxWorkers},
			"depth":   map[string]int{"min": 0, "max": maxDepth},
		},
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	defaults := renderer.DefaultConfig()

	req := &RenderRequest{Scene: query.Get("scene"), Format: query.Get("format")}
	if req.Scene == "" {
		req.Scene = "default"
	}
	if req.Format == "" {
		req.Format = "png"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(query, "workers", defaults.Workers, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", defaults.MaxDepth, 0, maxDepth); err != nil {
		return nil, err
	}
	return req, nil
}

// loadScene resolves the requested scene and applies the size overrides
func (s *Server) loadScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := s.resolveScene(req.Scene)
	if err != nil {
		return nil, err
	}
	if req.Width > 0 {
		sceneObj.Width = req.Width
	}
	if req.Height > 0 {
		sceneObj.Height = req.Height
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	return sceneObj, nil
}

// resolveScene accepts only the scenes listed by /api/scenes: built-in ids,
// and scene files in sceneDir by id or by file name without extension.
// Other paths are never opened.
func (s *Server) resolveScene(name string) (*scene.Scene, error) {
	if builtin, err := scene.NewBuiltin(name); err == nil {
		return builtin, nil
	}

	files, err := scene.ListYAMLScenes(s.sceneDir)
	if err != nil {
		return nil, err
	}
	for _, info := range files {
		stem := strings.TrimSuffix(filepath.Base(info.FilePath), filepath.Ext(info.FilePath))
		if name == info.ID || name == stem {
			return loaders.LoadScene(info.FilePath)
		}
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warningf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
