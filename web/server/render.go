package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/df07/go-scenegraph-raytracer/pkg/loaders"
	"github.com/df07/go-scenegraph-raytracer/pkg/renderer"
)

// ProgressUpdate is sent via SSE while a render runs
type ProgressUpdate struct {
	Percent    float64 `json:"percent"`
	PixelsDone int     `json:"pixelsDone"`
	TasksDone  int     `json:"tasksDone"`
	Tasks      int     `json:"tasks"`
}

// CompleteUpdate is the last SSE event of a successful render
type CompleteUpdate struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
}

// handleRender renders a frame and streams progress with SSE, ending with a
// complete event that carries the image. A client disconnect stops the
// progress events but the frame is still finished.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}
	sceneObj, err := s.loadScene(req)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid scene: %v", err))
		return
	}

	config := renderer.DefaultConfig()
	config.Workers = req.Workers
	config.MaxDepth = req.Depth
	config.ProgressFunc = func(p renderer.Progress) {
		s.sendSSEUpdate(w, "progress", ProgressUpdate{
			Percent:    p.Percent,
			PixelsDone: p.PixelsDone,
			TasksDone:  p.TasksDone,
			Tasks:      p.Tasks,
		})
	}

	img := renderer.NewImage(sceneObj.Width, sceneObj.Height)
	stats, err := renderer.NewRaytracer(sceneObj, config, logger).Render(r.Context(), img)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, ".png", img); err != nil {
		s.sendSSEError(w, fmt.Sprintf("failed to encode image: %v", err))
		return
	}
	s.sendSSEUpdate(w, "complete", CompleteUpdate{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		Stats:     newStats(stats),
	})
}

// handleImage renders a frame and responds with the encoded image
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	contentType, ok := contentTypes[req.Format]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", loaders.ErrUnsupportedFormat, req.Format))
		return
	}
	sceneObj, err := s.loadScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	config := renderer.DefaultConfig()
	config.Workers = req.Workers
	config.MaxDepth = req.Depth

	img := renderer.NewImage(sceneObj.Width, sceneObj.Height)
	if _, err := renderer.NewRaytracer(sceneObj, config, logger).Render(r.Context(), img); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, "."+req.Format, img); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// sendSSEUpdate sends a JSON encoded SSE event
func (s *Server) sendSSEUpdate(w http.ResponseWriter, event string, update interface{}) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, event, string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	logger.Warningf("render request failed: %s", message)
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
