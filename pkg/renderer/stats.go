package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int           // Image width
	Height      int           // Image height
	TotalPixels int           // Total number of pixels rendered
	TotalTime   time.Duration // Wall time of the whole render
	Workers     []WorkerStats // One entry per render task, by task index
}

// WorkerStats contains what one render task did
type WorkerStats struct {
	Worker   int           // Task index, also its first row
	Rows     int           // Rows owned by the task
	Pixels   int           // Pixels written by the task
	Duration time.Duration // Time the task spent rendering
}

// PixelsPerSecond returns the overall render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.TotalTime <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.TotalTime.Seconds()
}

// Progress is a snapshot of a running render
type Progress struct {
	PixelsDone  int     // Pixels finished by all tasks
	TotalPixels int     // Pixels in the image
	TasksDone   int     // Tasks that have finished
	Tasks       int     // Tasks in the render
	Percent     float64 // PixelsDone as a percentage of TotalPixels
}
