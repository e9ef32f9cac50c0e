package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-scenegraph-raytracer/pkg/integrator"
	"github.com/df07/go-scenegraph-raytracer/pkg/log"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Workers          int            // Number of render tasks, 0 means one per CPU
	MaxDepth         int            // Reflection bounces per primary ray
	ProgressInterval time.Duration  // How often progress is polled and reported
	ProgressFunc     func(Progress) // Optional, called from the polling goroutine
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Workers:          8,
		MaxDepth:         1,
		ProgressInterval: 100 * time.Millisecond,
	}
}

// Raytracer renders a scene into an image sink with a fixed pool of row
// tasks
type Raytracer struct {
	scene  *scene.Scene
	config Config
	logger log.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, config Config, logger log.Logger) *Raytracer {
	return &Raytracer{
		scene:  s,
		config: config,
		logger: logger,
	}
}

// workerCount resolves the configured worker count for an image height.
// There is never more than one task per row.
func (rt *Raytracer) workerCount(height int) int {
	workers := rt.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return min(workers, height)
}

// Render traces one primary ray per pixel of sink. Every pixel is written
// exactly once. A started render always runs to completion: ctx can only
// prevent the start and stop progress reporting.
func (rt *Raytracer) Render(ctx context.Context, sink ImageSink) (RenderStats, error) {
	width, height := sink.Width(), sink.Height()
	stats := RenderStats{Width: width, Height: height}

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if width <= 0 || height <= 0 {
		return stats, fmt.Errorf("%w: %dx%d", ErrInvalidImage, width, height)
	}
	if err := rt.scene.Validate(); err != nil {
		return stats, fmt.Errorf("invalid scene: %w", err)
	}

	camera, err := NewCamera(rt.scene.Camera, width, height)
	if err != nil {
		return stats, err
	}
	tracer := integrator.NewWhittedIntegrator(rt.scene.Root, rt.scene.Ambient, rt.scene.Lights)

	workers := rt.workerCount(height)
	tasks := newRowTasks(workers, width, height)
	stats.TotalPixels = width * height

	rt.logger.Infof("rendering %q at %dx%d with %d workers, depth %d",
		rt.scene.Name, width, height, workers, rt.config.MaxDepth)
	start := time.Now()

	var group errgroup.Group
	for _, task := range tasks {
		task := task
		group.Go(func() error {
			return task.run(camera, tracer, sink, rt.config.MaxDepth)
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- group.Wait()
	}()

	err = rt.pollProgress(ctx, tasks, stats.TotalPixels, waitErr)

	stats.TotalTime = time.Since(start)
	for _, task := range tasks {
		stats.Workers = append(stats.Workers, task.stats())
	}

	if err != nil {
		rt.logger.Errorf("render failed after %v: %v", stats.TotalTime, err)
		return stats, err
	}
	rt.logger.Noticef("rendered %d pixels in %v", stats.TotalPixels, stats.TotalTime)
	return stats, nil
}

// pollProgress reports progress every interval until the tasks finish and
// returns their combined error. Once ctx is done reporting stops but the
// wait goes on.
func (rt *Raytracer) pollProgress(ctx context.Context, tasks []*rowTask, totalPixels int, waitErr <-chan error) error {
	interval := rt.config.ProgressInterval
	if interval <= 0 {
		interval = DefaultConfig().ProgressInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := ticker.C
	ctxDone := ctx.Done()
	for {
		select {
		case err := <-waitErr:
			rt.reportProgress(progress(tasks, totalPixels))
			return err
		case <-tick:
			rt.reportProgress(progress(tasks, totalPixels))
		case <-ctxDone:
			rt.logger.Warningf("progress reporting stopped: %v", ctx.Err())
			tick, ctxDone = nil, nil
		}
	}
}

func (rt *Raytracer) reportProgress(p Progress) {
	rt.logger.Infof("progress %.1f%% (%d/%d tasks done)", p.Percent, p.TasksDone, p.Tasks)
	if rt.config.ProgressFunc != nil {
		rt.config.ProgressFunc(p)
	}
}
