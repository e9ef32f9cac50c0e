package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/integrator"
)

// rowTask renders every stride-th row starting at row id. Tasks never share
// rows, so they write to the sink without coordination.
type rowTask struct {
	id     int
	stride int
	width  int
	height int

	// Written only by the task, read by the progress poller
	pixelsDone atomic.Int64
	done       atomic.Bool

	// Valid once the task has finished
	duration time.Duration
}

// newRowTasks partitions an image among count tasks
func newRowTasks(count, width, height int) []*rowTask {
	tasks := make([]*rowTask, count)
	for i := range tasks {
		tasks[i] = &rowTask{id: i, stride: count, width: width, height: height}
	}
	return tasks
}

// rows returns the number of rows the task owns
func (t *rowTask) rows() int {
	if t.id >= t.height {
		return 0
	}
	return (t.height-t.id-1)/t.stride + 1
}

// totalPixels returns the number of pixels the task owns
func (t *rowTask) totalPixels() int {
	return t.rows() * t.width
}

// run traces every pixel of the task's rows into sink. A panic while tracing
// ends the task and is returned as ErrWorkerFailed.
func (t *rowTask) run(camera *Camera, tracer integrator.Integrator, sink ImageSink, depth int) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: task %d: %v", ErrWorkerFailed, t.id, r)
		}
		t.duration = time.Since(start)
		t.done.Store(true)
	}()

	for y := t.id; y < t.height; y += t.stride {
		for x := 0; x < t.width; x++ {
			background := Background(x, y, t.width, t.height)
			color := tracer.RayColor(camera.Ray(x, y), background, depth).Clamp(0, 1)
			sink.Set(x, y, Red, color.X)
			sink.Set(x, y, Green, color.Y)
			sink.Set(x, y, Blue, color.Z)

			t.pixelsDone.Add(1)
		}
	}
	return nil
}

// Background returns the color seen by primary rays that miss: it fades out
// toward the right and the bottom of the image
func Background(x, y, width, height int) core.Vec3 {
	return core.NewVec3(1-float64(x)/float64(width), 1-float64(y)/float64(height), 0)
}

// stats returns the task's statistics
func (t *rowTask) stats() WorkerStats {
	return WorkerStats{
		Worker:   t.id,
		Rows:     t.rows(),
		Pixels:   int(t.pixelsDone.Load()),
		Duration: t.duration,
	}
}

// progress aggregates the published progress of every task
func progress(tasks []*rowTask, totalPixels int) Progress {
	p := Progress{TotalPixels: totalPixels, Tasks: len(tasks)}
	for _, task := range tasks {
		p.PixelsDone += int(task.pixelsDone.Load())
		if task.done.Load() {
			p.TasksDone++
		}
	}
	if totalPixels > 0 {
		p.Percent = 100 * float64(p.PixelsDone) / float64(totalPixels)
	}
	return p
}
