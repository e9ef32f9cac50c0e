package renderer

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/lights"
	"github.com/df07/go-scenegraph-raytracer/pkg/log"
	"github.com/df07/go-scenegraph-raytracer/pkg/material"
	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

var testLogger = log.New("renderer-test")

func testConfig(workers int) Config {
	config := DefaultConfig()
	config.Workers = workers
	config.ProgressInterval = time.Millisecond
	return config
}

func TestRender_EmptySceneIsBackgroundGradient(t *testing.T) {
	s := scene.NewEmptyScene()
	img := NewImage(16, 12)

	stats, err := NewRaytracer(s, testConfig(3), testLogger).Render(context.Background(), img)
	require.NoError(t, err)
	assert.Equal(t, 16*12, stats.TotalPixels)

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			expected := core.NewVec3(1-float64(x)/16, 1-float64(y)/12, 0)
			assert.Equal(t, expected, img.Pixel(x, y), "pixel (%d, %d)", x, y)
		}
	}
}

func TestRender_SameImageForAnyWorkerCount(t *testing.T) {
	s := scene.NewDefaultScene()

	reference := NewImage(40, 30)
	_, err := NewRaytracer(s, testConfig(1), testLogger).Render(context.Background(), reference)
	require.NoError(t, err)

	for _, workers := range []int{2, 7, 64} {
		img := NewImage(40, 30)
		stats, err := NewRaytracer(s, testConfig(workers), testLogger).Render(context.Background(), img)
		require.NoError(t, err)
		assert.Equal(t, reference.pixels, img.pixels, "%d workers", workers)
		assert.LessOrEqual(t, len(stats.Workers), 30, "never more tasks than rows")
	}
}

func TestRender_ShadesCenterPixel(t *testing.T) {
	b := scene.NewBuilder()
	root := b.Group("root")
	kd := core.NewVec3(0.6, 0.4, 0.2)
	require.NoError(t, root.AddChild(b.Geometry("sphere", geometry.NewUnitSphere(), material.NewPhong(kd, core.Vec3{}, 1))))

	s := &scene.Scene{
		Name: "pole",
		Root: root,
		Camera: scene.Camera{
			Eye:  core.NewVec3(0, 0, 5),
			View: core.NewVec3(0, 0, -5),
			Up:   core.NewVec3(0, 1, 0),
			FovY: 30,
		},
		Lights: []lights.PointLight{lights.NewUnattenuatedLight(core.NewVec3(0, 0, 5), core.NewVec3(1, 1, 1))},
		Width:  20,
		Height: 20,
	}
	img := NewImage(s.Width, s.Height)
	_, err := NewRaytracer(s, testConfig(4), testLogger).Render(context.Background(), img)
	require.NoError(t, err)

	// The centre ray hits the pole facing the light
	center := img.Pixel(10, 10)
	assert.True(t, center.ApproxEqual(kd, 1e-6), "expected %v, got %v", kd, center)

	// The corner ray misses and shows the background
	assert.Equal(t, core.NewVec3(1, 1, 0), img.Pixel(0, 0))
}

func TestRender_ProgressReachesCompletion(t *testing.T) {
	var mu sync.Mutex
	var reports []Progress

	config := testConfig(4)
	config.ProgressFunc = func(p Progress) {
		mu.Lock()
		defer mu.Unlock()
		reports = append(reports, p)
	}

	img := NewImage(32, 32)
	_, err := NewRaytracer(scene.NewDefaultScene(), config, testLogger).Render(context.Background(), img)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, reports)

	last := reports[len(reports)-1]
	assert.Equal(t, 100.0, last.Percent)
	assert.Equal(t, 32*32, last.PixelsDone)
	assert.Equal(t, last.Tasks, last.TasksDone)

	for i := 1; i < len(reports); i++ {
		assert.GreaterOrEqual(t, reports[i].PixelsDone, reports[i-1].PixelsDone, "progress never goes back")
	}
}

// panickingSink fails on one pixel
type panickingSink struct {
	*Image
	x, y int
}

func (s panickingSink) Set(x, y int, channel Channel, value float64) {
	if x == s.x && y == s.y {
		panic("sink failure")
	}
	s.Image.Set(x, y, channel, value)
}

func TestRender_WorkerPanicIsAnError(t *testing.T) {
	sink := panickingSink{Image: NewImage(8, 8), x: 3, y: 5}

	stats, err := NewRaytracer(scene.NewEmptyScene(), testConfig(4), testLogger).Render(context.Background(), sink)
	assert.ErrorIs(t, err, ErrWorkerFailed)
	assert.Len(t, stats.Workers, 4)

	// Only the task owning row 5 stops early
	assert.Less(t, stats.Workers[1].Pixels, stats.Workers[1].Rows*8)
	assert.Equal(t, stats.Workers[0].Rows*8, stats.Workers[0].Pixels)
}

// countingSink counts writes
type countingSink struct {
	width, height int
	writes        atomic.Int64
}

func (s *countingSink) Width() int { return s.width }

func (s *countingSink) Height() int { return s.height }

func (s *countingSink) Set(int, int, Channel, float64) { s.writes.Add(1) }

func TestRender_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := &countingSink{width: 4, height: 4}
	_, err := NewRaytracer(scene.NewEmptyScene(), testConfig(2), testLogger).Render(ctx, sink)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sink.writes.Load())
}

func TestRender_CancelDuringRenderStillCompletes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config := testConfig(2)
	var once sync.Once
	config.ProgressFunc = func(Progress) { once.Do(cancel) }

	sink := &countingSink{width: 64, height: 64}
	_, err := NewRaytracer(scene.NewDefaultScene(), config, testLogger).Render(ctx, sink)
	require.NoError(t, err)
	assert.Equal(t, int64(3*64*64), sink.writes.Load())
}

func TestRender_InvalidInputs(t *testing.T) {
	b := scene.NewBuilder()
	broken := scene.NewEmptyScene()
	require.NoError(t, broken.Root.AddChild(b.Geometry("bare", geometry.NewUnitSphere(), nil)))

	_, err := NewRaytracer(broken, testConfig(2), testLogger).Render(context.Background(), NewImage(4, 4))
	assert.ErrorIs(t, err, scene.ErrMissingMaterial)

	_, err = NewRaytracer(scene.NewEmptyScene(), testConfig(2), testLogger).Render(context.Background(), NewImage(0, 4))
	assert.ErrorIs(t, err, ErrInvalidImage)

	badCamera := scene.NewEmptyScene()
	badCamera.Camera.FovY = 0
	_, err = NewRaytracer(badCamera, testConfig(2), testLogger).Render(context.Background(), NewImage(4, 4))
	assert.ErrorIs(t, err, ErrInvalidCamera)
}
