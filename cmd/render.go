package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-scenegraph-raytracer/pkg/loaders"
	"github.com/df07/go-scenegraph-raytracer/pkg/renderer"
)

// RenderFlags are the flags accepted by the render command
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name, scene file path or name of a file in --scene-dir",
	},
	cli.StringFlag{
		Name:  "scene-dir",
		Value: "scenes",
		Usage: "directory searched for scene files",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width, overrides the scene",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height, overrides the scene",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Value: renderer.DefaultConfig().Workers,
		Usage: "number of render tasks, 0 for one per CPU",
	},
	cli.IntFlag{
		Name:  "depth, d",
		Value: renderer.DefaultConfig().MaxDepth,
		Usage: "reflection bounces per primary ray",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename (png, bmp or tiff); defaults to output/<scene>/render_<timestamp>.png",
	},
}

// RenderScene renders a single frame and writes it to disk
func RenderScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	s, err := loaders.ResolveScene(ctx.String("scene"), ctx.String("scene-dir"))
	if err != nil {
		return err
	}
	if ctx.IsSet("width") {
		s.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		s.Height = ctx.Int("height")
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("scene %q: %w", s.Name, err)
	}

	config := renderer.DefaultConfig()
	config.Workers = ctx.Int("workers")
	config.MaxDepth = ctx.Int("depth")
	if config.MaxDepth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", config.MaxDepth)
	}

	out := ctx.String("out")
	if out == "" {
		out = defaultOutputPath(s.Name, time.Now())
	}
	if !slices.Contains(loaders.SupportedFormats(), strings.ToLower(filepath.Ext(out))) {
		return fmt.Errorf("%w: %s", loaders.ErrUnsupportedFormat, out)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Interrupts only stop progress reporting, the frame is still finished
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img := renderer.NewImage(s.Width, s.Height)
	stats, err := renderer.NewRaytracer(s, config, logger).Render(renderCtx, img)
	if err != nil {
		return err
	}

	if err := loaders.SaveImage(out, img); err != nil {
		return err
	}

	displayRenderStats(stats)
	logger.Noticef("render saved as %s", out)
	return nil
}

func defaultOutputPath(sceneName string, now time.Time) string {
	dir := strings.ReplaceAll(strings.ToLower(sceneName), " ", "-")
	if dir == "" {
		dir = "scene"
	}
	return filepath.Join("output", dir, fmt.Sprintf("render_%s.png", now.Format("20060102_150405")))
}

func displayRenderStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	writeRenderStats(&buf, stats)
	logger.Noticef("frame statistics\n%s", buf.String())
}

func writeRenderStats(buf *bytes.Buffer, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "Pixels", "% of frame", "Render time"})
	for _, worker := range stats.Workers {
		percent := 0.0
		if stats.TotalPixels > 0 {
			percent = 100 * float64(worker.Pixels) / float64(stats.TotalPixels)
		}
		table.Append([]string{
			fmt.Sprintf("%d", worker.Worker),
			fmt.Sprintf("%d", worker.Rows),
			fmt.Sprintf("%d", worker.Pixels),
			fmt.Sprintf("%02.1f %%", percent),
			worker.Duration.String(),
		})
	}
	table.SetFooter([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		"",
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%.0f px/s", stats.PixelsPerSecond()),
		stats.TotalTime.String(),
	})

	table.Render()
}
