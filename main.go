package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-scenegraph-raytracer/cmd"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "sgtrace"
	app.Usage = "render hierarchical scenes with a recursive ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "level spec such as \"warning,server=info,loaders=debug\"",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a YAML scene file with one primary ray per pixel,
Phong shading, hard shadows and mirror reflections. The frame is written as
PNG, BMP or TIFF depending on the --out extension.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderScene,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene-dir",
					Value: "scenes",
					Usage: "directory searched for scene files",
				},
			},
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Description: `
Start an HTTP server with JSON endpoints for listing scenes and inspecting
pixels, an image endpoint and a server-sent events endpoint that streams
render progress followed by the finished frame.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "scene-dir",
					Value: "scenes",
					Usage: "directory searched for scene files",
				},
			},
			Action: cmd.Serve,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
