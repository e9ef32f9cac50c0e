package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-scenegraph-raytracer/web/server"
)

// Serve starts the HTTP render server
func Serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))
	return server.NewServer(ctx.Int("port"), ctx.String("scene-dir")).Start()
}
