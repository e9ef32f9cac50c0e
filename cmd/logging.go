package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/df07/go-scenegraph-raytracer/pkg/log"
)

var logger = log.New("sgtrace")

// setupLogging applies -v/-vv and then --log-level, so per-module levels
// given there win.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if spec := ctx.GlobalString("log-level"); spec != "" {
		if err := log.ParseSpec(spec); err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	return nil
}
