package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// ListScenes prints the built-in scenes and the scene files found in
// --scene-dir
func ListScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	scenes, err := scene.ListAllScenes(ctx.String("scene-dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeSceneList(&buf, scenes)
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

func writeSceneList(buf *bytes.Buffer, scenes []scene.SceneInfo) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Type", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Name, info.Type, info.Description})
	}
	table.Render()
}
