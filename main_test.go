package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scenegraph-raytracer/pkg/loaders"
	"github.com/df07/go-scenegraph-raytracer/pkg/log"
)

func TestRenderCommand(t *testing.T) {
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frames", "hier"+ext)
			err := newApp().Run([]string{"sgtrace", "render", "--scene", "hier",
				"--width", "24", "--height", "16", "--workers", "3", "--out", out})
			require.NoError(t, err)

			img, err := loaders.LoadImage(out)
			require.NoError(t, err)
			assert.Equal(t, 24, img.Width)
			assert.Equal(t, 16, img.Height)
		})
	}
}

func TestRenderCommand_SceneFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "pyramid.png")
	err := newApp().Run([]string{"sgtrace", "render", "--scene", "pyramid", "--scene-dir", "scenes",
		"--width", "20", "--height", "15", "--depth", "2", "--out", out})
	require.NoError(t, err)

	img, err := loaders.LoadImage(out)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Width)
}

func TestRenderCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"--scene", "nonexistent"}},
		{"invalid size", []string{"--scene", "empty", "--width", "0"}},
		{"negative depth", []string{"--scene", "empty", "--depth", "-1"}},
		{"unsupported format", []string{"--scene", "empty", "--width", "4", "--height", "4", "--out", filepath.Join(dir, "x.gif")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"sgtrace", "render"}, tt.args...)
			assert.Error(t, newApp().Run(args))
		})
	}
}

func TestScenesCommand(t *testing.T) {
	assert.NoError(t, newApp().Run([]string{"sgtrace", "scenes"}))
	assert.NoError(t, newApp().Run([]string{"sgtrace", "-v", "scenes", "--scene-dir", filepath.Join(os.TempDir(), "missing-scenes")}))
}

func TestLogLevelFlag(t *testing.T) {
	defer log.ResetModuleLevels()
	defer log.SetLevel(log.Notice)

	assert.NoError(t, newApp().Run([]string{"sgtrace", "--log-level", "warning,loaders=debug", "scenes"}))

	err := newApp().Run([]string{"sgtrace", "--log-level", "server=loud", "scenes"})
	assert.ErrorIs(t, err, log.ErrUnknownLevel)
}
