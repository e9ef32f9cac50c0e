package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-scenegraph-raytracer/pkg/scene"
)

// ResolveScene resolves name as a built-in scene, then as a scene file path,
// then as a file name inside sceneDir
func ResolveScene(name, sceneDir string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", scene.ErrUnknownScene)
	}

	s, builtinErr := scene.NewBuiltin(name)
	if builtinErr == nil {
		return s, nil
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, err := os.Stat(name); err == nil || ext == ".yaml" || ext == ".yml" {
		return LoadScene(name)
	}

	if sceneDir != "" {
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(sceneDir, name+ext)
			if _, err := os.Stat(candidate); err == nil {
				return LoadScene(candidate)
			}
		}
	}

	return nil, builtinErr
}
