package scene

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string // Unique identifier, the value accepted by --scene
	Name        string // Display name
	Description string // Optional description
	Type        string // "builtin" or "yaml"
	FilePath    string // Path to the scene file (yaml type only)
}

type builtinScene struct {
	info SceneInfo
	new  func() *Scene
}

var builtinScenes = map[string]builtinScene{
	"default": {
		info: SceneInfo{Name: "Default Scene", Description: "Three spheres and a cube on a floor"},
		new:  NewDefaultScene,
	},
	"spheregrid": {
		info: SceneInfo{Name: "Sphere Grid", Description: "Grid of shared unit spheres placed by row groups"},
		new:  NewSphereGridScene,
	},
	"mesh": {
		info: SceneInfo{Name: "Triangle Mesh", Description: "Two tetrahedra sharing one mesh"},
		new:  NewTriangleMeshScene,
	},
	"hier": {
		info: SceneInfo{Name: "Hierarchy", Description: "Articulated figure built from nested joints"},
		new:  NewHierarchyScene,
	},
	"empty": {
		info: SceneInfo{Name: "Empty", Description: "No geometry, background only"},
		new:  NewEmptyScene,
	},
}

// BuiltinNames returns the ids of the built-in scenes in sorted order
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBuiltin creates the built-in scene with the given id
func NewBuiltin(id string) (*Scene, error) {
	builtin, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownScene, id, strings.Join(BuiltinNames(), ", "))
	}
	return builtin.new(), nil
}

// ListYAMLScenes scans dir for .yaml scene files and returns their metadata.
// A missing directory yields an empty list.
func ListYAMLScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		info, err := ParseYAMLMetadata(filePath)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseYAMLMetadata extracts metadata from the header comments of a scene
// file:
//
//	# Scene: Cornell Box
//	# Description: Classic box with two spheres
func ParseYAMLMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	info := SceneInfo{
		ID:       filePath,
		Name:     titleCase(nameWithoutExt),
		Type:     "yaml",
		FilePath: filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Stop parsing at first non-comment line
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		if value, ok := strings.CutPrefix(content, "Scene:"); ok {
			info.Name = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(content, "Description:"); ok {
			info.Description = strings.TrimSpace(value)
		}
	}

	return info, scanner.Err()
}

// ListAllScenes returns the built-in scenes followed by the scene files
// found in dir
func ListAllScenes(dir string) ([]SceneInfo, error) {
	var all []SceneInfo
	for _, name := range BuiltinNames() {
		info := builtinScenes[name].info
		info.ID = name
		info.Type = "builtin"
		all = append(all, info)
	}

	files, err := ListYAMLScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(all, files...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
