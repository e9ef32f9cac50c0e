package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
	"github.com/df07/go-scenegraph-raytracer/pkg/log"
)

var logger = log.New("loaders")

// MeshData contains the raw records read from a mesh file
type MeshData struct {
	Vertices []core.Vec3
	Faces    []geometry.Face // 0-based vertex indices
	Skipped  int             // Malformed records that were ignored
}

// ParseMeshData reads the v/f text format:
//
//	v x y z     vertex position
//	f i j k     triangle of 1-based vertex indices
//
// Face tokens may carry texture and normal indices ("3/1/2"); only the
// vertex index is used. Faces with more than three vertices are split into
// a triangle fan. Trailing tokens after the last coordinate or index are
// ignored. Other records are ignored and malformed numbers cause the record to
// be skipped.
func ParseMeshData(r io.Reader) (*MeshData, error) {
	data := &MeshData{}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			vertex, ok := parseVertex(fields[1:])
			if !ok {
				data.Skipped++
				continue
			}
			data.Vertices = append(data.Vertices, vertex)
		case "f":
			faces, ok := parseFace(fields[1:])
			if !ok {
				data.Skipped++
				continue
			}
			data.Faces = append(data.Faces, faces...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh: %w", err)
	}

	return data, nil
}

func parseVertex(fields []string) (core.Vec3, bool) {
	if len(fields) < 3 {
		return core.Vec3{}, false
	}
	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return core.Vec3{}, false
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), true
}

// parseFace reads vertex indices up to the first token that is not one.
// Anything after that is ignored.
func parseFace(fields []string) ([]geometry.Face, bool) {
	var indices []int
	for _, field := range fields {
		vertexField, _, _ := strings.Cut(field, "/")
		index, err := strconv.Atoi(vertexField)
		if err != nil {
			break
		}
		indices = append(indices, index-1)
	}
	if len(indices) < 3 {
		return nil, false
	}

	faces := make([]geometry.Face, 0, len(indices)-2)
	for i := 1; i+1 < len(indices); i++ {
		faces = append(faces, geometry.Face{indices[0], indices[i], indices[i+1]})
	}
	return faces, true
}

// ParseMesh reads a mesh in the v/f text format. Faces that reference
// missing vertices are an error.
func ParseMesh(r io.Reader) (*geometry.Mesh, error) {
	data, err := ParseMeshData(r)
	if err != nil {
		return nil, err
	}
	return geometry.NewMesh(data.Vertices, data.Faces)
}

// LoadMesh loads a mesh file. Files with a .ply extension are read as PLY,
// everything else in the v/f text format.
func LoadMesh(filename string) (*geometry.Mesh, error) {
	startTime := time.Now()

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %w", err)
	}
	defer file.Close()

	parse := ParseMeshData
	if strings.EqualFold(filepath.Ext(filename), ".ply") {
		parse = ParsePLY
	}

	data, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if data.Skipped > 0 {
		logger.Debugf("%s: skipped %d malformed records", filename, data.Skipped)
	}

	mesh, err := geometry.NewMesh(data.Vertices, data.Faces)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	logger.Infof("loaded %s: %d vertices, %d faces in %v",
		filename, mesh.VertexCount(), mesh.FaceCount(), time.Since(startTime))
	return mesh, nil
}
