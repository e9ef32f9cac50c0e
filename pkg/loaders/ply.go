package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/df07/go-scenegraph-raytracer/pkg/core"
	"github.com/df07/go-scenegraph-raytracer/pkg/geometry"
)

// plyProperty represents a property definition in the PLY header
type plyProperty struct {
	Name      string
	Type      string // Value type, or element type for lists
	IsList    bool
	CountType string // For list properties, the type of the count
}

// plyElement is one element block of a PLY file
type plyElement struct {
	Name       string
	Count      int
	Properties []plyProperty
}

// plyHeader represents the parsed header information from a PLY file
type plyHeader struct {
	Format   string // "binary_little_endian", "binary_big_endian", or "ascii"
	Elements []plyElement
}

// plyReader reads one scalar value of a PLY type
type plyReader interface {
	scalar(dataType string) (float64, error)
}

// ParsePLY reads vertex positions and faces from an ASCII or binary PLY
// stream into the same MeshData as ParseMeshData. Faces with more than
// three vertices are split into a triangle fan. Every other element and
// property is read and discarded.
func ParsePLY(r io.Reader) (*MeshData, error) {
	br := bufio.NewReader(r)

	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyReader
	switch header.Format {
	case "ascii":
		scanner := bufio.NewScanner(br)
		scanner.Split(bufio.ScanWords)
		values = &plyASCIIReader{scanner: scanner}
	case "binary_little_endian":
		values = &plyBinaryReader{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &plyBinaryReader{r: br, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %q", header.Format)
	}

	data := &MeshData{}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := readPLYElement(values, element, data); err != nil {
				return nil, fmt.Errorf("failed to read %s %d: %w", element.Name, i, err)
			}
		}
	}
	return data, nil
}

func readPLYElement(values plyReader, element plyElement, data *MeshData) error {
	var position [3]float64
	var indices []int

	for _, prop := range element.Properties {
		if prop.IsList {
			count, err := values.scalar(prop.CountType)
			if err != nil {
				return err
			}
			if count < 0 {
				return fmt.Errorf("negative list length %v", count)
			}
			list := make([]int, int(count))
			for j := range list {
				value, err := values.scalar(prop.Type)
				if err != nil {
					return err
				}
				list[j] = int(value)
			}
			if prop.Name == "vertex_indices" || prop.Name == "vertex_index" {
				indices = list
			}
			continue
		}

		value, err := values.scalar(prop.Type)
		if err != nil {
			return err
		}
		switch prop.Name {
		case "x":
			position[0] = value
		case "y":
			position[1] = value
		case "z":
			position[2] = value
		}
	}

	switch element.Name {
	case "vertex":
		data.Vertices = append(data.Vertices, core.NewVec3(position[0], position[1], position[2]))
	case "face":
		if len(indices) < 3 {
			data.Skipped++
			return nil
		}
		for i := 1; i+1 < len(indices); i++ {
			data.Faces = append(data.Faces, geometry.Face{indices[0], indices[i], indices[i+1]})
		}
	}
	return nil
}

// parsePLYHeader reads the header up to and including end_header, leaving
// r at the first byte of element data
func parsePLYHeader(r *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}

	magic, err := r.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, fmt.Errorf("missing ply magic number")
	}

	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("header ended without end_header: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "comment", "obj_info":
		case "end_header":
			return header, nil
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", strings.TrimSpace(line))
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", strings.TrimSpace(line))
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, plyElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			current := &header.Elements[len(header.Elements)-1]
			current.Properties = append(current.Properties, prop)
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{Name: parts[3], Type: parts[2], IsList: true, CountType: parts[1]}, nil
	}
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if plyTypeSize(parts[0]) == 0 {
		return plyProperty{}, fmt.Errorf("unsupported data type: %s", parts[0])
	}
	return plyProperty{Name: parts[1], Type: parts[0]}, nil
}

// plyTypeSize returns the size in bytes of a PLY data type, 0 if unknown
func plyTypeSize(dataType string) int {
	switch dataType {
	case "double", "float64":
		return 8
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 0
	}
}

type plyASCIIReader struct {
	scanner *bufio.Scanner
}

func (a *plyASCIIReader) scalar(string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type plyBinaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *plyBinaryReader) scalar(dataType string) (float64, error) {
	size := plyTypeSize(dataType)
	if size == 0 {
		return 0, fmt.Errorf("unsupported data type: %s", dataType)
	}
	raw := b.buf[:size]
	if _, err := io.ReadFull(b.r, raw); err != nil {
		return 0, err
	}

	switch dataType {
	case "double", "float64":
		return math.Float64frombits(b.order.Uint64(raw)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(raw))), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(raw))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(raw)), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(raw))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(raw)), nil
	case "char", "int8":
		return float64(int8(raw[0])), nil
	default:
		return float64(raw[0]), nil
	}
}
