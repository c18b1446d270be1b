package loaders

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/whitted-raytracer/pkg/core"
)

// PLYElement is an element declaration from a PLY header
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYProperty represents a property definition in the PLY header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // For list properties, the type of the count
}

// PLYData contains the polygon data loaded from a PLY file
type PLYData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    [][]int     // Vertex indices per polygon, any arity
}

// LoadPLY loads an ascii PLY file
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open PLY file")
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", filename)
	}
	return data, nil
}

// ReadPLY parses an ascii PLY stream. Vertex positions come from the x, y
// and z properties; faces from the first list property of the face element.
// Other elements and properties are skipped.
func ReadPLY(r io.Reader) (*PLYData, error) {
	scanner := bufio.NewScanner(r)

	elements, err := parsePLYHeader(scanner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse PLY header")
	}

	data := &PLYData{}
	for _, element := range elements {
		for n := 0; n < element.Count; n++ {
			fields, err := nextDataLine(scanner)
			if err != nil {
				return nil, errors.Wrapf(err, "%s %d", element.Name, n)
			}

			switch element.Name {
			case "vertex":
				v, err := parseVertex(fields, element.Properties)
				if err != nil {
					return nil, errors.Wrapf(err, "vertex %d", n)
				}
				data.Vertices = append(data.Vertices, v)
			case "face":
				face, err := parseFace(fields, element.Properties)
				if err != nil {
					return nil, errors.Wrapf(err, "face %d", n)
				}
				data.Faces = append(data.Faces, face)
			}
		}
	}

	return data, nil
}

// parsePLYHeader reads up to end_header and returns the declared elements in order
func parsePLYHeader(scanner *bufio.Scanner) ([]PLYElement, error) {
	var elements []PLYElement
	sawMagic := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "end_header" {
			if !sawMagic {
				return nil, errors.New("missing ply magic")
			}
			return elements, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "ply":
			sawMagic = true
		case "format":
			if len(parts) < 2 {
				return nil, errors.New("invalid format line")
			}
			if parts[1] != "ascii" {
				return nil, errors.Wrapf(ErrUnsupportedPLY, "%s", parts[1])
			}
		case "comment", "obj_info":
		case "element":
			if len(parts) < 3 {
				return nil, errors.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, errors.Errorf("invalid element count: %s", parts[2])
			}
			elements = append(elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(elements) == 0 {
				return nil, errors.New("property before any element")
			}
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &elements[len(elements)-1]
			last.Properties = append(last.Properties, prop)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading header")
	}
	return nil, errors.New("missing end_header")
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) < 2 {
		return PLYProperty{}, errors.New("invalid property definition")
	}

	if parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, errors.New("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func nextDataLine(scanner *bufio.Scanner) ([]string, error) {
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.ErrUnexpectedEOF
}

func parseVertex(fields []string, props []PLYProperty) (core.Vec3, error) {
	var xyz [3]float64
	pos := 0
	for _, prop := range props {
		if prop.IsList {
			n, err := listLength(fields, pos)
			if err != nil {
				return core.Vec3{}, err
			}
			pos += 1 + n
			continue
		}
		if pos >= len(fields) {
			return core.Vec3{}, io.ErrUnexpectedEOF
		}

		axis := strings.Index("xyz", prop.Name)
		if len(prop.Name) == 1 && axis >= 0 {
			value, err := strconv.ParseFloat(fields[pos], 64)
			if err != nil {
				return core.Vec3{}, errors.Wrapf(err, "property %s", prop.Name)
			}
			xyz[axis] = value
		}
		pos++
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func parseFace(fields []string, props []PLYProperty) ([]int, error) {
	pos := 0
	for _, prop := range props {
		if !prop.IsList {
			pos++
			continue
		}

		n, err := listLength(fields, pos)
		if err != nil {
			return nil, err
		}
		face := make([]int, n)
		for i := range face {
			index, err := strconv.Atoi(fields[pos+1+i])
			if err != nil {
				return nil, errors.Wrapf(err, "property %s", prop.Name)
			}
			face[i] = index
		}
		return face, nil
	}
	return nil, errors.New("face element has no list property")
}

func listLength(fields []string, pos int) (int, error) {
	if pos >= len(fields) {
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(fields[pos])
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid list length %q", fields[pos])
	}
	if pos+1+n > len(fields) {
		return 0, io.ErrUnexpectedEOF
	}
	return n, nil
}
