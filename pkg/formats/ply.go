// Package formats provides codecs for mesh exchange formats.
package formats

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/hexterrain/pkg/math"
)

// PLY format errors.
var (
	ErrMismatchedBuffers = errors.New("vertex and color counts differ")
	ErrBadTriangleCount  = errors.New("index count is not a multiple of 3")
	ErrIndexOutOfRange   = errors.New("triangle index out of range")
	ErrInvalidPLYMagic   = errors.New("invalid PLY magic: expected 'ply'")
	ErrTruncatedPLY      = errors.New("truncated PLY header")
)

// PLYEncoding selects the body encoding.
type PLYEncoding int

// Body encodings.
const (
	PLYASCII PLYEncoding = iota
	PLYBinaryLittleEndian
)

// String returns the encoding name as written in the header.
func (e PLYEncoding) String() string {
	switch e {
	case PLYASCII:
		return "ascii"
	case PLYBinaryLittleEndian:
		return "binary_little_endian"
	default:
		return fmt.Sprintf("Unknown(%d)", int(e))
	}
}

// PLYInfo summarizes a PLY header.
type PLYInfo struct {
	Encoding    PLYEncoding
	Version     string
	VertexCount int
	FaceCount   int
	HasColors   bool
	Comments    []string
}

// WritePLY writes vertices, triangles and per-vertex colors as a PLY 1.0 file.
// Colors are stored as 8-bit RGBA.
func WritePLY(w io.Writer, enc PLYEncoding, vertices []math.Vec3, triangles []uint32, colors []math.Color) error {
	if len(vertices) != len(colors) {
		return fmt.Errorf("%w: %d vertices, %d colors", ErrMismatchedBuffers, len(vertices), len(colors))
	}
	if len(triangles)%3 != 0 {
		return fmt.Errorf("%w: %d", ErrBadTriangleCount, len(triangles))
	}
	for _, idx := range triangles {
		if int(idx) >= len(vertices) {
			return fmt.Errorf("%w: %d >= %d", ErrIndexOutOfRange, idx, len(vertices))
		}
	}
	if enc != PLYASCII && enc != PLYBinaryLittleEndian {
		return fmt.Errorf("unsupported PLY encoding %s", enc)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "ply\nformat %s 1.0\ncomment hexterrain mesh\n", enc)
	fmt.Fprintf(bw, "element vertex %d\n", len(vertices))
	bw.WriteString("property float x\nproperty float y\nproperty float z\n")
	bw.WriteString("property uchar red\nproperty uchar green\nproperty uchar blue\nproperty uchar alpha\n")
	fmt.Fprintf(bw, "element face %d\n", len(triangles)/3)
	bw.WriteString("property list uchar uint vertex_indices\nend_header\n")

	var err error
	if enc == PLYASCII {
		err = writePLYASCII(bw, vertices, triangles, colors)
	} else {
		err = writePLYBinary(bw, vertices, triangles, colors)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writePLYASCII(w *bufio.Writer, vertices []math.Vec3, triangles []uint32, colors []math.Color) error {
	for i, v := range vertices {
		c := colors[i].RGBA8()
		if _, err := fmt.Fprintf(w, "%g %g %g %d %d %d %d\n", v.X, v.Y, v.Z, c.R, c.G, c.B, c.A); err != nil {
			return err
		}
	}
	for i := 0; i < len(triangles); i += 3 {
		if _, err := fmt.Fprintf(w, "3 %d %d %d\n", triangles[i], triangles[i+1], triangles[i+2]); err != nil {
			return err
		}
	}
	return nil
}

type plyVertex struct {
	X, Y, Z    float32
	R, G, B, A uint8
}

type plyFace struct {
	N       uint8
	A, B, C uint32
}

func writePLYBinary(w *bufio.Writer, vertices []math.Vec3, triangles []uint32, colors []math.Color) error {
	for i, v := range vertices {
		c := colors[i].RGBA8()
		rec := plyVertex{v.X, v.Y, v.Z, c.R, c.G, c.B, c.A}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	for i := 0; i < len(triangles); i += 3 {
		rec := plyFace{3, triangles[i], triangles[i+1], triangles[i+2]}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
	}
	return nil
}

// ReadPLYInfo parses the header of a PLY stream.
func ReadPLYInfo(r io.Reader) (*PLYInfo, error) {
	br := bufio.NewReader(r)

	magic, err := br.ReadString('\n')
	if err != nil || strings.TrimSpace(magic) != "ply" {
		return nil, ErrInvalidPLYMagic
	}

	info := &PLYInfo{}
	var element string
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			return nil, ErrTruncatedPLY
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "end_header":
			return info, nil
		case "format":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed format line %q", strings.TrimSpace(line))
			}
			switch fields[1] {
			case "ascii":
				info.Encoding = PLYASCII
			case "binary_little_endian":
				info.Encoding = PLYBinaryLittleEndian
			default:
				return nil, fmt.Errorf("unsupported PLY encoding %q", fields[1])
			}
			info.Version = fields[2]
		case "comment":
			info.Comments = append(info.Comments, strings.TrimSpace(strings.TrimPrefix(line, "comment")))
		case "element":
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed element line %q", strings.TrimSpace(line))
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("element %s count: %w", fields[1], err)
			}
			element = fields[1]
			switch element {
			case "vertex":
				info.VertexCount = n
			case "face":
				info.FaceCount = n
			}
		case "property":
			if element == "vertex" && fields[len(fields)-1] == "red" {
				info.HasColors = true
			}
		}
	}
}
