// Package preview rasterizes a terrain mesh into a top-down image.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/image/vector"

	"github.com/Faultbox/hexterrain/internal/engine/hexmesh"
	"github.com/Faultbox/hexterrain/pkg/math"
)

// ErrInvalidSize is returned for images without pixels.
var ErrInvalidSize = errors.New("preview size must be positive")

// Options controls rendering.
type Options struct {
	Width      int
	Height     int
	Padding    int
	Background color.RGBA
	// Shade darkens faces that tilt away from the light, making terrace risers visible.
	Shade bool
}

// DefaultOptions returns a 512x512 shaded preview on a dark background.
func DefaultOptions() Options {
	return Options{
		Width:      512,
		Height:     512,
		Padding:    8,
		Background: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		Shade:      true,
	}
}

var lightDir = math.Vec3{X: -0.4, Y: 1, Z: 0.3}.Normalize()

type face struct {
	pts    [3]math.Vec2
	height float32
	color  math.Color
}

// Render draws the mesh seen from above: X grows right, Z grows up.
// Faces are painted from lowest to highest, each with its mean vertex color.
func Render(mesh *hexmesh.Mesh, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	if err := mesh.Check(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	if mesh.TriangleCount() == 0 {
		return img, nil
	}

	project := projection(mesh.Bounds(), opts)
	normals := mesh.Normals()

	faces := make([]face, 0, mesh.TriangleCount())
	for i := 0; i < len(mesh.Triangles); i += 3 {
		idx := [3]uint32{mesh.Triangles[i], mesh.Triangles[i+1], mesh.Triangles[i+2]}

		var f face
		var sum math.Color
		for k, vi := range idx {
			v := mesh.Vertices[vi]
			f.pts[k] = project(v)
			f.height += v.Y / 3
			sum = sum.Add(mesh.Colors[vi])
		}
		f.color = sum.Scale(1.0 / 3)
		if opts.Shade {
			f.color = shade(f.color, normals[idx[0]])
		}
		faces = append(faces, f)
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].height < faces[j].height })

	r := vector.NewRasterizer(opts.Width, opts.Height)
	for _, f := range faces {
		r.Reset(opts.Width, opts.Height)
		r.MoveTo(f.pts[0].X, f.pts[0].Y)
		r.LineTo(f.pts[1].X, f.pts[1].Y)
		r.LineTo(f.pts[2].X, f.pts[2].Y)
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(f.color.RGBA8()), image.Point{})
	}
	return img, nil
}

// projection maps ground coordinates into the padded image, keeping the aspect ratio.
func projection(b hexmesh.Bounds, opts Options) func(math.Vec3) math.Vec2 {
	pad := float32(opts.Padding)
	availW := max(float32(opts.Width)-2*pad, 1)
	availH := max(float32(opts.Height)-2*pad, 1)
	spanX := max(b.Max.X-b.Min.X, 1e-6)
	spanZ := max(b.Max.Z-b.Min.Z, 1e-6)
	s := min(availW/spanX, availH/spanZ)

	offX := pad + (availW-spanX*s)/2
	offY := pad + (availH-spanZ*s)/2
	return func(v math.Vec3) math.Vec2 {
		return math.Vec2{
			X: offX + (v.X-b.Min.X)*s,
			Y: offY + (b.Max.Z-v.Z)*s,
		}
	}
}

func shade(c math.Color, n math.Vec3) math.Color {
	k := 0.55 + 0.45*max(n.Dot(lightDir), 0)
	return math.Color{R: c.R * k, G: c.G * k, B: c.B * k, A: c.A}
}

// SavePNG writes img to path, creating parent directories.
func SavePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
