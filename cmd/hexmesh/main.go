// hexmesh triangulates hex terrain grids into colored meshes.
package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hexterrain/internal/config"
	"github.com/Faultbox/hexterrain/internal/engine/hexmesh"
	"github.com/Faultbox/hexterrain/internal/engine/preview"
	"github.com/Faultbox/hexterrain/internal/game/world"
	"github.com/Faultbox/hexterrain/internal/logger"
	"github.com/Faultbox/hexterrain/pkg/formats"
	"github.com/Faultbox/hexterrain/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "build":
		err = cmdBuild(args, false)
	case "preview":
		err = cmdBuild(args, true)
	case "info":
		err = cmdInfo(args)
	case "config":
		err = cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func printUsage() {
	fmt.Println(`hexmesh - hex terrain triangulator

Usage:
  hexmesh <command> [flags]

Commands:
  build    [flags]        Triangulate the grid and write a PLY mesh
  preview  [flags]        Triangulate the grid and write a PNG preview only
  info     <file.ply>     Show PLY header information
  config   <out.yaml>     Write the effective configuration

Flags:
  -config <file>    Config file (or $HEXMESH_CONFIG; else ./hexmesh.yaml)
  -layout <file>    Grid layout (YAML)
  -width, -height   Grid size when no layout is given
  -terraces <n>     Terraces per slope
  -ply <file>       PLY output path
  -binary           Write binary PLY
  -preview <file>   PNG preview output path
  -debug            Debug logging

Examples:
  hexmesh build -layout maps/valley.yaml -ply valley.ply -preview valley.png
  hexmesh preview -width 12 -height 8 -preview grid.png
  hexmesh info valley.ply`)
}

// setup parses flags, loads the config and starts the logger.
func setup(args []string) (*config.Config, error) {
	if err := config.ParseFlags(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if src := cfg.Source(); src != "" {
		logger.Info("config loaded", zap.String("path", src))
	}
	logger.Sugar.Debugf("Config: %+v", cfg)
	return cfg, nil
}

func cmdBuild(args []string, previewOnly bool) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	grid, err := loadGrid(cfg)
	if err != nil {
		return err
	}
	logger.Debug("grid ready",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Int("cells", grid.Len()),
	)

	cells := grid.Cells()
	if err := hexmesh.Validate(cells); err != nil {
		logger.Warn("grid failed validation, mesh may have cracks", zap.Error(err))
	}

	tr := hexmesh.New(grid.Metrics())
	start := time.Now()
	mesh := tr.Triangulate(cells)
	stats := tr.LastStats()

	log := logger.Named("hexmesh")
	log.Info("triangulated",
		zap.Int("cells", stats.Cells),
		zap.Int("strips", stats.Strips),
		zap.Int("corners", stats.Corners),
		zap.Int("triangles", stats.Triangles),
		zap.Int("vertices", stats.Vertices),
		zap.Duration("took", time.Since(start)),
	)
	if err := mesh.Check(); err != nil {
		return fmt.Errorf("mesh invariant violated: %w", err)
	}

	if !previewOnly {
		if err := writePLY(cfg, mesh); err != nil {
			return err
		}
	}

	previewPath := cfg.Output.Preview
	if previewOnly && previewPath == "" {
		previewPath = "hexmesh.png"
	}
	if previewPath != "" {
		if err := writePreview(cfg, previewPath, mesh); err != nil {
			return err
		}
	}
	return nil
}

func loadGrid(cfg *config.Config) (*world.Grid, error) {
	metrics, err := cfg.Mesh.Metrics()
	if err != nil {
		return nil, err
	}

	if cfg.Grid.Layout != "" {
		layout, err := world.LoadLayout(cfg.Grid.Layout)
		if err != nil {
			return nil, fmt.Errorf("loading layout: %w", err)
		}
		logger.Debug("layout loaded",
			zap.String("path", cfg.Grid.Layout),
			zap.Int("width", layout.Width),
			zap.Int("height", layout.Height),
			zap.Int("overrides", len(layout.Cells)),
		)
		return layout.Build(metrics)
	}

	color := math.White
	if cfg.Grid.DefaultColor != "" {
		if color, err = world.ParseColor(cfg.Grid.DefaultColor); err != nil {
			return nil, fmt.Errorf("grid.default_color: %w", err)
		}
	}
	return world.NewGrid(cfg.Grid.Width, cfg.Grid.Height, metrics, color)
}

func writePLY(cfg *config.Config, mesh *hexmesh.Mesh) error {
	enc := formats.PLYASCII
	if cfg.Output.PLYBinary {
		enc = formats.PLYBinaryLittleEndian
	}

	f, err := os.Create(cfg.Output.PLY)
	if err != nil {
		return err
	}
	if err := formats.WritePLY(f, enc, mesh.Vertices, mesh.Triangles, mesh.Colors); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", cfg.Output.PLY, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("mesh written", zap.String("path", cfg.Output.PLY), zap.Stringer("encoding", enc))
	return nil
}

func writePreview(cfg *config.Config, path string, mesh *hexmesh.Mesh) error {
	opts := preview.DefaultOptions()
	opts.Width = cfg.Output.PreviewWidth
	opts.Height = cfg.Output.PreviewHeight

	img, err := preview.Render(mesh, opts)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	if err := preview.SavePNG(path, img); err != nil {
		return err
	}

	logger.Info("preview written", zap.String("path", path))
	return nil
}

func cmdInfo(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: hexmesh info <file.ply>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := formats.ReadPLYInfo(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	fmt.Printf("File:      %s\n", args[0])
	fmt.Printf("Format:    %s %s\n", info.Encoding, info.Version)
	fmt.Printf("Vertices:  %d\n", info.VertexCount)
	fmt.Printf("Triangles: %d\n", info.FaceCount)
	fmt.Printf("Colors:    %v\n", info.HasColors)
	for _, c := range info.Comments {
		fmt.Printf("Comment:   %s\n", c)
	}
	return nil
}

func cmdConfig(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	rest := config.Args()
	if len(rest) < 1 {
		return fmt.Errorf("usage: hexmesh config [flags] <out.yaml>")
	}
	if err := cfg.SaveTo(rest[0]); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", rest[0])
	return nil
}
