package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLayout   = flag.String("layout", "", "Grid layout file (YAML)")
	flagWidth    = flag.Int("width", 0, "Grid width in cells")
	flagHeight   = flag.Int("height", 0, "Grid height in cells")
	flagTerraces = flag.Int("terraces", 0, "Terraces per slope")
	flagPLY      = flag.String("ply", "", "PLY output path")
	flagBinary   = flag.Bool("binary", false, "Write binary PLY")
	flagPreview  = flag.String("preview", "", "PNG preview output path")
)

// ParseFlags parses command-line flags from args (without the program name
// or subcommand). Call this early in main().
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLayout != "" {
		cfg.Grid.Layout = *flagLayout
	}
	if *flagWidth > 0 {
		cfg.Grid.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Grid.Height = *flagHeight
	}
	if *flagTerraces > 0 {
		cfg.Mesh.TerracesPerSlope = *flagTerraces
	}
	if *flagPLY != "" {
		cfg.Output.PLY = *flagPLY
	}
	if *flagBinary {
		cfg.Output.PLYBinary = true
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
}
