package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
	flagScheme  = flag.String("scheme", "", "Viewer color scheme (value, mono)")
	flagGrid    = flag.Bool("grid", false, "Show tile bytes in the viewer")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagScheme != "" {
		cfg.Viewer.ColorScheme = *flagScheme
	}
	if *flagGrid {
		cfg.Viewer.ShowGrid = true
	}
}
