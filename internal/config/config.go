// Package config handles tool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig holds dungeon data file locations.
type DataConfig struct {
	// DungeonPaths lists DUNG*.BIN files or directories to search.
	DungeonPaths []string `yaml:"dungeon_paths"`
}

// ViewerConfig holds terminal viewer settings.
type ViewerConfig struct {
	// ColorScheme selects tile coloring: "value" or "mono".
	ColorScheme string `yaml:"color_scheme"`
	// ShowGrid draws tile bytes instead of solid cells.
	ShowGrid bool `yaml:"show_grid"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			DungeonPaths: []string{"DUNG4000.BIN"},
		},
		Viewer: ViewerConfig{
			ColorScheme: "value",
			ShowGrid:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
