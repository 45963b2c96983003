// Package config provides configuration types and defaults for
// task-maker's UI layer.
package config

import (
	"github.com/franv314/task-maker-go/internal/ui"
)

// Config holds the configuration options of the UI layer.
type Config struct {
	// UI is the name of the front-end to instantiate.
	UI string `mapstructure:"ui" yaml:"ui"`
	// Debug enables file logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`
	// LogFile is where debug logging goes.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns the configuration used when no config file exists.
func Defaults() Config {
	return Config{
		UI:      string(ui.TypePrint),
		Debug:   false,
		LogFile: "task-maker.log",
	}
}

// UIType parses the configured front-end name.
func (c Config) UIType() (ui.Type, error) {
	return ui.ParseType(c.UI)
}
