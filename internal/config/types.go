package config

import (
	"github.com/nibzard/tasks-go/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, user file first.
	Files []string
}

// Default values.
const (
	DefaultStoreFile       = todo.DefaultStoreFile
	DefaultListName        = todo.DefaultListName
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultCheckGlyph      = "✔"
	DefaultTheme           = "dark"
	DefaultSystemClipboard = false
)

// Config holds the full configuration for tasks.
type Config struct {
	// StoreFile is the task file opened by the interactive session.
	StoreFile string `toml:"file"`
	// DefaultList names the first list of a newly created store.
	DefaultList string `toml:"default_list"`

	// Logging configuration. An empty LogFile disables logging.
	LogFile       string `toml:"log_file"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Display
	SystemClipboard bool   `toml:"system_clipboard"`
	CheckGlyph      string `toml:"check_glyph"`
	// Theme is the color scheme: dark, light or plain.
	Theme string `toml:"theme"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"file",
		"default_list",
		"log_file",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"system_clipboard",
		"check_glyph",
		"theme",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Value returns the string form of the named field.
func (c *Config) Value(field string) string {
	switch field {
	case "file":
		return c.StoreFile
	case "default_list":
		return c.DefaultList
	case "log_file":
		return c.LogFile
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return formatBool(c.LogTimestamps)
	case "log_caller":
		return formatBool(c.LogCaller)
	case "system_clipboard":
		return formatBool(c.SystemClipboard)
	case "check_glyph":
		return c.CheckGlyph
	case "theme":
		return c.Theme
	default:
		return ""
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.StoreFile = DefaultStoreFile
	cfg.DefaultList = DefaultListName
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
	cfg.SystemClipboard = DefaultSystemClipboard
	cfg.CheckGlyph = DefaultCheckGlyph
	cfg.Theme = DefaultTheme
}
