package config

import (
	"os"

	"github.com/nibzard/tasks-go/internal/utils"
)

// Environment variable names.
const (
	EnvFile            = "TASKS_FILE"
	EnvDefaultList     = "TASKS_DEFAULT_LIST"
	EnvLogFile         = "TASKS_LOG_FILE"
	EnvLogLevel        = "TASKS_LOG_LEVEL"
	EnvLogFormat       = "TASKS_LOG_FORMAT"
	EnvLogTimestamps   = "TASKS_LOG_TIMESTAMPS"
	EnvLogCaller       = "TASKS_LOG_CALLER"
	EnvSystemClipboard = "TASKS_SYSTEM_CLIPBOARD"
	EnvCheckGlyph      = "TASKS_CHECK_GLYPH"
	EnvTheme           = "TASKS_THEME"
)

// loadFromEnv overrides config from environment variables and updates
// source tracking. Empty variables are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			sources[field] = SourceEnv
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = utils.BoolFromString(v)
			sources[field] = SourceEnv
		}
	}

	setString(EnvFile, "file", &cfg.StoreFile)
	setString(EnvDefaultList, "default_list", &cfg.DefaultList)
	setString(EnvLogFile, "log_file", &cfg.LogFile)
	setString(EnvLogLevel, "log_level", &cfg.LogLevel)
	setString(EnvLogFormat, "log_format", &cfg.LogFormat)
	setBool(EnvLogTimestamps, "log_timestamps", &cfg.LogTimestamps)
	setBool(EnvLogCaller, "log_caller", &cfg.LogCaller)
	setBool(EnvSystemClipboard, "system_clipboard", &cfg.SystemClipboard)
	setString(EnvCheckGlyph, "check_glyph", &cfg.CheckGlyph)
	setString(EnvTheme, "theme", &cfg.Theme)
}
