package config

import (
	"flag"
)

// parseFlags defines the global flags on fs, parses args and applies the
// flags that were set explicitly. Unset flags keep the values of the lower
// layers, even though their defaults are shown in usage output.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	type stringFlag struct {
		name, field, usage string
		target             *string
		value              string
	}
	type boolFlag struct {
		name, field, usage string
		target             *bool
		value              bool
	}

	strs := []*stringFlag{
		{name: "file", field: "file", usage: "Path to the task file", target: &cfg.StoreFile},
		{name: "default-list", field: "default_list", usage: "Name of the first list in a new task file", target: &cfg.DefaultList},
		{name: "log-file", field: "log_file", usage: "Append logs to this file (empty disables logging)", target: &cfg.LogFile},
		{name: "log-level", field: "log_level", usage: "Log level (debug|info|warn|error)", target: &cfg.LogLevel},
		{name: "log-format", field: "log_format", usage: "Log format (text|json|logfmt)", target: &cfg.LogFormat},
		{name: "glyph", field: "check_glyph", usage: "Glyph shown for completed tasks", target: &cfg.CheckGlyph},
		{name: "theme", field: "theme", usage: "Color scheme (dark|light|plain)", target: &cfg.Theme},
	}
	bools := []*boolFlag{
		{name: "log-timestamps", field: "log_timestamps", usage: "Include timestamps in log entries", target: &cfg.LogTimestamps},
		{name: "log-caller", field: "log_caller", usage: "Include caller location in log entries", target: &cfg.LogCaller},
		{name: "system-clipboard", field: "system_clipboard", usage: "Copy yanked tasks to the system clipboard", target: &cfg.SystemClipboard},
	}

	byName := make(map[string]func())
	for _, f := range strs {
		fs.StringVar(&f.value, f.name, *f.target, f.usage)
		byName[f.name] = func() {
			*f.target = f.value
			sources[f.field] = SourceFlag
		}
	}
	for _, f := range bools {
		fs.BoolVar(&f.value, f.name, *f.target, f.usage)
		byName[f.name] = func() {
			*f.target = f.value
			sources[f.field] = SourceFlag
		}
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Track which flags were set and apply to config
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := byName[f.Name]; ok {
			apply()
		}
	})
	return nil
}
