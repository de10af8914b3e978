package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/tasks-go/internal/logging"
	"github.com/nibzard/tasks-go/internal/todo"
	"github.com/nibzard/tasks-go/internal/ui"
)

// LoadWithSources loads configuration from multiple sources in priority order
// and tracks the source of each value:
// 1. Defaults
// 2. User config file (~/.tasks/tasks.toml or OS-specific config dir)
// 3. Project config file (tasks.toml or .tasks.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return load(fs, args, wd, findUserConfigFile())
}

// load is LoadWithSources with the working directory and user config file
// resolved by the caller.
func load(fs *flag.FlagSet, args []string, workDir, userConfigFile string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{ProjectRoot: workDir}
	var files []string

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		files = append(files, userConfigFile)
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(workDir); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		files = append(files, projectConfigFile)
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{
		Config:  cfg,
		Sources: sources,
		Files:   files,
	}, nil
}

// loadConfigFile decodes the TOML file at path over cfg and marks every key
// present in the file with source. Unknown keys are an error.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and validates the result.
func finalizeConfig(cfg *Config) error {
	cfg.StoreFile = expandPath(strings.TrimSpace(cfg.StoreFile))
	cfg.LogFile = expandPath(strings.TrimSpace(cfg.LogFile))

	if cfg.StoreFile == "" {
		return fmt.Errorf("file must not be empty")
	}
	if !todo.CanStoreListName(cfg.DefaultList) {
		return fmt.Errorf("default_list %q cannot be stored as a list name", cfg.DefaultList)
	}
	if cfg.CheckGlyph == "" || strings.ContainsAny(cfg.CheckGlyph, "\r\n") {
		return fmt.Errorf("check_glyph must be a non-empty single line")
	}
	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if _, err := ui.ThemeByName(cfg.Theme); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormatter(cfg.LogFormat); err != nil {
		return err
	}

	// Make paths absolute if they're relative
	if !filepath.IsAbs(cfg.StoreFile) {
		cfg.StoreFile = filepath.Join(cfg.ProjectRoot, cfg.StoreFile)
	}
	if cfg.LogFile != "" && !filepath.IsAbs(cfg.LogFile) {
		cfg.LogFile = filepath.Join(cfg.ProjectRoot, cfg.LogFile)
	}

	return nil
}

// LoggingOptions converts the logging fields into logger options.
func (c *Config) LoggingOptions() logging.Options {
	opts := logging.DefaultOptions()
	opts.File = c.LogFile
	// Validated by finalizeConfig.
	opts.Level, _ = logging.ParseLevel(c.LogLevel)
	opts.Formatter, _ = logging.ParseFormatter(c.LogFormat)
	opts.ReportTimestamp = c.LogTimestamps
	opts.ReportCaller = c.LogCaller
	return opts
}

// UITheme returns the color scheme named by Theme.
func (c *Config) UITheme() ui.Theme {
	// Validated by finalizeConfig.
	theme, _ := ui.ThemeByName(c.Theme)
	return theme
}
