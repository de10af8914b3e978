package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# tasks configuration file
# Values can be overridden by TASKS_* environment variables or CLI flags

# Task file (relative to the working directory, supports ~ and $VAR)
file = ".tasks.md"

# Name of the first list when a new task file is created
default_list = "Main"

# Append logs to this file; leave empty to disable logging
# log_file = "~/.tasks/tasks.log"

# Log level: debug, info, warn or error
log_level = "info"

# Log format: text, json or logfmt
log_format = "text"

log_timestamps = true
log_caller = false

# Copy yanked tasks (yy, yA) to the system clipboard as well
system_clipboard = false

# Glyph drawn in place of x for completed tasks
check_glyph = "✔"

# Color scheme: dark, light or plain (no colors)
theme = "dark"
`
}
