package cmd

import (
	"fmt"

	"github.com/nibzard/tasks-go/internal/config"
	"github.com/nibzard/tasks-go/internal/logging"
)

// configCommand prints the effective configuration and where each value
// came from.
func (c *command) configCommand(cws *config.ConfigWithSources, args []string) error {
	flags := c.newFlagSet("config")
	example := flags.Bool("example", false, "Print an example config file")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	if *example {
		fmt.Fprint(c.io.out, config.ExampleConfig())
		return nil
	}

	if len(cws.Files) == 0 {
		fmt.Fprintf(c.io.out, "Config files: none (user file would be %s)\n", config.UserConfigPath())
	} else {
		fmt.Fprintln(c.io.out, "Config files:")
		for _, f := range cws.Files {
			fmt.Fprintf(c.io.out, "  %s\n", f)
		}
	}
	fmt.Fprintln(c.io.out)

	for _, field := range config.Fields() {
		value := cws.Config.Value(field)
		if value == "" {
			value = `""`
		}
		fmt.Fprintf(c.io.out, "%-17s = %s (%s)\n", field, value, cws.Sources[field])
	}
	return nil
}

// logCommand prints the end of the log file.
func (c *command) logCommand(args []string) error {
	flags := c.newFlagSet("log")
	n := flags.Int("n", 20, "Number of lines to show (0 = all)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if c.cfg.LogFile == "" {
		fmt.Fprintln(c.io.out, "Logging is disabled. Set log_file or TASKS_LOG_FILE to enable it.")
		return nil
	}
	return logging.TailLog(c.io.out, c.cfg.LogFile, *n)
}
