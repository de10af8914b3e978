// Package cmd implements the CLI command structure for tasks.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/tasks-go/internal/config"
	"github.com/nibzard/tasks-go/internal/logging"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams holds the standard streams a command reads and writes.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Run executes the tasks CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	fs.Usage = func() {
		printUsage(fs, std.errOut)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")
	assumeYes := fs.Bool("yes", false, "Create a missing task file without asking")
	fs.BoolVar(assumeYes, "y", false, "Create a missing task file without asking")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	logger, err := logging.New(cfg.LoggingOptions())
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer logger.Close()

	// Determine the subcommand
	// If no args or first arg is a flag, use "run" as default
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	c := &command{cfg: cfg, logger: logger, io: std, assumeYes: *assumeYes}
	switch subcommand {
	case "run":
		return c.runCommand(ctx, remainingArgs)
	case "init":
		return c.initCommand(remainingArgs)
	case "ls":
		return c.lsCommand(remainingArgs)
	case "export":
		return c.exportCommand(remainingArgs)
	case "import":
		return c.importCommand(remainingArgs)
	case "config":
		return c.configCommand(cws, remainingArgs)
	case "log":
		return c.logCommand(remainingArgs)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		// If it's not a recognized command, it might be a file path for run
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return c.runCommand(ctx, append([]string{subcommand}, remainingArgs...))
		}
		fmt.Fprintf(std.errOut, "Unknown command: %s\n", subcommand)
		printUsage(fs, std.errOut)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// command carries the state shared by all subcommands.
type command struct {
	cfg       *config.Config
	logger    *logging.Logger
	io        streams
	assumeYes bool
}

// newFlagSet returns a subcommand flag set writing usage to stderr.
func (c *command) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("tasks "+name, flag.ContinueOnError)
	fs.SetOutput(c.io.errOut)
	return fs
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "tasks version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "tasks - a keyboard-driven to-do list manager for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  tasks [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run [file]          Open the interactive session (default command)")
	fmt.Fprintln(w, "  init [name]         Create the task file with one list")
	fmt.Fprintln(w, "  ls [file]           Print the first list, or all lists with -a")
	fmt.Fprintln(w, "  export [file]       Write all lists as json, yaml or text")
	fmt.Fprintln(w, "  import <json-file>  Add lists from a JSON export to the task file")
	fmt.Fprintln(w, "  config              Show the effective configuration and its sources")
	fmt.Fprintln(w, "  log                 Show the end of the log file")
	fmt.Fprintln(w, "  version             Show version information")
	fmt.Fprintln(w, "  help                Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run Options:")
	fmt.Fprintln(w, "  -y, -yes")
	fmt.Fprintln(w, "        Create a missing task file without asking")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Init Options:")
	fmt.Fprintln(w, "  -force")
	fmt.Fprintln(w, "        Overwrite an existing task file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ls Options:")
	fmt.Fprintln(w, "  -a    Print every list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export Options:")
	fmt.Fprintln(w, "  -format string")
	fmt.Fprintln(w, "        Output format (json|yaml|text) (default \"json\")")
	fmt.Fprintln(w, "  -o string")
	fmt.Fprintln(w, "        Write to this file instead of stdout")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Import Options:")
	fmt.Fprintln(w, "  -replace")
	fmt.Fprintln(w, "        Replace all lists instead of appending")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -example")
	fmt.Fprintln(w, "        Print an example config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Log Options:")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all) (default 20)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys (press ? in the session for the full list):")
	fmt.Fprintln(w, "  j/k move, h/l switch list, space toggle, n new task, q save and quit")
}
