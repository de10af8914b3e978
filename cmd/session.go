package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nibzard/tasks-go/internal/session"
	"github.com/nibzard/tasks-go/internal/todo"
	"github.com/nibzard/tasks-go/internal/ui"
)

// errNoTerminal is returned when the session is started without a terminal.
var errNoTerminal = errors.New("interactive session requires a terminal (try 'tasks ls' or 'tasks export')")

// runSession drives s on the terminal behind std until it exits. Replaced in
// tests.
var runSession = func(ctx context.Context, std streams, s *session.Session, opts ...ui.TUIOption) (session.Exit, error) {
	if !isTerminal(std.in) || !isTerminal(std.out) {
		return session.ExitNone, errNoTerminal
	}
	opts = append(opts, ui.WithIO(std.in, std.out))
	return ui.RunTUI(ctx, s, opts...)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && ui.IsTTY(f)
}

// runCommand opens the interactive session on the task file.
func (c *command) runCommand(ctx context.Context, args []string) error {
	flags := c.newFlagSet("run")
	yes := flags.Bool("yes", false, "Create a missing task file without asking")
	flags.BoolVar(yes, "y", false, "Create a missing task file without asking")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path, err := c.storePath(flags.Args())
	if err != nil {
		return err
	}

	lists, err := todo.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		lists, err = c.bootstrap(path, *yes || c.assumeYes)
		if err != nil {
			return err
		}
		if lists == nil {
			return nil
		}
	} else if err != nil {
		return err
	}
	c.logger.Info("loaded task file", "path", path, "lists", len(lists))

	s := session.New(lists)
	exit, err := runSession(ctx, c.io, s,
		ui.WithLogger(c.logger.Logger),
		ui.WithTheme(c.cfg.UITheme()),
		ui.WithGlyph(c.cfg.CheckGlyph),
		ui.WithSystemClipboard(c.cfg.SystemClipboard),
	)
	if err != nil {
		return err
	}

	switch exit {
	case session.ExitSave:
		if err := todo.Save(path, s.Lists()); err != nil {
			return err
		}
		c.logger.Info("saved task file", "path", path, "lists", len(s.Lists()))
	case session.ExitDiscard:
		c.logger.Info("discarded changes", "path", path)
	}
	return nil
}

// storePath returns the task file named by args, or the configured one.
func (c *command) storePath(args []string) (string, error) {
	switch len(args) {
	case 0:
		return c.cfg.StoreFile, nil
	case 1:
		path, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", args[0], err)
		}
		return path, nil
	default:
		return "", fmt.Errorf("unexpected arguments: %v", args[1:])
	}
}

// bootstrap offers to create a missing task file. It returns nil lists when
// the user declines.
func (c *command) bootstrap(path string, yes bool) ([]*todo.List, error) {
	name := c.cfg.DefaultList
	if !yes {
		reader := bufio.NewReader(c.io.in)
		answer, err := prompt(reader, c.io.out, fmt.Sprintf("Create %s? [y/N] ", path))
		if err != nil {
			return nil, err
		}
		if !isYes(answer) {
			fmt.Fprintln(c.io.out, "No task file created.")
			return nil, nil
		}
		listName, err := prompt(reader, c.io.out, fmt.Sprintf("Name of the first list [%s]: ", name))
		if err != nil {
			return nil, err
		}
		if listName != "" {
			if !todo.CanStoreListName(listName) {
				return nil, fmt.Errorf("invalid list name %q", listName)
			}
			name = listName
		}
	}

	lists := todo.NewDefault(name)
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	if err := todo.Save(path, lists); err != nil {
		return nil, err
	}
	c.logger.Info("created task file", "path", path, "list", lists[0].Name())
	return lists, nil
}

// prompt writes question and reads one trimmed line. EOF counts as an empty
// answer.
func prompt(r *bufio.Reader, w io.Writer, question string) (string, error) {
	fmt.Fprint(w, question)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// ensureDir creates the parent directory of path.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
