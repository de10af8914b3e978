package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nibzard/tasks-go/internal/todo"
	"github.com/nibzard/tasks-go/internal/utils"
)

// initCommand creates the task file with a single list.
func (c *command) initCommand(args []string) error {
	flags := c.newFlagSet("init")
	force := flags.Bool("force", false, "Overwrite an existing task file")
	if err := flags.Parse(args); err != nil {
		return err
	}

	remaining := flags.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	name := c.cfg.DefaultList
	if len(remaining) == 1 {
		name = remaining[0]
	}
	if !todo.CanStoreListName(name) {
		return fmt.Errorf("invalid list name %q", name)
	}

	path := c.cfg.StoreFile
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use -force to overwrite)", path)
	}
	if err := ensureDir(path); err != nil {
		return err
	}
	if err := todo.Save(path, todo.NewDefault(name)); err != nil {
		return err
	}
	c.logger.Info("created task file", "path", path, "list", name)
	fmt.Fprintf(c.io.out, "Created %s with list %q\n", path, name)
	return nil
}

// lsCommand prints lists without starting a session.
func (c *command) lsCommand(args []string) error {
	flags := c.newFlagSet("ls")
	all := flags.Bool("a", false, "Print every list")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path, err := c.storePath(flags.Args())
	if err != nil {
		return err
	}
	lists, err := todo.Load(path)
	if err != nil {
		return err
	}
	if len(lists) == 0 {
		fmt.Fprintln(c.io.out, "No lists.")
		return nil
	}

	shown := lists[:1]
	if *all {
		shown = lists
	}
	for i, list := range shown {
		if i > 0 {
			fmt.Fprintln(c.io.out)
		}
		printList(c.io.out, list, i, len(lists))
	}
	return nil
}

// printList prints a list title and its tasks.
func printList(w io.Writer, list *todo.List, index, total int) {
	done := list.CountCompleted()
	fmt.Fprintf(w, "(%d/%d) %s  %d/%d done\n", index+1, total, list.Name(), done, list.Len())
	if list.Len() == 0 {
		fmt.Fprintln(w, "  no tasks")
		return
	}
	for _, task := range list.Tasks() {
		fmt.Fprintf(w, "  %s\n", task)
	}
}

// Export formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

// exportCommand writes all lists in the requested format.
func (c *command) exportCommand(args []string) error {
	flags := c.newFlagSet("export")
	format := flags.String("format", formatJSON, "Output format (json|yaml|text)")
	output := flags.String("o", "", "Write to this file instead of stdout")
	if err := flags.Parse(args); err != nil {
		return err
	}

	path, err := c.storePath(flags.Args())
	if err != nil {
		return err
	}
	lists, err := todo.Load(path)
	if err != nil {
		return err
	}

	var encode func(io.Writer, []*todo.List) error
	switch *format {
	case formatJSON:
		encode = todo.EncodeJSON
	case formatYAML:
		encode = todo.EncodeYAML
	case formatText:
		encode = todo.Write
	default:
		return fmt.Errorf("unknown export format %q (want json, yaml or text)", *format)
	}

	if *output == "" {
		return encode(c.io.out, lists)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := encode(f, lists); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}
	c.logger.Info("exported task file", "path", path, "format", *format, "output", *output)
	return nil
}

// importCommand validates a JSON export and merges it into the task file.
func (c *command) importCommand(args []string) error {
	flags := c.newFlagSet("import")
	replace := flags.Bool("replace", false, "Replace all lists instead of appending")
	if err := flags.Parse(args); err != nil {
		return err
	}

	remaining := flags.Args()
	if len(remaining) != 1 {
		return fmt.Errorf("usage: tasks import [-replace] <file.json>")
	}
	source := remaining[0]

	var in io.Reader
	if source == "-" {
		in = c.io.in
	} else {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	imported, err := todo.DecodeJSON(in)
	if err != nil {
		return fmt.Errorf("import %s: %w", source, err)
	}
	if len(imported) == 0 {
		return fmt.Errorf("import %s: no lists to import", source)
	}

	path := c.cfg.StoreFile
	var lists []*todo.List
	if !*replace {
		existing, err := todo.Load(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return err
		default:
			lists = existing
		}
	}
	lists = append(lists, imported...)

	if err := ensureDir(path); err != nil {
		return err
	}
	if err := todo.Save(path, lists); err != nil {
		return err
	}

	tasks := 0
	for _, l := range imported {
		tasks += l.Len()
	}
	c.logger.Info("imported lists", "source", source, "path", path, "lists", len(imported), "tasks", tasks, "replace", *replace)
	fmt.Fprintf(c.io.out, "Imported %d %s (%d %s) into %s\n",
		len(imported), utils.Plural(len(imported), "list"),
		tasks, utils.Plural(tasks, "task"),
		filepath.Base(path))
	return nil
}
