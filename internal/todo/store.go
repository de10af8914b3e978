package todo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultStoreFile is the store file name used when none is configured.
const DefaultStoreFile = ".tasks.md"

const (
	taskPrefix    = "- ["
	taskMinLen    = 6
	statusOffset  = 3
	descOffset    = 6
	maxLineLength = 1024 * 1024
)

// StoreErrorKind classifies store failures.
type StoreErrorKind string

const (
	StoreUnreadable StoreErrorKind = "unreadable"
	StoreUnwritable StoreErrorKind = "unwritable"
)

// StoreError reports a failure to read or write the store file.
type StoreError struct {
	Kind StoreErrorKind
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	switch e.Kind {
	case StoreUnwritable:
		return fmt.Sprintf("write store file %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("read store file %s: %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Load reads and parses the store file at path.
func Load(path string) ([]*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StoreError{Kind: StoreUnreadable, Path: path, Err: err}
	}
	defer f.Close()

	lists, err := Parse(f)
	if err != nil {
		return nil, &StoreError{Kind: StoreUnreadable, Path: path, Err: err}
	}
	return lists, nil
}

// Save overwrites the store file at path with lists.
func Save(path string, lists []*List) error {
	f, err := os.Create(path)
	if err != nil {
		return &StoreError{Kind: StoreUnwritable, Path: path, Err: err}
	}
	if err := Write(f, lists); err != nil {
		f.Close()
		return &StoreError{Kind: StoreUnwritable, Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &StoreError{Kind: StoreUnwritable, Path: path, Err: err}
	}
	return nil
}

// Parse reads lists in the store file format from r.
func Parse(r io.Reader) ([]*List, error) {
	var lists []*List

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		if isTaskLine(line) {
			if len(lists) == 0 {
				// No list to attach it to.
				continue
			}
			desc := line[descOffset:]
			if desc != "" && !utf8.RuneStart(desc[0]) {
				// The status slot ends inside a multi-byte character.
				continue
			}
			task, err := NewTask(desc)
			if err != nil {
				continue
			}
			task.completed = line[statusOffset] == 'x'
			current := lists[len(lists)-1]
			current.tasks = append(current.tasks, task)
			continue
		}

		// line is non-empty so NewList cannot fail
		list, _ := NewList(line)
		lists = append(lists, list)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan store: %w", err)
	}

	return lists, nil
}

// Write writes lists to w in the store file format and flushes.
func Write(w io.Writer, lists []*List) error {
	bw := bufio.NewWriter(w)
	for _, list := range lists {
		fmt.Fprintln(bw, list.name)
		for _, task := range list.tasks {
			fmt.Fprintf(bw, "- [%s] %s\n", task.Mark(), task.description)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// NewDefault returns a fresh list set with a single empty list. An empty name
// falls back to DefaultListName.
func NewDefault(name string) []*List {
	if name == "" {
		name = DefaultListName
	}
	list, _ := NewList(name)
	return []*List{list}
}

// CanStoreListName reports whether name reads back as the same list header
// after a save and load.
func CanStoreListName(name string) bool {
	return strings.TrimSpace(name) != "" && !strings.ContainsAny(name, "\r\n") && !isTaskLine(name)
}

func isTaskLine(line string) bool {
	return len(line) >= taskMinLen && strings.HasPrefix(line, taskPrefix)
}
