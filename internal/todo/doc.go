// Package todo holds the task list model and the store file format.
//
// The store file (.tasks.md) is plain UTF-8 text. Each list is written as its
// bare name on one line, followed by one line per task and a blank separator:
//
//	Main
//	- [x] buy milk
//	- [ ] walk dog
//
//	Work
//	- [ ] finish report
//
// # Parsing
//
// Lines are read one at a time:
//   - Empty lines are skipped.
//   - A line starting with "- [" that is at least 6 bytes long is a task of the
//     most recently parsed list. The byte at offset 3 is the status ('x' means
//     completed, anything else means incomplete) and the description starts at
//     offset 6. A task line that appears before any list name is dropped.
//   - Any other line starts a new list named by the line verbatim.
//
// # Mutation Rules
//
// Every index-based List operation is bounds-checked and is a silent no-op when
// the index is out of range. Empty names and descriptions are rejected the same
// way, except by the constructors which return ErrEmptyName or ErrEmptyInput.
package todo
