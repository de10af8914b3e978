// Package session implements the interactive to-do session as a state machine.
//
// A Session owns the lists, the list and task cursors, a clipboard and the
// current mode. Each call to Handle applies exactly one key press and returns
// an Outcome; Frame describes what should be drawn next. The package performs
// no terminal I/O, so it is driven directly by tests and by the ui package.
//
// # Modes
//
//   - normal: single-key commands, plus the d and y operators which wait for
//     one more key (dd, dA, dc, dC, yy, yA). Any other second key cancels.
//   - input: a single-line editor for new tasks, new lists, rewording and
//     renaming. Enter commits a non-empty buffer, Esc discards it.
//   - confirm: a y/N question before deleting a list or quitting without
//     saving. Anything but y cancels.
//   - help: the key reference; any key returns to normal mode.
//
// # Cursors
//
// Both cursors are clamped, never wrapped. The task cursor is 0 on an empty
// list and is reset to 0 when switching to a list that is too short for it.
// Commands that would move a cursor out of range, or touch a task that does
// not exist, do nothing.
package session
