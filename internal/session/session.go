package session

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nibzard/tasks-go/internal/todo"
)

// Mode is the interaction mode of a session.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeConfirm
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "input"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "normal"
	}
}

// InputTarget is what a committed text input is applied to.
type InputTarget int

const (
	TargetNewTask InputTarget = iota
	TargetNewList
	TargetRewordTask
	TargetRenameList
)

// ConfirmAction is the action waiting for a yes/no answer.
type ConfirmAction int

const (
	ConfirmDeleteList ConfirmAction = iota
	ConfirmDiscard
)

// Exit tells the caller whether and how the session ended.
type Exit int

const (
	ExitNone Exit = iota
	ExitSave
	ExitDiscard
)

// Outcome is the result of handling one key.
type Outcome struct {
	Exit Exit
	// Command names the transition that was applied, empty for no-ops.
	Command string
	// Yanked holds the tasks copied by a yank, for mirroring to the system
	// clipboard.
	Yanked []todo.Task
}

// Status messages shown after a refused command.
const (
	StatusOnlyList       = "Cannot delete the only list"
	StatusClipboardEmpty = "Nothing to paste"
	StatusBadListName    = "List names cannot look like tasks"
)

type operator int

const (
	opNone operator = iota
	opDelete
	opYank
)

type clipboard struct {
	tasks []todo.Task
	// cut is set when the tasks came from a delete; the next paste consumes them.
	cut bool
}

// Session is the interactive controller state: the lists, both cursors, the
// current mode and the clipboard. It performs no I/O.
type Session struct {
	keys      KeyMap
	lists     []*todo.List
	listIdx   int
	taskIdx   int
	mode      Mode
	pending   operator
	input     inputBuffer
	target    InputTarget
	confirm   ConfirmAction
	clipboard clipboard
	status    string
}

// New creates a session over a copy of lists, so the caller's lists are left
// untouched when the session is discarded. An empty list set is replaced by a
// single default list.
func New(lists []*todo.List) *Session {
	if len(lists) == 0 {
		lists = todo.NewDefault("")
	}
	return &Session{
		keys:  DefaultKeyMap,
		lists: todo.CloneLists(lists),
	}
}

// Lists returns the lists held by the session.
func (s *Session) Lists() []*todo.List {
	return s.lists
}

// KeyMap returns the active key bindings.
func (s *Session) KeyMap() KeyMap {
	return s.keys
}

// CurrentListIndex returns the list cursor.
func (s *Session) CurrentListIndex() int {
	return s.listIdx
}

// CurrentTaskIndex returns the task cursor.
func (s *Session) CurrentTaskIndex() int {
	return s.taskIdx
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Clipboard returns a copy of the clipboard contents.
func (s *Session) Clipboard() []todo.Task {
	return append([]todo.Task(nil), s.clipboard.tasks...)
}

// Status returns the message set by the last refused command.
func (s *Session) Status() string {
	return s.status
}

func (s *Session) current() *todo.List {
	return s.lists[s.listIdx]
}

// Handle applies one key press to the session.
func (s *Session) Handle(k Key) Outcome {
	s.status = ""

	if key.Matches(k, s.keys.Interrupt) {
		s.mode = ModeNormal
		s.pending = opNone
		return Outcome{Exit: ExitSave, Command: "quit"}
	}

	var out Outcome
	switch s.mode {
	case ModeInput:
		out = s.handleInput(k)
	case ModeConfirm:
		out = s.handleConfirm(k)
	case ModeHelp:
		s.mode = ModeNormal
		out = Outcome{Command: "close-help"}
	default:
		if s.pending != opNone {
			op := s.pending
			s.pending = opNone
			out = s.handleChord(op, k)
		} else {
			out = s.handleNormal(k)
		}
	}

	s.clampCursors()
	return out
}

func (s *Session) handleNormal(k Key) Outcome {
	km := s.keys

	switch {
	case key.Matches(k, km.JumpList):
		if n, ok := k.digit(); ok {
			s.jumpToList(n - 1)
		}
		return Outcome{Command: "jump-list"}
	case key.Matches(k, km.Down):
		s.moveToNextTask()
		return Outcome{Command: "next-task"}
	case key.Matches(k, km.Up):
		s.moveToPrevTask()
		return Outcome{Command: "prev-task"}
	case key.Matches(k, km.NextList):
		s.moveToNextList()
		return Outcome{Command: "next-list"}
	case key.Matches(k, km.PrevList):
		s.moveToPrevList()
		return Outcome{Command: "prev-list"}
	case key.Matches(k, km.MoveToNext):
		s.moveTaskToList(s.listIdx + 1)
		return Outcome{Command: "move-task-next"}
	case key.Matches(k, km.MoveToPrev):
		s.moveTaskToList(s.listIdx - 1)
		return Outcome{Command: "move-task-prev"}
	case key.Matches(k, km.First):
		s.taskIdx = 0
		return Outcome{Command: "first-task"}
	case key.Matches(k, km.Last):
		s.taskIdx = max(s.current().Len()-1, 0)
		return Outcome{Command: "last-task"}
	case key.Matches(k, km.Toggle):
		s.current().ToggleTask(s.taskIdx)
		return Outcome{Command: "toggle-task"}
	case key.Matches(k, km.NewTask):
		s.startInput(TargetNewTask, "")
		return Outcome{Command: "new-task"}
	case key.Matches(k, km.NewList):
		s.startInput(TargetNewList, "")
		return Outcome{Command: "new-list"}
	case key.Matches(k, km.Reword):
		task, ok := s.current().Task(s.taskIdx)
		if !ok {
			return Outcome{}
		}
		s.startInput(TargetRewordTask, task.Description())
		return Outcome{Command: "reword-task"}
	case key.Matches(k, km.RenameList):
		s.startInput(TargetRenameList, s.current().Name())
		return Outcome{Command: "rename-list"}
	case key.Matches(k, km.Delete):
		s.pending = opDelete
		return Outcome{}
	case key.Matches(k, km.Yank):
		s.pending = opYank
		return Outcome{}
	case key.Matches(k, km.Paste):
		return s.paste(true)
	case key.Matches(k, km.PasteAbove):
		return s.paste(false)
	case key.Matches(k, km.DeleteList):
		if len(s.lists) <= 1 {
			s.status = StatusOnlyList
			return Outcome{}
		}
		s.startConfirm(ConfirmDeleteList)
		return Outcome{Command: "delete-list"}
	case key.Matches(k, km.Sort):
		s.current().Sort()
		return Outcome{Command: "sort-list"}
	case key.Matches(k, km.SortAll):
		for _, l := range s.lists {
			l.Sort()
		}
		return Outcome{Command: "sort-all"}
	case key.Matches(k, km.Help):
		s.mode = ModeHelp
		return Outcome{Command: "help"}
	case key.Matches(k, km.Quit):
		return Outcome{Exit: ExitSave, Command: "quit"}
	case key.Matches(k, km.Discard):
		s.startConfirm(ConfirmDiscard)
		return Outcome{Command: "discard"}
	}

	return Outcome{}
}

func (s *Session) handleChord(op operator, k Key) Outcome {
	km := s.keys
	list := s.current()

	if op == opDelete {
		switch {
		case key.Matches(k, km.DeleteTask):
			task, ok := list.RemoveTask(s.taskIdx)
			if !ok {
				return Outcome{}
			}
			s.clipboard = clipboard{tasks: []todo.Task{task}, cut: true}
			s.taskIdx = max(s.taskIdx-1, 0)
			return Outcome{Command: "delete-task"}
		case key.Matches(k, km.DeleteAll):
			if list.Len() == 0 {
				return Outcome{}
			}
			s.clipboard = clipboard{tasks: list.Tasks(), cut: true}
			list.DeleteAllTasks()
			s.taskIdx = 0
			return Outcome{Command: "delete-all-tasks"}
		case key.Matches(k, km.DeleteCompleted):
			list.DeleteCompletedTasks()
			s.taskIdx = 0
			return Outcome{Command: "delete-completed"}
		case key.Matches(k, km.DeleteCompletedAll):
			for _, l := range s.lists {
				l.DeleteCompletedTasks()
			}
			s.taskIdx = 0
			return Outcome{Command: "delete-completed-all"}
		}
		return Outcome{}
	}

	switch {
	case key.Matches(k, km.YankTask):
		task, ok := list.Task(s.taskIdx)
		if !ok {
			return Outcome{}
		}
		s.clipboard = clipboard{tasks: []todo.Task{task}}
		return Outcome{Command: "yank-task", Yanked: s.Clipboard()}
	case key.Matches(k, km.YankAll):
		if list.Len() == 0 {
			return Outcome{}
		}
		s.clipboard = clipboard{tasks: list.Tasks()}
		return Outcome{Command: "yank-all", Yanked: s.Clipboard()}
	}
	return Outcome{}
}

func (s *Session) handleConfirm(k Key) Outcome {
	s.mode = ModeNormal
	if !key.Matches(k, s.keys.Confirm) {
		return Outcome{Command: "cancel"}
	}

	switch s.confirm {
	case ConfirmDiscard:
		return Outcome{Exit: ExitDiscard, Command: "discard-quit"}
	case ConfirmDeleteList:
		if len(s.lists) <= 1 {
			s.status = StatusOnlyList
			return Outcome{}
		}
		s.lists = slices.Delete(s.lists, s.listIdx, s.listIdx+1)
		s.listIdx = max(s.listIdx-1, 0)
		s.resetTaskCursorIfInvalid()
		return Outcome{Command: "list-deleted"}
	}
	return Outcome{}
}

func (s *Session) startConfirm(action ConfirmAction) {
	s.mode = ModeConfirm
	s.confirm = action
}

func (s *Session) moveToNextTask() {
	if s.taskIdx+1 < s.current().Len() {
		s.taskIdx++
	}
}

func (s *Session) moveToPrevTask() {
	if s.taskIdx > 0 {
		s.taskIdx--
	}
}

func (s *Session) moveToNextList() {
	if s.listIdx+1 < len(s.lists) {
		s.listIdx++
		s.resetTaskCursorIfInvalid()
	}
}

func (s *Session) moveToPrevList() {
	if s.listIdx > 0 {
		s.listIdx--
		s.resetTaskCursorIfInvalid()
	}
}

func (s *Session) jumpToList(index int) {
	if index < 0 || index >= len(s.lists) {
		return
	}
	s.listIdx = index
	s.resetTaskCursorIfInvalid()
}

// moveTaskToList moves the current task to the end of the list at dest and
// follows it there.
func (s *Session) moveTaskToList(dest int) {
	if dest < 0 || dest >= len(s.lists) {
		return
	}
	task, ok := s.current().RemoveTask(s.taskIdx)
	if !ok {
		return
	}
	target := s.lists[dest]
	target.InsertTask(target.Len(), task)
	s.listIdx = dest
	s.taskIdx = target.Len() - 1
}

// paste inserts the clipboard below or above the current task. The cursor
// lands on the last pasted task when pasting below and on the first when
// pasting above.
func (s *Session) paste(below bool) Outcome {
	n := len(s.clipboard.tasks)
	if n == 0 {
		s.status = StatusClipboardEmpty
		return Outcome{}
	}

	list := s.current()
	index := s.taskIdx
	command := "paste-above"
	if below {
		index++
		command = "paste"
	}
	index = min(index, list.Len())
	for i, task := range s.clipboard.tasks {
		list.InsertTask(index+i, task)
	}

	if below {
		s.taskIdx = index + n - 1
	} else {
		s.taskIdx = index
	}
	if s.clipboard.cut {
		s.clipboard = clipboard{}
	}
	return Outcome{Command: command}
}

func (s *Session) resetTaskCursorIfInvalid() {
	if s.taskIdx >= s.current().Len() {
		s.taskIdx = 0
	}
}

// clampCursors keeps both cursors inside their collections.
func (s *Session) clampCursors() {
	s.listIdx = min(max(s.listIdx, 0), len(s.lists)-1)
	n := s.current().Len()
	if n == 0 {
		s.taskIdx = 0
		return
	}
	s.taskIdx = min(max(s.taskIdx, 0), n-1)
}
