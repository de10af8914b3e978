package session

import (
	"fmt"

	"github.com/nibzard/tasks-go/internal/todo"
)

// Confirmation prompts.
const (
	PromptDeleteList = "This will delete this list, are you sure? y/N"
	PromptDiscard    = "Quit without saving changes? y/N"
)

// TitleRow is the InputView row of the list title line.
const TitleRow = -1

// Frame is the render intent produced after each transition.
type Frame struct {
	// Title is "(current/total) name".
	Title string
	Tasks []todo.Task
	// Cursor is the highlighted task row; ShowCursor is false for an empty list.
	Cursor     int
	ShowCursor bool
	Mode       Mode
	// Input is set in ModeInput.
	Input *InputView
	// Prompt is set in ModeConfirm.
	Prompt string
	Status string
}

// InputView describes the line being edited.
type InputView struct {
	Target InputTarget
	// Row is TitleRow for list names, otherwise the task row being edited.
	// A new task is edited on the row after the last task.
	Row int
	// Prefix precedes the buffer on title rows, e.g. "(2/3) ".
	Prefix    string
	Completed bool
	Text      []rune
	Cursor    int
}

// Before returns the buffer text before the cursor.
func (v *InputView) Before() string {
	return string(v.Text[:v.Cursor])
}

// After returns the buffer text from the cursor on.
func (v *InputView) After() string {
	return string(v.Text[v.Cursor:])
}

// Frame returns the current render intent.
func (s *Session) Frame() Frame {
	list := s.current()
	f := Frame{
		Title:      fmt.Sprintf("(%d/%d) %s", s.listIdx+1, len(s.lists), list.Name()),
		Tasks:      list.Tasks(),
		Cursor:     s.taskIdx,
		ShowCursor: list.Len() > 0,
		Mode:       s.mode,
		Status:     s.status,
	}

	switch s.mode {
	case ModeInput:
		f.Input = s.inputView()
	case ModeConfirm:
		f.Prompt = PromptDeleteList
		if s.confirm == ConfirmDiscard {
			f.Prompt = PromptDiscard
		}
	}
	return f
}

func (s *Session) inputView() *InputView {
	v := &InputView{
		Target: s.target,
		Text:   append([]rune(nil), s.input.text...),
		Cursor: s.input.cursor,
	}
	list := s.current()
	switch s.target {
	case TargetNewTask:
		v.Row = list.Len()
	case TargetRewordTask:
		v.Row = s.taskIdx
		if task, ok := list.Task(s.taskIdx); ok {
			v.Completed = task.Completed()
		}
	case TargetNewList:
		v.Row = TitleRow
		v.Prefix = fmt.Sprintf("(%d/%d) ", s.listIdx+2, len(s.lists)+1)
	case TargetRenameList:
		v.Row = TitleRow
		v.Prefix = fmt.Sprintf("(%d/%d) ", s.listIdx+1, len(s.lists))
	}
	return v
}
