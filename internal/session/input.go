package session

import (
	"slices"
	"unicode"

	"github.com/nibzard/tasks-go/internal/todo"
)

// inputBuffer is a single-line edit buffer with a cursor offset in runes.
type inputBuffer struct {
	text   []rune
	cursor int
}

func newInputBuffer(initial string) inputBuffer {
	text := []rune(initial)
	return inputBuffer{text: text, cursor: len(text)}
}

func (b *inputBuffer) insert(r rune) {
	b.text = append(b.text, 0)
	copy(b.text[b.cursor+1:], b.text[b.cursor:])
	b.text[b.cursor] = r
	b.cursor++
}

func (b *inputBuffer) backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = append(b.text[:b.cursor-1], b.text[b.cursor:]...)
	b.cursor--
}

func (b *inputBuffer) deleteForward() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = append(b.text[:b.cursor], b.text[b.cursor+1:]...)
}

func (b *inputBuffer) move(delta int) {
	b.cursor = min(max(b.cursor+delta, 0), len(b.text))
}

func (b *inputBuffer) String() string {
	return string(b.text)
}

func (s *Session) startInput(target InputTarget, initial string) {
	s.mode = ModeInput
	s.target = target
	s.input = newInputBuffer(initial)
}

func (s *Session) handleInput(k Key) Outcome {
	switch k.Type {
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			s.input.insert(k.Rune)
		}
	case KeyBackspace:
		s.input.backspace()
	case KeyDelete:
		s.input.deleteForward()
	case KeyLeft:
		s.input.move(-1)
	case KeyRight:
		s.input.move(1)
	case KeyHome:
		s.input.cursor = 0
	case KeyEnd:
		s.input.cursor = len(s.input.text)
	case KeyEsc:
		s.mode = ModeNormal
		s.input = inputBuffer{}
		return Outcome{Command: "cancel"}
	case KeyEnter:
		s.mode = ModeNormal
		text := s.input.String()
		s.input = inputBuffer{}
		return s.commitInput(text)
	}
	return Outcome{}
}

// commitInput applies a committed buffer to its target. Empty text is a no-op.
func (s *Session) commitInput(text string) Outcome {
	if text == "" {
		return Outcome{}
	}

	list := s.current()
	switch s.target {
	case TargetNewTask:
		list.AddTask(text)
		return Outcome{Command: "task-added"}
	case TargetNewList:
		if !todo.CanStoreListName(text) {
			s.status = StatusBadListName
			return Outcome{}
		}
		newList, err := todo.NewList(text)
		if err != nil {
			return Outcome{}
		}
		at := s.listIdx + 1
		s.lists = slices.Insert(s.lists, at, newList)
		s.listIdx = at
		s.taskIdx = 0
		return Outcome{Command: "list-added"}
	case TargetRewordTask:
		list.RewordTask(s.taskIdx, text)
		return Outcome{Command: "task-reworded"}
	case TargetRenameList:
		if !todo.CanStoreListName(text) {
			s.status = StatusBadListName
			return Outcome{}
		}
		list.Rename(text)
		return Outcome{Command: "list-renamed"}
	}
	return Outcome{}
}
