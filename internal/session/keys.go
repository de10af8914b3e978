package session

import "github.com/charmbracelet/bubbles/key"

// KeyType identifies non-character keys.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyInterrupt
	KeyOther
)

// Key is a single key press.
type Key struct {
	Type KeyType
	Rune rune
}

// RuneKey returns the key event for a printable character.
func RuneKey(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// String returns the key name in the form used by key bindings.
func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyInterrupt:
		return "ctrl+c"
	default:
		return ""
	}
}

// digit returns the list number for keys 1-9.
func (k Key) digit() (int, bool) {
	if k.Type != KeyRune || k.Rune < '1' || k.Rune > '9' {
		return 0, false
	}
	return int(k.Rune - '0'), true
}

// KeyMap defines the key bindings of a session. Chord bindings match the
// second key after their operator (Delete or Yank).
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevList   key.Binding
	NextList   key.Binding
	MoveToPrev key.Binding // H
	MoveToNext key.Binding // L
	JumpList   key.Binding
	First      key.Binding
	Last       key.Binding

	Toggle     key.Binding
	NewTask    key.Binding
	NewList    key.Binding
	Reword     key.Binding
	RenameList key.Binding

	Delete             key.Binding
	DeleteTask         key.Binding
	DeleteAll          key.Binding
	DeleteCompleted    key.Binding
	DeleteCompletedAll key.Binding
	Yank               key.Binding
	YankTask           key.Binding
	YankAll            key.Binding
	Paste              key.Binding
	PasteAbove         key.Binding
	DeleteList         key.Binding

	Sort    key.Binding
	SortAll key.Binding

	Help      key.Binding
	Quit      key.Binding
	Discard   key.Binding
	Interrupt key.Binding

	Confirm key.Binding
}

// DefaultKeyMap is the built-in vim-style key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "previous task"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next task"),
	),
	PrevList: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous list"),
	),
	NextList: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next list"),
	),
	MoveToPrev: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "move task to previous list"),
	),
	MoveToNext: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "move task to next list"),
	),
	JumpList: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "go to list N"),
	),
	First: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first task"),
	),
	Last: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last task"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle current task"),
	),
	NewTask: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new task"),
	),
	NewList: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new list"),
	),
	Reword: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reword current task"),
	),
	RenameList: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "rename current list"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
	),
	DeleteTask: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("dd", "delete current task"),
	),
	DeleteAll: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("dA", "delete all tasks in the current list"),
	),
	DeleteCompleted: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("dc", "delete completed tasks in the current list"),
	),
	DeleteCompletedAll: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("dC", "delete completed tasks in all lists"),
	),
	Yank: key.NewBinding(
		key.WithKeys("y"),
	),
	YankTask: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("yy", "copy current task"),
	),
	YankAll: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("yA", "copy all tasks in the current list"),
	),
	Paste: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "paste below"),
	),
	PasteAbove: key.NewBinding(
		key.WithKeys("P"),
		key.WithHelp("P", "paste above"),
	),
	DeleteList: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete current list"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort current list"),
	),
	SortAll: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "sort all lists"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "show this menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "save and quit"),
	),
	Discard: key.NewBinding(
		key.WithKeys("Q"),
		key.WithHelp("Q", "quit without saving"),
	),
	Interrupt: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
	),
}

// HelpBindings returns the bindings shown in the help overlay, in display order.
func (km KeyMap) HelpBindings() []key.Binding {
	return []key.Binding{
		km.Down, km.Up, km.NextList, km.PrevList, km.MoveToPrev, km.MoveToNext,
		km.JumpList, km.First, km.Last,
		km.Toggle, km.NewTask, km.NewList, km.Reword, km.RenameList,
		km.DeleteTask, km.DeleteAll, km.DeleteCompleted, km.DeleteCompletedAll,
		km.YankTask, km.YankAll, km.Paste, km.PasteAbove, km.DeleteList,
		km.Sort, km.SortAll, km.Help, km.Quit, km.Discard,
	}
}
