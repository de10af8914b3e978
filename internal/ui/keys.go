package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasks-go/internal/session"
)

// translateKey converts a bubbletea key message into session keys. A message
// with several runes yields one key per rune. Alt combinations have no
// binding.
func translateKey(msg tea.KeyMsg) []session.Key {
	if msg.Alt {
		return []session.Key{{Type: session.KeyOther}}
	}
	switch msg.Type {
	case tea.KeyRunes:
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.RuneKey(r))
		}
		return keys
	case tea.KeySpace:
		return []session.Key{session.RuneKey(' ')}
	case tea.KeyEnter:
		return []session.Key{{Type: session.KeyEnter}}
	case tea.KeyEsc:
		return []session.Key{{Type: session.KeyEsc}}
	case tea.KeyBackspace:
		return []session.Key{{Type: session.KeyBackspace}}
	case tea.KeyDelete:
		return []session.Key{{Type: session.KeyDelete}}
	case tea.KeyLeft:
		return []session.Key{{Type: session.KeyLeft}}
	case tea.KeyRight:
		return []session.Key{{Type: session.KeyRight}}
	case tea.KeyUp:
		return []session.Key{{Type: session.KeyUp}}
	case tea.KeyDown:
		return []session.Key{{Type: session.KeyDown}}
	case tea.KeyHome:
		return []session.Key{{Type: session.KeyHome}}
	case tea.KeyEnd:
		return []session.Key{{Type: session.KeyEnd}}
	case tea.KeyCtrlC:
		return []session.Key{{Type: session.KeyInterrupt}}
	default:
		return []session.Key{{Type: session.KeyOther}}
	}
}
