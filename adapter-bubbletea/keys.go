package bubble_adapter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/goreadline/core"
)

// convertKey translates a bubbletea key message into raw events. A bracketed
// paste arrives as one message carrying many runes; each becomes its own
// event so the burst classifier sees the paste for what it is.
func convertKey(msg tea.KeyMsg) []core.RawEvent {
	rawKey := func(key core.KeyEvent) []core.RawEvent {
		return []core.RawEvent{{Kind: core.RawKey, Key: key}}
	}

	switch msg.Type {
	case tea.KeyRunes:
		events := make([]core.RawEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			key := core.Char(r)
			if msg.Alt {
				key = core.Alt(r)
			}
			events = append(events, core.RawEvent{Kind: core.RawKey, Key: key})
		}
		return events

	case tea.KeySpace:
		return rawKey(core.Char(' '))
	case tea.KeyEnter:
		return rawKey(core.Special(core.KeyEnter))
	case tea.KeyTab:
		return rawKey(core.Special(core.KeyTab))
	case tea.KeyBackspace:
		return rawKey(core.Special(core.KeyBackspace))
	case tea.KeyEsc:
		return rawKey(core.Special(core.KeyEscape))
	case tea.KeyUp:
		return rawKey(core.Special(core.KeyUp))
	case tea.KeyDown:
		return rawKey(core.Special(core.KeyDown))
	case tea.KeyLeft:
		return rawKey(core.Special(core.KeyLeft))
	case tea.KeyRight:
		return rawKey(core.Special(core.KeyRight))
	case tea.KeyHome:
		return rawKey(core.Special(core.KeyHome))
	case tea.KeyEnd:
		return rawKey(core.Special(core.KeyEnd))
	case tea.KeyDelete:
		return rawKey(core.Special(core.KeyDelete))
	case tea.KeyPgUp:
		return rawKey(core.Special(core.KeyPageUp))
	case tea.KeyPgDown:
		return rawKey(core.Special(core.KeyPageDown))

	case tea.KeyCtrlA:
		return rawKey(core.Ctrl('a'))
	case tea.KeyCtrlB:
		return rawKey(core.Ctrl('b'))
	case tea.KeyCtrlC:
		return rawKey(core.Ctrl('c'))
	case tea.KeyCtrlD:
		return rawKey(core.Ctrl('d'))
	case tea.KeyCtrlE:
		return rawKey(core.Ctrl('e'))
	case tea.KeyCtrlF:
		return rawKey(core.Ctrl('f'))
	case tea.KeyCtrlG:
		return rawKey(core.Ctrl('g'))
	case tea.KeyCtrlK:
		return rawKey(core.Ctrl('k'))
	case tea.KeyCtrlL:
		return rawKey(core.Ctrl('l'))
	case tea.KeyCtrlN:
		return rawKey(core.Ctrl('n'))
	case tea.KeyCtrlP:
		return rawKey(core.Ctrl('p'))
	case tea.KeyCtrlR:
		return rawKey(core.Ctrl('r'))
	case tea.KeyCtrlT:
		return rawKey(core.Ctrl('t'))
	case tea.KeyCtrlU:
		return rawKey(core.Ctrl('u'))
	case tea.KeyCtrlW:
		return rawKey(core.Ctrl('w'))
	case tea.KeyCtrlY:
		return rawKey(core.Ctrl('y'))
	case tea.KeyCtrlZ:
		return rawKey(core.Ctrl('z'))
	}

	return nil
}
