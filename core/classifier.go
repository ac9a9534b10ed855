package core

import "time"

// RawEventKind tags the device-level events an EventSource produces.
type RawEventKind int

const (
	RawKey RawEventKind = iota
	RawResize
	RawMouse
)

// RawEvent is one decoded terminal event before key-binding translation.
type RawEvent struct {
	Kind   RawEventKind
	Key    KeyEvent
	Width  int
	Height int
}

// EventSource supplies raw terminal events to the engine. Enter and Exit
// bracket a read with whatever terminal setup the source needs (raw mode,
// alternate input processing); Exit must be safe to call after a failed
// Enter.
type EventSource interface {
	Enter() error
	Exit() error

	// Poll reports whether an event is available within the timeout.
	Poll(timeout time.Duration) (bool, error)

	// Read returns the next event. It must only be called after Poll
	// reported one available.
	Read() (RawEvent, error)
}

const (
	// pollWait is how long the drain loop waits for a follow-up event
	// before treating the burst as finished. Human keystrokes arrive
	// slower than this; paste chunks arrive faster.
	pollWait = 10 * time.Millisecond

	// eventsThreshold is the burst size above which the batch is treated
	// as a paste rather than fast typing.
	eventsThreshold = 10
)

// classifyEvents turns one drained burst of raw events into engine events.
// Resizes are coalesced to the latest and emitted first, a burst larger
// than the threshold becomes a single paste, and below the threshold
// consecutive edit events are merged into one batch so a fast sequence of
// inserts dispatches (and repaints) once.
func classifyEvents(raw []RawEvent, parse func(KeyEvent) Event) []Event {
	var lastResize *RawEvent
	keys := make([]RawEvent, 0, len(raw))
	for i := range raw {
		switch raw[i].Kind {
		case RawResize:
			lastResize = &raw[i]
		default:
			keys = append(keys, raw[i])
		}
	}

	var events []Event
	if lastResize != nil {
		events = append(events, ResizeEvent(lastResize.Width, lastResize.Height))
	}

	if len(keys) > eventsThreshold {
		pasted := make([]Event, 0, len(keys))
		for _, r := range keys {
			pasted = append(pasted, classifyOne(r, parse))
		}
		return append(events, PasteEvent(pasted))
	}

	for _, r := range keys {
		event := classifyOne(r, parse)
		if event.Kind == EventEdit && len(events) > 0 {
			if last := &events[len(events)-1]; last.Kind == EventEdit {
				last.Commands = append(last.Commands, event.Commands...)
				continue
			}
		}
		events = append(events, event)
	}
	return events
}

func classifyOne(r RawEvent, parse func(KeyEvent) Event) Event {
	if r.Kind == RawMouse {
		return MouseEvent()
	}
	return parse(r.Key)
}
