package tty_adapter

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/ionut-t/goreadline/core"
)

// Source is an EventSource over a raw-mode terminal. Enter switches the
// terminal into raw mode; Exit restores the previous state and is safe to
// call twice. One reader goroutine owns the input fd for the lifetime of
// the Source, so repeated Enter/Exit cycles never compete for bytes.
type Source struct {
	in *os.File

	state   *term.State
	events  chan core.RawEvent
	pending []core.RawEvent
	winch   chan os.Signal
	done    chan struct{}
	readErr chan struct{}
}

// NewSource creates a source reading from stdin.
func NewSource() *Source {
	return &Source{in: os.Stdin}
}

// NewSourceFromFile creates a source reading from the given terminal.
func NewSourceFromFile(in *os.File) *Source {
	return &Source{in: in}
}

func (s *Source) Enter() error {
	fd := int(s.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	s.state = state
	s.startReader()

	s.done = make(chan struct{})
	s.winch = make(chan os.Signal, 1)
	signal.Notify(s.winch, syscall.SIGWINCH)
	go s.resizeLoop(fd)
	return nil
}

// startReader spawns the reader goroutine on first use. It is started
// once; input typed between sessions stays buffered and is delivered to
// the next session in order.
func (s *Source) startReader() {
	if s.events != nil {
		return
	}
	s.events = make(chan core.RawEvent, 64)
	s.readErr = make(chan struct{})
	go s.readLoop()
}

func (s *Source) Exit() error {
	if s.state == nil {
		return nil
	}
	signal.Stop(s.winch)
	close(s.done)

	err := term.Restore(int(s.in.Fd()), s.state)
	s.state = nil
	s.pending = nil
	return err
}

func (s *Source) Poll(timeout time.Duration) (bool, error) {
	if len(s.pending) > 0 {
		return true, nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case event := <-s.events:
		s.pending = append(s.pending, event)
		return true, nil
	case <-s.readErr:
		// Events that arrived ahead of the failure are still delivered.
		select {
		case event := <-s.events:
			s.pending = append(s.pending, event)
			return true, nil
		default:
			return false, core.ErrReadFailed
		}
	case <-timer.C:
		return false, nil
	}
}

func (s *Source) Read() (core.RawEvent, error) {
	if len(s.pending) > 0 {
		event := s.pending[0]
		s.pending = s.pending[1:]
		return event, nil
	}

	select {
	case event := <-s.events:
		return event, nil
	case <-s.readErr:
		select {
		case event := <-s.events:
			return event, nil
		default:
			return core.RawEvent{}, core.ErrReadFailed
		}
	}
}

// readLoop decodes terminal bytes into key events. It runs for the life
// of the Source and exits when the read fails, which happens once the fd
// is closed or the session ends.
func (s *Source) readLoop() {
	defer close(s.readErr)

	var leftover []byte
	buf := make([]byte, 256)

	for {
		n, err := s.in.Read(buf)
		if err != nil {
			return
		}

		events, rest := decode(append(leftover, buf[:n]...))
		leftover = rest

		for _, event := range events {
			s.events <- event
		}
	}
}

func (s *Source) resizeLoop(fd int) {
	for {
		select {
		case <-s.winch:
			width, height, err := term.GetSize(fd)
			if err != nil {
				continue
			}
			select {
			case s.events <- core.RawEvent{Kind: core.RawResize, Width: width, Height: height}:
			case <-s.done:
				return
			}
		case <-s.done:
			return
		}
	}
}
