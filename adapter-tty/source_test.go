package tty_adapter

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ionut-t/goreadline/core"
)

// pipeSource wires a Source's reader to the write end of a pipe, skipping
// the raw-mode guard so the reader can be driven headless.
func pipeSource(t *testing.T) (*Source, *os.File) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(); w.Close() })

	s := NewSourceFromFile(r)
	s.startReader()
	return s, w
}

func readKey(t *testing.T, s *Source) core.KeyEvent {
	t.Helper()

	ok, err := s.Poll(time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	event, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, core.RawKey, event.Kind)
	return event.Key
}

func TestSourceDeliversDecodedKeys(t *testing.T) {
	s, w := pipeSource(t)

	_, err := w.Write([]byte("hi"))
	require.NoError(t, err)

	assert.Equal(t, core.Char('h'), readKey(t, s))
	assert.Equal(t, core.Char('i'), readKey(t, s))
}

func TestSourceReaderSurvivesSessions(t *testing.T) {
	s, w := pipeSource(t)

	_, err := w.Write([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, core.Char('a'), readKey(t, s))

	// A second session must reuse the same reader; a competing reader
	// would race for these bytes and could drop or reorder them.
	s.startReader()
	s.pending = nil

	_, err = w.Write([]byte("bc"))
	require.NoError(t, err)
	assert.Equal(t, core.Char('b'), readKey(t, s))
	assert.Equal(t, core.Char('c'), readKey(t, s))
}

func TestSourceBuffersInputBetweenSessions(t *testing.T) {
	s, w := pipeSource(t)

	// Typed-ahead input with nobody polling stays queued in order.
	_, err := w.Write([]byte("xy"))
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, core.Char('x'), readKey(t, s))
	assert.Equal(t, core.Char('y'), readKey(t, s))
}

func TestSourceReportsReadFailure(t *testing.T) {
	s, w := pipeSource(t)

	_, err := w.Write([]byte("z"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	// Buffered input is still delivered before the failure surfaces.
	assert.Equal(t, core.Char('z'), readKey(t, s))

	_, err = s.Poll(time.Second)
	assert.ErrorIs(t, err, core.ErrReadFailed)

	_, err = s.Read()
	assert.ErrorIs(t, err, core.ErrReadFailed)
}
