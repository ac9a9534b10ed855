package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyEventString(t *testing.T) {
	cases := map[string]struct {
		key  KeyEvent
		want string
	}{
		"plain character": {Char('a'), "a"},
		"ctrl chord":      {Ctrl('c'), "Ctrl+c"},
		"ctrl uppercase":  {Ctrl('R'), "Ctrl+r"},
		"alt chord":       {Alt('b'), "Alt+b"},
		"special key":     {Special(KeyEnter), "Enter"},
		"arrow":           {Special(KeyUp), "Up"},
		"unknown":         {Special(KeyUnknown), "Unknown"},
		"stacked mods":    {KeyEvent{Rune: 'x', Modifiers: ModCtrl | ModAlt}, "Ctrl+Alt+x"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.key.String())
		})
	}
}
