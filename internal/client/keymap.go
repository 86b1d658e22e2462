package client

import (
	"unicode"

	"tty-invaders/internal/game"
	"tty-invaders/internal/models"
)

// KeyCode distinguishes printable keys from the special keys we care about.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyEnter
	KeyEsc
	KeyOther
)

// Key is one keypress, independent of the terminal library.
type Key struct {
	Code KeyCode
	Ch   rune // set when Code is KeyRune
}

// Action is what a key means to the session.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionFire
	ActionQuit
)

// Input converts an action into simulation input. Quit is handled by the
// session and maps to no input.
func (a Action) Input() game.Input {
	switch a {
	case ActionLeft:
		return game.InputLeft
	case ActionRight:
		return game.InputRight
	case ActionFire:
		return game.InputFire
	}
	return game.InputNone
}

// KeyMap resolves keys to actions. Arrow keys, space and Esc are always
// bound, the letter keys come from the config.
type KeyMap struct {
	runes map[rune]Action
}

// NewKeyMap builds a KeyMap from the configured bindings.
func NewKeyMap(keys models.KeySpec) KeyMap {
	m := KeyMap{runes: make(map[rune]Action, 4)}
	bind := func(s string, a Action) {
		if r := models.FirstRune(s, 0); r != 0 {
			m.runes[unicode.ToLower(r)] = a
		}
	}
	bind(keys.Left, ActionLeft)
	bind(keys.Right, ActionRight)
	bind(keys.Fire, ActionFire)
	bind(keys.Quit, ActionQuit)
	return m
}

// Lookup returns the action for a key. Unknown keys do nothing.
func (m KeyMap) Lookup(k Key) Action {
	switch k.Code {
	case KeyArrowLeft:
		return ActionLeft
	case KeyArrowRight:
		return ActionRight
	case KeySpace:
		return ActionFire
	case KeyEsc:
		return ActionQuit
	case KeyRune:
		return m.runes[unicode.ToLower(k.Ch)]
	}
	return ActionNone
}
