package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/marklanglo/pong/engine"
)

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]engine.Key

	// Rune bindings, matched case-insensitively
	Runes map[rune]engine.Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Key{
			tcell.KeyUp:     engine.KeyArrowUp,
			tcell.KeyDown:   engine.KeyArrowDown,
			tcell.KeyEnter:  engine.KeyEnter,
			tcell.KeyEscape: engine.KeyEscape,
			tcell.KeyCtrlC:  engine.KeyEscape,
		},
		Runes: map[rune]engine.Key{
			'w': engine.KeyW,
			's': engine.KeyS,
			'm': engine.KeyM,
			't': engine.KeyT,
		},
	}
}

// Lookup resolves a key code and rune; unbound keys map to KeyOther
func (kt *KeyTable) Lookup(code tcell.Key, r rune) engine.Key {
	if code == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if k, ok := kt.Runes[r]; ok {
			return k
		}
		return engine.KeyOther
	}
	if k, ok := kt.SpecialKeys[code]; ok {
		return k
	}
	return engine.KeyOther
}

// Translate resolves a tcell key event
func (kt *KeyTable) Translate(ev *tcell.EventKey) engine.Key {
	return kt.Lookup(ev.Key(), ev.Rune())
}
