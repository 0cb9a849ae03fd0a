package input

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps runes and special keys to intents
// Letter runes are stored lower-case so bindings ignore shift and caps lock
type KeyTable struct {
	Runes map[rune]Intent
	Keys  map[tcell.Key]Intent
}

// DefaultKeyTable returns WASD + arrows movement, space to mine, p/q/r session keys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Intent{
			'w': IntentUp,
			'a': IntentLeft,
			's': IntentDown,
			'd': IntentRight,
			' ': IntentMine,
			'p': IntentPause,
			'q': IntentQuit,
			'r': IntentRestart,
		},
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:    IntentUp,
			tcell.KeyDown:  IntentDown,
			tcell.KeyLeft:  IntentLeft,
			tcell.KeyRight: IntentRight,
			tcell.KeyCtrlC: IntentQuit,
		},
	}
}

// Resolve returns the intent bound to ev, IntentNone when unbound
// Ctrl-C always quits so a broken keymap cannot trap the player
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyCtrlC {
		return IntentQuit
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(ev.Rune())]
	}
	return kt.Keys[ev.Key()]
}

// clear removes every binding that currently produces intent
func (kt *KeyTable) clear(intent Intent) {
	for r, i := range kt.Runes {
		if i == intent {
			delete(kt.Runes, r)
		}
	}
	for k, i := range kt.Keys {
		if i == intent {
			delete(kt.Keys, k)
		}
	}
}

// bind attaches a key name to intent
func (kt *KeyTable) bind(name string, intent Intent) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if r, ok := runeAliases[name]; ok {
		kt.Runes[r] = intent
		return true
	}
	if k, ok := nameToKey[name]; ok {
		kt.Keys[k] = intent
		return true
	}
	runes := []rune(name)
	if len(runes) == 1 && unicode.IsPrint(runes[0]) {
		kt.Runes[runes[0]] = intent
		return true
	}
	return false
}
