package input

import "github.com/gdamore/tcell/v2"

// keyToName maps special keys to canonical config names
var keyToName = map[tcell.Key]string{
	tcell.KeyEscape:    "escape",
	tcell.KeyEnter:     "enter",
	tcell.KeyTab:       "tab",
	tcell.KeyBackspace: "backspace",
	tcell.KeyDelete:    "delete",

	tcell.KeyUp:    "up",
	tcell.KeyDown:  "down",
	tcell.KeyLeft:  "left",
	tcell.KeyRight: "right",

	tcell.KeyF1: "f1",
	tcell.KeyF2: "f2",
	tcell.KeyF3: "f3",
	tcell.KeyF4: "f4",

	tcell.KeyCtrlC: "ctrl_c",
	tcell.KeyCtrlP: "ctrl_p",
	tcell.KeyCtrlQ: "ctrl_q",
	tcell.KeyCtrlR: "ctrl_r",
}

var nameToKey = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(keyToName))
	for k, name := range keyToName {
		m[name] = k
	}
	return m
}()

// Rune aliases for keys that are awkward to write in YAML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}
