package input

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"
)

// ApplyOverrides replaces the bindings of every action named in overrides
// Actions absent from overrides keep their defaults
// Returns error on unknown action names or invalid key names, leaving kt untouched
func (kt *KeyTable) ApplyOverrides(overrides map[string][]string) error {
	if len(overrides) == 0 {
		return nil
	}

	staged := kt.clone()

	actions := make([]string, 0, len(overrides))
	for action := range overrides {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		intent, ok := IntentByName(action)
		if !ok {
			return fmt.Errorf("keymap: unknown action %q", action)
		}
		staged.clear(intent)
		for _, name := range overrides[action] {
			if !staged.bind(name, intent) {
				return fmt.Errorf("keymap: action %q: invalid key %q", action, name)
			}
		}
	}

	kt.Runes = staged.Runes
	kt.Keys = staged.Keys
	return nil
}

func (kt *KeyTable) clone() *KeyTable {
	c := &KeyTable{
		Runes: make(map[rune]Intent, len(kt.Runes)),
		Keys:  make(map[tcell.Key]Intent, len(kt.Keys)),
	}
	for r, i := range kt.Runes {
		c.Runes[r] = i
	}
	for k, i := range kt.Keys {
		c.Keys[k] = i
	}
	return c
}
