// Package input translates terminal key events into game intents
package input

// Intent is a semantic player action decoupled from physical keys
type Intent uint8

const (
	IntentNone Intent = iota

	// Ship control
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentMine

	// Session control
	IntentPause
	IntentQuit
	IntentRestart
)

// IsMovement reports whether the intent moves the ship
func (i Intent) IsMovement() bool {
	return i >= IntentUp && i <= IntentRight
}

// IsShipAction reports whether the intent is consumed by the simulation tick
func (i Intent) IsShipAction() bool {
	return i.IsMovement() || i == IntentMine
}

// Delta returns the grid step for a movement intent, zero otherwise
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentUp:
		return 0, -1
	case IntentDown:
		return 0, 1
	case IntentLeft:
		return -1, 0
	case IntentRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (i Intent) String() string {
	if name, ok := intentToName[i]; ok {
		return name
	}
	return "none"
}
