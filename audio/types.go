package audio

import "time"

// SoundType represents different sound effects
type SoundType int

const (
	SoundMine    SoundType = iota // Resource collected
	SoundRefuel                   // Crystal refuel chime
	SoundCrash                    // Asteroid impact or engine flameout
	SoundLowFuel                  // Fuel warning buzz
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundMine:
		return "mine"
	case SoundRefuel:
		return "refuel"
	case SoundCrash:
		return "crash"
	case SoundLowFuel:
		return "low_fuel"
	default:
		return "unknown"
	}
}

// Effect durations
const (
	mineDuration    = 60 * time.Millisecond
	refuelDuration  = 240 * time.Millisecond
	crashDuration   = 450 * time.Millisecond
	lowFuelDuration = 200 * time.Millisecond

	// minSoundGap suppresses repeats of the same effect within a short window
	minSoundGap = 50 * time.Millisecond
)

// Player plays sound effects, implementations must be safe without an audio device
type Player interface {
	Play(sound SoundType)
}
