package audio

import (
	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

// EventHandler maps game events to sound effects
type EventHandler struct {
	player Player
}

// NewEventHandler creates an audio handler, player may be nil when audio is disabled
func NewEventHandler(player Player) *EventHandler {
	return &EventHandler{player: player}
}

// EventTypes returns the event types the audio handler reacts to
func (h *EventHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventResourceMined,
		events.EventShipCrashed,
		events.EventFuelExhausted,
		events.EventFuelLow,
		events.EventPauseToggled,
	}
}

// pauser is implemented by players that can suspend output
type pauser interface {
	SetPaused(paused bool)
}

// HandleEvent plays the effect for an event
func (h *EventHandler) HandleEvent(ctx *engine.GameContext, ev events.GameEvent) {
	if h.player == nil {
		return
	}

	switch ev.Type {
	case events.EventResourceMined:
		if p, ok := ev.Payload.(*events.ResourceMinedPayload); ok && p.Kind == components.ResourceCrystal {
			h.player.Play(SoundRefuel)
			return
		}
		h.player.Play(SoundMine)
	case events.EventShipCrashed, events.EventFuelExhausted:
		h.player.Play(SoundCrash)
	case events.EventFuelLow:
		h.player.Play(SoundLowFuel)
	case events.EventPauseToggled:
		p, ok := ev.Payload.(*events.PausePayload)
		if pp, canPause := h.player.(pauser); ok && canPause {
			pp.SetPaused(p.Paused)
		}
	}
}
