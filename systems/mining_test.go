package systems

import (
	"testing"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/events"
	"github.com/lixenwraith/space-miner/input"
)

func TestMiningCollectsUnderShip(t *testing.T) {
	tests := []struct {
		name     string
		kind     components.ResourceKind
		fuel     float64
		wantFuel float64
	}{
		{"iron", components.ResourceIron, 50, 50},
		{"gold", components.ResourceGold, 50, 50},
		{"crystal refuels", components.ResourceCrystal, 50, 70},
		{"crystal capped", components.ResourceCrystal, 95, constants.MaxFuel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := newTestContext(t)
			clearField(ctx)
			setFuel(ctx, tt.fuel)
			node := addResource(ctx, 12, 10, tt.kind)
			ctx.State.MineRequested = true

			NewMiningSystem(ctx).Update(ctx.World, 0)

			if ctx.World.Resources.Has(node) || ctx.World.Positions.Has(node) {
				t.Error("Mined resource should be removed")
			}
			ship, _ := ctx.Ship()
			if ship.Cargo[tt.kind] != 1 || ship.Cargo.Total() != 1 {
				t.Errorf("Expected one %s in cargo, got %v", tt.kind, ship.Cargo)
			}
			if ship.Fuel != tt.wantFuel {
				t.Errorf("Expected fuel %v, got %v", tt.wantFuel, ship.Fuel)
			}
			if ctx.State.Score != constants.ScorePerMine {
				t.Errorf("Expected score %d, got %d", constants.ScorePerMine, ctx.State.Score)
			}
			if ctx.State.MineRequested {
				t.Error("Mine request should be consumed")
			}

			mined := eventsOfType(ctx.Events.Consume(), events.EventResourceMined)
			if len(mined) != 1 {
				t.Fatalf("Expected one resource_mined event, got %d", len(mined))
			}
			payload := mined[0].Payload.(*events.ResourceMinedPayload)
			if payload.Kind != tt.kind || payload.X != 12 || payload.Y != 10 || payload.Refueled != tt.wantFuel-tt.fuel {
				t.Errorf("Unexpected payload %+v", payload)
			}
		})
	}
}

func TestMiningNothingUnderShip(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	node := addResource(ctx, 14, 10, components.ResourceGold)
	ctx.State.MineRequested = true

	NewMiningSystem(ctx).Update(ctx.World, 0)

	if !ctx.World.Resources.Has(node) {
		t.Error("Resource beside the ship should stay")
	}
	if ctx.State.Score != 0 {
		t.Errorf("Score should not change, got %d", ctx.State.Score)
	}
}

func TestMiningRequiresRequest(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	node := addResource(ctx, 11, 10, components.ResourceIron)

	NewMiningSystem(ctx).Update(ctx.World, 0)

	if !ctx.World.Resources.Has(node) {
		t.Error("Resource should stay without a mine request")
	}
}

func TestMiningOneResourcePerAction(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	first := addResource(ctx, 10, 10, components.ResourceIron)
	second := addResource(ctx, 12, 10, components.ResourceGold)

	ctx.State.PushIntent(input.IntentMine)
	ctx.Tick()

	if ctx.World.Resources.Has(first) {
		t.Error("Lowest id resource should be mined first")
	}
	if !ctx.World.Resources.Has(second) {
		t.Error("Only one resource per mine action")
	}

	ctx.State.PushIntent(input.IntentMine)
	ctx.Tick()
	if ctx.World.Resources.Has(second) {
		t.Error("Second mine action should collect the remaining resource")
	}
	if ctx.State.Score != 2*constants.ScorePerMine {
		t.Errorf("Expected score %d, got %d", 2*constants.ScorePerMine, ctx.State.Score)
	}
}
