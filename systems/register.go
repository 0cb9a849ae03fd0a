package systems

import "github.com/lixenwraith/space-miner/engine"

// RegisterAll adds every simulation system to the context world
func RegisterAll(ctx *engine.GameContext) {
	ctx.World.AddSystem(NewMovementSystem(ctx))
	ctx.World.AddSystem(NewSpawnSystem(ctx))
	ctx.World.AddSystem(NewCollisionSystem(ctx))
	ctx.World.AddSystem(NewMiningSystem(ctx))
}
