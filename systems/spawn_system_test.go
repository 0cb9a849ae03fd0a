package systems

import (
	"testing"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/events"
)

func TestSpawnAsteroidOnRateTick(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	sys := NewSpawnSystem(ctx)

	for i := 0; i < constants.InitialSpawnRate-1; i++ {
		sys.Update(ctx.World, 0)
	}
	if n := ctx.World.Asteroids.Count(); n != 0 {
		t.Fatalf("Expected no asteroid before tick %d, got %d", constants.InitialSpawnRate, n)
	}

	sys.Update(ctx.World, 0)
	if n := ctx.World.Asteroids.Count(); n != 1 {
		t.Fatalf("Expected one asteroid on tick %d, got %d", constants.InitialSpawnRate, n)
	}
	if ctx.State.Tick != uint64(constants.InitialSpawnRate) {
		t.Errorf("Expected tick %d, got %d", constants.InitialSpawnRate, ctx.State.Tick)
	}

	spawned := eventsOfType(ctx.Events.Consume(), events.EventAsteroidSpawned)
	if len(spawned) != 1 {
		t.Fatalf("Expected one asteroid_spawned event, got %d", len(spawned))
	}

	rock := ctx.World.Asteroids.All()[0]
	asteroid, _ := ctx.World.Asteroids.Get(rock)
	if asteroid.SpawnTick != uint64(constants.InitialSpawnRate) {
		t.Errorf("Expected spawn tick %d, got %d", constants.InitialSpawnRate, asteroid.SpawnTick)
	}
}

func TestSpawnRespectsExclusionZone(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	ctx.State.SpawnRate = 1
	sys := NewSpawnSystem(ctx)

	bounds, _ := ctx.ShipBounds()
	exclusion := bounds.Pad(constants.SpawnExclusionPadding)

	for i := 0; i < 200; i++ {
		sys.Update(ctx.World, 0)
	}

	for _, e := range ctx.World.Asteroids.All() {
		pos, _ := ctx.World.Positions.Get(e)
		if exclusion.Contains(pos.X, pos.Y) {
			t.Errorf("Asteroid %d spawned inside exclusion zone at (%d,%d)", e, pos.X, pos.Y)
		}
		if pos.X < 0 || pos.X >= ctx.Config.Field.Width || pos.Y < 0 || pos.Y >= ctx.Config.Field.Height {
			t.Errorf("Asteroid %d outside field at (%d,%d)", e, pos.X, pos.Y)
		}
	}
}

func TestSpawnNoStacking(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	ctx.State.SpawnRate = 1
	sys := NewSpawnSystem(ctx)

	for i := 0; i < constants.MaxAsteroids*2; i++ {
		sys.Update(ctx.World, 0)
	}

	seen := make(map[[2]int]bool)
	for _, e := range ctx.World.Positions.All() {
		pos, _ := ctx.World.Positions.Get(e)
		if e == ctx.State.ShipEntity {
			continue
		}
		key := [2]int{pos.X, pos.Y}
		if seen[key] {
			t.Errorf("Two entities share cell (%d,%d)", pos.X, pos.Y)
		}
		seen[key] = true
	}

	if n := ctx.World.Asteroids.Count(); n > constants.MaxAsteroids {
		t.Errorf("Asteroid cap exceeded: %d", n)
	}
}

func TestDifficultyRamp(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	ctx.Config.Spawn.MaxAsteroids = 0
	ctx.Config.Spawn.MaxResources = 0
	sys := NewSpawnSystem(ctx)

	expected := []int{45, 40, 35, 30, 25, 20, 15, 10, 10, 10}
	for i, want := range expected {
		for j := 0; j < constants.DifficultyInterval; j++ {
			sys.Update(ctx.World, 0)
		}
		if ctx.State.SpawnRate != want {
			t.Fatalf("After %d intervals expected rate %d, got %d", i+1, want, ctx.State.SpawnRate)
		}
	}

	if n := len(eventsOfType(ctx.Events.Consume(), events.EventDifficultyIncreased)); n != 8 {
		t.Errorf("Expected 8 difficulty events, got %d", n)
	}
}

func TestResourceRespawn(t *testing.T) {
	ctx := newTestContext(t)
	clearField(ctx)
	ctx.Config.Spawn.MaxAsteroids = 0
	sys := NewSpawnSystem(ctx)

	for i := 0; i < constants.ResourceSpawnInterval; i++ {
		sys.Update(ctx.World, 0)
	}
	if n := ctx.World.Resources.Count(); n != 1 {
		t.Fatalf("Expected one resource after %d ticks, got %d", constants.ResourceSpawnInterval, n)
	}

	for i := 0; i < constants.ResourceSpawnInterval*20; i++ {
		sys.Update(ctx.World, 0)
	}
	if n := ctx.World.Resources.Count(); n != constants.MaxResources {
		t.Errorf("Expected resources capped at %d, got %d", constants.MaxResources, n)
	}
}

func TestResourceKindDistribution(t *testing.T) {
	ctx := newTestContext(t)
	sys := NewSpawnSystem(ctx)

	counts := make(map[components.ResourceKind]int)
	const rolls = 10000
	for i := 0; i < rolls; i++ {
		counts[sys.rollResourceKind()]++
	}

	tests := []struct {
		kind   components.ResourceKind
		weight int
	}{
		{components.ResourceIron, constants.IronWeight},
		{components.ResourceCrystal, constants.CrystalWeight},
		{components.ResourceGold, constants.GoldWeight},
	}
	for _, tt := range tests {
		share := counts[tt.kind] * 100 / rolls
		if share < tt.weight-5 || share > tt.weight+5 {
			t.Errorf("%s share %d%% too far from weight %d", tt.kind, share, tt.weight)
		}
	}
}

func TestSpawnDeterministicForSeed(t *testing.T) {
	layout := func() [][2]int {
		ctx := newTestContext(t)
		ctx.State.SpawnRate = 1
		sys := NewSpawnSystem(ctx)
		for i := 0; i < 30; i++ {
			sys.Update(ctx.World, 0)
		}
		var cells [][2]int
		for _, e := range ctx.World.Asteroids.All() {
			pos, _ := ctx.World.Positions.Get(e)
			cells = append(cells, [2]int{pos.X, pos.Y})
		}
		return cells
	}

	a, b := layout(), layout()
	if len(a) != len(b) {
		t.Fatalf("Layouts differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Asteroid %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
