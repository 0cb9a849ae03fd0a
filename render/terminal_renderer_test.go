package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-miner/config"
	"github.com/lixenwraith/space-miner/engine"
	"github.com/lixenwraith/space-miner/events"
)

// Default field on an 80x30 terminal puts the box origin at (22, 5)
const (
	testOriginX = 22
	testOriginY = 5
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestGame(t *testing.T) *engine.GameContext {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 7
	return engine.NewGameContext(cfg, engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func readRow(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(ch)
	}
	return sb.String()
}

func screenText(screen tcell.SimulationScreen) string {
	_, h := screen.Size()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		rows[y] = readRow(screen, y)
	}
	return strings.Join(rows, "\n")
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func TestRenderTooSmall(t *testing.T) {
	screen := newTestScreen(t, 20, 10)
	ctx := newTestGame(t)
	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)

	r.RenderFrame(ctx)

	text := screenText(screen)
	if !strings.Contains(text, "Terminal too small") {
		t.Errorf("Expected too small message, got:\n%s", text)
	}
	if strings.ContainsRune(text, '╔') {
		t.Error("Border should not be drawn when the terminal is too small")
	}
}

func TestRenderBorderCentered(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)

	r.RenderFrame(ctx)

	bw, bh := r.BoxSize()
	right, bottom := testOriginX+bw-1, testOriginY+bh-1
	separator := testOriginY + 1 + ctx.Config.Field.Height

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top left", testOriginX, testOriginY, '╔'},
		{"top right", right, testOriginY, '╗'},
		{"separator left", testOriginX, separator, '╠'},
		{"separator right", right, separator, '╣'},
		{"bottom left", testOriginX, bottom, '╚'},
		{"bottom right", right, bottom, '╝'},
		{"top edge", testOriginX + 5, testOriginY, '═'},
		{"side edge", testOriginX, testOriginY + 3, '║'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(screen, tt.x, tt.y); got != tt.want {
				t.Errorf("At (%d,%d) expected %q, got %q", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestRenderWelcome(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)

	r.RenderFrame(ctx)

	text := screenText(screen)
	for _, want := range []string{"S P A C E   M I N E R", "press any key", "SPACE           mine"} {
		if !strings.Contains(text, want) {
			t.Errorf("Welcome screen missing %q", want)
		}
	}
}

func TestRenderPlayingField(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	ctx.StartRun()
	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)

	r.RenderFrame(ctx)

	fieldX := func(x int) int { return testOriginX + 1 + x }
	fieldY := func(y int) int { return testOriginY + 1 + y }

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"ship nose", 10, 10, '>'},
		{"ship body", 11, 10, 'A'},
		{"ship tail", 12, 10, '<'},
		{"asteroid", 5, 5, 'O'},
		{"iron", 8, 3, '*'},
		{"crystal", 25, 10, '♦'},
		{"gold", 12, 7, '$'},
		{"empty", 0, 0, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runeAt(screen, fieldX(tt.x), fieldY(tt.y)); got != tt.want {
				t.Errorf("Field (%d,%d) expected %q, got %q", tt.x, tt.y, tt.want, got)
			}
		})
	}

	hud1 := readRow(screen, testOriginY+ctx.Config.Field.Height+2)
	if !strings.Contains(hud1, "FUEL ██████████ 100") {
		t.Errorf("Expected full fuel bar, got %q", hud1)
	}
	if !strings.Contains(hud1, "SCORE 0") {
		t.Errorf("Expected score, got %q", hud1)
	}

	hud2 := readRow(screen, testOriginY+ctx.Config.Field.Height+3)
	for _, want := range []string{"CARGO 0", "*0", "♦0", "$0", "00:00"} {
		if !strings.Contains(hud2, want) {
			t.Errorf("Second HUD row missing %q: %q", want, hud2)
		}
	}
	if strings.Contains(hud2, "◉") {
		t.Error("Spectator count should be hidden unless enabled")
	}
}

func TestRenderFuelBarAndSpectators(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	ctx.StartRun()

	ship, _ := ctx.Ship()
	ship.Fuel = 42
	ctx.World.Ships.Add(ctx.State.ShipEntity, ship)

	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)
	r.SetSpectators(3)
	r.RenderFrame(ctx)

	hud1 := readRow(screen, testOriginY+ctx.Config.Field.Height+2)
	if !strings.Contains(hud1, "FUEL ████░░░░░░  42") {
		t.Errorf("Expected 4 of 10 fuel blocks, got %q", hud1)
	}
	hud2 := readRow(screen, testOriginY+ctx.Config.Field.Height+3)
	if !strings.Contains(hud2, "◉3") {
		t.Errorf("Expected spectator count, got %q", hud2)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	ctx.StartRun()
	ctx.TogglePause()
	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)

	r.RenderFrame(ctx)

	text := screenText(screen)
	if !strings.Contains(text, "PAUSED") {
		t.Error("Pause overlay missing")
	}
	// Field stays visible around the panel
	if got := runeAt(screen, testOriginX+1+5, testOriginY+1+5); got != 'O' {
		t.Errorf("Expected asteroid visible under pause, got %q", got)
	}
}

func TestRenderGameOverLeaderboard(t *testing.T) {
	screen := newTestScreen(t, 80, 30)
	ctx := newTestGame(t)
	ctx.StartRun()
	ctx.State.Score = 40
	ctx.EndRun(events.EndCollision)

	r := NewTerminalRenderer(screen, ctx.Config.Field.Width, ctx.Config.Field.Height)
	r.SetLeaderboard([]LeaderboardEntry{
		{Score: 90, Cargo: 9, Reason: "collision"},
		{Score: 40, Cargo: 4, Reason: "collision"},
	})
	r.RenderFrame(ctx)

	text := screenText(screen)
	for _, want := range []string{
		"GAME OVER",
		events.EndCollision.Message(),
		"Score 40",
		"TOP RUNS",
		"1.    90",
		"2.    40",
		"r restart   q quit",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Game over screen missing %q:\n%s", want, text)
		}
	}
}

func TestFuelBlocks(t *testing.T) {
	tests := []struct {
		fuel float64
		want int
	}{
		{100, 10},
		{150, 10},
		{55, 6},
		{42, 4},
		{5, 1},
		{4, 0},
		{0, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := FuelBlocks(tt.fuel, 100, 10); got != tt.want {
			t.Errorf("FuelBlocks(%v) = %d, want %d", tt.fuel, got, tt.want)
		}
	}
}

func TestFormatPlayTime(t *testing.T) {
	tests := map[time.Duration]string{
		0:                                     "00:00",
		59 * time.Second:                      "00:59",
		83*time.Second + 900*time.Millisecond: "01:23",
		61 * time.Minute:                      "61:00",
	}
	for d, want := range tests {
		if got := FormatPlayTime(d); got != want {
			t.Errorf("FormatPlayTime(%v) = %q, want %q", d, got, want)
		}
	}
}
