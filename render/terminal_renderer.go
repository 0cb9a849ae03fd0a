package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/space-miner/components"
	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
)

// LeaderboardEntry is one finished run shown on the game over screen
type LeaderboardEntry struct {
	Score  int
	Cargo  int
	Reason string
}

// TerminalRenderer draws the bordered field, HUD and phase screens
// Called from the game loop goroutine only
type TerminalRenderer struct {
	screen tcell.Screen

	fieldWidth  int
	fieldHeight int

	// Box origin on screen, recomputed every frame for resizes
	originX int
	originY int

	leaderboard []LeaderboardEntry
	spectating  bool
	spectators  int
}

// NewTerminalRenderer creates a renderer for a field of the given size
func NewTerminalRenderer(screen tcell.Screen, fieldWidth, fieldHeight int) *TerminalRenderer {
	return &TerminalRenderer{
		screen:      screen,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
}

// SetLeaderboard replaces the entries shown on the game over screen
func (r *TerminalRenderer) SetLeaderboard(entries []LeaderboardEntry) {
	r.leaderboard = append(r.leaderboard[:0], entries...)
}

// SetSpectators enables the HUD spectator counter and updates its value
func (r *TerminalRenderer) SetSpectators(n int) {
	r.spectating = true
	r.spectators = n
}

// BoxSize returns the full frame size including border and HUD
func (r *TerminalRenderer) BoxSize() (int, int) {
	return constants.BoxWidth(r.fieldWidth), constants.BoxHeight(r.fieldHeight)
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbHUDText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	sw, sh := r.screen.Size()
	bw, bh := r.BoxSize()
	if sw < bw || sh < bh {
		r.drawTooSmall(sw, sh, bw, bh, defaultStyle)
		r.screen.Show()
		return
	}
	r.originX = (sw - bw) / 2
	r.originY = (sh - bh) / 2

	r.drawBorder(defaultStyle)

	switch ctx.State.Phase {
	case engine.PhaseWelcome:
		r.drawWelcome(defaultStyle)
	case engine.PhasePlaying:
		r.drawField(ctx.World, defaultStyle)
	case engine.PhasePaused:
		r.drawField(ctx.World, defaultStyle)
		r.drawPaused(defaultStyle)
	case engine.PhaseGameOver:
		// Final frame stays under the overlay
		r.drawField(ctx.World, defaultStyle)
		r.drawGameOver(ctx, defaultStyle)
	}

	r.drawHUD(ctx, defaultStyle)
	r.screen.Show()
}

// fieldCell maps field coordinates to screen coordinates
func (r *TerminalRenderer) fieldCell(x, y int) (int, int) {
	return r.originX + 1 + x, r.originY + 1 + y
}

func (r *TerminalRenderer) drawBorder(defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	bw, bh := r.BoxSize()
	left, top := r.originX, r.originY
	right, bottom := left+bw-1, top+bh-1
	separator := top + 1 + r.fieldHeight

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, constants.BorderHorizontal, nil, style)
		r.screen.SetContent(x, separator, constants.BorderHorizontal, nil, style)
		r.screen.SetContent(x, bottom, constants.BorderHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, constants.BorderVertical, nil, style)
		r.screen.SetContent(right, y, constants.BorderVertical, nil, style)
	}

	r.screen.SetContent(left, top, constants.BorderTopLeft, nil, style)
	r.screen.SetContent(right, top, constants.BorderTopRight, nil, style)
	r.screen.SetContent(left, separator, constants.BorderTeeLeft, nil, style)
	r.screen.SetContent(right, separator, constants.BorderTeeRight, nil, style)
	r.screen.SetContent(left, bottom, constants.BorderBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, constants.BorderBottomRight, nil, style)
}

func (r *TerminalRenderer) drawField(world *engine.World, defaultStyle tcell.Style) {
	asteroidStyle := defaultStyle.Foreground(RgbAsteroid)
	for _, e := range world.Asteroids.All() {
		if pos, ok := world.Positions.Get(e); ok {
			r.setFieldContent(pos.X, pos.Y, constants.AsteroidGlyph, asteroidStyle)
		}
	}

	for _, e := range world.Resources.All() {
		res, _ := world.Resources.Get(e)
		if pos, ok := world.Positions.Get(e); ok {
			r.setFieldContent(pos.X, pos.Y, res.Kind.Glyph(), defaultStyle.Foreground(ResourceColor(res.Kind)))
		}
	}

	// Ship last so it is never hidden
	shipStyle := defaultStyle.Foreground(RgbShip).Bold(true)
	for _, e := range world.Ships.All() {
		pos, ok := world.Positions.Get(e)
		if !ok {
			continue
		}
		for i, ch := range []rune(constants.ShipGlyph) {
			r.setFieldContent(pos.X+i, pos.Y, ch, shipStyle)
		}
	}
}

// setFieldContent draws inside the field only
func (r *TerminalRenderer) setFieldContent(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= r.fieldWidth || y < 0 || y >= r.fieldHeight {
		return
	}
	sx, sy := r.fieldCell(x, y)
	r.screen.SetContent(sx, sy, ch, nil, style)
}

func (r *TerminalRenderer) drawHUD(ctx *engine.GameContext, defaultStyle tcell.Style) {
	left := r.originX + 1
	right := r.originX + r.fieldWidth
	row1 := r.originY + r.fieldHeight + 2
	row2 := row1 + 1

	labelStyle := defaultStyle.Foreground(RgbHUDLabel)
	textStyle := defaultStyle.Foreground(RgbHUDText)

	ship, hasShip := ctx.Ship()
	maxFuel := ctx.Config.Fuel.Max
	fuel := maxFuel
	if hasShip {
		fuel = ship.Fuel
	}

	// Row 1: fuel bar and score
	x := r.drawText(left, row1, "FUEL ", labelStyle)
	filled := FuelBlocks(fuel, maxFuel, constants.FuelBarWidth)
	barStyle := defaultStyle.Foreground(FuelColor(fuel / maxFuel))
	emptyStyle := defaultStyle.Foreground(RgbFuelEmpty)
	for i := 0; i < constants.FuelBarWidth; i++ {
		if i < filled {
			r.screen.SetContent(x+i, row1, constants.FuelBlockFull, nil, barStyle)
		} else {
			r.screen.SetContent(x+i, row1, constants.FuelBlockEmpty, nil, emptyStyle)
		}
	}
	x += constants.FuelBarWidth
	r.drawText(x, row1, fmt.Sprintf(" %3.0f", math.Ceil(fuel)), textStyle)

	score := fmt.Sprintf("SCORE %d", ctx.State.Score)
	r.drawText(right-runewidth.StringWidth(score)+1, row1, score, textStyle)

	// Row 2: cargo breakdown, spectators and play time
	x = r.drawText(left, row2, "CARGO ", labelStyle)
	x = r.drawText(x, row2, fmt.Sprintf("%d", ship.Cargo.Total()), textStyle)
	for _, kind := range components.AllResourceKinds {
		x = r.drawText(x, row2, " ", textStyle)
		x = r.drawText(x, row2, string(kind.Glyph()), defaultStyle.Foreground(ResourceColor(kind)))
		x = r.drawText(x, row2, fmt.Sprintf("%d", ship.Cargo[kind]), textStyle)
	}

	status := FormatPlayTime(ctx.PlayTime())
	if r.spectating {
		status = fmt.Sprintf("◉%d %s", r.spectators, status)
	}
	r.drawText(right-runewidth.StringWidth(status)+1, row2, status, textStyle)
}

func (r *TerminalRenderer) drawTooSmall(sw, sh, bw, bh int, defaultStyle tcell.Style) {
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("need %dx%d, have %dx%d", bw, bh, sw, sh),
	}
	y := sh/2 - len(lines)/2
	for i, line := range lines {
		x := (sw - runewidth.StringWidth(line)) / 2
		r.drawText(max(x, 0), y+i, line, defaultStyle.Foreground(RgbGameOver))
	}
}

// drawText writes s at (x, y) and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

// FuelBlocks is the number of filled fuel bar cells, rounded to nearest
func FuelBlocks(fuel, maxFuel float64, width int) int {
	if maxFuel <= 0 || fuel <= 0 {
		return 0
	}
	n := int(math.Round(fuel / maxFuel * float64(width)))
	return min(n, width)
}

// FormatPlayTime renders a duration as MM:SS
func FormatPlayTime(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
