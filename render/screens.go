package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/space-miner/constants"
	"github.com/lixenwraith/space-miner/engine"
)

type overlayLine struct {
	text  string
	color tcell.Color
}

var welcomeLines = []overlayLine{
	{"S P A C E   M I N E R", RgbOverlayTitle},
	{"", 0},
	{"Mine ore, dodge asteroids", RgbHUDText},
	{"and keep an eye on fuel.", RgbHUDText},
	{"", 0},
	{"WASD / arrows   move", RgbHUDText},
	{"SPACE           mine", RgbHUDText},
	{"P pause    Q quit", RgbHUDText},
	{"", 0},
	{fmt.Sprintf("%c iron  %c crystal  %c gold", constants.IronGlyph, constants.CrystalGlyph, constants.GoldGlyph), RgbGold},
	{"", 0},
	{"press any key", RgbHint},
}

func (r *TerminalRenderer) drawWelcome(defaultStyle tcell.Style) {
	r.drawPanel(welcomeLines, defaultStyle, false)
}

func (r *TerminalRenderer) drawPaused(defaultStyle tcell.Style) {
	r.drawPanel([]overlayLine{
		{"PAUSED", RgbOverlayTitle},
		{"", 0},
		{"p resume   q quit", RgbHint},
	}, defaultStyle, true)
}

func (r *TerminalRenderer) drawGameOver(ctx *engine.GameContext, defaultStyle tcell.Style) {
	ship, _ := ctx.Ship()
	lines := []overlayLine{
		{"GAME OVER", RgbGameOver},
		{ctx.State.EndReason.Message(), RgbHUDText},
		{fmt.Sprintf("Score %d   Cargo %d", ctx.State.Score, ship.Cargo.Total()), RgbHUDText},
	}

	if len(r.leaderboard) > 0 {
		lines = append(lines, overlayLine{"", 0}, overlayLine{"TOP RUNS", RgbOverlayTitle})
		for i, entry := range r.leaderboard {
			if i >= constants.LeaderboardSize {
				break
			}
			lines = append(lines, overlayLine{
				fmt.Sprintf("%d. %5d  %3d ore  %-9s", i+1, entry.Score, entry.Cargo, entry.Reason),
				RgbHUDText,
			})
		}
	}

	lines = append(lines, overlayLine{"", 0}, overlayLine{"r restart   q quit", RgbHint})
	r.drawPanel(lines, defaultStyle, true)
}

// drawPanel centers lines in the field, a filled panel is drawn over the field contents
func (r *TerminalRenderer) drawPanel(lines []overlayLine, defaultStyle tcell.Style, filled bool) {
	if len(lines) > r.fieldHeight {
		lines = lines[:r.fieldHeight]
	}

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l.text))
	}
	width = min(width+2, r.fieldWidth)

	top := (r.fieldHeight - len(lines)) / 2
	left := (r.fieldWidth - width) / 2

	panelStyle := defaultStyle
	if filled {
		panelStyle = defaultStyle.Background(RgbOverlayBg)
		for y := top; y < top+len(lines); y++ {
			for x := left; x < left+width; x++ {
				sx, sy := r.fieldCell(x, y)
				r.screen.SetContent(sx, sy, ' ', nil, panelStyle)
			}
		}
	}

	for i, l := range lines {
		if l.text == "" {
			continue
		}
		text := runewidth.Truncate(l.text, r.fieldWidth, "")
		x := (r.fieldWidth - runewidth.StringWidth(text)) / 2
		sx, sy := r.fieldCell(x, top+i)
		r.drawText(sx, sy, text, panelStyle.Foreground(l.color))
	}
}
