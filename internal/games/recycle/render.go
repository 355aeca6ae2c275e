package recycle

import (
	"fmt"
	"strings"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/core"
)

// Visual characters for rendering
const (
	BinLineChar    = '┄'
	BinDividerChar = '│'
	FlashChar      = '░'
)

// categoryColor returns the color of a category's items and bin.
func categoryColor(c Category) core.Color {
	switch c {
	case Plastic:
		return core.ColorYellow
	case Glass:
		return core.ColorGreen
	default:
		return core.ColorCyan
	}
}

// itemLabel returns the three-cell label of an item.
func itemLabel(it Item) string {
	glyph := string(it.Category.String()[0])
	if it.Held {
		return "<" + glyph + ">"
	}
	return "[" + glyph + "]"
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall() {
		dst.DrawTextCentered(dst.Bounds(), dst.Height()/2,
			fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight), core.ColorBrightRed)
		return
	}

	g.drawBins(dst)
	g.drawItems(dst)
	g.drawHUD(dst)
	g.drawHelp(dst)

	switch g.session.Phase() {
	case PhaseMenu:
		g.drawCenteredMessage(dst, strings.ToUpper(g.Title()),
			"Drag each item into its bin before it lands",
			"Enter: start  |  Tab: scores  |  Q: quit")
	case PhaseGameOver:
		st := g.session.Stats()
		g.drawCenteredMessage(dst, "TIME'S UP",
			fmt.Sprintf("Score: %d  |  Correct: %d  |  Wrong: %d", g.session.Score(), st.Correct, st.Wrong),
			"R: play again  |  Tab: scores  |  Q: quit")
	}
}

// drawBins draws the three bins below the bin line.
func (g *Game) drawBins(dst *core.Screen) {
	for _, c := range Categories {
		r := g.layout.Bins[c]
		if r.Empty() {
			continue
		}
		color := categoryColor(c)
		if o, ok := g.flashing(c); ok {
			color = core.ColorBrightGreen
			if o == OutcomeWrong {
				color = core.ColorBrightRed
			}
			dst.DrawRect(r, FlashChar, color)
		}

		dst.DrawHLine(r.X, r.Y, r.W, BinLineChar, color)
		if r.H >= 3 {
			dst.DrawBox(core.NewRect(r.X, r.Y, r.W, r.H), color)
		} else if c != Categories[0] {
			dst.DrawVLine(r.X, r.Y, r.H, BinDividerChar, core.ColorGray)
		}
		dst.DrawTextCentered(r, r.Y+r.H/2, c.String(), color)
	}
}

// drawItems draws every item above the bin line.
func (g *Game) drawItems(dst *core.Screen) {
	for _, it := range g.session.items {
		x, y := g.layout.ToCell(it.X, it.Y)
		if y < g.layout.Play.Y || y >= g.layout.BinTop {
			continue
		}
		color := categoryColor(it.Category)
		if it.Held {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x-1, y, itemLabel(it), color)
	}
}

// drawHUD draws score, time and level on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := g.layout.HUD
	dst.DrawTextColored(hud.X+1, hud.Y, fmt.Sprintf("Score: %d", g.session.Score()), core.ColorBrightWhite)

	level := int(g.session.Level(g.now)*100 + 0.5)
	if g.session.Phase() != PhasePlaying {
		level = 0
	}
	dst.DrawTextCentered(hud, hud.Y, fmt.Sprintf("Level %d%%", level), core.ColorGray)

	timeColor := core.ColorBrightWhite
	if g.session.TimeRemaining() <= 10 {
		timeColor = core.ColorBrightRed
	}
	timeText := fmt.Sprintf("Time: %02d", g.session.TimeRemaining())
	dst.DrawTextColored(hud.Right()-len(timeText)-1, hud.Y, timeText, timeColor)
}

// drawHelp draws the key hints on the bottom row.
func (g *Game) drawHelp(dst *core.Screen) {
	dst.DrawTextColored(g.layout.Help.X+1, g.layout.Help.Y,
		"mouse: drag  ←/→: move  ↓: drop  m: mute  q: quit", core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the play area.
func (g *Game) drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	area := g.layout.Play
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box, box.Y+1, title, core.ColorBrightYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box, box.Y+3+i, l, core.ColorWhite)
	}
}
