package boxworld

import (
	"fmt"

	"github.com/vovakirdan/tui-boxworld/internal/core"
	"github.com/vovakirdan/tui-boxworld/internal/world"
)

// kindColors assigns a display color per entity kind. The glyph itself
// comes from the entity's opaque icon reference.
var kindColors = map[world.Kind]core.Color{
	world.KindWall:      core.ColorGray,
	world.KindBox:       core.ColorYellow,
	world.KindStickyBox: core.ColorBrightMagenta,
	world.KindMonster:   core.ColorBrightRed,
	world.KindPlayer:    core.ColorBrightGreen,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Caught!", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Ticks: %d  Monsters: %d/%d  Ensnared: %d",
		g.Title(), g.tick, g.MonstersRemaining(), g.startMonsters, g.monstersEnsnared())

	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws the grid border and every entity in insertion order,
// so a sticky box sitting on an ensnared monster is drawn over it.
func (g *Game) renderMap(dst *core.Screen) {
	border := core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.grid.Width()+2, g.grid.Height()+2)
	dst.DrawBox(border)

	for _, e := range g.grid.Entities() {
		x, y := e.Position()
		color := kindColors[e.Kind()]
		if e.Kind() == world.KindMonster && e.Ensnared() {
			color = core.ColorMagenta
		}
		dst.SetCell(g.mapOffsetX+x, g.mapOffsetY+y, iconRune(e), color)
	}
}

// iconRune returns the first rune of the entity's icon reference, with a
// visible fallback for an empty icon.
func iconRune(e *world.Entity) rune {
	for _, r := range e.Icon() {
		return r
	}
	return '?'
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
