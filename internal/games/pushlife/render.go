package pushlife

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pushlife/internal/core"
	"github.com/vovakirdan/pushlife/internal/world"
)

const (
	hudHeight    = 2 // title line + separator
	footerHeight = 1
	cellWidth    = 2 // a tile is two columns wide so cells look square
)

// Two-column glyphs per entity.
var (
	glyphPlayer    = [cellWidth]rune{'@', '@'}
	glyphMovable   = [cellWidth]rune{'[', ']'}
	glyphImmovable = [cellWidth]rune{'█', '█'}
	glyphLiving    = [cellWidth]rune{'█', '█'}
	glyphDead      = [cellWidth]rune{'·', ' '}
)

// view is the visible window of the grid, centered on the camera.
type view struct {
	top, rows, cols int
	camX, camY      int
}

// toScreen maps a grid cell to the screen column and row of its left half.
func (v view) toScreen(gx, gy int) (int, int, bool) {
	col := gx - v.camX + v.cols/2
	row := v.rows/2 - (gy - v.camY) // up is +Y
	if col < 0 || col >= v.cols || row < 0 || row >= v.rows {
		return 0, 0, false
	}
	return col * cellWidth, v.top + row, true
}

// toGrid is the inverse of toScreen for a view-relative column and row.
func (v view) toGrid(col, row int) (int, int) {
	return col - v.cols/2 + v.camX, v.rows/2 - row + v.camY
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	v := view{
		top:  hudHeight,
		rows: dst.Height() - hudHeight - footerHeight,
		cols: dst.Width() / cellWidth,
		camX: g.camX,
		camY: g.camY,
	}
	if v.rows > 0 && v.cols > 0 {
		switch g.world.GameState() {
		case world.ModePlaying:
			g.renderPuzzle(dst, v)
		case world.ModeLiving:
			g.renderLife(dst, v)
		}
	}

	g.renderFooter(dst)

	if g.world.PausedState() == world.Paused {
		renderOverlay(dst, "Game Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.world.Stats()
	var hud string
	switch g.world.GameState() {
	case world.ModeLiving:
		sim := g.world.Sim()
		hud = fmt.Sprintf(" %s | Life | Gen: %d | Alive: %d/%d | Next: %s",
			g.Title(), sim.Generation, sim.LivingCount(), sim.Len(), progressBar(sim.Timer.Fraction(), 10))
	default:
		hud = fmt.Sprintf(" %s | Puzzle | Level: %s | Steps: %d | Pushes: %d",
			g.Title(), g.world.Level().ID, st.Steps, st.Pushes)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := dst.Height() - 1
	if err := g.lastErr(); err != nil {
		dst.DrawTextColored(1, y, "error: "+err.Error(), core.ColorRed)
		return
	}
	if g.world.HasSim() {
		if n := skipped(g.world.LastReport()); n > 0 {
			sim := g.world.Sim()
			dst.DrawTextColored(1, y, fmt.Sprintf("%d tile(s) outside the %dx%d grid were skipped", n, sim.Width, sim.Height), core.ColorYellow)
			return
		}
	}
	dst.DrawTextColored(1, y, "WASD/arrows move  P pause  L life/puzzle  R reload  Q quit", core.ColorGray)
}

func (g *Game) renderPuzzle(dst *core.Screen, v view) {
	ts := g.world.Options().TileSize
	arena := g.world.Arena()

	arena.Each(world.KindTile, func(_ world.Entity, r *world.Record) {
		glyph, color := glyphMovable, core.ColorYellow
		if r.Tags.Has(world.TagImmovable) {
			glyph, color = glyphImmovable, core.ColorGray
		}
		drawCell(dst, v, gridOf(r.Pos.X, ts), gridOf(r.Pos.Y, ts), glyph, color)
	})
	arena.Each(world.KindPlayer, func(_ world.Entity, r *world.Record) {
		drawCell(dst, v, gridOf(r.Pos.X, ts), gridOf(r.Pos.Y, ts), glyphPlayer, core.ColorBrightCyan)
	})
}

func (g *Game) renderLife(dst *core.Screen, v view) {
	sim := g.world.Sim()
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			gx, gy := v.toGrid(col, row)
			c, err := sim.At(gx, gy)
			if err != nil || c == nil {
				continue
			}
			if c.Cur == world.Living {
				drawCell(dst, v, gx, gy, glyphLiving, core.ColorBrightGreen)
			} else {
				drawCell(dst, v, gx, gy, glyphDead, core.ColorGray)
			}
		}
	}
}

func drawCell(dst *core.Screen, v view, gx, gy int, glyph [cellWidth]rune, color core.Color) {
	sx, sy, ok := v.toScreen(gx, gy)
	if !ok {
		return
	}
	for i, r := range glyph {
		dst.SetColored(sx+i, sy, r, color)
	}
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// progressBar draws frac in [0, 1] as a bar of width cells.
func progressBar(frac float64, width int) string {
	n := int(frac * float64(width))
	n = max(0, min(n, width))
	return strings.Repeat("#", n) + strings.Repeat(".", width-n)
}

// skipped counts tiles that did not make it into the Sim.
func skipped(r world.SimReport) int {
	return len(r.OutOfRange) + len(r.Duplicates)
}
