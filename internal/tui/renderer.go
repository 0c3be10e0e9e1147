// internal/tui/renderer.go
package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gdamore/tcell/v2"

	"spelltower/internal/app"
	"spelltower/internal/defs"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

const (
	boardX    = 1
	boardY    = 2
	cellWidth = 2 // символов на клетку, чтобы клетки были ближе к квадрату
)

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGround = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePath   = tcell.StyleDefault.Background(tcell.NewRGBColor(70, 100, 120)).Foreground(tcell.ColorWhite)
	styleEntry  = stylePath.Foreground(tcell.ColorGreen).Bold(true)
	styleExit   = stylePath.Foreground(tcell.ColorRed).Bold(true)
	styleGold   = tcell.StyleDefault.Foreground(tcell.ColorGold)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Renderer draws snapshots onto a tcell screen: the board on the left, text on the right.
type Renderer struct {
	catalog *defs.Catalog
}

func NewRenderer(catalog *defs.Catalog) *Renderer {
	return &Renderer{catalog: catalog}
}

// drawString пишет строку посимвольно и возвращает x после неё.
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// Draw paints one frame. cursor is the highlighted board cell.
func (r *Renderer) Draw(screen tcell.Screen, s app.Snapshot, cursor gridmap.Coord) {
	screen.Clear()
	if s.Mode == state.Intro {
		r.drawIntro(screen)
		screen.Show()
		return
	}

	drawString(screen, boardX, 0, s.StatusLine(), styleText)
	r.drawBoard(screen, s, cursor)

	px := boardX + s.GridWidth*cellWidth + 3
	switch s.Mode {
	case state.Info:
		r.drawInfo(screen, px, s)
	case state.PassiveChoice:
		r.drawPassiveChoice(screen, px, s)
	default:
		r.drawPanel(screen, px, s, cursor)
	}
	screen.Show()
}

func (r *Renderer) drawIntro(screen tcell.Screen) {
	lines := []string{
		"SPELLTOWER CLASH",
		"",
		"Demons march along the path toward your gate.",
		"Buy spelltowers, place them beside the path and survive.",
		"",
		"Enter or Space to begin, q to quit.",
	}
	for i, l := range lines {
		style := styleText
		if i == 0 {
			style = styleGold.Bold(true)
		}
		drawString(screen, 2, 2+i, l, style)
	}
}

func (r *Renderer) drawBoard(screen tcell.Screen, s app.Snapshot, cursor gridmap.Coord) {
	cellStyle := make(map[gridmap.Coord]tcell.Style)
	for _, route := range s.Routes {
		for _, c := range route {
			cellStyle[c] = stylePath
		}
	}

	for y := 0; y < s.GridHeight; y++ {
		for x := 0; x < s.GridWidth; x++ {
			c := gridmap.Coord{X: x, Y: y}
			st, onPath := cellStyle[c]
			glyph := " ."
			if !onPath {
				st = styleGround
			} else {
				glyph = "  "
			}
			drawString(screen, boardX+x*cellWidth, boardY+y, glyph, st)
		}
	}
	for _, route := range s.Routes {
		if e, ok := route.Entry(); ok {
			drawString(screen, boardX+e.X*cellWidth, boardY+e.Y, "E>", styleEntry)
		}
		if e, ok := route.Last(); ok {
			drawString(screen, boardX+e.X*cellWidth, boardY+e.Y, ">X", styleExit)
		}
	}

	for _, t := range s.Towers {
		st := tcell.StyleDefault.Background(rgb(t.Color)).Foreground(tcell.ColorBlack)
		if s.PendingUpgrade != nil && *s.PendingUpgrade == t.Cell {
			st = st.Reverse(true)
		}
		drawString(screen, boardX+t.Cell.X*cellWidth, boardY+t.Cell.Y, TowerGlyph(t), st)
	}

	for _, e := range s.Enemies {
		c := gridmap.CoordAt(e.X, e.Y, s.CellSize)
		if !c.InBounds(s.GridWidth, s.GridHeight) {
			continue
		}
		st := stylePath.Foreground(rgb(e.Color)).Bold(true)
		glyph := '@'
		switch {
		case e.Reversed:
			glyph = '<'
		case e.Poisoned:
			glyph = '%'
		case e.Slowed:
			glyph = '*'
		}
		screen.SetContent(boardX+c.X*cellWidth+1, boardY+c.Y, glyph, nil, st)
	}

	// курсор рисуем поверх, сохраняя символы клетки
	for i := 0; i < cellWidth; i++ {
		x, y := boardX+cursor.X*cellWidth+i, boardY+cursor.Y
		mainc, combc, st, _ := screen.GetContent(x, y)
		screen.SetContent(x, y, mainc, combc, st.Reverse(true))
	}
}

// TowerGlyph is the two-character board label of a tower: design initial and level.
func TowerGlyph(t app.TowerView) string {
	initial := "?"
	if t.Design != "" {
		initial = strings.ToUpper(string(t.Design)[:1])
	}
	return fmt.Sprintf("%s%d", initial, t.Level)
}

func (r *Renderer) drawPanel(screen tcell.Screen, x int, s app.Snapshot, cursor gridmap.Coord) {
	y := boardY
	drawString(screen, x, y, fmt.Sprintf("Shop (%dg each)", s.TowerCost), styleGold)
	y++
	for i, spec := range s.Shop {
		lines := spec.CardLines()
		drawString(screen, x, y, fmt.Sprintf("%d. %s", i+1, lines[0]), tcell.StyleDefault.Foreground(rgb(spec.Color)))
		y++
		for _, l := range lines[1:] {
			drawString(screen, x+3, y, l, styleDim)
			y++
		}
	}
	if s.Reserved != nil {
		drawString(screen, x, y, "Placing "+s.Reserved.Name+": Enter on a free cell", styleGold)
		y++
	}
	y++

	drawString(screen, x, y, fmt.Sprintf("Cursor (%d,%d)", cursor.X, cursor.Y), styleDim)
	y++
	for _, t := range s.Towers {
		if t.Cell == cursor {
			drawString(screen, x, y, fmt.Sprintf("%s  level %d  range %.0f", t.Name, t.Level, t.Range), styleText)
			y++
		}
	}
	y++

	switch s.Mode {
	case state.Paused:
		drawString(screen, x, y, "PAUSED - Space resumes, n calls the next wave", styleGold)
		y++
	case state.UpgradePrompt:
		msg := fmt.Sprintf("Upgrade for %d gold? Enter/y confirm, Esc cancel", s.UpgradeCost)
		if s.UpgradeMaxed {
			msg = "Tower is at max level. Esc to close"
		}
		drawString(screen, x, y, msg, styleGold)
		y++
	case state.GameOver:
		drawString(screen, x, y, fmt.Sprintf("GAME OVER - survived %d waves. r to restart", max(s.Wave-1, 0)), styleAlert)
		y++
	}

	for _, p := range r.catalog.Passives {
		if n := s.Stacks[p.ID]; n > 0 {
			drawString(screen, x, y, fmt.Sprintf("%s x%d", p.Name, n), tcell.StyleDefault.Foreground(rgb(p.Color)))
			y++
		}
	}
	y++
	drawString(screen, x, y, "1-3 buy  arrows move  Enter place  u upgrade", styleDim)
	drawString(screen, x, y+1, "Space start/pause  n next  i info  f speed  c copy  r reset  q quit", styleDim)
}

func (r *Renderer) drawPassiveChoice(screen tcell.Screen, x int, s app.Snapshot) {
	y := boardY
	drawString(screen, x, y, fmt.Sprintf("Wave %d cleared - choose a passive", s.Wave), styleGold)
	y += 2
	for i, p := range s.PassiveOffer {
		drawString(screen, x, y, fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.Short), tcell.StyleDefault.Foreground(rgb(p.Color)))
		drawString(screen, x+3, y+1, p.Description, styleDim)
		y += 3
	}
}

func (r *Renderer) drawInfo(screen tcell.Screen, x int, s app.Snapshot) {
	title, lines := r.catalog.InfoPage(s.InfoPage)
	y := boardY
	drawString(screen, x, y, fmt.Sprintf("%s (%d/%d)", title, s.InfoPage+1, len(defs.InfoTitles)), styleGold)
	y += 2
	for _, l := range lines {
		drawString(screen, x, y, l, styleText)
		y++
	}
	drawString(screen, x, y+1, "Left/Right page  i/Esc back", styleDim)
}
