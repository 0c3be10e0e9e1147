// internal/layout/layout.go
package layout

import (
	"image"
	"math"

	"spelltower/internal/config"
	"spelltower/pkg/gridmap"
)

// LayoutConfig maps simulation units onto screen pixels. It is a plain value:
// frontends build one per window size and pass it to whatever draws or
// hit-tests. The simulation never sees it.
type LayoutConfig struct {
	ScreenWidth, ScreenHeight int
	GridWidth, GridHeight     int
	CellSize                  float64 // simulation units per cell
	CellPx                    float64 // pixels per cell
	OriginX, OriginY          float64
}

// New fits a gridWidth x gridHeight board into the screen area left of the side panel.
func New(screenWidth, screenHeight, gridWidth, gridHeight int, cellSize float64) LayoutConfig {
	availW := float64(screenWidth - config.PanelWidth - config.PanelMargin - 2*config.GridOffsetX)
	availH := float64(screenHeight - config.GridOffsetY - config.PanelMargin)
	px := math.Floor(math.Min(availW/float64(gridWidth), availH/float64(gridHeight)))
	if px < 1 {
		px = 1
	}
	return LayoutConfig{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		GridWidth:    gridWidth,
		GridHeight:   gridHeight,
		CellSize:     cellSize,
		CellPx:       px,
		OriginX:      config.GridOffsetX,
		OriginY:      config.GridOffsetY,
	}
}

// Scale - пикселей на единицу симуляции.
func (l LayoutConfig) Scale() float64 {
	return l.CellPx / l.CellSize
}

// WorldToScreen converts a point in simulation units to pixels.
func (l LayoutConfig) WorldToScreen(x, y float64) (sx, sy float64) {
	s := l.Scale()
	return l.OriginX + x*s, l.OriginY + y*s
}

// CellToScreen returns the top-left pixel of cell c.
func (l LayoutConfig) CellToScreen(c gridmap.Coord) (sx, sy float64) {
	return l.OriginX + float64(c.X)*l.CellPx, l.OriginY + float64(c.Y)*l.CellPx
}

// ScreenToCell finds the cell under a pixel. ok is false outside the board.
func (l LayoutConfig) ScreenToCell(sx, sy int) (c gridmap.Coord, ok bool) {
	fx := (float64(sx) - l.OriginX) / l.CellPx
	fy := (float64(sy) - l.OriginY) / l.CellPx
	if fx < 0 || fy < 0 {
		return gridmap.Coord{}, false
	}
	c = gridmap.Coord{X: int(fx), Y: int(fy)}
	return c, c.InBounds(l.GridWidth, l.GridHeight)
}

// Board is the pixel rectangle covered by the grid.
func (l LayoutConfig) Board() image.Rectangle {
	x0, y0 := int(l.OriginX), int(l.OriginY)
	return image.Rect(x0, y0, x0+int(l.CellPx)*l.GridWidth, y0+int(l.CellPx)*l.GridHeight)
}

// PanelX is the left edge of the side panel.
func (l LayoutConfig) PanelX() int {
	return l.ScreenWidth - config.PanelWidth - config.PanelMargin
}

// ShopSlot is the card of shop offer slot i.
func (l LayoutConfig) ShopSlot(i int) image.Rectangle {
	x := l.PanelX()
	y := config.GridOffsetY + i*(config.ShopCardH+config.PanelMargin/2)
	return image.Rect(x, y, x+config.PanelWidth, y+config.ShopCardH)
}

// HUD buttons, left to right in the top bar over the panel.
const (
	ButtonStart = iota
	ButtonInfo
	ButtonSpeed
	buttonCount
)

// Button returns the rectangle of HUD button b.
func (l LayoutConfig) Button(b int) image.Rectangle {
	w := (config.PanelWidth - config.PanelMargin) / buttonCount
	x := l.PanelX() + b*(w+config.PanelMargin/2)
	y := (config.HUDHeight - config.ButtonHeight) / 2
	return image.Rect(x, y, x+w, y+config.ButtonHeight)
}

// PassiveCard is choice i of the passive offer, centered on screen.
func (l LayoutConfig) PassiveCard(i, count int) image.Rectangle {
	w := config.PanelWidth
	gap := config.PanelMargin
	total := count*w + (count-1)*gap
	x := (l.ScreenWidth-total)/2 + i*(w+gap)
	y := (l.ScreenHeight - config.PassiveCardH) / 2
	return image.Rect(x, y, x+w, y+config.PassiveCardH)
}

// Dialog buttons of the upgrade prompt.
const (
	DialogConfirm = iota
	DialogCancel
)

// DialogButton returns the confirm or cancel button of the upgrade prompt.
func (l LayoutConfig) DialogButton(b int) image.Rectangle {
	x := l.ScreenWidth/2 - config.ButtonWidth - config.PanelMargin/2
	if b == DialogCancel {
		x = l.ScreenWidth/2 + config.PanelMargin/2
	}
	y := l.ScreenHeight/2 + config.PanelMargin
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}

// Hit reports whether the pixel lies inside r.
func Hit(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}
