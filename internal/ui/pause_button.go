// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spelltower/internal/config"
	"spelltower/internal/layout"
	"spelltower/internal/render"
)

// PauseButton - кнопка старта волны / паузы. Пока волна идёт, рисует две
// полоски, иначе треугольник «play».
type PauseButton struct {
	Rect          image.Rectangle
	LastClickTime time.Time
	Running       bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(rect image.Rectangle) *PauseButton {
	return &PauseButton{
		Rect:       rect,
		PauseColor: config.WaveStateColor,
		PlayColor:  config.EntryColor,
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	if !layout.Hit(b.Rect, x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	render.FillRect(screen, b.Rect, config.PanelColor)
	render.StrokeRect(screen, b.Rect, 2, config.GridColor)

	size := float32(b.Rect.Dy()) / 4 * float32(pulse(b.LastClickTime))
	cx := float32(b.Rect.Min.X+b.Rect.Max.X) / 2
	cy := float32(b.Rect.Min.Y+b.Rect.Max.Y) / 2

	if !b.Running {
		render.FillTriangle(screen, cx-size, cy-size*1.2, cx-size, cy+size*1.2, cx+size, cy, b.PlayColor)
		render.StrokeTriangle(screen, cx-size, cy-size*1.2, cx-size, cy+size*1.2, cx+size, cy, 1, color.White)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, cx-width-spacing/2, cy-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, cx+spacing/2, cy-height/2, width, height, b.PauseColor, false)
}
