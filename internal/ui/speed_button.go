// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spelltower/internal/config"
	"spelltower/internal/layout"
	"spelltower/internal/render"
)

// SpeedButton показывает множитель скорости двумя треугольниками; цвет зависит от скорости.
type SpeedButton struct {
	Rect          image.Rectangle
	LastClickTime time.Time
	StateColors   []color.RGBA
}

func NewSpeedButton(rect image.Rectangle) *SpeedButton {
	return &SpeedButton{
		Rect: rect,
		StateColors: []color.RGBA{
			{100, 200, 100, 255},
			{230, 200, 60, 255},
			{230, 90, 60, 255},
		},
	}
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	if !layout.Hit(b.Rect, x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// stateFor maps x1, x2, x4 onto the color list.
func (b *SpeedButton) stateFor(speed float64) int {
	i := 0
	for s := speed; s > 1 && i < len(b.StateColors)-1; s /= 2 {
		i++
	}
	return i
}

func (b *SpeedButton) Draw(screen *ebiten.Image, speed float64) {
	render.FillRect(screen, b.Rect, config.PanelColor)
	render.StrokeRect(screen, b.Rect, 2, config.GridColor)

	clr := b.StateColors[b.stateFor(speed)]
	size := float32(b.Rect.Dy()) / 4 * float32(pulse(b.LastClickTime))
	cx := float32(b.Rect.Min.X) + float32(b.Rect.Dx())/3
	cy := float32(b.Rect.Min.Y+b.Rect.Max.Y) / 2

	// Параметры треугольников
	height := size * 1.2 * 2
	width := size
	offset := width * 0.8

	render.FillTriangle(screen, cx-width, cy-height/2, cx, cy, cx-width, cy+height/2, clr)
	render.StrokeTriangle(screen, cx-width, cy-height/2, cx, cy, cx-width, cy+height/2, 1, color.White)
	render.FillTriangle(screen, cx-width+offset, cy-height/2, cx+offset, cy, cx-width+offset, cy+height/2, clr)
	render.StrokeTriangle(screen, cx-width+offset, cy-height/2, cx+offset, cy, cx-width+offset, cy+height/2, 1, color.White)

	label := fmt.Sprintf("x%g", speed)
	render.DrawText(screen, label, int(cx+offset)+8, int(cy)-config.TextLineH/2, config.TextLightColor)
}
