// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spelltower/internal/config"
	"spelltower/internal/layout"
	"spelltower/internal/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA

	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: render.Darken(config.ButtonColor),
	}
}

// IsClicked проверяет, попадает ли точка клика в кнопку, и запускает анимацию нажатия.
func (b *Button) IsClicked(x, y int) bool {
	if !layout.Hit(b.Rect, x, y) {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// pulse - затухающее увеличение после клика.
func pulse(since time.Time) float64 {
	return 1.0 + 0.3*math.Exp(-time.Since(since).Seconds()*8)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BgColor
	mx, my := ebiten.CursorPosition()
	if layout.Hit(b.Rect, mx, my) {
		bg = b.HoverColor
	}
	r := b.Rect
	if s := pulse(b.LastClickTime); s > 1.01 {
		grow := int(float64(r.Dy()) * (s - 1) / 2)
		r = r.Inset(-grow)
	}
	render.FillRect(screen, r, bg)
	render.StrokeRect(screen, r, 2, config.GridColor)
	render.DrawCentered(screen, b.Text, r, b.TextColor)
}
