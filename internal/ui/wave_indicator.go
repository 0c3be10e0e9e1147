// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"spelltower/internal/config"
	"spelltower/internal/render"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

// NewWaveIndicator создает новый индикатор волны; (x, y) - правый верхний угол текста.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: config.BackgroundColor,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. Каждая пятая волна - рой - красная.
func (i *WaveIndicator) Draw(screen *ebiten.Image, wave, swarmEvery int) {
	if wave <= 0 {
		return
	}
	txt := toRoman(wave)
	clr := i.Color
	if swarmEvery > 0 && wave%swarmEvery == 0 {
		clr = config.WaveStateColor
	}
	x := i.X - render.TextWidth(txt)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			render.DrawText(screen, txt, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	render.DrawText(screen, txt, x, i.Y, clr)
}
