// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spelltower/internal/config"
	"spelltower/internal/render"
	"spelltower/internal/state"
)

// modeColors - цвет индикатора для каждого режима.
var modeColors = map[state.Mode]color.RGBA{
	state.Shopping:      {70, 130, 180, 255},
	state.Playing:       config.WaveStateColor,
	state.Paused:        {200, 200, 60, 255},
	state.UpgradePrompt: config.UpgradeColor,
	state.PassiveChoice: {150, 0, 150, 255},
	state.Info:          {150, 150, 170, 255},
	state.GameOver:      {90, 0, 0, 255},
}

// StateIndicator - кружок, цвет которого показывает режим игры.
type StateIndicator struct {
	X, Y   float32
	Radius float32
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, mode state.Mode) {
	clr, ok := modeColors[mode]
	if !ok {
		clr = config.TextDimColor
	}
	vector.DrawFilledCircle(screen, i.X, i.Y, i.Radius, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, i.Radius, 1, color.White, true)
	render.DrawText(screen, mode.String(), int(i.X+i.Radius)+6, int(i.Y)-config.TextLineH/2, config.TextDimColor)
}

const (
	healthCircleRadius  = 6.0
	healthCircleSpacing = 4.0
)

// HealthIndicator отображает здоровье игрока рядом кружков.
type HealthIndicator struct {
	X, Y float32
}

func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует кружки: заполненные - оставшееся здоровье, чёрные - потерянное.
// Когда здоровья меньше половины, кружки краснеют.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	full := color.RGBA{60, 120, 230, 255}
	if health*2 <= maxHealth {
		full = color.RGBA{220, 40, 40, 255}
	}
	for j := 0; j < maxHealth; j++ {
		x := i.X + float32(j)*(healthCircleRadius*2+healthCircleSpacing) + healthCircleRadius
		clr := color.RGBA{0, 0, 0, 255}
		if j < health {
			clr = full
		}
		vector.DrawFilledCircle(screen, x, i.Y, healthCircleRadius, clr, true)
		vector.StrokeCircle(screen, x, i.Y, healthCircleRadius, 1, color.White, true)
	}
	label := fmt.Sprintf("%d/%d", max(health, 0), maxHealth)
	tx := i.X + float32(maxHealth)*(healthCircleRadius*2+healthCircleSpacing) + 4
	render.DrawText(screen, label, int(tx), int(i.Y)-config.TextLineH/2, config.TextLightColor)
}
