// internal/ui/controller.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/input"
	"spelltower/internal/layout"
	"spelltower/internal/state"
)

var keymap = map[ebiten.Key]input.Command{
	ebiten.KeySpace:      input.CmdToggle,
	ebiten.KeyN:          input.CmdNextWave,
	ebiten.KeyDigit1:     input.CmdSlot1,
	ebiten.KeyDigit2:     input.CmdSlot2,
	ebiten.KeyDigit3:     input.CmdSlot3,
	ebiten.KeyEnter:      input.CmdConfirm,
	ebiten.KeyY:          input.CmdConfirm,
	ebiten.KeyEscape:     input.CmdCancel,
	ebiten.KeyI:          input.CmdInfo,
	ebiten.KeyArrowLeft:  input.CmdPrevPage,
	ebiten.KeyArrowRight: input.CmdNextPage,
	ebiten.KeyR:          input.CmdReset,
	ebiten.KeyF:          input.CmdSpeed,
	ebiten.KeyC:          input.CmdCopy,
}

// Controller polls ebiten input once per frame, turns it into game inputs
// and draws the clickable widgets.
type Controller struct {
	layout layout.LayoutConfig

	startButton *PauseButton
	infoButton  *Button
	speedButton *SpeedButton
	confirm     *Button
	cancel      *Button

	stateIndicator  *StateIndicator
	healthIndicator *HealthIndicator
	waveIndicator   *WaveIndicator
}

func NewController(l layout.LayoutConfig) *Controller {
	board := l.Board()
	return &Controller{
		layout:          l,
		startButton:     NewPauseButton(l.Button(layout.ButtonStart)),
		infoButton:      NewButton(l.Button(layout.ButtonInfo), "Info"),
		speedButton:     NewSpeedButton(l.Button(layout.ButtonSpeed)),
		confirm:         NewButton(l.DialogButton(layout.DialogConfirm), "Upgrade"),
		cancel:          NewButton(l.DialogButton(layout.DialogCancel), "Cancel"),
		stateIndicator:  NewStateIndicator(float32(board.Max.X)+16, float32(board.Min.Y)+8, 6),
		healthIndicator: NewHealthIndicator(config.GridOffsetX, config.HUDHeight-8),
		waveIndicator:   NewWaveIndicator(board.Max.X, (config.HUDHeight-config.TextLineH)/2),
	}
}

// Update reads this frame's key presses and clicks and applies them to g.
func (c *Controller) Update(g *app.Game) {
	for key, cmd := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			input.Execute(g, cmd)
		}
	}

	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if left || right {
		x, y := ebiten.CursorPosition()
		c.click(g, x, y, right)
	}
}

func (c *Controller) click(g *app.Game, x, y int, secondary bool) {
	switch g.Mode() {
	case state.Intro:
		g.StartGame()
		return
	case state.GameOver:
		return
	case state.Info:
		g.CloseInfo()
		return
	case state.UpgradePrompt:
		if c.confirm.IsClicked(x, y) {
			g.ConfirmUpgrade()
		} else {
			c.cancel.IsClicked(x, y)
			g.CancelUpgrade()
		}
		return
	case state.PassiveChoice:
		snap := g.Snapshot()
		for i := range snap.PassiveOffer {
			if layout.Hit(c.layout.PassiveCard(i, len(snap.PassiveOffer)), x, y) {
				g.ChoosePassive(i)
				return
			}
		}
		return
	}

	switch {
	case c.startButton.IsClicked(x, y):
		input.Execute(g, input.CmdToggle)
		return
	case c.infoButton.IsClicked(x, y):
		input.Execute(g, input.CmdInfo)
		return
	case c.speedButton.IsClicked(x, y):
		input.Execute(g, input.CmdSpeed)
		return
	}
	for i := 0; i < g.Config().Shop.OfferSize; i++ {
		if layout.Hit(c.layout.ShopSlot(i), x, y) {
			g.PurchaseTower(i)
			return
		}
	}
	if cell, ok := c.layout.ScreenToCell(x, y); ok {
		input.ClickCell(g, cell, secondary)
	}
}

// Draw paints buttons and indicators over the frame drawn by the renderer.
func (c *Controller) Draw(screen *ebiten.Image, s app.Snapshot, maxHealth, swarmEvery int) {
	if s.Mode == state.Intro {
		return
	}
	c.startButton.Running = s.Mode == state.Playing || s.Suspended == state.Playing && s.Mode == state.Info
	c.startButton.Draw(screen)
	c.infoButton.Draw(screen)
	c.speedButton.Draw(screen, s.Speed)

	c.stateIndicator.Draw(screen, s.Mode)
	c.healthIndicator.Draw(screen, s.Health, maxHealth)
	c.waveIndicator.Draw(screen, s.Wave, swarmEvery)

	if s.Mode == state.UpgradePrompt {
		c.confirm.Draw(screen)
		c.cancel.Draw(screen)
	}
}
