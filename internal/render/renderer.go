// internal/render/renderer.go
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spelltower/internal/app"
	"spelltower/internal/component"
	"spelltower/internal/config"
	"spelltower/internal/defs"
	"spelltower/internal/layout"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

// Renderer draws snapshots of the game. It never touches the game itself.
type Renderer struct {
	layout  layout.LayoutConfig
	catalog *defs.Catalog

	boardImage *ebiten.Image // предрендеренная сетка с маршрутом
	boardKey   string
}

// NewRenderer creates a renderer for one layout.
func NewRenderer(l layout.LayoutConfig, catalog *defs.Catalog) *Renderer {
	return &Renderer{layout: l, catalog: catalog}
}

// Layout returns the layout the renderer draws with.
func (r *Renderer) Layout() layout.LayoutConfig {
	return r.layout
}

// Draw paints the whole frame for s.
func (r *Renderer) Draw(screen *ebiten.Image, s app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	if s.Mode == state.Intro {
		r.drawIntro(screen)
		return
	}

	r.drawBoard(screen, s)
	r.drawTowers(screen, s)
	r.drawEnemies(screen, s)
	r.drawEffects(screen, s)
	r.drawHUD(screen, s)
	r.drawPanel(screen, s)

	switch s.Mode {
	case state.Paused:
		r.drawBanner(screen, "PAUSED - Space to resume, N for next wave")
	case state.UpgradePrompt:
		r.drawUpgradePrompt(screen, s)
	case state.PassiveChoice:
		r.drawPassiveChoice(screen, s)
	case state.Info:
		r.drawInfo(screen, s)
	case state.GameOver:
		r.drawGameOver(screen, s)
	}
}

func (r *Renderer) drawIntro(screen *ebiten.Image) {
	cx := r.layout.ScreenWidth / 2
	title := "SPELLTOWER CLASH"
	DrawText(screen, title, cx-TextWidth(title)/2, r.layout.ScreenHeight/3, config.UpgradeColor)
	lines := []string{
		"Demons march along the path toward your gate.",
		"Buy spelltowers, place them beside the path and survive the waves.",
		"",
		"Press Space or click to begin. Press I in game for help.",
	}
	y := r.layout.ScreenHeight/3 + 3*config.TextLineH
	for _, l := range lines {
		DrawText(screen, l, cx-TextWidth(l)/2, y, config.TextLightColor)
		y += config.TextLineH
	}
}

func routesKey(routes []gridmap.Route) string {
	return fmt.Sprint(routes)
}

// drawBoard рисует сетку и маршрут. Картинка перестраивается только при смене маршрутов.
func (r *Renderer) drawBoard(screen *ebiten.Image, s app.Snapshot) {
	key := routesKey(s.Routes)
	if r.boardImage == nil || key != r.boardKey {
		r.boardImage = r.buildBoard(s)
		r.boardKey = key
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.layout.OriginX, r.layout.OriginY)
	screen.DrawImage(r.boardImage, op)
}

func (r *Renderer) buildBoard(s app.Snapshot) *ebiten.Image {
	px := r.layout.CellPx
	img := ebiten.NewImage(int(px)*s.GridWidth, int(px)*s.GridHeight)
	cellRect := func(c gridmap.Coord) (float32, float32, float32) {
		return float32(float64(c.X) * px), float32(float64(c.Y) * px), float32(px)
	}

	for _, route := range s.Routes {
		for _, c := range route {
			x, y, w := cellRect(c)
			vector.DrawFilledRect(img, x, y, w, w, config.PathColor, false)
		}
		if entry, ok := route.Entry(); ok {
			x, y, w := cellRect(entry)
			vector.StrokeRect(img, x+2, y+2, w-4, w-4, config.TowerStrokeW, config.EntryColor, false)
		}
		if exit, ok := route.Last(); ok {
			x, y, w := cellRect(exit)
			vector.StrokeRect(img, x+2, y+2, w-4, w-4, config.TowerStrokeW, config.ExitColor, false)
		}
	}
	for gx := 0; gx <= s.GridWidth; gx++ {
		x := float32(float64(gx) * px)
		vector.StrokeLine(img, x, 0, x, float32(img.Bounds().Dy()), config.PathStrokeW, config.GridColor, false)
	}
	for gy := 0; gy <= s.GridHeight; gy++ {
		y := float32(float64(gy) * px)
		vector.StrokeLine(img, 0, y, float32(img.Bounds().Dx()), y, config.PathStrokeW, config.GridColor, false)
	}
	return img
}

func (r *Renderer) drawTowers(screen *ebiten.Image, s app.Snapshot) {
	scale := r.layout.Scale()
	for _, t := range s.Towers {
		cx, cy := r.layout.WorldToScreen(t.X, t.Y)
		pending := s.PendingUpgrade != nil && *s.PendingUpgrade == t.Cell
		if t.ShowRange || pending {
			vector.StrokeCircle(screen, float32(cx), float32(cy), float32(t.Range*scale), config.RangeStrokeW, config.RangeColor, true)
		}

		x, y := r.layout.CellToScreen(t.Cell)
		in := config.TowerInset
		w := float32(r.layout.CellPx - 2*in)
		vector.DrawFilledRect(screen, float32(x+in), float32(y+in), w, w, t.Color, false)
		outline := color.Color(color.White)
		if pending {
			outline = config.UpgradeColor
		}
		vector.StrokeRect(screen, float32(x+in), float32(y+in), w, w, config.TowerStrokeW, outline, false)

		// перезарядка: полоска снизу убывает до нуля к выстрелу
		if t.Cooldown > 0 {
			vector.DrawFilledRect(screen, float32(x+in), float32(y+in)+w-3, w*float32(t.Cooldown), 3, Darken(t.Color), false)
		}
		for i := 0; i < t.Level; i++ {
			vector.DrawFilledCircle(screen, float32(x+in)+6+float32(i)*9, float32(y+in)+6, 3, config.UpgradeColor, true)
		}
	}
}

func (r *Renderer) drawEnemies(screen *ebiten.Image, s app.Snapshot) {
	for _, e := range s.Enemies {
		x, y := r.layout.WorldToScreen(e.X, e.Y)
		fx, fy := float32(x), float32(y)
		rad := float32(config.EnemyRadius)
		vector.DrawFilledCircle(screen, fx, fy, rad, e.Color, true)
		if tint, ok := defs.ElementTints[e.Tint]; ok && e.Tint != "" {
			vector.DrawFilledCircle(screen, fx, fy, rad, tint, true)
		}
		switch {
		case e.Reversed:
			vector.StrokeCircle(screen, fx, fy, rad+2, 2, color.White, true)
		case e.Slowed:
			vector.StrokeCircle(screen, fx, fy, rad+2, 2, defs.ElementTints[defs.ElementFrost], true)
		}
		if e.Poisoned {
			vector.DrawFilledCircle(screen, fx+rad-2, fy-rad+2, 3, defs.ElementTints[defs.ElementToxin], true)
		}

		bw := 2 * rad
		by := fy - rad - config.HealthBarH - 2
		vector.DrawFilledRect(screen, fx-rad, by, bw, config.HealthBarH, config.HealthBarBg, false)
		vector.DrawFilledRect(screen, fx-rad, by, bw*float32(e.HealthRatio), config.HealthBarH, config.HealthBarFg, false)
	}
}

func (r *Renderer) drawEffects(screen *ebiten.Image, s app.Snapshot) {
	for _, fx := range s.Effects {
		switch fx.Kind {
		case component.EffectUpgrade:
			x, y := r.layout.WorldToScreen(fx.ToX, fx.ToY)
			rad := float32(r.layout.CellPx/2) * float32(0.5+fx.Progress)
			vector.StrokeCircle(screen, float32(x), float32(y), rad, 2, config.UpgradeColor, true)
		default:
			x, y := r.layout.WorldToScreen(fx.X, fx.Y)
			vector.DrawFilledCircle(screen, float32(x), float32(y), config.EffectRadius, fx.Color, true)
		}
	}
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s app.Snapshot) {
	line := fmt.Sprintf("Wave %d   Gold %d   Health %d   Demons %d", s.Wave, s.Gold, s.Health, len(s.Enemies))
	if s.Quota > 0 {
		line += fmt.Sprintf("   Incoming %d", s.Quota)
	}
	DrawText(screen, line, config.GridOffsetX, (config.HUDHeight-config.TextLineH)/2, config.TextLightColor)
}

func (r *Renderer) drawPanel(screen *ebiten.Image, s app.Snapshot) {
	x := r.layout.PanelX()
	for i, spec := range s.Shop {
		card := r.layout.ShopSlot(i)
		FillRect(screen, card, config.PanelColor)
		StrokeRect(screen, card, 1, spec.Color)
		lines := spec.CardLines()
		lines[0] = fmt.Sprintf("%d. %s  (%dg)", i+1, lines[0], s.TowerCost)
		y := DrawLines(screen, lines, card.Min.X+8, card.Min.Y+6, config.TextLineH, config.TextLightColor)
		for _, l := range Wrap(spec.Tooltip, card.Dx()-16) {
			DrawText(screen, l, card.Min.X+8, y, config.TextDimColor)
			y += config.TextLineH
		}
	}

	y := r.layout.ShopSlot(len(s.Shop)).Min.Y
	if s.Reserved != nil {
		DrawText(screen, "Placing: "+s.Reserved.Name+" - click a free cell", x, y, config.UpgradeColor)
		y += config.TextLineH
	}
	y += config.TextLineH / 2
	DrawText(screen, "Passives", x, y, config.TextLightColor)
	y += config.TextLineH
	for _, p := range r.catalog.Passives {
		n := s.Stacks[p.ID]
		if n == 0 {
			continue
		}
		DrawText(screen, fmt.Sprintf("%s x%d  (%s)", p.Name, n, p.Short), x, y, p.Color)
		y += config.TextLineH
	}
}

func (r *Renderer) overlay(screen *ebiten.Image) {
	FillRect(screen, image.Rect(0, 0, r.layout.ScreenWidth, r.layout.ScreenHeight), config.OverlayColor)
}

func (r *Renderer) drawBanner(screen *ebiten.Image, msg string) {
	b := r.layout.Board()
	band := image.Rect(b.Min.X, b.Min.Y+b.Dy()/2-20, b.Max.X, b.Min.Y+b.Dy()/2+20)
	FillRect(screen, band, config.OverlayColor)
	DrawCentered(screen, msg, band, config.TextLightColor)
}

func (r *Renderer) drawUpgradePrompt(screen *ebiten.Image, s app.Snapshot) {
	r.overlay(screen)
	cx, cy := r.layout.ScreenWidth/2, r.layout.ScreenHeight/2
	box := image.Rect(cx-config.PanelWidth/2, cy-3*config.TextLineH, cx+config.PanelWidth/2,
		cy+config.PanelMargin+config.ButtonHeight+config.PanelMargin/2)
	FillRect(screen, box, config.PanelColor)
	StrokeRect(screen, box, 1, config.UpgradeColor)

	var msg string
	switch {
	case s.UpgradeMaxed:
		msg = "Tower is at max level."
	case s.UpgradeCost > s.Gold:
		msg = fmt.Sprintf("Upgrade costs %d gold - you have %d.", s.UpgradeCost, s.Gold)
	default:
		msg = fmt.Sprintf("Upgrade this tower for %d gold?", s.UpgradeCost)
	}
	DrawCentered(screen, msg, image.Rect(box.Min.X, box.Min.Y, box.Max.X, cy), config.TextLightColor)
}

func (r *Renderer) drawPassiveChoice(screen *ebiten.Image, s app.Snapshot) {
	r.overlay(screen)
	head := fmt.Sprintf("Wave %d cleared - choose a passive", s.Wave)
	first := r.layout.PassiveCard(0, len(s.PassiveOffer))
	DrawText(screen, head, r.layout.ScreenWidth/2-TextWidth(head)/2, first.Min.Y-2*config.TextLineH, config.TextLightColor)
	for i, p := range s.PassiveOffer {
		card := r.layout.PassiveCard(i, len(s.PassiveOffer))
		FillRect(screen, card, config.PanelColor)
		StrokeRect(screen, card, 2, p.Color)
		y := DrawLines(screen, []string{fmt.Sprintf("%d. %s", i+1, p.Name), p.Short}, card.Min.X+10, card.Min.Y+10, config.TextLineH, p.Color)
		for _, l := range Wrap(p.Description, card.Dx()-20) {
			DrawText(screen, l, card.Min.X+10, y, config.TextLightColor)
			y += config.TextLineH
		}
		if n := s.Stacks[p.ID]; n > 0 {
			DrawText(screen, fmt.Sprintf("owned x%d", n), card.Min.X+10, card.Max.Y-config.TextLineH-6, config.TextDimColor)
		}
	}
}

func (r *Renderer) drawInfo(screen *ebiten.Image, s app.Snapshot) {
	r.overlay(screen)
	title, lines := r.catalog.InfoPage(s.InfoPage)
	m := config.PanelMargin * 3
	x, y := m, m
	head := fmt.Sprintf("%s  (%d/%d)", title, s.InfoPage+1, len(defs.InfoTitles))
	DrawText(screen, head, x, y, config.UpgradeColor)
	y += 2 * config.TextLineH
	for _, l := range lines {
		for _, w := range Wrap(l, r.layout.ScreenWidth-2*m) {
			DrawText(screen, w, x, y, config.TextLightColor)
			y += config.TextLineH
		}
	}
	DrawText(screen, "Left/Right: page   I or Esc: back   R: reset", x, r.layout.ScreenHeight-m, config.TextDimColor)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, s app.Snapshot) {
	r.overlay(screen)
	band := image.Rect(0, r.layout.ScreenHeight/2-40, r.layout.ScreenWidth, r.layout.ScreenHeight/2+40)
	DrawCentered(screen, fmt.Sprintf("GAME OVER - survived %d waves", max(s.Wave-1, 0)), band, config.ExitColor)
	DrawCentered(screen, "Press R to play again", band.Add(image.Pt(0, 2*config.TextLineH)), config.TextLightColor)
}
