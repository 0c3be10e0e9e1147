// internal/config/render.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	GridOffsetX = 20
	GridOffsetY = 80
	PanelWidth  = 420
	PanelMargin = 20

	HUDHeight     = 60
	ShopCardH     = 110
	ButtonWidth   = 160
	ButtonHeight  = 40
	TextLineH     = 16
	EnemyRadius   = 12.0
	TowerInset    = 6.0
	EffectRadius  = 4.0
	MaxDeltaTime  = 0.06 // клэмп шага симуляции
	TickRate      = 60
	HealthBarH    = 4.0
	RangeStrokeW  = 1.5
	TowerStrokeW  = 2.0
	PathStrokeW   = 1.0
	PassiveCardH  = 120
	InfoPageCount = 4
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{60, 60, 80, 255}
	PathColor       = color.RGBA{70, 100, 120, 220}
	EntryColor      = color.RGBA{0, 255, 0, 255}
	ExitColor       = color.RGBA{255, 0, 0, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 170, 255}
	PanelColor      = color.RGBA{35, 35, 50, 240}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	HealthBarBg     = color.RGBA{60, 0, 0, 255}
	HealthBarFg     = color.RGBA{50, 205, 50, 255}
	RangeColor      = color.RGBA{255, 255, 0, 128}
	UpgradeColor    = color.RGBA{255, 215, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, 180}
)
