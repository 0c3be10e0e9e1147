// internal/interfaces/game.go
package interfaces

import (
	"spelltower/internal/app"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

// Game - входные события ядра, которые может вызвать фронтенд.
// *app.Game satisfies it.
type Game interface {
	Mode() state.Mode
	Snapshot() app.Snapshot
	Occupied(c gridmap.Coord) bool

	StartGame() bool
	StartWave() bool
	ToggleStartPause() bool
	PurchaseTower(slot int) bool
	PlaceTower(c gridmap.Coord) bool
	RequestUpgrade(c gridmap.Coord) bool
	ConfirmUpgrade() bool
	CancelUpgrade() bool
	ChoosePassive(i int) bool
	OpenInfo() bool
	CloseInfo() bool
	SetInfoPage(page int) bool
	InfoPage() int
	Reset() bool
	CycleSpeed() float64
}

var _ Game = (*app.Game)(nil)
