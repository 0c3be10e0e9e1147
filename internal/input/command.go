// internal/input/command.go
package input

import (
	"log"

	"github.com/atotto/clipboard"

	"spelltower/internal/interfaces"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

// Command - дискретное действие игрока, независимое от устройства ввода.
// Both frontends translate their keys into commands and run them here.
type Command int

const (
	CmdNone Command = iota
	CmdToggle
	CmdNextWave
	CmdSlot1
	CmdSlot2
	CmdSlot3
	CmdConfirm
	CmdCancel
	CmdInfo
	CmdPrevPage
	CmdNextPage
	CmdReset
	CmdSpeed
	CmdCopy
)

var commandNames = map[Command]string{
	CmdNone:     "none",
	CmdToggle:   "toggle",
	CmdNextWave: "next wave",
	CmdSlot1:    "slot 1",
	CmdSlot2:    "slot 2",
	CmdSlot3:    "slot 3",
	CmdConfirm:  "confirm",
	CmdCancel:   "cancel",
	CmdInfo:     "info",
	CmdPrevPage: "prev page",
	CmdNextPage: "next page",
	CmdReset:    "reset",
	CmdSpeed:    "speed",
	CmdCopy:     "copy",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// Execute runs cmd against g in the current mode and reports whether the game
// accepted it.
func Execute(g interfaces.Game, cmd Command) bool {
	mode := g.Mode()
	switch cmd {
	case CmdReset:
		return g.Reset()
	case CmdCopy:
		return CopyStatus(g)
	case CmdSpeed:
		g.CycleSpeed()
		return true
	}

	switch mode {
	case state.Intro:
		if cmd == CmdToggle || cmd == CmdConfirm {
			return g.StartGame()
		}
		return false
	case state.GameOver:
		return false
	case state.Info:
		switch cmd {
		case CmdInfo, CmdCancel:
			return g.CloseInfo()
		case CmdPrevPage:
			return g.SetInfoPage(g.InfoPage() - 1)
		case CmdNextPage:
			return g.SetInfoPage(g.InfoPage() + 1)
		}
		return false
	case state.UpgradePrompt:
		switch cmd {
		case CmdConfirm:
			return g.ConfirmUpgrade()
		case CmdCancel:
			return g.CancelUpgrade()
		}
	case state.PassiveChoice:
		if i, ok := slotIndex(cmd); ok {
			return g.ChoosePassive(i)
		}
	}

	if i, ok := slotIndex(cmd); ok {
		return g.PurchaseTower(i)
	}
	switch cmd {
	case CmdToggle:
		return g.ToggleStartPause()
	case CmdNextWave:
		return g.StartWave()
	case CmdInfo:
		return g.OpenInfo()
	case CmdConfirm, CmdCancel:
		// вне диалога апгрейда подтверждать нечего
		return false
	}
	return false
}

func slotIndex(cmd Command) (int, bool) {
	switch cmd {
	case CmdSlot1:
		return 0, true
	case CmdSlot2:
		return 1, true
	case CmdSlot3:
		return 2, true
	}
	return 0, false
}

// ClickCell handles a primary or secondary click on a board cell. A primary
// click places the reserved tower, or opens the upgrade prompt when the cell
// already holds a tower. A secondary click always asks for an upgrade.
func ClickCell(g interfaces.Game, c gridmap.Coord, secondary bool) bool {
	if secondary {
		return g.RequestUpgrade(c)
	}
	if g.Occupied(c) {
		return g.RequestUpgrade(c)
	}
	return g.PlaceTower(c)
}

// CopyStatus puts the current status line on the system clipboard.
func CopyStatus(g interfaces.Game) bool {
	line := g.Snapshot().StatusLine()
	if err := writeClipboard(line); err != nil {
		log.Printf("clipboard: %v", err)
		return false
	}
	return true
}
