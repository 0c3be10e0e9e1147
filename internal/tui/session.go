// internal/tui/session.go
package tui

import (
	"github.com/gdamore/tcell/v2"

	"spelltower/internal/app"
	"spelltower/internal/input"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

var runeCommands = map[rune]input.Command{
	' ': input.CmdToggle,
	'n': input.CmdNextWave,
	'1': input.CmdSlot1,
	'2': input.CmdSlot2,
	'3': input.CmdSlot3,
	'y': input.CmdConfirm,
	'i': input.CmdInfo,
	'r': input.CmdReset,
	'f': input.CmdSpeed,
	'c': input.CmdCopy,
}

// Session couples a game with the terminal cursor used to pick board cells.
type Session struct {
	Game   *app.Game
	Cursor gridmap.Coord
}

func NewSession(g *app.Game) *Session {
	cfg := g.Config()
	return &Session{Game: g, Cursor: gridmap.Coord{X: cfg.Grid.Width / 2, Y: cfg.Grid.Height / 2}}
}

// HandleEvent applies a terminal event. It returns false when the player quits.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	if k, ok := ev.(*tcell.EventKey); ok {
		return s.handleKey(k.Key(), k.Rune())
	}
	return true
}

func (s *Session) handleKey(key tcell.Key, r rune) bool {
	mode := s.Game.Mode()
	switch key {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		input.Execute(s.Game, input.CmdCancel)
		return true
	case tcell.KeyEnter:
		switch mode {
		case state.Intro, state.UpgradePrompt:
			input.Execute(s.Game, input.CmdConfirm)
		default:
			input.ClickCell(s.Game, s.Cursor, false)
		}
		return true
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown:
		if mode == state.Info {
			if key == tcell.KeyLeft {
				input.Execute(s.Game, input.CmdPrevPage)
			} else if key == tcell.KeyRight {
				input.Execute(s.Game, input.CmdNextPage)
			}
			return true
		}
		s.moveCursor(key)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		return false
	case 'u':
		input.ClickCell(s.Game, s.Cursor, true)
		return true
	case 'h', 'j', 'k', 'l':
		s.moveCursor(map[rune]tcell.Key{'h': tcell.KeyLeft, 'j': tcell.KeyDown, 'k': tcell.KeyUp, 'l': tcell.KeyRight}[r])
		return true
	}
	if cmd, ok := runeCommands[r]; ok {
		input.Execute(s.Game, cmd)
	}
	return true
}

// moveCursor сдвигает курсор, не выходя за края поля.
func (s *Session) moveCursor(key tcell.Key) {
	cfg := s.Game.Config()
	next := s.Cursor
	switch key {
	case tcell.KeyLeft:
		next.X--
	case tcell.KeyRight:
		next.X++
	case tcell.KeyUp:
		next.Y--
	case tcell.KeyDown:
		next.Y++
	}
	if next.InBounds(cfg.Grid.Width, cfg.Grid.Height) {
		s.Cursor = next
	}
}
