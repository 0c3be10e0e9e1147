// internal/app/flow.go
package app

import (
	"log"

	"spelltower/internal/config"
	"spelltower/internal/event"
	"spelltower/internal/state"
)

// StartGame leaves the intro.
func (g *Game) StartGame() bool {
	if !g.StateMachine.SetState(state.Shopping) {
		return g.reject("start game", "mode "+g.Mode().String())
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
	return true
}

// StartWave begins the next wave from shopping, or calls it early from pause.
func (g *Game) StartWave() bool {
	if g.cancelPromptOnInput() {
		return g.reject("start wave", "upgrade prompt dismissed")
	}
	from := g.Mode()
	if from != state.Shopping && from != state.Paused {
		return g.reject("start wave", "mode "+from.String())
	}
	g.Wave++
	g.refillShop()
	for _, t := range g.ECS.Towers {
		t.State.ShowRange = false
	}
	g.WaveSystem.Start(g.Wave)
	g.StateMachine.SetState(state.Playing)
	return true
}

// ToggleStartPause starts a wave from shopping and flips playing and paused.
func (g *Game) ToggleStartPause() bool {
	if g.cancelPromptOnInput() {
		return g.reject("start/pause", "upgrade prompt dismissed")
	}
	switch g.Mode() {
	case state.Shopping:
		return g.StartWave()
	case state.Playing:
		return g.StateMachine.SetState(state.Paused)
	case state.Paused:
		return g.StateMachine.SetState(state.Playing)
	}
	return g.reject("start/pause", "mode "+g.Mode().String())
}

// ChoosePassive takes offer i and returns to shopping.
func (g *Game) ChoosePassive(i int) bool {
	if g.cancelPromptOnInput() {
		return g.reject("choose passive", "upgrade prompt dismissed")
	}
	if g.Mode() != state.PassiveChoice {
		return g.reject("choose passive", "mode "+g.Mode().String())
	}
	if i < 0 || i >= len(g.passiveOffer) {
		return g.reject("choose passive", "no such choice")
	}
	p := g.passiveOffer[i]
	g.Passives.Choose(p)
	g.passiveOffer = nil
	log.Printf("Chose passive %s (%d stacks)", p.Name, g.Passives.Stacks(p.ID))
	g.EventDispatcher.Dispatch(event.Event{Type: event.PassiveChosen, Data: event.PassiveData{PassiveID: p.ID, Stacks: g.Passives.Stacks(p.ID)}})
	g.StateMachine.SetState(state.Shopping)
	return true
}

// OpenInfo suspends the current mode behind the info screen.
func (g *Game) OpenInfo() bool {
	if !g.StateMachine.OpenInfo() {
		return g.reject("open info", "mode "+g.Mode().String())
	}
	g.infoPage = 0
	return true
}

// CloseInfo resumes the suspended mode.
func (g *Game) CloseInfo() bool {
	return g.StateMachine.CloseInfo()
}

// SetInfoPage flips the info screen page, wrapping around.
func (g *Game) SetInfoPage(page int) bool {
	if g.Mode() != state.Info {
		return false
	}
	n := config.InfoPageCount
	g.infoPage = ((page % n) + n) % n
	return true
}

// InfoPage returns the shown info page.
func (g *Game) InfoPage() int {
	return g.infoPage
}

// Reset throws the session away and returns to the intro with fresh routes.
func (g *Game) Reset() bool {
	g.reset()
	log.Println("Game reset")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameReset})
	return true
}

var speeds = []float64{1, 2, 4}

// CycleSpeed steps the simulation speed through x1, x2, x4.
func (g *Game) CycleSpeed() float64 {
	next := speeds[0]
	for i, s := range speeds {
		if s == g.SpeedMultiplier {
			next = speeds[(i+1)%len(speeds)]
			break
		}
	}
	g.SpeedMultiplier = next
	return next
}
