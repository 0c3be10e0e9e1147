// internal/state/state.go
package state

// Mode - режим игры.
type Mode int

const (
	Intro Mode = iota
	Shopping
	Playing
	Paused
	UpgradePrompt
	PassiveChoice
	Info
	GameOver
)

var modeNames = [...]string{"intro", "shopping", "playing", "paused", "upgrade-prompt", "passive-choice", "info", "game-over"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// transitions - разрешённые переходы, кроме входа/выхода из Info.
var transitions = map[Mode][]Mode{
	Intro:         {Shopping},
	Shopping:      {Playing, UpgradePrompt},
	Playing:       {Paused, PassiveChoice, UpgradePrompt, GameOver},
	Paused:        {Playing},
	UpgradePrompt: {Shopping, Playing},
	PassiveChoice: {Shopping},
}

// StateMachine следит за текущим режимом и не даёт сделать недопустимый переход.
type StateMachine struct {
	current  Mode
	previous Mode // режим, из которого открыт Info
	onChange func(from, to Mode)
}

// NewStateMachine создаёт машину в режиме Intro.
func NewStateMachine(onChange func(from, to Mode)) *StateMachine {
	return &StateMachine{current: Intro, onChange: onChange}
}

func (sm *StateMachine) Current() Mode {
	return sm.current
}

// CanTransition reports whether to is reachable from the current mode.
func (sm *StateMachine) CanTransition(to Mode) bool {
	switch {
	case to == Info:
		return sm.current != Intro && sm.current != Info
	case sm.current == Info:
		return to == sm.previous
	}
	for _, m := range transitions[sm.current] {
		if m == to {
			return true
		}
	}
	return false
}

// SetState переключает режим, если переход разрешён.
func (sm *StateMachine) SetState(to Mode) bool {
	if !sm.CanTransition(to) {
		return false
	}
	if to == Info {
		sm.previous = sm.current
	}
	sm.set(to)
	return true
}

// OpenInfo suspends the current mode.
func (sm *StateMachine) OpenInfo() bool {
	return sm.SetState(Info)
}

// CloseInfo resumes the mode Info was opened from.
func (sm *StateMachine) CloseInfo() bool {
	if sm.current != Info {
		return false
	}
	sm.set(sm.previous)
	return true
}

// Suspended returns the mode Info was opened from.
func (sm *StateMachine) Suspended() (Mode, bool) {
	return sm.previous, sm.current == Info
}

// Reset returns the machine to Intro unconditionally.
func (sm *StateMachine) Reset() {
	sm.previous = Intro
	sm.set(Intro)
}

func (sm *StateMachine) set(to Mode) {
	from := sm.current
	sm.current = to
	if sm.onChange != nil && from != to {
		sm.onChange(from, to)
	}
}
