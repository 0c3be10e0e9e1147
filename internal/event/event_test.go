package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ got []Event }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchByType(t *testing.T) {
	d := NewDispatcher()
	placed := &recorder{}
	all := &recorder{}
	d.Subscribe(TowerPlaced, placed)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: TowerPlaced, Data: TowerData{SpecID: "azure_aegis", X: 2, Y: 3}})
	d.Dispatch(Event{Type: WaveStarted, Data: WaveData{Wave: 1, Quota: 4}})

	assert.Len(t, placed.got, 1)
	assert.Equal(t, "azure_aegis", placed.got[0].Data.(TowerData).SpecID)
	assert.Len(t, all.got, 2)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyKilled, r)
	d.Unsubscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	assert.Empty(t, r.got)
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(GameOver, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: GameReset})
	assert.Equal(t, 1, calls)
}
