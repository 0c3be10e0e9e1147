// internal/component/wave.go
package component

// Wave - состояние текущей волны.
type Wave struct {
	Number     int
	Quota      int // осталось заспавнить
	Spawned    int
	SpawnTimer float64
	Interval   float64
	Elapsed    float64 // секунд с начала волны
}
