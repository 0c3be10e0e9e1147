// internal/event/types.go
package event

const (
	GameStarted    EventType = "GameStarted"
	TowerPurchased EventType = "TowerPurchased" // куплена башня из магазина
	TowerPlaced    EventType = "TowerPlaced"    // Башня построена
	TowerUpgraded  EventType = "TowerUpgraded"
	PassiveChosen  EventType = "PassiveChosen"
	WaveStarted    EventType = "WaveStarted"
	WaveEnded      EventType = "WaveEnded" // Волна закончилась
	EnemySpawned   EventType = "EnemySpawned"
	EnemyKilled    EventType = "EnemyKilled" // награда выдана
	EnemyLeaked    EventType = "EnemyLeaked" // дошёл до конца пути
	ModeChanged    EventType = "ModeChanged"
	GameOver       EventType = "GameOver"
	GameReset      EventType = "GameReset"
	InputRejected  EventType = "InputRejected"
)

// Payloads.

type TowerData struct {
	TowerID int
	SpecID  string
	X, Y    int
	Level   int
	Cost    int
}

type WaveData struct {
	Wave  int
	Quota int
}

type EnemyData struct {
	EnemyID   int
	Archetype string
	Reward    int
}

type PassiveData struct {
	PassiveID string
	Stacks    int
}

type ModeData struct {
	From, To string
}

type RejectData struct {
	Action string
	Reason string
}
