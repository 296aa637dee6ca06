package event

import (
	"go-survivor/internal/component"

	"github.com/google/uuid"
)

const (
	RunStarted       EventType = "RunStarted"
	VolleyFired      EventType = "VolleyFired"
	EnemySpawned     EventType = "EnemySpawned"
	EnemyKilled      EventType = "EnemyKilled"      // враг уничтожен пулей
	UpgradeRequested EventType = "UpgradeRequested" // новый уровень, нужен выбор
	UpgradeChosen    EventType = "UpgradeChosen"
	GameOver         EventType = "GameOver" // отправляется ровно один раз за забег
)

type RunStartedData struct {
	RunID uuid.UUID
}

type VolleyFiredData struct {
	Bullets int
	Angle   float64
}

type EnemySpawnedData struct {
	X, Y   float64
	Health float64
	Speed  float64
}

type EnemyKilledData struct {
	Score      int
	Experience float64
}

type UpgradeRequestedData struct {
	Level   int
	Special bool // показывать ли bulletCount / bulletSize
}

type UpgradeChosenData struct {
	Upgrade component.UpgradeID
	Level   int
}

type GameOverData struct {
	RunID      uuid.UUID
	FinalScore int
	Level      int
}
