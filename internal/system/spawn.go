// internal/system/spawn.go
package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
	"time"
)

// Стороны появления врагов относительно игрока.
const (
	SideTop = iota
	SideRight
	SideBottom
	SideLeft
)

// SpawnSystem создаёт врагов вокруг игрока с фиксированным интервалом.
type SpawnSystem struct {
	tuning          config.Tuning
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawnSystem(tuning config.Tuning, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *SpawnSystem) Update(w *entity.World, now time.Time) {
	if now.Sub(w.LastSpawn) < s.tuning.Enemy.SpawnInterval() {
		return
	}
	side := s.rng.Intn(4)
	jitter := s.rng.Jitter(s.tuning.Enemy.SpawnDistance)
	s.spawnEnemy(w, side, jitter)
	w.LastSpawn = now
}

func (s *SpawnSystem) spawnEnemy(w *entity.World, side int, jitter float64) {
	pos := SpawnPosition(w.Player.Position, side, s.tuning.Enemy.SpawnDistance, jitter)
	health := EnemyHealthAt(s.tuning.Enemy, w.DifficultyTimer)
	enemy := component.Enemy{
		Position:  pos,
		Size:      s.tuning.Enemy.Size,
		Speed:     EnemySpeedAt(s.tuning.Enemy, w.DifficultyTimer),
		Health:    health,
		MaxHealth: health,
	}
	w.Enemies = append(w.Enemies, enemy)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemySpawnedData{X: pos.X, Y: pos.Y, Health: health, Speed: enemy.Speed},
	})
}

// SpawnPosition places a point distance away from player on the given side,
// shifted by jitter along the perpendicular axis.
func SpawnPosition(player component.Position, side int, distance, jitter float64) component.Position {
	switch side {
	case SideTop:
		return component.Position{X: player.X + jitter, Y: player.Y - distance}
	case SideRight:
		return component.Position{X: player.X + distance, Y: player.Y + jitter}
	case SideBottom:
		return component.Position{X: player.X + jitter, Y: player.Y + distance}
	default:
		return component.Position{X: player.X - distance, Y: player.Y + jitter}
	}
}

// EnemySpeedAt — скорость врага, появившегося на тике timer.
func EnemySpeedAt(t config.EnemyTuning, timer uint64) float64 {
	return t.BaseSpeed + float64(timer)/t.SpeedScale
}

// EnemyHealthAt — здоровье врага, появившегося на тике timer.
func EnemyHealthAt(t config.EnemyTuning, timer uint64) float64 {
	return t.BaseHealth + float64(timer)/t.HealthScale
}
