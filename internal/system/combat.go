package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
)

// CombatSystem двигает врагов к игроку и разрешает столкновения
// пуля-враг и игрок-враг.
type CombatSystem struct {
	tuning          config.Tuning
	progression     *ProgressionSystem
	runState        *RunStateSystem
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(tuning config.Tuning, progression *ProgressionSystem, runState *RunStateSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		tuning:          tuning,
		progression:     progression,
		runState:        runState,
		eventDispatcher: eventDispatcher,
	}
}

// Update обрабатывает врагов в порядке слайса. Пуля, задевшая сразу
// нескольких врагов, достаётся первому из них.
func (s *CombatSystem) Update(w *entity.World) {
	for i := range w.Enemies {
		// Game over терминален: после касания кадр больше ничего не меняет.
		if w.Phase == component.GameOver {
			break
		}
		enemy := &w.Enemies[i]
		if enemy.Dead {
			continue
		}

		// Враг всегда идёт на текущую позицию игрока.
		enemy.Step(enemy.AngleTo(w.Player.Position), enemy.Speed)

		s.resolveBullets(w, enemy)
		if enemy.Dead {
			continue
		}

		if s.touchesPlayer(w.Player, enemy) {
			s.runState.GameOver(w)
		}
	}
	w.CompactBullets()
	w.CompactEnemies()
}

func (s *CombatSystem) resolveBullets(w *entity.World, enemy *component.Enemy) {
	for j := range w.Bullets {
		bullet := &w.Bullets[j]
		if bullet.Dead {
			continue
		}
		if bullet.DistanceTo(enemy.Position) >= enemy.Size {
			continue
		}

		enemy.Health -= float64(bullet.Power)
		bullet.Dead = true

		if enemy.Health <= 0 {
			s.killEnemy(w, enemy)
			return
		}
	}
}

func (s *CombatSystem) killEnemy(w *entity.World, enemy *component.Enemy) {
	enemy.Dead = true
	w.Score++
	xp := s.tuning.Progression.ExperiencePerKill

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyKilledData{Score: w.Score, Experience: xp},
	})
	s.progression.GrantExperience(w, xp)
}

func (s *CombatSystem) touchesPlayer(p component.Player, enemy *component.Enemy) bool {
	return p.DistanceTo(enemy.Position) < p.Size/2+enemy.Size/2
}
