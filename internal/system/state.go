package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"log"
)

// RunStateSystem owns every phase transition of a run.
type RunStateSystem struct {
	eventDispatcher *event.Dispatcher
}

func NewRunStateSystem(eventDispatcher *event.Dispatcher) *RunStateSystem {
	return &RunStateSystem{eventDispatcher: eventDispatcher}
}

// Start переводит новый забег в Running. Повторный вызов ничего не делает.
func (s *RunStateSystem) Start(w *entity.World) {
	if w.Phase != component.NotStarted {
		return
	}
	w.Phase = component.Running
	log.Printf("run %s: started", w.RunID)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RunStarted,
		Data: event.RunStartedData{RunID: w.RunID},
	})
}

// PauseForUpgrade stops the simulation until an upgrade is chosen.
// Only a running run can be paused.
func (s *RunStateSystem) PauseForUpgrade(w *entity.World) {
	if w.Phase == component.Running {
		w.Phase = component.LevelingUp
	}
}

// Resume returns a paused run to Running.
func (s *RunStateSystem) Resume(w *entity.World) {
	if w.Phase == component.LevelingUp {
		w.Phase = component.Running
	}
}

// GameOver завершает забег. Идемпотентно: событие уходит только при первом вызове.
func (s *RunStateSystem) GameOver(w *entity.World) {
	if w.Phase == component.GameOver {
		return
	}
	w.Phase = component.GameOver
	log.Printf("run %s: game over, score %d, level %d", w.RunID, w.Score, w.Player.Level)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{RunID: w.RunID, FinalScore: w.Score, Level: w.Player.Level},
	})
}
