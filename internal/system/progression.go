package system

import (
	"errors"
	"fmt"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"go-survivor/internal/utils"
	"log"
)

var (
	ErrNotLevelingUp     = errors.New("upgrade can only be chosen while leveling up")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrUpgradeNotOffered = errors.New("upgrade not offered at this level")
)

// ProgressionSystem отвечает за опыт, уровни и применение улучшений.
type ProgressionSystem struct {
	tuning          config.Tuning
	runState        *RunStateSystem
	eventDispatcher *event.Dispatcher
}

func NewProgressionSystem(tuning config.Tuning, runState *RunStateSystem, eventDispatcher *event.Dispatcher) *ProgressionSystem {
	return &ProgressionSystem{
		tuning:          tuning,
		runState:        runState,
		eventDispatcher: eventDispatcher,
	}
}

// GrantExperience начисляет опыт и повышает уровень при достижении порога.
// Излишек опыта сгорает: после повышения счётчик начинается с нуля.
func (s *ProgressionSystem) GrantExperience(w *entity.World, amount float64) {
	p := &w.Player
	p.Experience += amount
	if p.Experience < p.ExperienceToNext {
		return
	}

	p.Level++
	p.Experience = 0
	p.ExperienceToNext *= s.tuning.Progression.ThresholdGrowth

	s.runState.PauseForUpgrade(w)
	if w.Phase != component.LevelingUp {
		// Забег уже окончен в этом кадре; выбирать улучшение некому.
		return
	}
	special := s.hasSpecial(p.Level)
	log.Printf("run %s: level %d reached, next at %.0f xp", w.RunID, p.Level, p.ExperienceToNext)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UpgradeRequested,
		Data: event.UpgradeRequestedData{Level: p.Level, Special: special},
	})
}

// Offered returns the upgrade choices for a level.
func (s *ProgressionSystem) Offered(level int) []defs.UpgradeDefinition {
	return defs.OfferedUpgrades(level, s.tuning.Progression.SpecialUpgradeEvery)
}

func (s *ProgressionSystem) hasSpecial(level int) bool {
	return level%s.tuning.Progression.SpecialUpgradeEvery == 0
}

// ApplyUpgrade применяет выбранное улучшение и снимает паузу.
func (s *ProgressionSystem) ApplyUpgrade(w *entity.World, id component.UpgradeID) error {
	if w.Phase != component.LevelingUp {
		return fmt.Errorf("%w (phase %s)", ErrNotLevelingUp, w.Phase)
	}
	def, ok := defs.LookupUpgrade(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	if def.Special && !s.hasSpecial(w.Player.Level) {
		return fmt.Errorf("%w: %q at level %d", ErrUpgradeNotOffered, id, w.Player.Level)
	}

	s.apply(&w.Player, id)
	s.runState.Resume(w)

	log.Printf("run %s: upgrade %s chosen at level %d", w.RunID, id, w.Player.Level)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UpgradeChosen,
		Data: event.UpgradeChosenData{Upgrade: id, Level: w.Player.Level},
	})
	return nil
}

func (s *ProgressionSystem) apply(p *component.Player, id component.UpgradeID) {
	pt := s.tuning.Progression
	switch id {
	case component.UpgradeAttackSpeed:
		p.AttackInterval = utils.MaxDuration(pt.MinAttackInterval(), p.AttackInterval-pt.AttackIntervalStep())
	case component.UpgradeAttackPower:
		p.AttackPower += pt.AttackPowerStep
	case component.UpgradeMoveSpeed:
		p.Speed += pt.MoveSpeedStep
	case component.UpgradeBulletCount:
		p.BulletCount += pt.BulletCountStep
	case component.UpgradeBulletSize:
		p.BulletSize += pt.BulletSizeStep
	}
}

// ExperienceRatio — доля заполнения полосы опыта в [0, 1].
func ExperienceRatio(p component.Player) float64 {
	if p.ExperienceToNext <= 0 {
		return 0
	}
	return utils.Clamp01(p.Experience / p.ExperienceToNext)
}
