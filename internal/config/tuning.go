package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Tuning holds the gameplay numbers that can be overridden from a YAML file.
// Durations are stored in milliseconds to keep the file readable.
type Tuning struct {
	Player      PlayerTuning      `yaml:"player"`
	Bullet      BulletTuning      `yaml:"bullet"`
	Enemy       EnemyTuning       `yaml:"enemy"`
	Progression ProgressionTuning `yaml:"progression"`
}

type PlayerTuning struct {
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	ExperienceToNext float64 `yaml:"experience_to_next"`
	AttackIntervalMs int     `yaml:"attack_interval_ms"`
	AttackPower      int     `yaml:"attack_power"`
	BulletCount      int     `yaml:"bullet_count"`
	BulletSize       float64 `yaml:"bullet_size"`
}

type BulletTuning struct {
	Speed       float64 `yaml:"speed"`
	CullRadius  float64 `yaml:"cull_radius"`
	SpreadRange float64 `yaml:"spread_range"`
}

type EnemyTuning struct {
	Size            float64 `yaml:"size"`
	BaseSpeed       float64 `yaml:"base_speed"`
	BaseHealth      float64 `yaml:"base_health"`
	SpeedScale      float64 `yaml:"speed_scale"`
	HealthScale     float64 `yaml:"health_scale"`
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"`
	SpawnDistance   float64 `yaml:"spawn_distance"`
}

type ProgressionTuning struct {
	ExperiencePerKill    float64 `yaml:"experience_per_kill"`
	ThresholdGrowth      float64 `yaml:"threshold_growth"`
	SpecialUpgradeEvery  int     `yaml:"special_upgrade_every"`
	MinAttackIntervalMs  int     `yaml:"min_attack_interval_ms"`
	AttackIntervalStepMs int     `yaml:"attack_interval_step_ms"`
	AttackPowerStep      int     `yaml:"attack_power_step"`
	MoveSpeedStep        float64 `yaml:"move_speed_step"`
	BulletCountStep      int     `yaml:"bullet_count_step"`
	BulletSizeStep       float64 `yaml:"bullet_size_step"`
}

// DefaultTuning returns the stock balance of the game.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Size:             PlayerSize,
			Speed:            PlayerSpeed,
			ExperienceToNext: PlayerExperienceToNext,
			AttackIntervalMs: int(PlayerAttackInterval / time.Millisecond),
			AttackPower:      PlayerAttackPower,
			BulletCount:      PlayerBulletCount,
			BulletSize:       PlayerBulletSize,
		},
		Bullet: BulletTuning{
			Speed:       BulletSpeed,
			CullRadius:  BulletCullRadius,
			SpreadRange: VolleySpreadRange,
		},
		Enemy: EnemyTuning{
			Size:            EnemySize,
			BaseSpeed:       EnemyBaseSpeed,
			BaseHealth:      EnemyBaseHealth,
			SpeedScale:      EnemySpeedScale,
			HealthScale:     EnemyHealthScale,
			SpawnIntervalMs: int(EnemySpawnInterval / time.Millisecond),
			SpawnDistance:   EnemySpawnDistance,
		},
		Progression: ProgressionTuning{
			ExperiencePerKill:    ExperiencePerKill,
			ThresholdGrowth:      LevelThresholdGrowth,
			SpecialUpgradeEvery:  SpecialUpgradeEvery,
			MinAttackIntervalMs:  int(MinAttackInterval / time.Millisecond),
			AttackIntervalStepMs: int(AttackIntervalStep / time.Millisecond),
			AttackPowerStep:      AttackPowerStep,
			MoveSpeedStep:        MoveSpeedStep,
			BulletCountStep:      BulletCountStep,
			BulletSizeStep:       BulletSizeStep,
		},
	}
}

func (t PlayerTuning) AttackInterval() time.Duration {
	return time.Duration(t.AttackIntervalMs) * time.Millisecond
}

func (t EnemyTuning) SpawnInterval() time.Duration {
	return time.Duration(t.SpawnIntervalMs) * time.Millisecond
}

func (t ProgressionTuning) MinAttackInterval() time.Duration {
	return time.Duration(t.MinAttackIntervalMs) * time.Millisecond
}

func (t ProgressionTuning) AttackIntervalStep() time.Duration {
	return time.Duration(t.AttackIntervalStepMs) * time.Millisecond
}

// Validate отсекает значения, с которыми симуляция теряет смысл.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.BulletCount < 1 {
		errs = append(errs, fmt.Errorf("player.bullet_count must be >= 1, got %d", t.Player.BulletCount))
	}
	if t.Player.ExperienceToNext <= 0 {
		errs = append(errs, fmt.Errorf("player.experience_to_next must be > 0, got %v", t.Player.ExperienceToNext))
	}
	if t.Bullet.Speed < 0 {
		errs = append(errs, fmt.Errorf("bullet.speed must be >= 0, got %v", t.Bullet.Speed))
	}
	if t.Bullet.CullRadius <= 0 {
		errs = append(errs, fmt.Errorf("bullet.cull_radius must be > 0, got %v", t.Bullet.CullRadius))
	}
	if t.Enemy.SpeedScale <= 0 || t.Enemy.HealthScale <= 0 {
		errs = append(errs, errors.New("enemy speed_scale and health_scale must be > 0"))
	}
	if t.Enemy.SpawnDistance <= 0 {
		errs = append(errs, fmt.Errorf("enemy.spawn_distance must be > 0, got %v", t.Enemy.SpawnDistance))
	}
	if t.Enemy.SpawnIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("enemy.spawn_interval_ms must be > 0, got %d", t.Enemy.SpawnIntervalMs))
	}
	if t.Progression.ThresholdGrowth <= 1 {
		errs = append(errs, fmt.Errorf("progression.threshold_growth must be > 1, got %v", t.Progression.ThresholdGrowth))
	}
	if t.Progression.SpecialUpgradeEvery <= 0 {
		errs = append(errs, fmt.Errorf("progression.special_upgrade_every must be > 0, got %d", t.Progression.SpecialUpgradeEvery))
	}
	return errors.Join(errs...)
}

// LoadTuning reads a YAML tuning file on top of DefaultTuning.
// Keys missing from the file keep their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	file, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(file, &t); err != nil {
		return t, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning %s: %w", path, err)
	}
	return t, nil
}
