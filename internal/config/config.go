// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900

	// Игрок
	PlayerSize             = 30.0
	PlayerSpeed            = 5.0
	PlayerStartLevel       = 1
	PlayerExperienceToNext = 100.0
	PlayerAttackInterval   = 500 * time.Millisecond
	PlayerAttackPower      = 20
	PlayerBulletCount      = 1
	PlayerBulletSize       = 8.0

	// Снаряды
	BulletSpeed       = 10.0
	BulletCullRadius  = 2000.0
	VolleySpreadRange = 0.3 // radians, whole window
	BulletTrailLength = 15.0

	// Враги
	EnemySize          = 20.0
	EnemyBaseSpeed     = 2.0
	EnemyBaseHealth    = 50.0
	EnemySpeedScale    = 10000.0
	EnemyHealthScale   = 1000.0
	EnemySpawnInterval = 1000 * time.Millisecond
	EnemySpawnDistance = 800.0

	// Прогрессия
	ExperiencePerKill       = 20.0
	LevelThresholdGrowth    = 1.2
	SpecialUpgradeEvery     = 3
	MinAttackInterval       = 100 * time.Millisecond
	AttackIntervalStep      = 50 * time.Millisecond
	AttackPowerStep         = 10
	MoveSpeedStep           = 1.0
	BulletCountStep         = 1
	BulletSizeStep          = 2.0
	HealthBarWidth          = 40.0
	HealthBarHeight         = 4.0
	HealthBarOffsetY        = 10.0
	CrosshairHalfSize       = 10.0
	StrokeWidth             = 2.0
	IndicatorOffsetX        = 10
	IndicatorOffsetY        = 10
	DebugTextX              = 10
	DebugTextY              = 40
	DebugLineHeight         = 20
	UpgradeButtonWidth      = 220
	UpgradeButtonHeight     = 40
	UpgradeButtonGap        = 10
	TextCharWidth           = 7
	TextLineHeight          = 13
	FrameDuration           = time.Second / 60
	DefaultSimulationFrames = 60 * 60 * 5
)

var (
	BackgroundColor    = color.RGBA{20, 20, 30, 255}
	PlayerColor        = color.RGBA{76, 175, 80, 255}
	BulletColor        = color.RGBA{255, 255, 0, 255}
	BulletTrailColor   = color.RGBA{255, 255, 0, 128}
	EnemyColor         = color.RGBA{255, 68, 68, 255}
	HealthBarBack      = color.RGBA{51, 51, 51, 255}
	HealthBarFill      = color.RGBA{255, 68, 68, 255}
	CrosshairColor     = color.RGBA{255, 255, 255, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
	ButtonColor        = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 240}
	SpecialButtonColor = color.RGBA{194, 178, 128, 230}
	XPBarFillColor     = color.RGBA{70, 100, 120, 220}
)
