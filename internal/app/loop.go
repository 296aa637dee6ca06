package app

import (
	"context"
	"go-survivor/internal/clock"
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/input"
	"time"
)

// InputSource yields the controls for the next frame.
type InputSource interface {
	Next(w, h int) input.State
}

// InputFunc adapts a function to InputSource.
type InputFunc func(w, h int) input.State

func (f InputFunc) Next(w, h int) input.State { return f(w, h) }

// UpgradePicker decides which upgrade to take when the run pauses for one.
type UpgradePicker func(g *Game) component.UpgradeID

// FrameLoop drives a Game on a manual clock: every Step advances the clock by
// one frame and runs exactly one update.
type FrameLoop struct {
	Game   *Game
	Clock  *clock.Manual
	Frame  time.Duration
	Input  InputSource
	Picker UpgradePicker

	ScreenW, ScreenH int
	Frames           uint64
}

// NewFrameLoop creates a loop for g. g must have been built on clk.
func NewFrameLoop(g *Game, clk *clock.Manual, frame time.Duration, in InputSource) *FrameLoop {
	return &FrameLoop{
		Game:    g,
		Clock:   clk,
		Frame:   frame,
		Input:   in,
		ScreenW: config.ScreenWidth,
		ScreenH: config.ScreenHeight,
	}
}

// Step runs one frame. While the run waits for an upgrade the Picker,
// if set, answers between frames.
func (l *FrameLoop) Step() error {
	if l.Game.Phase() == component.LevelingUp && l.Picker != nil {
		if err := l.Game.ChooseUpgrade(l.Picker(l.Game)); err != nil {
			return err
		}
	}
	l.Clock.Advance(l.Frame)
	l.Game.Update(l.Input.Next(l.ScreenW, l.ScreenH))
	l.Frames++
	return nil
}

// Run steps until the run is over, maxFrames frames have passed
// (0 means no limit) or ctx is done.
func (l *FrameLoop) Run(ctx context.Context, maxFrames uint64) error {
	for maxFrames == 0 || l.Frames < maxFrames {
		if err := ctx.Err(); err != nil {
			return err
		}
		if l.Game.Phase() == component.GameOver {
			return nil
		}
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}
