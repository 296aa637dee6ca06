package system

import (
	"go-survivor/internal/component"
	"go-survivor/internal/config"
	"go-survivor/internal/entity"
	"go-survivor/internal/event"
	"image/color"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newRunningWorld returns a started world with default tuning.
func newRunningWorld() *entity.World {
	w := entity.NewWorld(config.DefaultTuning())
	w.Phase = component.Running
	return w
}

// recorder collects dispatched events by type.
type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listenAll(d *event.Dispatcher) *recorder {
	r := &recorder{}
	for _, t := range []event.EventType{
		event.RunStarted, event.VolleyFired, event.EnemySpawned, event.EnemyKilled,
		event.UpgradeRequested, event.UpgradeChosen, event.GameOver,
	} {
		d.Subscribe(t, r)
	}
	return r
}

// recordingPainter stores drawing calls instead of drawing.
type recordingPainter struct {
	w, h    int
	circles int
	lines   int
	rects   int
	texts   []string
}

func (p *recordingPainter) Clear(color.Color)                                       {}
func (p *recordingPainter) FillCircle(x, y, r float32, c color.Color)               { p.circles++ }
func (p *recordingPainter) StrokeLine(x0, y0, x1, y1, width float32, c color.Color) { p.lines++ }
func (p *recordingPainter) FillRect(x, y, w, h float32, c color.Color)              { p.rects++ }
func (p *recordingPainter) StrokeRect(x, y, w, h, width float32, c color.Color)     { p.rects++ }
func (p *recordingPainter) Text(s string, x, y int, c color.Color)                  { p.texts = append(p.texts, s) }
func (p *recordingPainter) Size() (int, int)                                        { return p.w, p.h }
