package game

import (
	"log"
	"time"

	"github.com/lixenwraith/space-shooter/engine"
	"github.com/lixenwraith/space-shooter/input"
	"github.com/lixenwraith/space-shooter/render"
)

// QuitSource reports a pending platform termination request
type QuitSource interface {
	QuitRequested() bool
}

// Pacer blocks between frames
type Pacer interface {
	Wait()
}

// SleepPacer paces frames with a fixed delay, ignoring how long the frame took
type SleepPacer struct {
	Delay time.Duration
}

// Wait sleeps for the fixed delay
func (p SleepPacer) Wait() {
	time.Sleep(p.Delay)
}

// Platform bundles the collaborators a backend provides to the loop
type Platform struct {
	Keys    input.KeyState
	Events  QuitSource
	Clock   engine.Clock
	Surface render.Surface
	Pacer   Pacer
}

// Loop owns the simulation and drives it one frame at a time
type Loop struct {
	sim      *engine.Simulation
	renderer *render.FrameRenderer
	platform Platform
	done     bool
}

// NewLoop creates a loop over sim, drawing with renderer
func NewLoop(sim *engine.Simulation, renderer *render.FrameRenderer, platform Platform) *Loop {
	return &Loop{
		sim:      sim,
		renderer: renderer,
		platform: platform,
	}
}

// Simulation returns the driven simulation
func (l *Loop) Simulation() *engine.Simulation {
	return l.sim
}

// Done reports whether a quit request has been observed
func (l *Loop) Done() bool {
	return l.done
}

// Advance samples input and steps the simulation.
// It returns false, without stepping, once quit has been requested.
func (l *Loop) Advance() bool {
	if l.done {
		return false
	}
	if l.platform.Events != nil && l.platform.Events.QuitRequested() {
		l.done = true
		log.Printf("Quit requested at frame %d", l.sim.State().Frame)
		return false
	}

	in := input.Sample(l.platform.Keys, l.platform.Clock.Now())
	report := l.sim.Step(in)
	logReport(report)
	return true
}

// Draw runs the render pass against s
func (l *Loop) Draw(s render.Surface) {
	l.renderer.RenderFrame(s, l.sim.State())
}

// RunFrame advances, renders and paces one frame; false means the loop has ended
func (l *Loop) RunFrame() bool {
	if !l.Advance() {
		return false
	}
	l.Draw(l.platform.Surface)
	if l.platform.Pacer != nil {
		l.platform.Pacer.Wait()
	}
	return true
}

// Run executes frames until quit is requested
func (l *Loop) Run() {
	for l.RunFrame() {
	}
}

func logReport(r engine.FrameReport) {
	if r.Fired {
		log.Printf("Frame %d: shot fired", r.Frame)
	}
	if r.Spawned {
		log.Printf("Frame %d: enemy spawned", r.Frame)
	}
	if r.Hits > 0 {
		log.Printf("Frame %d: %d hit(s)", r.Frame, r.Hits)
	}
}
