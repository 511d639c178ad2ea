// Package headless runs the simulation without a window, fed by a scripted
// input provider.
package headless

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/systems"
	"github.com/eman41/red-headband-prototype/tags"
)

// InputProvider writes one frame of input. The input has already been
// advanced, so only the actions held this frame need setting.
type InputProvider interface {
	Write(w donburi.World, in *components.InputData)
}

// InputFunc adapts a function to InputProvider.
type InputFunc func(w donburi.World, in *components.InputData)

func (f InputFunc) Write(w donburi.World, in *components.InputData) { f(w, in) }

type Simulation struct {
	world donburi.World
	input InputProvider
	dt    time.Duration
	ticks int
}

// NewSimulation loads level from fsys. A nil input leaves the player idle.
func NewSimulation(fsys fs.FS, level string, input InputProvider) (*Simulation, error) {
	w := donburi.NewWorld()
	if err := systems.LoadLevel(w, fsys, level); err != nil {
		return nil, fmt.Errorf("new simulation: %w", err)
	}
	return &Simulation{
		world: w,
		input: input,
		dt:    cfg.C.FrameTime(),
	}, nil
}

// Step advances the world by one frame.
func (s *Simulation) Step() {
	in := systems.GetOrCreateInput(s.world)
	in.Advance()
	if s.input != nil {
		s.input.Write(s.world, in)
	}
	systems.Tick(s.world, s.dt)
	s.ticks++
}

func (s *Simulation) World() donburi.World { return s.world }
func (s *Simulation) Ticks() int           { return s.ticks }

// Snapshot is the player's state after a frame.
type Snapshot struct {
	Tick   int
	X, Y   float64
	State  cfg.StateID
	Health int
	Alive  bool
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tick %d player (%.0f,%.0f) %s health %d alive %t",
		s.Tick, s.X, s.Y, s.State, s.Health, s.Alive)
}

func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.ticks}
	e, ok := tags.Player.First(s.world)
	if !ok {
		return snap
	}
	obj := components.Object.Get(e)
	snap.X, snap.Y = obj.X, obj.Y
	snap.State = components.State.Get(e).CurrentState
	snap.Health = components.Health.Get(e).Current
	snap.Alive = components.Player.Get(e).Alive
	return snap
}
