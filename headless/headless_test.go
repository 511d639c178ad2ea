package headless

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/levels"
)

func newSim(t *testing.T, input InputProvider) *Simulation {
	t.Helper()
	sim, err := NewSimulation(levels.Embedded(), "leveln.csv", input)
	require.NoError(t, err)
	return sim
}

func TestSimulationSettlesIdle(t *testing.T) {
	sim := newSim(t, nil)
	start := sim.Snapshot()

	for i := 0; i < 30; i++ {
		sim.Step()
	}
	snap := sim.Snapshot()
	assert.Equal(t, 30, snap.Tick)
	assert.Equal(t, start.X, snap.X)
	assert.True(t, snap.Alive)
	assert.Equal(t, cfg.Stand, snap.State)
}

func TestDemoInputBounces(t *testing.T) {
	sim := newSim(t, NewDemoInput())

	maxX := 0.0
	for i := 0; i < 160; i++ {
		sim.Step()
		maxX = max(maxX, sim.Snapshot().X)
	}
	snap := sim.Snapshot()
	assert.GreaterOrEqual(t, maxX, 500.0)
	assert.Less(t, maxX, 500.0+cfg.Player.Speed)
	assert.Less(t, snap.X, maxX, "turned around at the right bound")
	assert.True(t, snap.Alive)
}

func TestDemoInputDirection(t *testing.T) {
	sim := newSim(t, nil)
	demo := NewDemoInput()
	in := &components.InputData{}

	demo.Write(sim.World(), in)
	assert.Equal(t, 1.0, in.AxisX)
	assert.Equal(t, components.InputScripted, in.LastInputMethod)

	e := playerEntry(t, sim.World())
	components.Object.Get(e).MoveTo(520, 700)
	demo.Write(sim.World(), in)
	assert.Equal(t, -1.0, in.AxisX)

	components.Object.Get(e).MoveTo(300, 700)
	demo.Write(sim.World(), in)
	assert.Equal(t, -1.0, in.AxisX, "keeps going until the left bound")

	components.Object.Get(e).MoveTo(80, 700)
	demo.Write(sim.World(), in)
	assert.Equal(t, 1.0, in.AxisX)
}

func TestInputFuncFeedsControl(t *testing.T) {
	sim := newSim(t, InputFunc(func(w donburi.World, in *components.InputData) {
		in.Current[cfg.ActionJump] = true
	}))
	startY := sim.Snapshot().Y

	for i := 0; i < 3; i++ {
		sim.Step()
	}
	assert.Less(t, sim.Snapshot().Y, startY)
	assert.Equal(t, cfg.Jump, sim.Snapshot().State)
}

func TestGameLoopStopsAfterMaxTicks(t *testing.T) {
	sim := newSim(t, nil)
	calls := 0
	loop := NewGameLoop(sim, 1000, 5, func(*Simulation) { calls++ })

	loop.Run()
	assert.Equal(t, 5, sim.Ticks())
	assert.Equal(t, 5, calls)
}

func TestGameLoopStop(t *testing.T) {
	loop := NewGameLoop(newSim(t, nil), 1000, 0, nil)
	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	loop.Stop()
	loop.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func playerEntry(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	e, ok := components.Player.First(w)
	require.True(t, ok)
	return e
}
