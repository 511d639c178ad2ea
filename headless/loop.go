package headless

import (
	"log"
	"sync"
	"time"
)

type GameLoop struct {
	sim      *Simulation
	tickRate int
	maxTicks int
	onTick   func(*Simulation)
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewGameLoop steps sim tickRate times a second. maxTicks of zero runs
// until Stop. onTick, if set, is called after every step.
func NewGameLoop(sim *Simulation, tickRate, maxTicks int, onTick func(*Simulation)) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or maxTicks frames have run.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
			if g.maxTicks > 0 && g.sim.Ticks() >= g.maxTicks {
				log.Printf("Game loop finished after %d ticks", g.sim.Ticks())
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) tick() {
	g.sim.Step()
	if g.onTick != nil {
		g.onTick(g.sim)
	}
}
