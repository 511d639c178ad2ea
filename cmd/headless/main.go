package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/headless"
	"github.com/eman41/red-headband-prototype/levels"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	level := flag.String("level", "", "level file inside the level directory")
	tps := flag.Int("tps", 0, "ticks per second, defaults to the configured rate")
	ticks := flag.Int("ticks", 600, "frames to run before exiting, 0 runs until interrupted")
	idle := flag.Bool("idle", false, "leave the player idle instead of running the demo input")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		config.Level.Start = *level
	}
	if *tps <= 0 {
		*tps = config.C.TPS
	}

	var input headless.InputProvider
	if !*idle {
		input = headless.NewDemoInput()
	}
	sim, err := headless.NewSimulation(levels.Source(config.Level.Dir), config.Level.Start, input)
	if err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}
	log.Printf("Running %s: %s", config.Level.Start, sim.Snapshot())

	loop := headless.NewGameLoop(sim, *tps, *ticks, func(s *headless.Simulation) {
		if s.Ticks()%*tps == 0 {
			log.Print(s.Snapshot())
		}
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		loop.Stop()
	}()

	loop.Run()
	log.Printf("Final: %s", sim.Snapshot())
}
