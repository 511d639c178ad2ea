package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/fonts"
	"github.com/eman41/red-headband-prototype/levels"
	"github.com/eman41/red-headband-prototype/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	level := flag.String("level", "", "level file inside the level directory")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	watch := flag.Bool("watch", false, "reload the level when its files change on disk")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		config.Level.Start = *level
	}
	if *debug {
		config.Debug.Enabled = true
		config.Debug.ShowObjects = true
		config.Debug.ShowScan = true
	}

	if err := fonts.LoadDefaults(config.HUD.FontSize, config.HUD.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *levels.Watcher
	if *watch {
		w, err := levels.NewWatcher(config.Level.Dir)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", config.Level.Dir, err)
		}
		defer w.Close()
		watcher = w
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	scene := scenes.NewWorldScene(levels.Source(config.Level.Dir), config.Level.Start, watcher)
	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
