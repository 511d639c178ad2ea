// Command tileview plays a level in the terminal, one cell per tile.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	"github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/headless"
	"github.com/eman41/red-headband-prototype/levels"
	"github.com/eman41/red-headband-prototype/shared/gamemath"
	"github.com/eman41/red-headband-prototype/shared/tilemap"
	"github.com/eman41/red-headband-prototype/systems"
	"github.com/eman41/red-headband-prototype/tags"
)

var (
	styleTile     = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleLadder   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleSpikes   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFlavor   = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleLethal   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

type viewer struct {
	screen tcell.Screen
	sim    *headless.Simulation
	keys   *keyLatch
}

func newViewer(level string) (*viewer, error) {
	keys := &keyLatch{}
	sim, err := headless.NewSimulation(levels.Source(config.Level.Dir), level, keys)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()

	return &viewer{screen: screen, sim: sim, keys: keys}, nil
}

// handleInput returns false when the viewer should exit.
func (v *viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if a, ok := actionFor(ev); ok {
			v.keys.press(a)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *viewer) run() {
	ticker := time.NewTicker(config.C.FrameTime())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}
		case <-ticker.C:
			v.sim.Step()
			v.draw()
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	w := v.sim.World()
	m, ok := systems.CurrentMap(w)
	if !ok {
		return
	}
	player, ok := tags.Player.First(w)
	if !ok {
		return
	}

	width, height := v.screen.Size()
	rows := height - 1
	body := components.Object.Get(player).Rect()
	center := gamemath.CenterTile(body.X, body.Y, body.W, body.H)
	originX := clampOrigin(center.X-width/2, m.Width, width)
	originY := clampOrigin(center.Y-rows/2, m.Height, rows)

	for sy := 0; sy < rows; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := originX+sx, originY+sy
			if !m.InBounds(x, y) {
				continue
			}
			if r, style, ok := tileGlyph(m.Tiles[y][x].Type); ok {
				v.screen.SetContent(sx, sy, r, nil, style)
			}
		}
	}

	tags.Platform.Each(w, func(e *donburi.Entry) {
		r := components.Platform.Get(e).Bounds()
		style := stylePlatform
		if e.HasComponent(tags.Lethal) {
			style = styleLethal
		}
		x0, y0 := int(r.Left())/tilemap.TileSize, int(r.Top())/tilemap.TileSize
		x1, y1 := int(r.Right()-1)/tilemap.TileSize, int(r.Bottom()-1)/tilemap.TileSize
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				v.screen.SetContent(x-originX, y-originY, '=', nil, style)
			}
		}
	})

	style := stylePlayer
	if !components.Player.Get(player).Alive {
		style = styleDead
	}
	v.screen.SetContent(center.X-originX, center.Y-originY, '@', nil, style)

	status := fmt.Sprintf(" %s | %s | arrows/wasd move, x jump, r reload, p pause, q quit", m.Name, v.sim.Snapshot())
	if systems.IsPaused(w) {
		status = " PAUSED" + status
	}
	for i, r := range []rune(status) {
		if i >= width {
			break
		}
		v.screen.SetContent(i, height-1, r, nil, styleStatus)
	}
	v.screen.Show()
}

func tileGlyph(t tilemap.TileType) (rune, tcell.Style, bool) {
	switch t {
	case tilemap.TypeTile:
		return '█', styleTile, true
	case tilemap.TypeLadder:
		return 'H', styleLadder, true
	case tilemap.TypeSpikes:
		return '^', styleSpikes, true
	case tilemap.TypeFlavor:
		return '"', styleFlavor, true
	}
	return 0, tcell.StyleDefault, false
}

// clampOrigin keeps a view of span cells inside a map of size tiles.
func clampOrigin(origin, size, span int) int {
	if size <= span {
		return 0
	}
	return max(0, min(size-span, origin))
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning")
	level := flag.String("level", "", "level file inside the level directory")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		config.Level.Start = *level
	}

	v, err := newViewer(config.Level.Start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.screen.Fini()

	v.run()
}
