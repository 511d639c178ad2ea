package scenes

import (
	"image/color"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/eman41/red-headband-prototype/client"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/levels"
	"github.com/eman41/red-headband-prototype/systems"
)

const layerDefault ecs.LayerID = 0

type WorldScene struct {
	ecs     *ecs.ECS
	source  fs.FS
	level   string
	watcher *levels.Watcher
	once    sync.Once
	err     error
}

// NewWorldScene plays level from source. watcher may be nil; when set, edits
// to the level or its script reload it.
func NewWorldScene(source fs.FS, level string, watcher *levels.Watcher) *WorldScene {
	return &WorldScene{source: source, level: level, watcher: watcher}
}

func (ws *WorldScene) Update() error {
	ws.once.Do(ws.configure)
	if ws.err != nil {
		return ws.err
	}
	ws.reloadChanged()
	ws.ecs.Update()
	return nil
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(world(client.UpdateInput))
	ecs.AddSystem(world(client.UpdateDebug))
	ecs.AddSystem(world(systems.UpdatePause))
	ecs.AddSystem(world(systems.UpdateReload))

	// Game systems wrapped with the pause check
	ecs.AddSystem(withPauseCheck(timed(systems.UpdatePlayers)))
	ecs.AddSystem(withPauseCheck(timed(systems.UpdatePlatforms)))
	ecs.AddSystem(withPauseCheck(world(systems.UpdateBelowMap)))
	ecs.AddSystem(withPauseCheck(world(systems.UpdateCamera)))
	ecs.AddSystem(withPauseCheck(timed(systems.UpdateHUD)))

	ecs.AddRenderer(layerDefault, draw(client.DrawLevel))
	ecs.AddRenderer(layerDefault, draw(client.DrawPlatforms))
	ecs.AddRenderer(layerDefault, draw(client.DrawPlayer))
	ecs.AddRenderer(layerDefault, draw(client.DrawHUD))
	ecs.AddRenderer(layerDefault, draw(client.DrawDebug))
	ecs.AddRenderer(layerDefault, draw(client.DrawPause))

	ws.ecs = ecs
	ws.err = systems.LoadLevel(ecs.World, ws.source, ws.level)
}

// reloadChanged reloads the level when the watcher reports an edit to any
// file sharing its name, so saving leveln.tengo reloads leveln.csv.
func (ws *WorldScene) reloadChanged() {
	if ws.watcher == nil {
		return
	}
	for _, changed := range ws.watcher.Drain() {
		if stem(filepath.Base(changed)) != stem(path.Base(ws.level)) {
			continue
		}
		log.Printf("level file %s changed, reloading", changed)
		if err := systems.LoadLevel(ws.ecs.World, ws.source, ws.level); err != nil {
			log.Printf("reload failed, keeping the current level: %v", err)
		}
		return
	}

	select {
	case err, ok := <-ws.watcher.Errors:
		if ok {
			log.Printf("level watcher: %v", err)
		}
	default:
	}
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func world(fn func(donburi.World)) ecs.System {
	return func(e *ecs.ECS) { fn(e.World) }
}

func timed(fn func(donburi.World, time.Duration)) ecs.System {
	return func(e *ecs.ECS) { fn(e.World, cfg.C.FrameTime()) }
}

func draw(fn func(donburi.World, *ebiten.Image)) ecs.Renderer {
	return func(e *ecs.ECS, screen *ebiten.Image) { fn(e.World, screen) }
}

// withPauseCheck wraps a system to skip execution when paused.
func withPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if systems.IsPaused(e.World) {
			return
		}
		system(e)
	}
}
