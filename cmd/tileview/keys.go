package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
)

// Terminals report key presses but never releases, so a key counts as held
// for holdFrames frames after its last press. Key repeat keeps it held.
const holdFrames = 8

var keyActions = map[tcell.Key]cfg.ActionID{
	tcell.KeyLeft:  cfg.ActionMoveLeft,
	tcell.KeyRight: cfg.ActionMoveRight,
	tcell.KeyUp:    cfg.ActionMoveUp,
	tcell.KeyDown:  cfg.ActionMoveDown,
}

var runeActions = map[rune]cfg.ActionID{
	'a': cfg.ActionMoveLeft,
	'd': cfg.ActionMoveRight,
	'w': cfg.ActionMoveUp,
	's': cfg.ActionMoveDown,
	'x': cfg.ActionJump,
	' ': cfg.ActionJump,
	'z': cfg.ActionShoot,
	'r': cfg.ActionReload,
	'p': cfg.ActionPause,
}

// actionFor maps a key event to a game action.
func actionFor(ev *tcell.EventKey) (cfg.ActionID, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := runeActions[ev.Rune()]
		return a, ok
	}
	a, ok := keyActions[ev.Key()]
	return a, ok
}

// keyLatch turns key presses into held actions for the simulation.
type keyLatch struct {
	held [cfg.ActionCount]int
}

func (l *keyLatch) press(a cfg.ActionID) {
	l.held[a] = holdFrames
}

// Write implements headless.InputProvider.
func (l *keyLatch) Write(_ donburi.World, in *components.InputData) {
	for a := range l.held {
		if l.held[a] == 0 {
			continue
		}
		in.Current[a] = true
		l.held[a]--
	}
	in.LastInputMethod = components.InputKeyboard

	switch {
	case in.Current[cfg.ActionMoveLeft] && !in.Current[cfg.ActionMoveRight]:
		in.AxisX = -1
	case in.Current[cfg.ActionMoveRight] && !in.Current[cfg.ActionMoveLeft]:
		in.AxisX = 1
	}
	switch {
	case in.Current[cfg.ActionMoveUp] && !in.Current[cfg.ActionMoveDown]:
		in.AxisY = 1
	case in.Current[cfg.ActionMoveDown] && !in.Current[cfg.ActionMoveUp]:
		in.AxisY = -1
	}
}
