package client

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/eman41/red-headband-prototype/components"
	cfg "github.com/eman41/red-headband-prototype/config"
	"github.com/eman41/red-headband-prototype/systems"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the Input component.
// Must run BEFORE the gameplay systems.
func UpdateInput(w donburi.World) {
	input := systems.GetOrCreateInput(w)
	input.Advance()

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	if readStick(input, gamepadIDs) {
		gamepadUsed = true
	}

	// Digital directions win over the stick.
	switch {
	case input.Current[cfg.ActionMoveLeft] && !input.Current[cfg.ActionMoveRight]:
		input.AxisX = -1
	case input.Current[cfg.ActionMoveRight] && !input.Current[cfg.ActionMoveLeft]:
		input.AxisX = 1
	}
	switch {
	case input.Current[cfg.ActionMoveUp] && !input.Current[cfg.ActionMoveDown]:
		input.AxisY = 1
	case input.Current[cfg.ActionMoveDown] && !input.Current[cfg.ActionMoveUp]:
		input.AxisY = -1
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readStick copies the first deflected left stick into the axes. Screen
// down is positive on the stick, so the vertical axis is flipped.
func readStick(input *components.InputData, gamepads []ebiten.GamepadID) bool {
	deadzone := Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal > -deadzone && horizontal < deadzone && vertical > -deadzone && vertical < deadzone {
			continue
		}
		input.AxisX = horizontal
		input.AxisY = -vertical
		return true
	}
	return false
}
