package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/smarkuck/Tessendorf-Waves/internal/viewer/controls"
)

// keymap binds physical key positions to viewer actions.
var keymap = map[sdl.Scancode]controls.Action{
	sdl.SCANCODE_ESCAPE: controls.ActionQuit,
	sdl.SCANCODE_W:      controls.ActionForward,
	sdl.SCANCODE_A:      controls.ActionLeft,
	sdl.SCANCODE_S:      controls.ActionBack,
	sdl.SCANCODE_D:      controls.ActionRight,
	sdl.SCANCODE_Q:      controls.ActionDown,
	sdl.SCANCODE_E:      controls.ActionUp,
	sdl.SCANCODE_1:      controls.ActionToggleSky,
	sdl.SCANCODE_2:      controls.ActionToggleLineMode,
	sdl.SCANCODE_3:      controls.ActionToggleSound,
	sdl.SCANCODE_4:      controls.ActionWindDown,
	sdl.SCANCODE_5:      controls.ActionWindUp,
	sdl.SCANCODE_6:      controls.ActionAmplitudeDown,
	sdl.SCANCODE_7:      controls.ActionAmplitudeUp,
	sdl.SCANCODE_9:      controls.ActionSamplesDown,
	sdl.SCANCODE_0:      controls.ActionSamplesUp,
	sdl.SCANCODE_MINUS:  controls.ActionFarDown,
	sdl.SCANCODE_EQUALS: controls.ActionFarUp,
	sdl.SCANCODE_F12:    controls.ActionScreenshot,
}
