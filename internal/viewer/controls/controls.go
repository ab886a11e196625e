// Package controls holds the viewer's key-driven settings and the rules for
// changing them, independent of the window system.
package controls

import (
	"github.com/smarkuck/Tessendorf-Waves/internal/engine/camera"
	"github.com/smarkuck/Tessendorf-Waves/pkg/ocean"
)

// Action is a user command bound to a key.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionForward
	ActionLeft
	ActionBack
	ActionRight
	ActionDown
	ActionUp
	ActionToggleSky
	ActionToggleLineMode
	ActionToggleSound
	ActionWindDown
	ActionWindUp
	ActionAmplitudeDown
	ActionAmplitudeUp
	ActionSamplesDown
	ActionSamplesUp
	ActionFarDown
	ActionFarUp
	ActionScreenshot
)

var actionNames = map[Action]string{
	ActionQuit:           "quit",
	ActionForward:        "forward",
	ActionLeft:           "left",
	ActionBack:           "back",
	ActionRight:          "right",
	ActionDown:           "down",
	ActionUp:             "up",
	ActionToggleSky:      "toggle-sky",
	ActionToggleLineMode: "toggle-line-mode",
	ActionToggleSound:    "toggle-sound",
	ActionWindDown:       "wind-down",
	ActionWindUp:         "wind-up",
	ActionAmplitudeDown:  "amplitude-down",
	ActionAmplitudeUp:    "amplitude-up",
	ActionSamplesDown:    "samples-down",
	ActionSamplesUp:      "samples-up",
	ActionFarDown:        "far-down",
	ActionFarUp:          "far-up",
	ActionScreenshot:     "screenshot",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// Repeatable reports whether holding the key should fire the action again.
func (a Action) Repeatable() bool {
	switch a {
	case ActionForward, ActionLeft, ActionBack, ActionRight, ActionDown, ActionUp:
		return true
	}
	return false
}

// Step sizes and limits for the parameter keys.
const (
	WindStep      = 10.0
	MinWind       = 10.0 // Wind only decreases while above this
	AmplitudeStep = 1e-9
	MinAmplitude  = 2e-9 // Amplitude only decreases while above this
	MinSamples    = 2    // Samples only halve while above this
	MaxSamples    = 2048
	FarStep       = 100.0
	MinFar        = 100.0
	RiseStep      = 10.0
)

// Effect tells the caller what must be refreshed after an action.
type Effect uint8

const (
	EffectRebuild    Effect = 1 << iota // Ocean parameters changed
	EffectProjection                    // Camera far plane changed
	EffectSound                         // Sound toggled
	EffectScreenshot
	EffectQuit
)

// Has reports whether e includes flag.
func (e Effect) Has(flag Effect) bool {
	return e&flag != 0
}

// State is the mutable viewer state the keys operate on.
type State struct {
	Params   ocean.Params
	Sky      bool
	LineMode bool
	Sound    bool
}

// Apply performs a on the state and camera and reports what changed.
func (s *State) Apply(a Action, cam *camera.FlyCamera) Effect {
	switch a {
	case ActionQuit:
		return EffectQuit
	case ActionScreenshot:
		return EffectScreenshot

	case ActionForward:
		cam.Move(0)
	case ActionLeft:
		cam.Move(-90)
	case ActionBack:
		cam.Move(-180)
	case ActionRight:
		cam.Move(90)
	case ActionDown:
		cam.Rise(-RiseStep)
	case ActionUp:
		cam.Rise(RiseStep)

	case ActionToggleSky:
		s.Sky = !s.Sky
	case ActionToggleLineMode:
		s.LineMode = !s.LineMode
	case ActionToggleSound:
		s.Sound = !s.Sound
		return EffectSound

	case ActionWindDown:
		if s.Params.WindSpeed > MinWind {
			s.Params.WindSpeed -= WindStep
			return EffectRebuild
		}
	case ActionWindUp:
		s.Params.WindSpeed += WindStep
		return EffectRebuild

	case ActionAmplitudeDown:
		if s.Params.Amplitude > MinAmplitude {
			s.Params.Amplitude -= AmplitudeStep
			return EffectRebuild
		}
	case ActionAmplitudeUp:
		s.Params.Amplitude += AmplitudeStep
		return EffectRebuild

	case ActionSamplesDown:
		if s.Params.SamplesX > MinSamples && s.Params.SamplesY > MinSamples {
			s.Params.SamplesX /= 2
			s.Params.SamplesY /= 2
			return EffectRebuild
		}
	case ActionSamplesUp:
		if s.Params.SamplesX < MaxSamples && s.Params.SamplesY < MaxSamples {
			s.Params.SamplesX *= 2
			s.Params.SamplesY *= 2
			return EffectRebuild
		}

	case ActionFarDown:
		if cam.Far-FarStep >= MinFar {
			cam.Far -= FarStep
			return EffectProjection
		}
	case ActionFarUp:
		cam.Far += FarStep
		return EffectProjection
	}
	return 0
}
