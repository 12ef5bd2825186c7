package input

import (
	"errors"
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Action identifies a bindable control.
type Action int

const (
	TramForward Action = iota
	TramBackward
	OpenDoors
	CloseDoors
	ToggleFollow
	Snap
	Screenshot
	Quit
	CameraForward
	CameraBackward
	CameraLeft
	CameraRight
	actionCount
)

var actionNames = [actionCount]string{
	TramForward:    "tram_forward",
	TramBackward:   "tram_backward",
	OpenDoors:      "open_doors",
	CloseDoors:     "close_doors",
	ToggleFollow:   "toggle_follow",
	Snap:           "snap",
	Screenshot:     "screenshot",
	Quit:           "quit",
	CameraForward:  "camera_forward",
	CameraBackward: "camera_backward",
	CameraLeft:     "camera_left",
	CameraRight:    "camera_right",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Bindings maps each action to a scancode. SCANCODE_UNKNOWN leaves the
// action unbound.
type Bindings [actionCount]sdl.Scancode

// Resolve looks up SDL key names (e.g. "Left", "Space", "E").
// A nil lookup uses sdl.GetScancodeFromName. Empty names leave the action
// unbound; unknown names are reported together.
func Resolve(names map[Action]string, lookup func(string) sdl.Scancode) (Bindings, error) {
	if lookup == nil {
		lookup = sdl.GetScancodeFromName
	}

	var (
		b    Bindings
		errs []error
	)
	for a, name := range names {
		if a < 0 || a >= actionCount {
			errs = append(errs, fmt.Errorf("unknown action %d", int(a)))
			continue
		}
		if name == "" {
			continue
		}
		sc := lookup(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			errs = append(errs, fmt.Errorf("%s: unknown key %q", a, name))
			continue
		}
		b[a] = sc
	}

	return b, errors.Join(errs...)
}
