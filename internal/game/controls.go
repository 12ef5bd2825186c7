package game

import (
	"github.com/Faultbox/tramway/internal/config"
	"github.com/Faultbox/tramway/internal/engine/input"
	"github.com/Faultbox/tramway/internal/world"
)

// keyNames maps the configured key names onto input actions.
func keyNames(k config.KeysConfig) map[input.Action]string {
	return map[input.Action]string{
		input.TramForward:    k.Forward,
		input.TramBackward:   k.Backward,
		input.OpenDoors:      k.Open,
		input.CloseDoors:     k.Close,
		input.ToggleFollow:   k.ToggleFollow,
		input.Snap:           k.Snap,
		input.Screenshot:     k.Screenshot,
		input.Quit:           k.Quit,
		input.CameraForward:  k.CameraFwd,
		input.CameraBackward: k.CameraBack,
		input.CameraLeft:     k.CameraLeft,
		input.CameraRight:    k.CameraRight,
	}
}

func controlsFrom(a input.Actions) world.Controls {
	return world.Controls{
		TramForward:    a.TramForward,
		TramBackward:   a.TramBackward,
		OpenDoors:      a.OpenDoors,
		CloseDoors:     a.CloseDoors,
		ToggleFollow:   a.ToggleFollow,
		Snap:           a.Snap,
		CameraForward:  a.CameraForward,
		CameraBackward: a.CameraBackward,
		CameraLeft:     a.CameraLeft,
		CameraRight:    a.CameraRight,
		LookX:          a.LookX,
		LookY:          a.LookY,
		Zoom:           a.Zoom,
	}
}
