// Package input turns SDL2 events and keyboard state into scene actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Actions is the input snapshot for one frame.
type Actions struct {
	// Held every frame the key is down.
	TramForward  bool
	TramBackward bool
	OpenDoors    bool
	CloseDoors   bool

	CameraForward  bool
	CameraBackward bool
	CameraLeft     bool
	CameraRight    bool

	// Reported once per key press.
	ToggleFollow bool
	Snap         bool
	Screenshot   bool

	Quit bool

	// Mouse look in pixels since the last frame; LookY is positive upwards.
	LookX float32
	LookY float32
	// Wheel steps since the last frame.
	Zoom float32

	// Set when the drawable size changed.
	Resized bool
	Width   int
	Height  int
}

// Input polls SDL and keeps the state needed for edge detection.
type Input struct {
	bindings Bindings
	prev     [actionCount]bool

	lookX, lookY float32
	zoom         float32
	quit         bool

	resized       bool
	width, height int
}

// New creates a new input handler.
func New(b Bindings) *Input {
	return &Input{bindings: b}
}

// Poll drains the SDL event queue and samples the keyboard.
func (i *Input) Poll() Actions {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.resized = true
				i.width = int(e.Data1)
				i.height = int(e.Data2)
			}

		case *sdl.MouseMotionEvent:
			i.lookX += float32(e.XRel)
			i.lookY += float32(e.YRel)

		case *sdl.MouseWheelEvent:
			i.zoom += float32(e.Y)
		}
	}

	return i.Map(sdl.GetKeyboardState())
}

// Map builds the frame's actions from a keyboard snapshot indexed by
// scancode plus the events gathered since the previous call.
func (i *Input) Map(keys []uint8) Actions {
	var held [actionCount]bool
	for a := Action(0); a < actionCount; a++ {
		sc := i.bindings[a]
		held[a] = sc != sdl.SCANCODE_UNKNOWN && int(sc) < len(keys) && keys[sc] != 0
	}

	pressed := func(a Action) bool {
		return held[a] && !i.prev[a]
	}

	act := Actions{
		TramForward:    held[TramForward],
		TramBackward:   held[TramBackward],
		OpenDoors:      held[OpenDoors],
		CloseDoors:     held[CloseDoors],
		CameraForward:  held[CameraForward],
		CameraBackward: held[CameraBackward],
		CameraLeft:     held[CameraLeft],
		CameraRight:    held[CameraRight],
		ToggleFollow:   pressed(ToggleFollow),
		Snap:           pressed(Snap),
		Screenshot:     pressed(Screenshot),
		Quit:           i.quit || held[Quit],
		LookX:          i.lookX,
		LookY:          -i.lookY, // screen y grows downwards
		Zoom:           i.zoom,
		Resized:        i.resized,
		Width:          i.width,
		Height:         i.height,
	}

	i.prev = held
	i.lookX, i.lookY, i.zoom = 0, 0, 0
	i.resized = false
	return act
}
