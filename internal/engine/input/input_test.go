package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

var fakeKeys = map[string]sdl.Scancode{
	"Up":     sdl.SCANCODE_UP,
	"Down":   sdl.SCANCODE_DOWN,
	"Left":   sdl.SCANCODE_LEFT,
	"Right":  sdl.SCANCODE_RIGHT,
	"E":      sdl.SCANCODE_E,
	"Space":  sdl.SCANCODE_SPACE,
	"Escape": sdl.SCANCODE_ESCAPE,
	"W":      sdl.SCANCODE_W,
}

func fakeLookup(name string) sdl.Scancode {
	return fakeKeys[name]
}

func testBindings(t *testing.T) Bindings {
	t.Helper()
	b, err := Resolve(map[Action]string{
		TramForward:   "Up",
		TramBackward:  "Down",
		OpenDoors:     "Left",
		CloseDoors:    "Right",
		ToggleFollow:  "E",
		Snap:          "Space",
		Quit:          "Escape",
		CameraForward: "W",
	}, fakeLookup)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return b
}

func keyboard(down ...sdl.Scancode) []uint8 {
	keys := make([]uint8, sdl.NUM_SCANCODES)
	for _, sc := range down {
		keys[sc] = 1
	}
	return keys
}

func TestResolveUnknownKey(t *testing.T) {
	_, err := Resolve(map[Action]string{
		OpenDoors:  "Left",
		CloseDoors: "NoSuchKey",
		Snap:       "",
	}, fakeLookup)
	if err == nil {
		t.Fatal("expected error for unknown key name")
	}
}

func TestResolveUnboundAction(t *testing.T) {
	b, err := Resolve(map[Action]string{Screenshot: ""}, fakeLookup)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if b[Screenshot] != sdl.SCANCODE_UNKNOWN {
		t.Errorf("empty name should leave action unbound, got %d", b[Screenshot])
	}

	in := New(b)
	// Scancode 0 pressed must not trigger unbound actions.
	if a := in.Map(keyboard(sdl.SCANCODE_UNKNOWN)); a.Screenshot {
		t.Error("unbound action fired")
	}
}

func TestHeldActionsRepeat(t *testing.T) {
	in := New(testBindings(t))

	for frame := 0; frame < 3; frame++ {
		a := in.Map(keyboard(sdl.SCANCODE_LEFT, sdl.SCANCODE_UP, sdl.SCANCODE_W))
		if !a.OpenDoors || !a.TramForward || !a.CameraForward {
			t.Fatalf("frame %d: held actions not reported: %+v", frame, a)
		}
		if a.CloseDoors || a.TramBackward {
			t.Fatalf("frame %d: unexpected actions: %+v", frame, a)
		}
	}
}

func TestToggleIsEdgeTriggered(t *testing.T) {
	in := New(testBindings(t))

	frames := []struct {
		keys       []uint8
		wantToggle bool
		wantSnap   bool
	}{
		{keyboard(sdl.SCANCODE_E), true, false},
		{keyboard(sdl.SCANCODE_E), false, false},
		{keyboard(sdl.SCANCODE_E, sdl.SCANCODE_SPACE), false, true},
		{keyboard(), false, false},
		{keyboard(sdl.SCANCODE_E), true, false},
	}

	for i, f := range frames {
		a := in.Map(f.keys)
		if a.ToggleFollow != f.wantToggle {
			t.Errorf("frame %d: ToggleFollow = %v, want %v", i, a.ToggleFollow, f.wantToggle)
		}
		if a.Snap != f.wantSnap {
			t.Errorf("frame %d: Snap = %v, want %v", i, a.Snap, f.wantSnap)
		}
	}
}

func TestMouseDeltasReset(t *testing.T) {
	in := New(testBindings(t))
	in.lookX, in.lookY, in.zoom = 4, 6, -1

	a := in.Map(keyboard())
	if a.LookX != 4 || a.LookY != -6 || a.Zoom != -1 {
		t.Errorf("deltas = (%v, %v, %v), want (4, -6, -1)", a.LookX, a.LookY, a.Zoom)
	}

	a = in.Map(keyboard())
	if a.LookX != 0 || a.LookY != 0 || a.Zoom != 0 {
		t.Errorf("deltas not reset: (%v, %v, %v)", a.LookX, a.LookY, a.Zoom)
	}
}

func TestQuit(t *testing.T) {
	in := New(testBindings(t))
	if a := in.Map(keyboard(sdl.SCANCODE_ESCAPE)); !a.Quit {
		t.Error("escape should quit")
	}

	in = New(testBindings(t))
	in.quit = true
	if a := in.Map(keyboard()); !a.Quit {
		t.Error("window close should quit")
	}
}

func TestShortKeyboardSnapshot(t *testing.T) {
	in := New(testBindings(t))
	// A snapshot shorter than the bound scancodes must not panic.
	if a := in.Map(make([]uint8, 4)); a.OpenDoors {
		t.Error("unexpected action from short snapshot")
	}
}

func TestActionString(t *testing.T) {
	if got := OpenDoors.String(); got != "open_doors" {
		t.Errorf("String = %q", got)
	}
	if got := Action(99).String(); got != "Action(99)" {
		t.Errorf("String = %q", got)
	}
}
