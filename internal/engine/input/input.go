// Package input handles SDL2 input events and device state.
//
// Update pumps the SDL event queue once per frame and snapshots keyboard,
// mouse and game controller state. The accessors expose that snapshot
// through device-neutral key, axis and button identifiers so callers never
// touch SDL codes directly.
package input

import (
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/strider/internal/control"
	"github.com/Faultbox/strider/pkg/math"
)

// scancodes maps neutral keys to SDL scancodes.
var scancodes = map[control.Key]sdl.Scancode{
	control.KeyW:          sdl.SCANCODE_W,
	control.KeyA:          sdl.SCANCODE_A,
	control.KeyS:          sdl.SCANCODE_S,
	control.KeyD:          sdl.SCANCODE_D,
	control.KeyArrowUp:    sdl.SCANCODE_UP,
	control.KeyArrowDown:  sdl.SCANCODE_DOWN,
	control.KeyArrowLeft:  sdl.SCANCODE_LEFT,
	control.KeyArrowRight: sdl.SCANCODE_RIGHT,
	control.KeySpace:      sdl.SCANCODE_SPACE,
	control.KeyEscape:     sdl.SCANCODE_ESCAPE,
}

var padAxes = map[control.Axis]sdl.GameControllerAxis{
	control.AxisLeftX:  sdl.CONTROLLER_AXIS_LEFTX,
	control.AxisLeftY:  sdl.CONTROLLER_AXIS_LEFTY,
	control.AxisRightX: sdl.CONTROLLER_AXIS_RIGHTX,
	control.AxisRightY: sdl.CONTROLLER_AXIS_RIGHTY,
}

var padButtons = map[control.Button]sdl.GameControllerButton{
	control.ButtonSouth: sdl.CONTROLLER_BUTTON_A,
	control.ButtonStart: sdl.CONTROLLER_BUTTON_START,
}

// Pad wraps one opened SDL game controller.
type Pad struct {
	ctrl    *sdl.GameController
	buttons map[control.Button]bool
	prev    map[control.Button]bool
}

func openPad(index int) *Pad {
	ctrl := sdl.GameControllerOpen(index)
	if ctrl == nil {
		slog.Warn("failed to open game controller", "index", index, "error", sdl.GetError())
		return nil
	}
	return &Pad{
		ctrl:    ctrl,
		buttons: make(map[control.Button]bool, len(padButtons)),
		prev:    make(map[control.Button]bool, len(padButtons)),
	}
}

func (p *Pad) poll() {
	for b, code := range padButtons {
		p.prev[b] = p.buttons[b]
		p.buttons[b] = p.ctrl.Button(code) == sdl.PRESSED
	}
}

func (p *Pad) close() {
	p.ctrl.Close()
}

// Axis returns the stick position in [-1, 1]. Vertical axes are flipped
// from SDL's down-positive convention to up-positive.
func (p *Pad) Axis(axis control.Axis) float32 {
	code, ok := padAxes[axis]
	if !ok {
		return 0
	}
	v := float32(p.ctrl.Axis(code)) / 32767.0
	if v < -1 {
		v = -1
	}
	if axis == control.AxisLeftY || axis == control.AxisRightY {
		v = -v
	}
	return v
}

// JustPressed reports whether the button went down since the previous Update.
func (p *Pad) JustPressed(b control.Button) bool {
	return p.buttons[b] && !p.prev[b]
}

// Input handles all input processing.
type Input struct {
	keys     []uint8
	prevKeys []uint8
	deltas   []math.Vec2
	pads     []*Pad
}

// New creates a new input handler and opens any controllers already attached.
func New() *Input {
	in := &Input{
		deltas: make([]math.Vec2, 0, 8),
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if p := openPad(i); p != nil {
			in.pads = append(in.pads, p)
			slog.Info("game controller attached", "index", i)
		}
	}
	return in
}

// Update polls SDL events and refreshes device snapshots.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.deltas = i.deltas[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.MouseMotionEvent:
			if e.XRel != 0 || e.YRel != 0 {
				i.deltas = append(i.deltas, math.Vec2{X: float32(e.XRel), Y: float32(e.YRel)})
			}

		case *sdl.ControllerDeviceEvent:
			switch e.GetType() {
			case sdl.CONTROLLERDEVICEADDED:
				if p := openPad(int(e.Which)); p != nil {
					i.pads = append(i.pads, p)
					slog.Info("game controller attached", "index", e.Which)
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				i.dropPad(sdl.JoystickID(e.Which))
			}
		}
	}

	// Snapshot keyboard state, keeping the previous frame for edges.
	state := sdl.GetKeyboardState()
	if i.keys == nil {
		i.keys = make([]uint8, len(state))
		i.prevKeys = make([]uint8, len(state))
	}
	copy(i.prevKeys, i.keys)
	copy(i.keys, state)

	for _, p := range i.pads {
		p.poll()
	}

	return quit
}

func (i *Input) dropPad(id sdl.JoystickID) {
	for n, p := range i.pads {
		if p.ctrl.Joystick().InstanceID() == id {
			p.close()
			i.pads = append(i.pads[:n], i.pads[n+1:]...)
			slog.Info("game controller detached", "instance", id)
			return
		}
	}
}

// Close releases all opened controllers.
func (i *Input) Close() {
	for _, p := range i.pads {
		p.close()
	}
	i.pads = nil
}

// Pressed reports whether the key is currently held.
func (i *Input) Pressed(k control.Key) bool {
	code, ok := scancodes[k]
	if !ok || i.keys == nil {
		return false
	}
	return i.keys[code] != 0
}

// JustPressed reports whether the key went down since the previous Update.
func (i *Input) JustPressed(k control.Key) bool {
	code, ok := scancodes[k]
	if !ok || i.keys == nil {
		return false
	}
	return i.keys[code] != 0 && i.prevKeys[code] == 0
}

// MouseDeltas returns the relative mouse motions seen since the previous
// Update, in event order. The slice is reused across frames.
func (i *Input) MouseDeltas() []math.Vec2 {
	return i.deltas
}

// Gamepads returns the attached controllers in connection order.
func (i *Input) Gamepads() []control.Gamepad {
	pads := make([]control.Gamepad, len(i.pads))
	for n, p := range i.pads {
		pads[n] = p
	}
	return pads
}
