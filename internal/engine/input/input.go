// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Frame is the input gathered during one Update.
type Frame struct {
	Quit            bool
	Resized         bool
	Width, Height   int
	ToggleWireframe bool
	Screenshot      bool

	// Relative mouse motion in pixels while the look button is held
	MouseDX, MouseDY float32
}

// Input tracks held keys and per-frame events.
type Input struct {
	held    map[sdl.Scancode]bool
	looking bool
	frame   Frame
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held: make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events and returns what happened this frame.
func (i *Input) Update() Frame {
	i.frame = Frame{}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	return i.frame
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.frame.Quit = true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.frame.Resized = true
			i.frame.Width = int(e.Data1)
			i.frame.Height = int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		code := e.Keysym.Scancode
		if e.Type == sdl.KEYDOWN {
			if e.Repeat == 0 {
				switch code {
				case sdl.SCANCODE_F:
					i.frame.ToggleWireframe = true
				case sdl.SCANCODE_F12:
					i.frame.Screenshot = true
				case sdl.SCANCODE_ESCAPE:
					i.frame.Quit = true
				}
			}
			i.held[code] = true
		} else if e.Type == sdl.KEYUP {
			delete(i.held, code)
		}

	case *sdl.MouseButtonEvent:
		if e.Button == sdl.BUTTON_RIGHT {
			i.looking = e.Type == sdl.MOUSEBUTTONDOWN
		}

	case *sdl.MouseMotionEvent:
		if i.looking {
			i.frame.MouseDX += float32(e.XRel)
			i.frame.MouseDY += float32(e.YRel)
		}
	}
}

// IsKeyDown reports whether a key is currently held.
func (i *Input) IsKeyDown(code sdl.Scancode) bool {
	return i.held[code]
}

// Movement returns forward, right and up axes in [-1, 1] from WASD and QE.
func (i *Input) Movement() (forward, right, up float32) {
	axis := func(pos, neg sdl.Scancode) float32 {
		var v float32
		if i.held[pos] {
			v++
		}
		if i.held[neg] {
			v--
		}
		return v
	}
	return axis(sdl.SCANCODE_W, sdl.SCANCODE_S),
		axis(sdl.SCANCODE_D, sdl.SCANCODE_A),
		axis(sdl.SCANCODE_E, sdl.SCANCODE_Q)
}
