package rend

import "github.com/go-gl/glfw/v3.3/glfw"

type (
	Key         = glfw.Key
	Action      = glfw.Action
	ModifierKey = glfw.ModifierKey
	MouseButton = glfw.MouseButton
)

const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat

	KeyEscape = glfw.KeyEscape
	KeySpace  = glfw.KeySpace
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyQ      = glfw.KeyQ
	KeyE      = glfw.KeyE

	MouseButtonLeft  = glfw.MouseButtonLeft
	MouseButtonRight = glfw.MouseButtonRight
)

// Event is one of CloseEvent, ResizeEvent, KeyEvent, MouseButtonEvent,
// CursorEvent or ScrollEvent.
type Event interface{ isEvent() }

// CloseEvent is sent when the user asks to close the window.
type CloseEvent struct{}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct{ Width, Height int }

type KeyEvent struct {
	Key    Key
	Action Action
	Mods   ModifierKey
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   ModifierKey
}

// CursorEvent is the cursor position relative to the top-left corner.
type CursorEvent struct{ X, Y float64 }

type ScrollEvent struct{ DX, DY float64 }

func (CloseEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}
func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (CursorEvent) isEvent()      {}
func (ScrollEvent) isEvent()      {}

// eventQueue collects events from window callbacks until they are handled.
type eventQueue struct {
	pending []Event
}

func (queue *eventQueue) push(ev Event) {
	queue.pending = append(queue.pending, ev)
}

// drain calls fn for each queued event in arrival order. Events queued by
// fn are delivered in the same call.
func (queue *eventQueue) drain(fn func(Event)) {
	for i := 0; i < len(queue.pending); i++ {
		if fn != nil {
			fn(queue.pending[i])
		}
	}
	for i := range queue.pending {
		queue.pending[i] = nil
	}
	queue.pending = queue.pending[:0]
}

func (queue *eventQueue) len() int { return len(queue.pending) }
