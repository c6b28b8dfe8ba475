package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the pointer and surface state read by the frame task. It is only
// ever mutated by Apply, between frames.
type State struct {
	Raw     mgl32.Vec2 // last pointer position in surface pixels
	Smooth  mgl32.Vec2
	Pressed bool
	Width   int
	Height  int
}

func NewState(width, height int) *State {
	return &State{Width: width, Height: height}
}

type Event interface {
	apply(s *State) (reset bool)
}

// Move is a pointer position in surface pixels.
type Move struct {
	X, Y float64
}

// Down is a pointer press. With Modifier set it requests a reset of every
// shape instead of pressing.
type Down struct {
	Modifier bool
}

type Up struct{}

type Resize struct {
	Width, Height int
}

func (e Move) apply(s *State) bool {
	s.Raw = mgl32.Vec2{float32(e.X), float32(e.Y)}
	return false
}

func (e Down) apply(s *State) bool {
	if e.Modifier {
		return true
	}
	s.Pressed = true
	return false
}

func (Up) apply(s *State) bool {
	s.Pressed = false
	return false
}

func (e Resize) apply(s *State) bool {
	if e.Width > 0 && e.Height > 0 {
		s.Width = e.Width
		s.Height = e.Height
	}
	return false
}

// Apply folds events into the state in order and reports whether any of
// them asked for a reset.
func (s *State) Apply(events []Event) (reset bool) {
	for _, e := range events {
		if e.apply(s) {
			reset = true
		}
	}
	return reset
}

// Queue buffers events raised by window callbacks until the frame task
// drains them.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}
