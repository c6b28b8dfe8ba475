package input

import (
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveKeepsPixels(t *testing.T) {
	s := NewState(200, 100)

	assert.False(t, s.Apply([]Event{Move{X: 150, Y: 25}, Move{X: 160.5, Y: 30}}))
	assert.Equal(t, mgl32.Vec2{160.5, 30}, s.Raw)
	assert.Equal(t, mgl32.Vec2{}, s.Smooth)
}

func TestPressAndRelease(t *testing.T) {
	s := NewState(10, 10)

	assert.False(t, s.Apply([]Event{Down{}}))
	assert.True(t, s.Pressed)

	assert.False(t, s.Apply([]Event{Up{}}))
	assert.False(t, s.Pressed)
}

func TestModifierDownRequestsReset(t *testing.T) {
	s := NewState(10, 10)

	assert.True(t, s.Apply([]Event{Move{X: 5, Y: 5}, Down{Modifier: true}, Up{}}))
	assert.False(t, s.Pressed)
}

func TestResize(t *testing.T) {
	s := NewState(10, 10)
	s.Apply([]Event{Resize{Width: 640, Height: 480}})
	assert.Equal(t, 640, s.Width)
	assert.Equal(t, 480, s.Height)

	s.Apply([]Event{Resize{Width: 0, Height: 0}})
	assert.Equal(t, 640, s.Width, "minimised surfaces keep the last size")
}

func TestQueueDrain(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Push(Up{})
		}()
	}
	wg.Wait()

	events := q.Drain()
	require.Len(t, events, 8)
	assert.Empty(t, q.Drain())
}
