package palette

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesHex(t *testing.T) {
	p, err := New([]string{"#ff0000", "#00ff0080"})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, [4]float32{1, 0, 0, DefaultAlpha}, p.colors[0])
	assert.Equal(t, float32(1), p.colors[1][1])
	assert.InDelta(t, 128.0/255, p.colors[1][3], 1e-6)
}

func TestDefaultTable(t *testing.T) {
	p, err := New(Default)
	require.NoError(t, err)
	require.Equal(t, 11, p.Len())

	assert.InDelta(t, 174.0/255, p.colors[0][0], 1e-6)
	assert.InDelta(t, 0.72, p.colors[0][3], 1e-6)
	assert.InDelta(t, 0.12, p.colors[5][3], 0.005)
	assert.InDelta(t, 0.42, p.colors[9][3], 0.005)
	assert.Equal(t, float32(1), p.colors[10][2])
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]string{"#ff0000", "tomato"})
	assert.ErrorContains(t, err, "tomato")

	_, err = New([]string{"#ff0000zz"})
	assert.ErrorContains(t, err, "#ff0000zz")
}

func TestPickStaysInTable(t *testing.T) {
	p, err := New(Default)
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(1, 2))
	seen := map[[4]float32]bool{}
	for range 1000 {
		c := p.Pick(r)
		assert.Contains(t, p.colors, c)
		seen[c] = true
	}
	// the table repeats two entries
	assert.Len(t, seen, 9)
}
