package shaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotsFragmentSoftEdge(t *testing.T) {
	assert.Contains(t, DotsFragment, "length(gl_PointCoord - vec2(0.5))")
	assert.Contains(t, DotsFragment, "1.0 - smoothstep(0.4, 0.5, dist)")
	assert.Contains(t, DotsFragment, "vColor.a * alpha")
	assert.NotContains(t, DotsFragment, "discard")
}

func TestPlaneFragmentPassThrough(t *testing.T) {
	assert.Contains(t, PlaneFragment, "fragColor = vColor;")
	assert.NotContains(t, PlaneFragment, "smoothstep")
}
