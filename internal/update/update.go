package update

import (
	"github.com/ThatOtherAndrew/Dotfield/internal/input"
	"github.com/go-gl/mathgl/mgl32"
)

// PointerDivisor controls how quickly the smoothed pointer catches up with
// the raw pointer position. Larger is lazier.
const PointerDivisor = 22

// Relax moves x a fixed fraction of the way toward target. It is a one-pole
// low-pass filter stepped once per frame, so its feel depends on frame rate.
func Relax(x, target, divisor float32) float32 {
	return x + (target-x)/divisor
}

func Pointer(state *input.State) {
	state.Smooth = mgl32.Vec2{
		Relax(state.Smooth.X(), state.Raw.X(), PointerDivisor),
		Relax(state.Smooth.Y(), state.Raw.Y(), PointerDivisor),
	}
}
