package shape

// Cube returns a fresh copy of the default point set: a 3x3x3 lattice
// spanning [-1, 1] on every axis.
func Cube() []float32 {
	points := make([]float32, 0, 27*3)
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				points = append(points, float32(x), float32(y), float32(z))
			}
		}
	}
	return points
}
