package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultAlpha applies to entries written as plain #rrggbb.
const DefaultAlpha = 0.72

// Default is a cool blue set with a few translucent blacks and whites.
// Entries are #rrggbb or #rrggbbaa.
var Default = []string{
	"#aed9e4", "#0092d6", "#00b3d6", "#6a9199", "#2aaafa",
	"#0000001f", "#0000006b", "#00000085", "#00000085",
	"#ffffff6b", "#ffffff6b",
}

// Palette is a fixed table of RGBA colours sampled uniformly at random.
type Palette struct {
	colors [][4]float32
}

func New(hexes []string) (*Palette, error) {
	if len(hexes) == 0 {
		return nil, errors.New("palette is empty")
	}

	p := &Palette{colors: make([][4]float32, 0, len(hexes))}
	for _, h := range hexes {
		c, err := Parse(h)
		if err != nil {
			return nil, err
		}
		p.colors = append(p.colors, c)
	}
	return p, nil
}

// Parse reads #rrggbb or #rrggbbaa.
func Parse(h string) ([4]float32, error) {
	alpha := float32(DefaultAlpha)
	if len(h) == 9 {
		a, err := strconv.ParseUint(h[7:], 16, 8)
		if err != nil {
			return [4]float32{}, fmt.Errorf("palette colour %q: %w", h, err)
		}
		alpha = float32(a) / 255
		h = h[:7]
	}
	c, err := colorful.Hex(h)
	if err != nil {
		return [4]float32{}, fmt.Errorf("palette colour %q: %w", h, err)
	}
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), alpha}, nil
}

func (p *Palette) Len() int {
	return len(p.colors)
}

func (p *Palette) Pick(r *rand.Rand) [4]float32 {
	return p.colors[r.IntN(len(p.colors))]
}
