package skysphere

// RGB stores color components; each should be in [0,1].
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(d RGB) RGB    { return RGB{c.R + d.R, c.G + d.G, c.B + d.B} }
func (c RGB) Scale(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// Lerp blends c into d: s=0 gives c, s=1 gives d.
func (c RGB) Lerp(d RGB, s Real) RGB {
	return c.Scale(1 - s).Add(d.Scale(s))
}
