package skysphere

// Scene is the immutable shading input: the one sphere plus the sky
// gradient endpoints.
type Scene struct {
	Sphere  *Sphere
	White   RGB
	SkyBlue RGB
}

func NewScene(sphere *Sphere) *Scene {
	return &Scene{Sphere: sphere, White: White, SkyBlue: SkyBlue}
}

// RayColor shades a single ray. A sphere hit in front of the origin maps
// the surface normal from [-1,1] to [0,1] per channel; everything else
// falls through to the sky gradient driven by the ray's vertical direction.
func (sc *Scene) RayColor(r Ray) RGB {
	if t, ok := sc.Sphere.Hit(r); ok && t > 0 {
		n := r.At(t).Sub(sc.Sphere.Center).Norm()
		return RGB{0.5 * (n.X + 1), 0.5 * (n.Y + 1), 0.5 * (n.Z + 1)}
	}
	unit := r.Dir.Norm()
	s := 0.5*unit.Y + 0.5
	return sc.White.Lerp(sc.SkyBlue, s)
}
