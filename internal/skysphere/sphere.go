package skysphere

import (
	"fmt"
	"math"
)

// Sphere is the single renderable object: a center and a radius.
type Sphere struct {
	Center Point3
	Radius Real
}

func NewSphere(center Point3, radius Real) (*Sphere, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("sphere radius must be > 0, got %.6g", radius)
	}
	return &Sphere{Center: center, Radius: radius}, nil
}

// Hit solves |O + t*D - C|^2 = r^2 for t.
// Returns (t, false) when the discriminant is negative (no intersection)
// and otherwise the nearer quadratic root with ok=true. The root is not
// clamped: a sphere behind the ray origin yields a negative t that callers
// reject with their t > 0 check. The farther root is never considered.
func (s *Sphere) Hit(r Ray) (Real, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Dir.Dot(r.Dir)
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - s.Radius*s.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return -1, false
	}
	return (-b - math.Sqrt(disc)) / (2 * a), true
}
