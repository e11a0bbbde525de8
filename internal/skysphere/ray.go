package skysphere

// Ray is a half-line: Origin + t*Dir. Dir need not be unit length.
type Ray struct {
	Origin Point3
	Dir    Vector3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Real) Point3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
