package skysphere

import "fmt"

// Camera holds the derived viewport geometry: a pinhole at Origin looking
// down -Z through a rectangle of ViewportHeight x (aspect*ViewportHeight)
// at distance focalLength.
type Camera struct {
	Origin     Point3
	Horizontal Vector3
	Vertical   Vector3
	LowerLeft  Point3
}

func NewCamera(aspectRatio, viewportHeight, focalLength Real) (*Camera, error) {
	if !(aspectRatio > 0) {
		return nil, fmt.Errorf("aspect ratio must be > 0, got %.6g", aspectRatio)
	}
	if !(viewportHeight > 0) || !(focalLength > 0) {
		return nil, fmt.Errorf("viewport height and focal length must be > 0, got %.6g and %.6g", viewportHeight, focalLength)
	}
	viewportWidth := aspectRatio * viewportHeight
	origin := Point3{0, 0, 0}
	horizontal := Vector3{viewportWidth, 0, 0}
	vertical := Vector3{0, viewportHeight, 0}
	lowerLeft := origin.
		Add(horizontal.Mul(-0.5)).
		Add(vertical.Mul(-0.5)).
		Add(Vector3{0, 0, -focalLength})
	return &Camera{
		Origin:     origin,
		Horizontal: horizontal,
		Vertical:   vertical,
		LowerLeft:  lowerLeft,
	}, nil
}

// RayAt casts through the viewport at normalized coordinates u,v in [0,1]
// (u=0 left edge, v=0 bottom edge).
func (c *Camera) RayAt(u, v Real) Ray {
	dir := c.LowerLeft.
		Add(c.Horizontal.Mul(u)).
		Add(c.Vertical.Mul(v)).
		Sub(c.Origin)
	return Ray{Origin: c.Origin, Dir: dir}
}

// ImageHeightFor derives the pixel height for a width at an aspect ratio.
func ImageHeightFor(imageWidth int, aspectRatio Real) int {
	return int(Real(imageWidth) / aspectRatio)
}

// RowV maps row index j (0 = bottom) to the vertical viewport coordinate.
func RowV(j, imageHeight int) Real {
	return Real(j) / Real(imageHeight-1)
}

// ColU maps column index i (0 = left) to the horizontal viewport coordinate.
func ColU(i, imageWidth int) Real {
	return Real(i) / Real(imageWidth-1)
}
