package skysphere

// Render defaults; every one of these can be overridden from the JSON config.
const (
	ImageWidth     = 1000
	AspectRatio    = 16.0 / 9.0
	ViewportHeight = 2.0
	FocalLength    = 1.0
	SphereRadius   = 0.5
	OutFile        = "image.ppm"
	// ColorScale maps a [0,1] float channel onto 0..255 by truncation.
	// 255.999 rather than 256 so that an exact 1.0 still lands on 255.
	ColorScale = 255.999
	MaxChannel = 255
)

var (
	// DefaultSphereCenter puts the sphere one focal length in front of the camera.
	DefaultSphereCenter = Point3{0, 0, -1}

	// Sky gradient endpoints.
	White   = RGB{1, 1, 1}
	SkyBlue = RGB{0.5, 0.7, 1.0}
)
