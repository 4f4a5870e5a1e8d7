package ri

// Color is an RGB triple. Scene color spaces with more samples are declared
// via ColorSamples; the interface itself always carries three components.
type Color [3]float64

// Point is a position or direction in 3-space.
type Point [3]float64

// Matrix is a 4x4 transformation in row-major order, 16 elements flat,
// exactly as it appears in a RIB stream.
type Matrix [16]float64

// Basis is a 4x4 spline basis matrix, stored like Matrix.
type Basis [16]float64

// Bound is an axis-aligned bounding box: xmin, xmax, ymin, ymax, zmin, zmax.
type Bound [6]float64

// Identity4 is the identity transformation.
var Identity4 = Matrix{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Standard spline bases, indexable by the names used in RIB streams.
var (
	BezierBasis = Basis{
		-1, 3, -3, 1,
		3, -6, 3, 0,
		-3, 3, 0, 0,
		1, 0, 0, 0,
	}
	BSplineBasis = Basis{
		-1.0 / 6, 3.0 / 6, -3.0 / 6, 1.0 / 6,
		3.0 / 6, -6.0 / 6, 3.0 / 6, 0,
		-3.0 / 6, 0, 3.0 / 6, 0,
		1.0 / 6, 4.0 / 6, 1.0 / 6, 0,
	}
	CatmullRomBasis = Basis{
		-0.5, 1.5, -1.5, 0.5,
		1, -2.5, 2, -0.5,
		-0.5, 0, 0.5, 0,
		0, 1, 0, 0,
	}
	HermiteBasis = Basis{
		2, 1, -2, 1,
		-3, -2, 3, -1,
		0, 1, 0, 0,
		1, 0, 0, 0,
	}
	LinearBasis = Basis{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, -1, 1, 0,
		0, 1, 0, 0,
	}
)

// BasisForName returns the standard basis for a RIB basis name.
// The second result is false for unknown names.
func BasisForName(name string) (Basis, bool) {
	switch name {
	case "bezier":
		return BezierBasis, true
	case "b-spline":
		return BSplineBasis, true
	case "catmull-rom":
		return CatmullRomBasis, true
	case "hermite":
		return HermiteBasis, true
	case "linear":
		return LinearBasis, true
	default:
		return Basis{}, false
	}
}
