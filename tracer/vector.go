package tracer

import (
	"github.com/fogleman/pt/pt"
	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the tolerance used for every "close enough to zero" decision in the tracer.
const Epsilon = 1e-5

// V is a shorthand constructor for pt.Vector
func V(X, Y, Z float64) pt.Vector {
	return pt.Vector{X: X, Y: Y, Z: Z}
}

// C is a shorthand constructor for pt.Color
func C(R, G, B float64) pt.Color {
	return pt.Color{R: R, G: G, B: B}
}

var (
	Black = C(0, 0, 0)
	White = C(1, 1, 1)
)

// AlmostEqual reports whether a and b differ by less than Epsilon.
func AlmostEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// Transform direction v by m without normalising it.
//
// pt.Matrix.MulDirection normalises its result, which would rescale t values
// along object-space rays, so the translation is cancelled out by hand instead.
func mulDirection(m pt.Matrix, v pt.Vector) pt.Vector {
	return m.MulPosition(v).Sub(m.MulPosition(pt.Vector{}))
}

// toObjectSpace maps a world ray into the space described by inverse.
func toObjectSpace(inverse pt.Matrix, r pt.Ray) pt.Ray {
	return pt.Ray{
		Origin:    inverse.MulPosition(r.Origin),
		Direction: mulDirection(inverse, r.Direction),
	}
}
