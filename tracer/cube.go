package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every local axis
type Cube struct {
	shape
}

func NewCube(opts ...ShapeOption) *Cube {
	return &Cube{shape: newShape(opts)}
}

// LocalIntersect clips the ray against the three pairs of slabs.
func (c *Cube) LocalIntersect(ray pt.Ray) []Intersection {
	xmin, xmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ymin, ymax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zmin, zmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xmin, math.Max(ymin, zmin))
	tmax := math.Min(xmax, math.Min(ymax, zmax))
	if tmin > tmax {
		return nil
	}
	return Intersections(Intersection{T: tmin, Object: c}, Intersection{T: tmax, Object: c})
}

// checkAxis returns the interval of t for which the ray lies between the two
// faces perpendicular to one axis.
//
// A ray parallel to the faces is either always between them (-Inf, +Inf) or
// never, in which case both bounds share the same infinite sign. A ray lying
// exactly in a face plane counts as between the faces.
func checkAxis(origin, direction float64) (float64, float64) {
	if AlmostEqual(direction, 0) {
		tmin := math.Inf(-1)
		if -1-origin > 0 {
			tmin = math.Inf(1)
		}
		tmax := math.Inf(1)
		if 1-origin < 0 {
			tmax = math.Inf(-1)
		}
		return tmin, tmax
	}

	tmin := (-1 - origin) / direction
	tmax := (1 - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the face whose axis has the largest absolute coordinate.
//
// Ties (edges and corners) go to the first matching axis in x, y, z order. The
// comparison is exact on purpose: maxc is one of the three values.
func (c *Cube) LocalNormalAt(point pt.Vector) pt.Vector {
	ax, ay := math.Abs(point.X), math.Abs(point.Y)
	maxc := math.Max(ax, math.Max(ay, math.Abs(point.Z)))

	switch maxc {
	case ax:
		return V(math.Copysign(1, point.X), 0, 0)
	case ay:
		return V(0, math.Copysign(1, point.Y), 0)
	default:
		return V(0, 0, math.Copysign(1, point.Z))
	}
}
