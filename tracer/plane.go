package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Plane is the infinite xz plane through the local origin
type Plane struct {
	shape
}

func NewPlane(opts ...ShapeOption) *Plane {
	return &Plane{shape: newShape(opts)}
}

// LocalIntersect returns a single intersection unless the ray runs parallel to (or inside) the plane.
func (p *Plane) LocalIntersect(ray pt.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections(Intersection{T: t, Object: p})
}

func (p *Plane) LocalNormalAt(pt.Vector) pt.Vector {
	return V(0, 1, 0)
}
