package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Sphere is a unit sphere centred on its local origin
type Sphere struct {
	shape
}

func NewSphere(opts ...ShapeOption) *Sphere {
	return &Sphere{shape: newShape(opts)}
}

// NewGlassSphere returns a fully transparent sphere with the refractive index of glass.
func NewGlassSphere(opts ...ShapeOption) *Sphere {
	s := NewSphere(opts...)
	m := s.Material()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// LocalIntersect returns either no intersections or exactly two, nearest first.
func (s *Sphere) LocalIntersect(ray pt.Ray) []Intersection {
	sphereToRay := ray.Origin
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return Intersections(Intersection{T: t1, Object: s}, Intersection{T: t2, Object: s})
}

func (s *Sphere) LocalNormalAt(point pt.Vector) pt.Vector {
	return point
}
