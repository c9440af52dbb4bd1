package tracer

import (
	"sync/atomic"

	"github.com/fogleman/pt/pt"
)

// Shape is a primitive that can be placed in a World.
//
// LocalIntersect and LocalNormalAt work purely in the shape's own coordinate
// frame; use Intersect and NormalAt to work with world coordinates.
type Shape interface {
	// ID is unique to this shape for the lifetime of the process
	ID() uint64
	Transform() pt.Matrix
	Material() Material
	SetMaterial(Material)
	// CastsShadow is false for shapes that shadow probes should see straight through
	CastsShadow() bool
	LocalIntersect(ray pt.Ray) []Intersection
	LocalNormalAt(point pt.Vector) pt.Vector

	inverse() pt.Matrix
	normalMatrix() pt.Matrix
}

var nextShapeID atomic.Uint64

// shape holds the state common to every primitive
type shape struct {
	id          uint64
	transform   pt.Matrix
	inv         pt.Matrix
	invT        pt.Matrix
	material    Material
	castsShadow bool
}

// ShapeOption configures a shape at construction
type ShapeOption func(*shape)

// WithTransform places the shape in the world. The matrix must be invertible.
func WithTransform(m pt.Matrix) ShapeOption {
	return func(s *shape) {
		s.transform = m
	}
}

func WithMaterial(m Material) ShapeOption {
	return func(s *shape) {
		s.material = m
	}
}

// WithoutShadow makes the shape invisible to shadow probes. Camera rays still see it.
func WithoutShadow() ShapeOption {
	return func(s *shape) {
		s.castsShadow = false
	}
}

func newShape(opts []ShapeOption) shape {
	s := shape{
		id:          nextShapeID.Add(1),
		transform:   pt.Identity(),
		material:    DefaultMaterial(),
		castsShadow: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	s.inv = s.transform.Inverse()
	s.invT = s.inv.Transpose()
	return s
}

func (s *shape) ID() uint64              { return s.id }
func (s *shape) Transform() pt.Matrix    { return s.transform }
func (s *shape) Material() Material      { return s.material }
func (s *shape) SetMaterial(m Material)  { s.material = m }
func (s *shape) CastsShadow() bool       { return s.castsShadow }
func (s *shape) inverse() pt.Matrix      { return s.inv }
func (s *shape) normalMatrix() pt.Matrix { return s.invT }

// Intersect transforms a world-space ray into the shape's object space and intersects it.
//
// Directions are not renormalised, so the returned t values are valid along the original ray.
func Intersect(s Shape, ray pt.Ray) []Intersection {
	return s.LocalIntersect(toObjectSpace(s.inverse(), ray))
}

// NormalAt returns the unit surface normal of s at a world-space point.
func NormalAt(s Shape, point pt.Vector) pt.Vector {
	local := s.inverse().MulPosition(point)
	return s.normalMatrix().MulDirection(s.LocalNormalAt(local)).Normalize()
}
