package tracer

import (
	"github.com/fogleman/pt/pt"
)

// Triangle is a flat triangle with a single face normal
type Triangle struct {
	shape
	// Name of the mesh object this triangle came from, if any
	Name string
	face *pt.Triangle
}

func NewTriangle(p1, p2, p3 pt.Vector, opts ...ShapeOption) *Triangle {
	face := &pt.Triangle{V1: p1, V2: p2, V3: p3, Material: &pt.Material{}}
	face.FixNormals()
	return &Triangle{
		shape: newShape(opts),
		face:  face,
	}
}

// Vertices returns the corners in the order they were given
func (tri *Triangle) Vertices() (pt.Vector, pt.Vector, pt.Vector) {
	return tri.face.V1, tri.face.V2, tri.face.V3
}

// LocalIntersect only reports intersections in front of the ray origin.
func (tri *Triangle) LocalIntersect(ray pt.Ray) []Intersection {
	if h := tri.face.Intersect(ray); h.Ok() {
		return Intersections(Intersection{T: h.T, Object: tri})
	}
	return nil
}

func (tri *Triangle) LocalNormalAt(point pt.Vector) pt.Vector {
	return tri.face.NormalAt(point)
}
