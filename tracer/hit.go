package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Hit is everything the shading code needs to know about a visible intersection
type Hit struct {
	Intersection
	// World-space position of the intersection
	Point pt.Vector
	// Unit vector pointing back toward the ray origin
	Eye pt.Vector
	// Unit surface normal, always on the same side of the surface as Eye
	Normal pt.Vector
	// Inside is set when the ray struck the surface from within the shape
	Inside bool
}

// PrepareHit computes the shading inputs for intersection i of ray.
//
// ray.Direction is assumed to be a unit vector.
func PrepareHit(i Intersection, ray pt.Ray) Hit {
	point := ray.Position(i.T)
	eye := ray.Direction.Negate()
	normal := NormalAt(i.Object, point)
	inside := normal.Dot(eye) < 0
	if inside {
		normal = normal.Negate()
	}
	h := Hit{
		Intersection: i,
		Point:        point,
		Eye:          eye,
		Normal:       normal,
		Inside:       inside,
	}
	verifyHit(h)
	return h
}

// PrepareOptionalHit is PrepareHit for a possibly missing intersection. nil in gives nil out.
func PrepareOptionalHit(i *Intersection, ray pt.Ray) *Hit {
	if i == nil {
		return nil
	}
	h := PrepareHit(*i, ray)
	return &h
}

// RefractiveIndices returns the indices of the medium the ray leaves (n1) and
// the medium it enters (n2). Everything outside a shape is treated as vacuum.
func (h Hit) RefractiveIndices() (n1, n2 float64) {
	index := h.Object.Material().RefractiveIndex
	if h.Inside {
		return index, 1
	}
	return 1, index
}

// UnderPoint is Point pushed just below the surface, where refracted rays start.
func (h Hit) UnderPoint() pt.Vector {
	return h.Point.Sub(h.Normal.MulScalar(Epsilon))
}

// Schlick approximates the fraction of light reflected at the hit.
// Returns 1 under total internal reflection.
func Schlick(h Hit) float64 {
	n1, n2 := h.RefractiveIndices()
	cos := h.Eye.Dot(h.Normal)
	if n1 > n2 {
		n := n1 / n2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2t)
	}
	r0 := math.Pow((n1-n2)/(n1+n2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
