package tracer

import "github.com/fogleman/pt/pt"

// RayKind says why a ray was cast
type RayKind int

const (
	CameraRay RayKind = iota
	ReflectionRay
	RefractionRay
	ShadowRay
)

func (k RayKind) String() string {
	switch k {
	case CameraRay:
		return "camera"
	case ReflectionRay:
		return "reflection"
	case RefractionRay:
		return "refraction"
	case ShadowRay:
		return "shadow"
	}
	return "unknown"
}

// PathSegment is one ray cast while shading a camera ray
type PathSegment struct {
	Kind RayKind
	// Recursion budget left when the ray was cast; -1 for shadow probes
	Remaining int
	Ray       pt.Ray
	// Hit is false when the ray escaped the scene
	Hit     bool
	T       float64
	Point   pt.Vector
	ShapeID uint64
}

type recorder struct {
	segments []PathSegment
}

// record is a no-op on a nil recorder, which is what the normal render path passes around.
func (r *recorder) record(kind RayKind, remaining int, ray pt.Ray, i *Intersection) {
	if r == nil {
		return
	}
	seg := PathSegment{Kind: kind, Remaining: remaining, Ray: ray}
	if i != nil {
		seg.Hit = true
		seg.T = i.T
		seg.Point = ray.Position(i.T)
		seg.ShapeID = i.Object.ID()
	}
	r.segments = append(r.segments, seg)
}

// TracePath shades ray exactly like ColorAt and also returns every ray cast
// on the way, in the order they were cast.
func (w *World) TracePath(ray pt.Ray, remaining int) (pt.Color, []PathSegment) {
	rec := &recorder{}
	c := w.colorAt(ray, remaining, CameraRay, rec)
	return c, rec.segments
}
