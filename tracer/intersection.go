package tracer

import "sort"

// Intersection is a point where a ray meets a shape.
//
// T is only meaningful together with the ray it was computed for.
type Intersection struct {
	// Signed distance along the ray. Negative values lie behind the ray origin.
	T      float64
	Object Shape
}

// Intersections collects intersections into a batch
func Intersections(xs ...Intersection) []Intersection {
	return xs
}

// FindHit returns the visible intersection in xs: the one with the smallest t
// greater than Epsilon. This is stricter than t > 0: intersections with
// 0 < t <= Epsilon are treated as the surface the ray was launched from and
// ignored, so secondary rays starting exactly on a surface do not strike it again.
//
// Returns nil when nothing is visible.
func FindHit(xs []Intersection) *Intersection {
	var best *Intersection
	for i := range xs {
		if xs[i].T <= Epsilon {
			continue
		}
		if best == nil || xs[i].T < best.T {
			best = &xs[i]
		}
	}
	if best == nil {
		return nil
	}
	hit := *best
	return &hit
}

func sortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}
