package tracer

import (
	"errors"
	"math"
	"slices"

	"github.com/fogleman/pt/pt"
)

// MaxRecursions bounds how many secondary rays may be spawned from one camera ray.
const MaxRecursions = 5

var ErrDuplicateShape = errors.New("shape is already in the world")

// World is a scene: a set of shapes lit by at most one point light.
//
// A World must not be mutated while a render is in progress. Concurrent
// ColorAt calls on an unchanging World are safe.
type World struct {
	light  *PointLight
	shapes []Shape
}

func NewWorld() *World {
	return &World{}
}

// DefaultWorld returns the reference scene: two concentric spheres lit from the upper left.
func DefaultWorld() *World {
	w := NewWorld()
	w.SetLight(NewPointLight(V(-10, 10, -10), White))

	m := DefaultMaterial()
	m.Color = C(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	w.shapes = append(w.shapes,
		NewSphere(WithMaterial(m)),
		NewSphere(WithTransform(pt.Scale(V(0.5, 0.5, 0.5)))),
	)
	return w
}

// Light returns the light source, if there is one.
func (w *World) Light() (PointLight, bool) {
	if w.light == nil {
		return PointLight{}, false
	}
	return *w.light, true
}

func (w *World) SetLight(l PointLight) {
	Logger().Debug("set light", "position", l.Position, "intensity", l.Intensity)
	w.light = &l
}

// ClearLight removes the light source. Shading falls back to ambient light only.
func (w *World) ClearLight() {
	Logger().Debug("cleared light")
	w.light = nil
}

// Shapes returns a copy of the shapes in the order they were added.
func (w *World) Shapes() []Shape {
	return slices.Clone(w.shapes)
}

// AddShape appends s to the scene. Adding the same shape twice returns ErrDuplicateShape.
func (w *World) AddShape(s Shape) error {
	if w.Contains(s) {
		return ErrDuplicateShape
	}
	Logger().Debug("added shape", "id", s.ID())
	w.shapes = append(w.shapes, s)
	return nil
}

// RemoveShape removes s, keeping the order of the remaining shapes. It reports whether s was present.
func (w *World) RemoveShape(s Shape) bool {
	for i, existing := range w.shapes {
		if existing == s {
			w.shapes = slices.Delete(slices.Clone(w.shapes), i, i+1)
			Logger().Debug("removed shape", "id", s.ID())
			return true
		}
	}
	return false
}

// Contains reports whether this exact shape (not an equal copy) is in the world.
func (w *World) Contains(s Shape) bool {
	for _, existing := range w.shapes {
		if existing == s {
			return true
		}
	}
	return false
}

// Equal reports whether both worlds have the same light and hold the same shapes, in any order.
func (w *World) Equal(other *World) bool {
	if (w.light == nil) != (other.light == nil) {
		return false
	}
	if w.light != nil && *w.light != *other.light {
		return false
	}
	if len(w.shapes) != len(other.shapes) {
		return false
	}
	for _, s := range w.shapes {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

// Intersect intersects ray with every shape and returns the intersections sorted by t.
//
// When shadowing is set, shapes that do not cast shadows are skipped.
func (w *World) Intersect(ray pt.Ray, shadowing bool) []Intersection {
	var xs []Intersection
	for _, s := range w.shapes {
		if shadowing && !s.CastsShadow() {
			continue
		}
		xs = append(xs, Intersect(s, ray)...)
	}
	sortIntersections(xs)
	return xs
}

// IsShadowed reports whether something lies between point and the light.
// Without a light nothing is ever in shadow.
func (w *World) IsShadowed(point pt.Vector) bool {
	return w.isShadowed(point, nil)
}

func (w *World) isShadowed(point pt.Vector, rec *recorder) bool {
	light, ok := w.Light()
	if !ok {
		return false
	}
	v := light.Position.Sub(point)
	distance := v.Length()
	ray := pt.Ray{Origin: point, Direction: v.Normalize()}

	hit := FindHit(w.Intersect(ray, true))
	rec.record(ShadowRay, -1, ray, hit)
	return hit != nil && hit.T < distance
}

// ShadeHit returns the colour at a prepared hit, following at most remaining
// secondary rays. A nil hit yields (Black, false).
func (w *World) ShadeHit(h *Hit, remaining int) (pt.Color, bool) {
	if h == nil {
		return Black, false
	}
	return w.shadeHit(*h, remaining, nil), true
}

func (w *World) shadeHit(h Hit, remaining int, rec *recorder) pt.Color {
	m := h.Object.Material()

	var surface pt.Color
	if light, ok := w.Light(); ok {
		surface = Lighting(m, light, h.Point, h.Eye, h.Normal, w.isShadowed(h.Point, rec))
	} else {
		surface = Ambient(m)
	}

	if !m.isReflective() && !m.isTransparent() {
		return surface
	}

	reflected := w.reflectedColor(h, remaining, rec)
	refracted := w.refractedColor(h, remaining, rec)

	if m.isReflective() && m.isTransparent() {
		reflectance := Schlick(h)
		return surface.
			Add(reflected.MulScalar(reflectance)).
			Add(refracted.MulScalar(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor is the light arriving along the mirror direction at h, scaled by the material's reflectivity.
func (w *World) ReflectedColor(h Hit, remaining int) pt.Color {
	return w.reflectedColor(h, remaining, nil)
}

func (w *World) reflectedColor(h Hit, remaining int, rec *recorder) pt.Color {
	m := h.Object.Material()
	if remaining <= 0 || !m.isReflective() {
		return Black
	}
	ray := pt.Ray{
		Origin:    h.Point,
		Direction: h.Normal.Reflect(h.Eye.Negate()),
	}
	return w.colorAt(ray, remaining-1, ReflectionRay, rec).MulScalar(m.Reflective)
}

// RefractedColor is the light arriving through the surface at h, scaled by the material's transparency.
// Total internal reflection contributes nothing.
func (w *World) RefractedColor(h Hit, remaining int) pt.Color {
	return w.refractedColor(h, remaining, nil)
}

func (w *World) refractedColor(h Hit, remaining int, rec *recorder) pt.Color {
	m := h.Object.Material()
	if remaining <= 0 || !m.isTransparent() {
		return Black
	}

	n1, n2 := h.RefractiveIndices()
	ratio := n1 / n2
	cosI := h.Eye.Dot(h.Normal)
	sin2t := ratio * ratio * (1 - cosI*cosI)
	if sin2t > 1 {
		return Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := h.Normal.MulScalar(ratio*cosI - cosT).Sub(h.Eye.MulScalar(ratio))
	ray := pt.Ray{Origin: h.UnderPoint(), Direction: direction}
	return w.colorAt(ray, remaining-1, RefractionRay, rec).MulScalar(m.Transparency)
}

// ColorAt traces ray through the world. Rays that hit nothing are black.
func (w *World) ColorAt(ray pt.Ray, remaining int) pt.Color {
	return w.colorAt(ray, remaining, CameraRay, nil)
}

func (w *World) colorAt(ray pt.Ray, remaining int, kind RayKind, rec *recorder) pt.Color {
	i := FindHit(w.Intersect(ray, false))
	rec.record(kind, remaining, ray, i)
	h := PrepareOptionalHit(i, ray)
	if h == nil {
		return Black
	}
	return w.shadeHit(*h, remaining, rec)
}
