package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Material describes how a surface responds to light
type Material struct {
	Color     pt.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	// Fraction of incoming light that is mirrored, 0 for matte surfaces
	Reflective float64
	// Fraction of incoming light that passes through, 0 for opaque surfaces
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns a white, opaque, non-reflective Phong material.
func DefaultMaterial() Material {
	return Material{
		Color:           White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

func (m Material) isReflective() bool {
	return !AlmostEqual(m.Reflective, 0)
}

func (m Material) isTransparent() bool {
	return !AlmostEqual(m.Transparency, 0)
}

// PointLight is an infinitely small light source
type PointLight struct {
	Position  pt.Vector
	Intensity pt.Color
}

func NewPointLight(position pt.Vector, intensity pt.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Ambient is the colour of a surface lit by nothing but ambient light.
//
// Used when the scene has no light source at all.
func Ambient(m Material) pt.Color {
	return m.Color.MulScalar(m.Ambient)
}

// Lighting computes the Phong shading of a point on a surface.
//
// eye and normal must be unit vectors. When inShadow is set only the ambient term contributes.
func Lighting(m Material, light PointLight, point, eye, normal pt.Vector, inShadow bool) pt.Color {
	effective := m.Color.Mul(light.Intensity)
	ambient := effective.MulScalar(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Sub(point).Normalize()
	lightDotNormal := lightv.Dot(normal)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}
	diffuse := effective.MulScalar(m.Diffuse * lightDotNormal)

	specular := Black
	reflectv := normal.Reflect(lightv.Negate())
	if reflectDotEye := reflectv.Dot(eye); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.MulScalar(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
