package config

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"

	"github.com/jdginn/go-raytracer/tracer"
)

func vec(a [3]float64) pt.Vector {
	return tracer.V(a[0], a[1], a[2])
}

func color(a [3]float64) pt.Color {
	return tracer.C(a[0], a[1], a[2])
}

// Create converts the config material into a tracer material, starting from tracer.DefaultMaterial.
func (m Material) Create() tracer.Material {
	out := tracer.DefaultMaterial()
	if m.Color != nil {
		out.Color = color(*m.Color)
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.Ambient, m.Ambient)
	set(&out.Diffuse, m.Diffuse)
	set(&out.Specular, m.Specular)
	set(&out.Shininess, m.Shininess)
	set(&out.Reflective, m.Reflective)
	set(&out.Transparency, m.Transparency)
	set(&out.RefractiveIndex, m.RefractiveIndex)
	return out
}

// MaterialMap returns every named material, converted
func (c *SceneConfig) MaterialMap() map[string]tracer.Material {
	out := make(map[string]tracer.Material, len(c.Materials.Inline))
	for name, m := range c.Materials.Inline {
		out[name] = m.Create()
	}
	return out
}

// SurfaceAssignmentMap maps mesh object names to their materials
func (c *SceneConfig) SurfaceAssignmentMap() map[string]tracer.Material {
	materials := c.MaterialMap()
	out := make(map[string]tracer.Material, len(c.SurfaceAssignments.Inline))
	for surface, name := range c.SurfaceAssignments.Inline {
		if m, ok := materials[name]; ok {
			out[surface] = m
		}
	}
	return out
}

// Matrix returns the matrix for a single transform step
func (t Transform) Matrix() pt.Matrix {
	switch {
	case t.Translate != nil:
		return pt.Translate(vec(*t.Translate))
	case t.Scale != nil:
		return pt.Scale(vec(*t.Scale))
	case t.Rotate != nil:
		return pt.Rotate(vec(t.Rotate.Axis).Normalize(), t.Rotate.Degrees*math.Pi/180)
	}
	return pt.Identity()
}

// Matrix composes the transform steps so the first listed step is applied first
func (s Shape) Matrix() pt.Matrix {
	m := pt.Identity()
	for _, step := range s.Transform {
		m = step.Matrix().Mul(m)
	}
	return m
}

// Create builds the tracer shape described by s
func (s Shape) Create(materials map[string]tracer.Material) (tracer.Shape, error) {
	opts := []tracer.ShapeOption{tracer.WithTransform(s.Matrix())}
	if s.Material != "" {
		m, ok := materials[s.Material]
		if !ok {
			return nil, fmt.Errorf("undefined material '%s'", s.Material)
		}
		opts = append(opts, tracer.WithMaterial(m))
	}
	if s.CastsShadow != nil && !*s.CastsShadow {
		opts = append(opts, tracer.WithoutShadow())
	}

	switch s.Type {
	case "sphere":
		return tracer.NewSphere(opts...), nil
	case "glass_sphere":
		if s.Material != "" {
			return tracer.NewSphere(opts...), nil
		}
		return tracer.NewGlassSphere(opts...), nil
	case "cube":
		return tracer.NewCube(opts...), nil
	case "plane":
		return tracer.NewPlane(opts...), nil
	}
	return nil, fmt.Errorf("unknown shape type '%s'", s.Type)
}

// BuildWorld builds the light, the primitive shapes and the optional mesh into a World
func (c *SceneConfig) BuildWorld() (*tracer.World, error) {
	w := tracer.NewWorld()
	if c.Light != nil {
		w.SetLight(tracer.NewPointLight(vec(c.Light.Position), color(c.Light.Intensity)))
	}

	materials := c.MaterialMap()
	for i, s := range c.Shapes {
		shape, err := s.Create(materials)
		if err != nil {
			return nil, fmt.Errorf("creating shape %d: %w", i, err)
		}
		if err := w.AddShape(shape); err != nil {
			return nil, fmt.Errorf("adding shape %d: %w", i, err)
		}
	}

	if c.Input.Mesh.Path != "" {
		triangles, err := tracer.LoadMesh(c.Input.Mesh.Path, c.SurfaceAssignmentMap())
		if err != nil {
			return nil, fmt.Errorf("loading mesh: %w", err)
		}
		for _, tri := range triangles {
			if err := w.AddShape(tri); err != nil {
				return nil, fmt.Errorf("adding mesh triangle: %w", err)
			}
		}
	}

	return w, nil
}

// Create builds the camera described by the config
func (c Camera) Create() tracer.Camera {
	return tracer.NewCamera(c.Width, c.Height, c.FOVDegrees*math.Pi/180).
		LookAt(vec(c.From), vec(c.To), vec(c.Up))
}

// Options converts the render settings, building the tone curve if one is configured
func (r Render) Options() (tracer.RenderOptions, error) {
	opts := tracer.RenderOptions{MaxDepth: r.MaxDepth}
	if r.ToneCurve != nil {
		tc, err := tracer.NewToneCurve(r.ToneCurve.X, r.ToneCurve.Y)
		if err != nil {
			return tracer.RenderOptions{}, err
		}
		opts.ToneCurve = tc
	}
	return opts, nil
}
