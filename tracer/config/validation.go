package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

func validatePositive(field string, value float64) []ValidationError {
	if value <= 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

func validateNonZeroVector(field string, vec [3]float64) []ValidationError {
	if vec == [3]float64{0, 0, 0} {
		return []ValidationError{{
			Field:   field,
			Message: "must not be the zero vector",
		}}
	}
	return nil
}

func validateColor(field string, c [3]float64) []ValidationError {
	var errors []ValidationError
	for i, name := range []string{"r", "g", "b"} {
		errors = append(errors, validateNonNegative(fmt.Sprintf("%s.%s", field, name), c[i])...)
	}
	return errors
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FormatValidationErrors groups errors by their top-level config section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}

	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *SceneConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Materials.Validate()...)
	if c.Input.Mesh.Path != "" {
		errors = append(errors, c.SurfaceAssignments.Validate(&c.Materials)...)
	}
	if c.Light != nil {
		errors = append(errors, c.Light.Validate()...)
	}
	for i, s := range c.Shapes {
		errors = append(errors, s.Validate(fmt.Sprintf("shapes.%d", i), &c.Materials)...)
	}
	if len(c.Shapes) == 0 && c.Input.Mesh.Path == "" {
		errors = append(errors, ValidationError{
			Field:   "shapes",
			Message: "scene needs at least one shape or an input mesh",
		})
	}
	errors = append(errors, c.Camera.Validate()...)
	errors = append(errors, c.Render.Validate()...)
	return errors
}

func (m *Materials) Validate() []ValidationError {
	var errors []ValidationError

	names := make([]string, 0, len(m.Inline))
	for name := range m.Inline {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		material := m.Inline[name]
		field := fmt.Sprintf("materials.inline.%s", name)
		if material.Color != nil {
			errors = append(errors, validateColor(field+".color", *material.Color)...)
		}
		unit := map[string]*float64{
			"ambient":      material.Ambient,
			"diffuse":      material.Diffuse,
			"specular":     material.Specular,
			"reflective":   material.Reflective,
			"transparency": material.Transparency,
		}
		for _, key := range []string{"ambient", "diffuse", "specular", "reflective", "transparency"} {
			if v := unit[key]; v != nil {
				errors = append(errors, validateInRange(field+"."+key, *v, 0, 1)...)
			}
		}
		if material.Shininess != nil {
			errors = append(errors, validatePositive(field+".shininess", *material.Shininess)...)
		}
		if material.RefractiveIndex != nil {
			errors = append(errors, validatePositive(field+".refractive_index", *material.RefractiveIndex)...)
		}
	}

	return errors
}

func (sa *SurfaceAssignments) Validate(materials *Materials) []ValidationError {
	var errors []ValidationError
	for surface, material := range sa.Inline {
		if !materials.HasMaterial(material) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("surface_assignments.inline.%s", surface),
				Message: fmt.Sprintf("references undefined material '%s'", material),
			})
		}
	}
	return errors
}

func (l *Light) Validate() []ValidationError {
	return validateColor("light.intensity", l.Intensity)
}

var shapeTypes = map[string]bool{
	"sphere":       true,
	"glass_sphere": true,
	"cube":         true,
	"plane":        true,
}

func (s *Shape) Validate(field string, materials *Materials) []ValidationError {
	var errors []ValidationError

	if !shapeTypes[s.Type] {
		errors = append(errors, ValidationError{
			Field:   field + ".type",
			Message: fmt.Sprintf("unknown shape type '%s'", s.Type),
		})
	}
	if s.Material != "" && !materials.HasMaterial(s.Material) {
		errors = append(errors, ValidationError{
			Field:   field + ".material",
			Message: fmt.Sprintf("references undefined material '%s'", s.Material),
		})
	}

	for i, t := range s.Transform {
		stepField := fmt.Sprintf("%s.transform.%d", field, i)
		set := 0
		if t.Translate != nil {
			set++
		}
		if t.Scale != nil {
			set++
			for axis, v := range t.Scale {
				if v == 0 {
					errors = append(errors, ValidationError{
						Field:   fmt.Sprintf("%s.scale.%d", stepField, axis),
						Message: "scale factors must be non-zero",
					})
				}
			}
		}
		if t.Rotate != nil {
			set++
			errors = append(errors, validateNonZeroVector(stepField+".rotate.axis", t.Rotate.Axis)...)
		}
		if set != 1 {
			errors = append(errors, ValidationError{
				Field:   stepField,
				Message: "exactly one of translate, scale or rotate must be set",
			})
		}
	}

	return errors
}

func (c *Camera) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("camera.width", float64(c.Width))...)
	errors = append(errors, validatePositive("camera.height", float64(c.Height))...)
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		errors = append(errors, ValidationError{
			Field:   "camera.fov_degrees",
			Message: "must be between 0 and 180 degrees, exclusive",
		})
	}

	forward := [3]float64{c.To[0] - c.From[0], c.To[1] - c.From[1], c.To[2] - c.From[2]}
	if forward == [3]float64{0, 0, 0} {
		errors = append(errors, ValidationError{
			Field:   "camera.to",
			Message: "must differ from camera.from",
		})
		return errors
	}
	if c.Up == [3]float64{0, 0, 0} {
		errors = append(errors, validateNonZeroVector("camera.up", c.Up)...)
		return errors
	}
	cross := [3]float64{
		forward[1]*c.Up[2] - forward[2]*c.Up[1],
		forward[2]*c.Up[0] - forward[0]*c.Up[2],
		forward[0]*c.Up[1] - forward[1]*c.Up[0],
	}
	if math.Sqrt(cross[0]*cross[0]+cross[1]*cross[1]+cross[2]*cross[2]) < 1e-9 {
		errors = append(errors, ValidationError{
			Field:   "camera.up",
			Message: "must not be parallel to the viewing direction",
		})
	}

	return errors
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validateNonNegative("render.max_depth", float64(r.MaxDepth))...)
	if r.ToneCurve != nil {
		tc := r.ToneCurve
		if len(tc.X) != len(tc.Y) || len(tc.X) < 2 {
			errors = append(errors, ValidationError{
				Field:   "render.tone_curve",
				Message: "x and y must have the same length, with at least 2 points",
			})
		}
		for i := 1; i < len(tc.X); i++ {
			if tc.X[i] <= tc.X[i-1] {
				errors = append(errors, ValidationError{
					Field:   "render.tone_curve.x",
					Message: "must be strictly increasing",
				})
				break
			}
		}
	}

	return errors
}
