package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdginn/go-raytracer/tracer"
)

const sceneYAML = `
materials:
  inline:
    floor:
      color: [0.9, 0.9, 0.9]
      reflective: 0.3
    glass:
      transparency: 1
      refractive_index: 1.5
  from_file: materials.json
light:
  position: [-10, 10, -10]
  intensity: [1, 1, 1]
shapes:
  - type: plane
    material: floor
    transform:
      - translate: [0, -1, 0]
  - type: sphere
    material: red
  - type: glass_sphere
    casts_shadow: false
    transform:
      - scale: [0.5, 0.5, 0.5]
      - translate: [1, 0, 0]
camera:
  width: 40
  height: 20
  fov_degrees: 60
  from: [0, 1.5, -5]
  to: [0, 0, 0]
  up: [0, 1, 0]
render:
  max_depth: 3
  tone_curve:
    x: [0, 1, 4]
    y: [0, 0.8, 1]
`

const materialsJSON = `{
  "red": {"color": [1, 0, 0], "diffuse": 0.7},
  "floor": {"color": [0, 0, 0]}
}`

func writeScene(t *testing.T, scene string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "materials.json"), []byte(materialsJSON), 0644))
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scene), 0644))
	return path
}

func loadScene(t *testing.T) *SceneConfig {
	t.Helper()
	c, err := LoadFromFile(writeScene(t, sceneYAML), LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T {
	return &v
}

func TestLoadFromFile(t *testing.T) {
	assert := assert.New(t)
	c := loadScene(t)

	require.NotNil(t, c.Light)
	assert.Equal([3]float64{-10, 10, -10}, c.Light.Position)
	require.Len(t, c.Shapes, 3)
	assert.Equal("plane", c.Shapes[0].Type)
	assert.Equal(40, c.Camera.Width)
	assert.Equal(3, c.Render.MaxDepth)

	// merged from materials.json; inline wins over the file
	assert.True(c.Materials.HasMaterial("red"))
	assert.Equal([3]float64{0.9, 0.9, 0.9}, *c.Materials.Inline["floor"].Color)
	assert.True(filepath.IsAbs(c.Materials.FromFile))
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"), LoadOptions{})
	assert.Error(t, err)

	_, err = LoadFromFile(writeScene(t, "shapes: [unclosed"), LoadOptions{})
	assert.Error(t, err)

	// merging fails when the referenced file is missing
	scene := strings.Replace(sceneYAML, "materials.json", "nope.json", 1)
	_, err = LoadFromFile(writeScene(t, scene), LoadOptions{ResolvePaths: true, MergeFiles: true})
	assert.ErrorContains(t, err, "merging")

	// without merging, "red" is undefined
	_, err = LoadFromFile(writeScene(t, sceneYAML), LoadOptions{ValidateImmediately: true})
	assert.ErrorContains(t, err, "undefined material 'red'")
}

func TestResolvePaths(t *testing.T) {
	assert := assert.New(t)
	c := &SceneConfig{}
	c.Input.Mesh.Path = "room.3mf"
	c.Materials.FromFile = "/abs/materials.json"
	c.SurfaceAssignments.FromFile = "sub/surfaces.json"

	c.ResolvePaths(NewPathResolver("/scenes"))
	assert.Equal("/scenes/room.3mf", c.Input.Mesh.Path)
	assert.Equal("/abs/materials.json", c.Materials.FromFile)
	assert.Equal("/scenes/sub/surfaces.json", c.SurfaceAssignments.FromFile)
}

func stubGitCommit(t *testing.T, commit string, err error) {
	t.Helper()
	saved := currentGitCommit
	currentGitCommit = func() (string, error) { return commit, err }
	t.Cleanup(func() { currentGitCommit = saved })
}

func TestSaveToFile(t *testing.T) {
	assert := assert.New(t)
	stubGitCommit(t, "0123abcd", nil)

	c := loadScene(t)
	path := filepath.Join(t.TempDir(), "resolved.yaml")
	require.NoError(t, SaveToFile(c, path))

	saved, err := LoadFromFile(path, LoadOptions{ValidateImmediately: true})
	require.NoError(t, err)
	assert.Equal("0123abcd", saved.Metadata.GitCommit)
	assert.Regexp(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, saved.Metadata.Timestamp)

	// merged materials are written inline, so the saved scene stands alone
	assert.True(saved.Materials.HasMaterial("red"))
	assert.Equal(c.Shapes, saved.Shapes)
	assert.Equal(c.Camera, saved.Camera)
}

func TestSaveToFileWithoutGit(t *testing.T) {
	stubGitCommit(t, "", errors.New("not a git repository"))

	path := filepath.Join(t.TempDir(), "resolved.yaml")
	err := SaveToFile(validScene(), path)
	assert.ErrorContains(t, err, "metadata")
	assert.NoFileExists(t, path)
}

func TestMergeSurfaceAssignments(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "surfaces.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"wall": "red", "ceiling": "white"}`), 0644))

	sa := SurfaceAssignments{Inline: map[string]string{"wall": "blue"}, FromFile: path}
	require.NoError(t, sa.MergeSurfaceAssignments())
	assert.Equal(map[string]string{"wall": "blue", "ceiling": "white"}, sa.Inline)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`not json`), 0644))
	sa = SurfaceAssignments{FromFile: bad}
	assert.Error(sa.MergeSurfaceAssignments())
}

func validScene() *SceneConfig {
	return &SceneConfig{
		Materials: Materials{Inline: map[string]Material{"red": {Color: &[3]float64{1, 0, 0}}}},
		Light:     &Light{Position: [3]float64{0, 10, 0}, Intensity: [3]float64{1, 1, 1}},
		Shapes:    []Shape{{Type: "sphere", Material: "red"}},
		Camera: Camera{
			Width: 10, Height: 10, FOVDegrees: 90,
			From: [3]float64{0, 0, -5}, To: [3]float64{0, 0, 0}, Up: [3]float64{0, 1, 0},
		},
	}
}

func fields(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *SceneConfig)
		field  string
	}{
		{"no_shapes", func(c *SceneConfig) { c.Shapes = nil }, "shapes"},
		{"unknown_type", func(c *SceneConfig) { c.Shapes[0].Type = "torus" }, "shapes.0.type"},
		{"undefined_material", func(c *SceneConfig) { c.Shapes[0].Material = "blue" }, "shapes.0.material"},
		{"two_ops_in_one_step", func(c *SceneConfig) {
			c.Shapes[0].Transform = []Transform{{Translate: &[3]float64{1, 0, 0}, Scale: &[3]float64{1, 1, 1}}}
		}, "shapes.0.transform.0"},
		{"empty_step", func(c *SceneConfig) { c.Shapes[0].Transform = []Transform{{}} }, "shapes.0.transform.0"},
		{"zero_scale", func(c *SceneConfig) {
			c.Shapes[0].Transform = []Transform{{Scale: &[3]float64{1, 0, 1}}}
		}, "shapes.0.transform.0.scale.1"},
		{"zero_rotation_axis", func(c *SceneConfig) {
			c.Shapes[0].Transform = []Transform{{Rotate: &Rotation{Degrees: 45}}}
		}, "shapes.0.transform.0.rotate.axis"},
		{"negative_intensity", func(c *SceneConfig) { c.Light.Intensity[1] = -1 }, "light.intensity.g"},
		{"negative_color", func(c *SceneConfig) {
			c.Materials.Inline["red"] = Material{Color: &[3]float64{-1, 0, 0}}
		}, "materials.inline.red.color.r"},
		{"ambient_out_of_range", func(c *SceneConfig) {
			c.Materials.Inline["red"] = Material{Ambient: ptr(1.5)}
		}, "materials.inline.red.ambient"},
		{"zero_shininess", func(c *SceneConfig) {
			c.Materials.Inline["red"] = Material{Shininess: ptr(0.0)}
		}, "materials.inline.red.shininess"},
		{"zero_refractive_index", func(c *SceneConfig) {
			c.Materials.Inline["red"] = Material{RefractiveIndex: ptr(0.0)}
		}, "materials.inline.red.refractive_index"},
		{"zero_width", func(c *SceneConfig) { c.Camera.Width = 0 }, "camera.width"},
		{"fov_too_wide", func(c *SceneConfig) { c.Camera.FOVDegrees = 180 }, "camera.fov_degrees"},
		{"fov_zero", func(c *SceneConfig) { c.Camera.FOVDegrees = 0 }, "camera.fov_degrees"},
		{"to_equals_from", func(c *SceneConfig) { c.Camera.To = c.Camera.From }, "camera.to"},
		{"zero_up", func(c *SceneConfig) { c.Camera.Up = [3]float64{} }, "camera.up"},
		{"up_parallel", func(c *SceneConfig) { c.Camera.Up = [3]float64{0, 0, 2} }, "camera.up"},
		{"negative_depth", func(c *SceneConfig) { c.Render.MaxDepth = -1 }, "render.max_depth"},
		{"tone_curve_length", func(c *SceneConfig) {
			c.Render.ToneCurve = &ToneCurve{X: []float64{0, 1}, Y: []float64{0}}
		}, "render.tone_curve"},
		{"tone_curve_order", func(c *SceneConfig) {
			c.Render.ToneCurve = &ToneCurve{X: []float64{1, 0}, Y: []float64{0, 1}}
		}, "render.tone_curve.x"},
		{"surface_assignment", func(c *SceneConfig) {
			c.Input.Mesh.Path = "room.3mf"
			c.SurfaceAssignments.Inline = map[string]string{"wall": "missing"}
		}, "surface_assignments.inline.wall"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := validScene()
			test.mutate(c)
			assert.Contains(t, fields(c.Validate()), test.field)
		})
	}
}

func TestValidateValidScene(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(validScene().Validate())

	// a mesh alone is enough, and unreferenced assignments are only checked with a mesh
	c := validScene()
	c.Shapes = nil
	c.Input.Mesh.Path = "room.3mf"
	assert.Empty(c.Validate())

	c = validScene()
	c.SurfaceAssignments.Inline = map[string]string{"wall": "missing"}
	assert.Empty(c.Validate())
}

func TestFormatValidationErrors(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", FormatValidationErrors(nil))

	out := FormatValidationErrors([]ValidationError{
		{Field: "shapes", Message: "scene needs at least one shape or an input mesh"},
		{Field: "camera.width", Message: "must be positive"},
	})
	assert.Contains(out, "CAMERA:\n  - width: must be positive")
	assert.Contains(out, "SHAPES:\n  - general: scene needs at least one shape or an input mesh")
	assert.Less(strings.Index(out, "CAMERA"), strings.Index(out, "SHAPES"))

	assert.Equal("camera.width: must be positive", ValidationError{Field: "camera.width", Message: "must be positive"}.Error())
}

func TestMaterialCreate(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(tracer.DefaultMaterial(), Material{}.Create())

	m := Material{Color: &[3]float64{1, 0, 0}, Reflective: ptr(0.5), RefractiveIndex: ptr(1.33)}.Create()
	assert.Equal(tracer.C(1, 0, 0), m.Color)
	assert.Equal(0.5, m.Reflective)
	assert.Equal(1.33, m.RefractiveIndex)
	assert.Equal(tracer.DefaultMaterial().Diffuse, m.Diffuse)
}

func TestTransformOrder(t *testing.T) {
	assert := assert.New(t)

	// scale first, then translate: the unit sphere's +x pole ends up at x = 3
	s := Shape{Type: "sphere", Transform: []Transform{
		{Scale: &[3]float64{2, 2, 2}},
		{Translate: &[3]float64{1, 0, 0}},
	}}
	p := s.Matrix().MulPosition(tracer.V(1, 0, 0))
	assert.InDelta(3, p.X, 1e-9)

	// a quarter turn about z moves +x onto the y axis; the axis need not be unit length
	r := Transform{Rotate: &Rotation{Axis: [3]float64{0, 0, 2}, Degrees: 90}}.Matrix().MulPosition(tracer.V(1, 0, 0))
	assert.InDelta(0, r.X, 1e-9)
	assert.InDelta(1, math.Abs(r.Y), 1e-9)
	assert.InDelta(0, r.Z, 1e-9)
}

func TestShapeCreate(t *testing.T) {
	assert := assert.New(t)
	red := Material{Color: &[3]float64{1, 0, 0}}.Create()
	materials := map[string]tracer.Material{"red": red}

	tests := []struct {
		shape  Shape
		expect interface{}
	}{
		{Shape{Type: "sphere"}, &tracer.Sphere{}},
		{Shape{Type: "glass_sphere"}, &tracer.Sphere{}},
		{Shape{Type: "cube"}, &tracer.Cube{}},
		{Shape{Type: "plane"}, &tracer.Plane{}},
	}
	for _, test := range tests {
		s, err := test.shape.Create(materials)
		require.NoError(t, err)
		assert.IsType(test.expect, s)
	}

	glass, err := Shape{Type: "glass_sphere"}.Create(materials)
	require.NoError(t, err)
	assert.Equal(1.5, glass.Material().RefractiveIndex)

	painted, err := Shape{Type: "glass_sphere", Material: "red", CastsShadow: ptr(false)}.Create(materials)
	require.NoError(t, err)
	assert.Equal(red, painted.Material())
	assert.False(painted.CastsShadow())

	_, err = Shape{Type: "sphere", Material: "blue"}.Create(materials)
	assert.Error(err)
	_, err = Shape{Type: "torus"}.Create(materials)
	assert.Error(err)
}

func TestBuildWorld(t *testing.T) {
	assert := assert.New(t)
	c := loadScene(t)

	w, err := c.BuildWorld()
	require.NoError(t, err)

	light, ok := w.Light()
	require.True(t, ok)
	assert.Equal(tracer.V(-10, 10, -10), light.Position)

	shapes := w.Shapes()
	require.Len(t, shapes, 3)
	assert.Equal(0.3, shapes[0].Material().Reflective)
	assert.Equal(0.7, shapes[1].Material().Diffuse)
	assert.False(shapes[2].CastsShadow())

	c.Light = nil
	w, err = c.BuildWorld()
	require.NoError(t, err)
	_, ok = w.Light()
	assert.False(ok)
}

func TestBuildWorldMissingMesh(t *testing.T) {
	c := validScene()
	c.Input.Mesh.Path = filepath.Join(t.TempDir(), "missing.3mf")
	_, err := c.BuildWorld()
	assert.ErrorContains(t, err, "loading mesh")
}

func TestSurfaceAssignmentMap(t *testing.T) {
	assert := assert.New(t)
	c := validScene()
	c.SurfaceAssignments.Inline = map[string]string{"wall": "red", "ceiling": "missing"}

	m := c.SurfaceAssignmentMap()
	assert.Len(m, 1)
	assert.Equal(tracer.C(1, 0, 0), m["wall"].Color)
}

func TestCameraCreate(t *testing.T) {
	assert := assert.New(t)
	cam := Camera{
		Width: 201, Height: 101, FOVDegrees: 90,
		From: [3]float64{0, 0, 0}, To: [3]float64{0, 0, -1}, Up: [3]float64{0, 1, 0},
	}.Create()

	assert.Equal(201, cam.HSize)
	assert.Equal(101, cam.VSize)
	dir := cam.RayForPixel(100, 50).Direction
	assert.InDelta(-1, dir.Z, 1e-9)
}

func TestRenderOptions(t *testing.T) {
	assert := assert.New(t)

	opts, err := Render{MaxDepth: 2}.Options()
	require.NoError(t, err)
	assert.Equal(2, opts.MaxDepth)
	assert.Nil(opts.ToneCurve)

	opts, err = Render{ToneCurve: &ToneCurve{X: []float64{0, 2}, Y: []float64{0, 1}}}.Options()
	require.NoError(t, err)
	assert.InDelta(0.5, opts.ToneCurve.Apply(tracer.C(1, 1, 1)).R, 1e-9)

	_, err = Render{ToneCurve: &ToneCurve{X: []float64{0}, Y: []float64{0}}}.Options()
	assert.Error(err)
}
