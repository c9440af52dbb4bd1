package config

// SceneConfig represents the complete description of a scene to render
type SceneConfig struct {
	Metadata           Metadata           `yaml:"metadata"`
	Input              Input              `yaml:"input"`
	Materials          Materials          `yaml:"materials"`
	SurfaceAssignments SurfaceAssignments `yaml:"surface_assignments"`
	Light              *Light             `yaml:"light,omitempty"`
	Shapes             []Shape            `yaml:"shapes"`
	Camera             Camera             `yaml:"camera"`
	Render             Render             `yaml:"render"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

// Input names an optional 3MF mesh to load alongside the primitive shapes
type Input struct {
	Mesh struct {
		Path string `yaml:"path"`
	} `yaml:"mesh"`
}

type Materials struct {
	Inline   map[string]Material `yaml:"inline,omitempty"`
	FromFile string              `yaml:"from_file,omitempty"`
}

// Material mirrors tracer.Material. Unset fields take the tracer defaults.
type Material struct {
	Color           *[3]float64 `yaml:"color,omitempty" json:"color,omitempty"`
	Ambient         *float64    `yaml:"ambient,omitempty" json:"ambient,omitempty"`
	Diffuse         *float64    `yaml:"diffuse,omitempty" json:"diffuse,omitempty"`
	Specular        *float64    `yaml:"specular,omitempty" json:"specular,omitempty"`
	Shininess       *float64    `yaml:"shininess,omitempty" json:"shininess,omitempty"`
	Reflective      *float64    `yaml:"reflective,omitempty" json:"reflective,omitempty"`
	Transparency    *float64    `yaml:"transparency,omitempty" json:"transparency,omitempty"`
	RefractiveIndex *float64    `yaml:"refractive_index,omitempty" json:"refractive_index,omitempty"`
}

// SurfaceAssignments maps mesh object names to material names
type SurfaceAssignments struct {
	Inline   map[string]string `yaml:"inline,omitempty"` // object name -> material name
	FromFile string            `yaml:"from_file,omitempty"`
}

type Light struct {
	Position  [3]float64 `yaml:"position"`
	Intensity [3]float64 `yaml:"intensity"`
}

type Shape struct {
	Type        string      `yaml:"type"` // sphere, glass_sphere, cube or plane
	Material    string      `yaml:"material,omitempty"`
	CastsShadow *bool       `yaml:"casts_shadow,omitempty"`
	Transform   []Transform `yaml:"transform,omitempty"`
}

// Transform is one step of a shape's placement. Exactly one field should be set.
// Steps are applied in the order listed.
type Transform struct {
	Translate *[3]float64 `yaml:"translate,omitempty"`
	Scale     *[3]float64 `yaml:"scale,omitempty"`
	Rotate    *Rotation   `yaml:"rotate,omitempty"`
}

type Rotation struct {
	Axis    [3]float64 `yaml:"axis"`
	Degrees float64    `yaml:"degrees"`
}

type Camera struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	FOVDegrees float64    `yaml:"fov_degrees"`
	From       [3]float64 `yaml:"from"`
	To         [3]float64 `yaml:"to"`
	Up         [3]float64 `yaml:"up"`
}

type Render struct {
	MaxDepth  int        `yaml:"max_depth"`
	ToneCurve *ToneCurve `yaml:"tone_curve,omitempty"`
}

type ToneCurve struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}
