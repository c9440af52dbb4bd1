package tracer

import (
	"fmt"

	"github.com/fogleman/pt/pt"
	"github.com/hpinc/go3mf"
)

// MeshScale converts 3MF model units (millimetres) to scene units
const MeshScale = 1000

// LoadMesh reads every mesh object of a 3MF file as a set of triangles.
//
// Each triangle takes the material named after its object, or materials["default"]
// when the object has no entry. Without a default, DefaultMaterial is used.
func LoadMesh(filepath string, materials map[string]Material, opts ...ShapeOption) ([]Shape, error) {
	var model go3mf.Model
	r, err := go3mf.OpenReader(filepath)
	if err != nil {
		return nil, fmt.Errorf("opening mesh: %w", err)
	}
	defer r.Close()
	if err := r.Decode(&model); err != nil {
		return nil, fmt.Errorf("decoding mesh: %w", err)
	}

	fallback, ok := materials["default"]
	if !ok {
		fallback = DefaultMaterial()
	}

	shapes := []Shape{}
	for _, item := range model.Build.Items {
		obj, ok := model.FindObject(item.ObjectPath(), item.ObjectID)
		if !ok || obj.Mesh == nil {
			continue
		}

		material, ok := materials[obj.Name]
		if !ok {
			material = fallback
		}

		vertex := func(i uint32) pt.Vector {
			v := obj.Mesh.Vertices.Vertex[i]
			return V(
				float64(v.X()/MeshScale),
				float64(v.Y()/MeshScale),
				float64(v.Z()/MeshScale),
			)
		}
		for _, t := range obj.Mesh.Triangles.Triangle {
			triOpts := append([]ShapeOption{WithMaterial(material)}, opts...)
			tri := NewTriangle(vertex(t.V1), vertex(t.V2), vertex(t.V3), triOpts...)
			tri.Name = obj.Name
			shapes = append(shapes, tri)
		}
	}
	Logger().Debug("loaded mesh", "path", filepath, "triangles", len(shapes))
	return shapes, nil
}
