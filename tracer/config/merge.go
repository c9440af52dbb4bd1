package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// MergeMaterials merges materials from a JSON file into the inline materials.
// Inline definitions win over ones from the file.
func (m *Materials) MergeMaterials() error {
	if m.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(m.FromFile)
	if err != nil {
		return fmt.Errorf("reading materials file: %w", err)
	}

	var fileMaterials map[string]Material
	if err := json.Unmarshal(data, &fileMaterials); err != nil {
		return fmt.Errorf("parsing materials file: %w", err)
	}

	if m.Inline == nil {
		m.Inline = make(map[string]Material)
	}
	for name, material := range fileMaterials {
		if _, exists := m.Inline[name]; !exists {
			m.Inline[name] = material
		}
	}

	return nil
}

// MergeSurfaceAssignments merges object-to-material assignments from a JSON file.
// Inline assignments win over ones from the file.
func (sa *SurfaceAssignments) MergeSurfaceAssignments() error {
	if sa.FromFile == "" {
		return nil
	}

	data, err := os.ReadFile(sa.FromFile)
	if err != nil {
		return fmt.Errorf("reading surface assignments file: %w", err)
	}

	var fileAssignments map[string]string
	if err := json.Unmarshal(data, &fileAssignments); err != nil {
		return fmt.Errorf("parsing surface assignments file: %w", err)
	}

	if sa.Inline == nil {
		sa.Inline = make(map[string]string)
	}
	for surface, material := range fileAssignments {
		if _, exists := sa.Inline[surface]; !exists {
			sa.Inline[surface] = material
		}
	}

	return nil
}

func (m *Materials) HasMaterial(name string) bool {
	_, exists := m.Inline[name]
	return exists
}

// LoadAndMerge loads all external files and merges their contents
func (c *SceneConfig) LoadAndMerge() error {
	// Materials first since surface assignments refer to them
	if err := c.Materials.MergeMaterials(); err != nil {
		return fmt.Errorf("merging materials: %w", err)
	}
	if err := c.SurfaceAssignments.MergeSurfaceAssignments(); err != nil {
		return fmt.Errorf("merging surface assignments: %w", err)
	}
	return nil
}
