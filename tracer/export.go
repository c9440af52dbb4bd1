package tracer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fogleman/pt/pt"
)

// JSON schema types
type VectorJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type ColorJSON struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

type RayJSON struct {
	Origin    VectorJSON `json:"origin"`
	Direction VectorJSON `json:"direction"`
}

type SegmentJSON struct {
	Kind      string      `json:"kind"`
	Remaining int         `json:"remaining"`
	Ray       RayJSON     `json:"ray"`
	Hit       bool        `json:"hit"`
	T         float64     `json:"t,omitempty"`
	Point     *VectorJSON `json:"point,omitempty"`
	ShapeID   uint64      `json:"shapeId,omitempty"`
}

type PixelTraceJSON struct {
	X        int           `json:"x"`
	Y        int           `json:"y"`
	Color    ColorJSON     `json:"color"`
	Segments []SegmentJSON `json:"segments"`
}

// Conversion functions
func VectorToJSON(v pt.Vector) VectorJSON {
	return VectorJSON{X: v.X, Y: v.Y, Z: v.Z}
}

func ColorToJSON(c pt.Color) ColorJSON {
	return ColorJSON{R: c.R, G: c.G, B: c.B}
}

func SegmentToJSON(s PathSegment) SegmentJSON {
	seg := SegmentJSON{
		Kind:      s.Kind.String(),
		Remaining: s.Remaining,
		Ray: RayJSON{
			Origin:    VectorToJSON(s.Ray.Origin),
			Direction: VectorToJSON(s.Ray.Direction),
		},
		Hit: s.Hit,
	}
	if s.Hit {
		p := VectorToJSON(s.Point)
		seg.T = s.T
		seg.Point = &p
		seg.ShapeID = s.ShapeID
	}
	return seg
}

// PixelTraceToJSON bundles the colour and ray path of one pixel
func PixelTraceToJSON(x, y int, c pt.Color, segments []PathSegment) PixelTraceJSON {
	out := PixelTraceJSON{
		X:        x,
		Y:        y,
		Color:    ColorToJSON(c),
		Segments: make([]SegmentJSON, 0, len(segments)),
	}
	for _, s := range segments {
		out.Segments = append(out.Segments, SegmentToJSON(s))
	}
	return out
}

// SavePixelTraceToJSON writes the traced path of one pixel to filename
func SavePixelTraceToJSON(filename string, trace PixelTraceJSON) error {
	data, err := json.MarshalIndent(trace, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling pixel trace: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
