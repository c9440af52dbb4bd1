package tracer

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"
)

// RenderOptions guides Render
type RenderOptions struct {
	// Recursion budget for each camera ray. Zero means MaxRecursions.
	MaxDepth int
	// Optional output curve applied to every channel before clamping to [0, 1]
	ToneCurve *ToneCurve
}

// ToneCurve is a piecewise linear mapping from linear radiance to display value
type ToneCurve struct {
	f lin.Function
}

// NewToneCurve builds a curve through the points (x[i], y[i]). x must be strictly increasing.
func NewToneCurve(x, y []float64) (*ToneCurve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("tone curve has %d x values but %d y values", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("tone curve needs at least 2 points, got %d", len(x))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("tone curve x values must be strictly increasing (x[%d]=%v, x[%d]=%v)", i-1, x[i-1], i, x[i])
		}
	}
	return &ToneCurve{f: lin.Function{X: x, Y: y}}, nil
}

// Apply maps every channel of c through the curve.
func (tc *ToneCurve) Apply(c pt.Color) pt.Color {
	if tc == nil {
		return c
	}
	return C(tc.f.At(c.R), tc.f.At(c.G), tc.f.At(c.B))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Render traces one ray through the centre of every pixel of cam.
func Render(w *World, cam Camera, opts RenderOptions) image.Image {
	depth := opts.MaxDepth
	if depth <= 0 {
		depth = MaxRecursions
	}

	Logger().Info("render started", "width", cam.HSize, "height", cam.VSize, "pixel_size", cam.PixelSize(), "depth", depth, "shapes", len(w.shapes))
	c := gg.NewContext(cam.HSize, cam.VSize)
	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			color := opts.ToneCurve.Apply(w.ColorAt(cam.RayForPixel(x, y), depth))
			c.SetRGB(clamp01(color.R), clamp01(color.G), clamp01(color.B))
			c.SetPixel(x, y)
		}
		Logger().Debug("rendered row", "row", y)
	}
	Logger().Info("render finished")
	return c.Image()
}

// SavePNG writes img to path
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
