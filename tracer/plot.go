package tracer

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramBins is the number of buckets PlotLuminance sorts pixels into
const HistogramBins = 32

// Luminance returns the Rec. 709 relative luminance of every pixel of img, in [0, 1].
func Luminance(img image.Image) []float64 {
	b := img.Bounds()
	out := make([]float64, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			out = append(out, (0.2126*float64(r)+0.7152*float64(g)+0.0722*float64(bl))/0xffff)
		}
	}
	return out
}

// PlotLuminance saves a histogram of the luminance of img to path.
// Useful for choosing a tone curve for a scene.
func PlotLuminance(img image.Image, path string) error {
	p := plot.New()
	p.Title.Text = "Luminance"
	p.X.Label.Text = "Luminance"
	p.Y.Label.Text = "Pixels"
	p.X.Min = 0
	p.X.Max = 1

	h, err := plotter.NewHist(plotter.Values(Luminance(img)), HistogramBins)
	if err != nil {
		return fmt.Errorf("building histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
