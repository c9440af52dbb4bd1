package tracer

import (
	"math"
	"testing"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

func TestPlaneLocalIntersect(t *testing.T) {
	tests := []struct {
		name   string
		ray    pt.Ray
		expect []float64
	}{
		{"parallel", ray(V(0, 10, 0), V(0, 0, 1)), []float64{}},
		{"coplanar", ray(V(0, 0, 0), V(0, 0, 1)), []float64{}},
		{"from_above", ray(V(0, 1, 0), V(0, -1, 0)), []float64{1}},
		{"from_below", ray(V(0, -1, 0), V(0, 1, 0)), []float64{1}},
		{"behind", ray(V(0, 1, 0), V(0, 1, 0)), []float64{-1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			p := NewPlane()
			xs := p.LocalIntersect(test.ray)
			assert.InDeltaSlice(test.expect, ts(xs), delta)
			for _, x := range xs {
				assert.Same(p, x.Object)
			}
		})
	}
}

func TestPlaneNormalIsConstant(t *testing.T) {
	assert := assert.New(t)
	p := NewPlane()
	for _, point := range []pt.Vector{V(0, 0, 0), V(10, 0, -10), V(-5, 0, 150)} {
		assert.Equal(V(0, 1, 0), p.LocalNormalAt(point))
	}
}

func TestPlaneTransformed(t *testing.T) {
	assert := assert.New(t)

	// A wall at z = 5 facing the origin
	wall := NewPlane(WithTransform(pt.Translate(V(0, 0, 5)).Mul(pt.Rotate(V(1, 0, 0), math.Pi/2))))
	xs := Intersect(wall, ray(V(0, 0, 0), V(0, 0, 1)))
	assert.InDeltaSlice([]float64{5}, ts(xs), delta)

	n := NormalAt(wall, V(3, -2, 5))
	assert.InDelta(1, math.Abs(n.Z), delta)
	assert.InDelta(0, n.X, delta)
	assert.InDelta(0, n.Y, delta)
}
