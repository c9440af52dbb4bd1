package tracer

import (
	"fmt"
	"math"

	"github.com/fogleman/pt/pt"
	"github.com/stretchr/testify/assert"
)

const delta = 1e-4

func ray(origin, direction pt.Vector) pt.Ray {
	return pt.Ray{Origin: origin, Direction: direction}
}

func assertVector(assert *assert.Assertions, want, got pt.Vector, msgAndArgs ...interface{}) {
	if math.Abs(want.X-got.X) > delta || math.Abs(want.Y-got.Y) > delta || math.Abs(want.Z-got.Z) > delta {
		assert.Fail(fmt.Sprintf("vectors differ: want %v, got %v", want, got), msgAndArgs...)
	}
}

func assertColor(assert *assert.Assertions, want, got pt.Color, tolerance float64) {
	assert.InDelta(want.R, got.R, tolerance, "red")
	assert.InDelta(want.G, got.G, tolerance, "green")
	assert.InDelta(want.B, got.B, tolerance, "blue")
}

func ts(xs []Intersection) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}
