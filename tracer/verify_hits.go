//go:build verify_hits
// +build verify_hits

package tracer

import (
	"fmt"
	"math"
)

const (
	lengthEpsilon = 1e-7
)

func init() {
	fmt.Println("Hit verification enabled.")
}

func verifyHit(h Hit) {
	// Normal and eye vectors must stay unit length through the object transform
	if math.Abs(h.Normal.Length()-1.0) > lengthEpsilon {
		panic(fmt.Sprintf("hit normal %v is not a unit vector", h.Normal))
	}
	if math.Abs(h.Eye.Length()-1.0) > lengthEpsilon {
		panic(fmt.Sprintf("eye vector %v is not a unit vector; ray directions must be normalised", h.Eye))
	}

	// Normal should face the eye once inside hits have been flipped
	if h.Normal.Dot(h.Eye) < -lengthEpsilon {
		panic("hit normal points away from the eye")
	}
}
