package tracer

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// Camera maps pixels of an HSize x VSize canvas to rays leaving From
type Camera struct {
	HSize int
	VSize int
	// Horizontal (or vertical, for portrait canvases) angle of view, in radians
	FieldOfView float64
	From        pt.Vector
	To          pt.Vector
	Up          pt.Vector

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
	forward    pt.Vector
	left       pt.Vector
	trueUp     pt.Vector
}

// NewCamera returns a camera at the origin looking down -z.
func NewCamera(hsize, vsize int, fieldOfView float64) Camera {
	c := Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		From:        V(0, 0, 0),
		To:          V(0, 0, -1),
		Up:          V(0, 1, 0),
	}
	c.compile()
	return c
}

// LookAt points the camera from `from` toward `to`.
func (c Camera) LookAt(from, to, up pt.Vector) Camera {
	c.From, c.To, c.Up = from, to, up
	c.compile()
	return c
}

func (c *Camera) compile() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(c.HSize)

	c.forward = c.To.Sub(c.From).Normalize()
	c.left = c.forward.Cross(c.Up.Normalize())
	c.trueUp = c.left.Cross(c.forward)
}

func (c Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the unit ray through the centre of pixel (px, py).
func (c Camera) RayForPixel(px, py int) pt.Ray {
	xoffset := (float64(px) + 0.5) * c.pixelSize
	yoffset := (float64(py) + 0.5) * c.pixelSize
	worldX := c.halfWidth - xoffset
	worldY := c.halfHeight - yoffset

	direction := c.left.MulScalar(worldX).
		Add(c.trueUp.MulScalar(worldY)).
		Add(c.forward).
		Normalize()
	return pt.Ray{Origin: c.From, Direction: direction}
}
