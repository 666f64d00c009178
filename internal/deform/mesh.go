package deform

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
)

// Vertex is a point on the unit sphere; its position doubles as its normal.
type Vertex struct {
	Pos  r3.Vec
	U, V float64
}

// Sphere samples the unit sphere on a latitude/longitude grid of rings+1
// rows by segments columns.
func Sphere(rings, segments int) []Vertex {
	vs := make([]Vertex, 0, (rings+1)*segments)
	for r := 0; r <= rings; r++ {
		v := float64(r) / float64(rings)
		theta := v * math.Pi
		st, ct := math.Sincos(theta)
		for s := 0; s < segments; s++ {
			u := float64(s) / float64(segments)
			sp, cp := math.Sincos(u * 2 * math.Pi)
			vs = append(vs, Vertex{
				Pos: r3.Vec{X: st * cp, Y: ct, Z: st * sp},
				U:   u,
				V:   v,
			})
		}
	}
	return vs
}

// Orientation turns the mesh about Y first, then about X.
type Orientation struct {
	y, x r3.Rotation
}

// Spin returns the orientation of the mesh after t seconds.
func Spin(t float64) Orientation {
	return Orientation{
		y: r3.NewRotation(t*SpinY, axisY),
		x: r3.NewRotation(t*SpinX, axisX),
	}
}

// Apply rotates p into world space.
func (o Orientation) Apply(p r3.Vec) r3.Vec {
	return o.x.Rotate(o.y.Rotate(p))
}
