// Package projection maps 3-D trajectories onto a 2-D drawing surface.
package projection

import (
	"fmt"
	"math"

	"pursuit-sim/internal/common"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Projector is an interface for reducing 3-D points to 2-D.
type Projector interface {
	// Project returns the 2-D image of every point, in order.
	Project(points []common.Vector) ([]r2.Vec, error)
}

// PCAProjector projects points onto their first two principal components.
type PCAProjector struct{}

// NewPCAProjector creates a new PCA projector targeting 2D.
func NewPCAProjector() *PCAProjector {
	return &PCAProjector{}
}

// Project performs PCA on the points and keeps the two main components.
func (p *PCAProjector) Project(points []common.Vector) ([]r2.Vec, error) {
	const targetDim = 2
	if len(points) < 2 {
		// Nothing to analyse; fall back to dropping z.
		return dropZ(points), nil
	}

	data := make([]float64, 0, len(points)*3)
	for _, pt := range points {
		data = append(data, pt.X, pt.Y, pt.Z)
	}
	matrix := mat.NewDense(len(points), 3, data)

	var pc stat.PC
	if ok := pc.PrincipalComponents(matrix, nil); !ok {
		return nil, fmt.Errorf("PCA computation failed")
	}
	var vec mat.Dense
	pc.VectorsTo(&vec)
	_, cols := vec.Dims()
	k := min(targetDim, cols)

	var reduced mat.Dense
	reduced.Mul(matrix, vec.Slice(0, 3, 0, k))

	out := make([]r2.Vec, len(points))
	for i := range out {
		out[i].X = reduced.At(i, 0)
		if k > 1 {
			out[i].Y = reduced.At(i, 1)
		}
	}
	return out, nil
}

// RotationProjector rotates points about the x, y and z axes (in degrees,
// applied in that order) and looks at the result along the z axis.
type RotationProjector struct {
	X, Y, Z float64
}

// Rotate adds the given angles, in degrees, to the current orientation.
func (p *RotationProjector) Rotate(dx, dy, dz float64) {
	p.X = math.Mod(p.X+dx, 360)
	p.Y = math.Mod(p.Y+dy, 360)
	p.Z = math.Mod(p.Z+dz, 360)
}

// Project applies the rotation and drops the z coordinate.
func (p *RotationProjector) Project(points []common.Vector) ([]r2.Vec, error) {
	rx := r3.NewRotation(p.X*math.Pi/180, r3.Vec{X: 1})
	ry := r3.NewRotation(p.Y*math.Pi/180, r3.Vec{Y: 1})
	rz := r3.NewRotation(p.Z*math.Pi/180, r3.Vec{Z: 1})

	out := make([]r2.Vec, len(points))
	for i, pt := range points {
		q := rx.Rotate(ry.Rotate(rz.Rotate(pt)))
		out[i] = r2.Vec{X: q.X, Y: q.Y}
	}
	return out, nil
}

func dropZ(points []common.Vector) []r2.Vec {
	out := make([]r2.Vec, len(points))
	for i, pt := range points {
		out[i] = r2.Vec{X: pt.X, Y: pt.Y}
	}
	return out
}
