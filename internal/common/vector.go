package common

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector represents a point or a direction in 3-dimensional space.
type Vector = r3.Vec

// ErrZeroVector is returned when a direction is required but the vector has no length.
var ErrZeroVector = errors.New("zero-length vector")

// NewVector creates a new vector from its coordinates.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// FromSlice converts a coordinate list as found in configuration files into a Vector.
func FromSlice(coords []float64) (Vector, error) {
	if len(coords) != 3 {
		return Vector{}, fmt.Errorf("vector must have 3 coordinates, got %d", len(coords))
	}
	return NewVector(coords[0], coords[1], coords[2]), nil
}

// ToSlice returns the coordinates of v as a slice.
func ToSlice(v Vector) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vector) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// Direction returns the unit vector pointing along v.
func Direction(v Vector) (Vector, error) {
	n := r3.Norm(v)
	if n == 0 {
		return Vector{}, ErrZeroVector
	}
	return r3.Scale(1/n, v), nil
}

// IsFinite reports whether no coordinate of v is NaN or infinite.
func IsFinite(v Vector) bool {
	for _, c := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Format returns a string representation of the vector with limited precision.
func Format(v Vector) string {
	strs := make([]string, 3)
	for i, val := range ToSlice(v) {
		strs[i] = fmt.Sprintf("%.3f", val)
	}
	return fmt.Sprintf("[%s]", strings.Join(strs, ", "))
}

// CloneAll returns a copy of the given points.
func CloneAll(points []Vector) []Vector {
	clone := make([]Vector, len(points))
	copy(clone, points)
	return clone
}
