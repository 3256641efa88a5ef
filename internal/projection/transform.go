package projection

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Transform maps projected world coordinates to screen coordinates,
// with the y axis pointing up on screen.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// Fit determines the scaling and offset that fit points onto a screen of
// the given size, keeping padding pixels free on every side.
func Fit(points []r2.Vec, width, height int, padding float64) Transform {
	w, h := float64(width), float64(height)
	if len(points) == 0 {
		return Transform{Scale: 1, OffsetX: w / 2, OffsetY: h / 2}
	}

	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, p := range points {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	centerX := (minX + maxX) / 2
	centerY := (minY + maxY) / 2
	worldWidth := maxX - minX
	worldHeight := maxY - minY

	scale := 1.0
	if worldWidth > 0 || worldHeight > 0 {
		if worldWidth == 0 {
			worldWidth = worldHeight
		}
		if worldHeight == 0 {
			worldHeight = worldWidth
		}
		scale = math.Min((w-2*padding)/worldWidth, (h-2*padding)/worldHeight)
		if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
			scale = 1
		}
	}

	return Transform{
		Scale:   scale,
		OffsetX: w/2 - centerX*scale,
		OffsetY: h/2 + centerY*scale,
	}
}

// Apply converts a projected point to screen coordinates.
func (t Transform) Apply(p r2.Vec) (x, y float32) {
	return float32(p.X*t.Scale + t.OffsetX), float32(t.OffsetY - p.Y*t.Scale)
}
