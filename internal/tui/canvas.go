// Package tui draws pursuit trajectories in a terminal.
package tui

// Cell owners other than mover indices.
const (
	Empty    = -1
	Envelope = -2
)

// Canvas is a character grid where every cell remembers what was drawn on it last.
type Canvas struct {
	Width, Height int
	cells         []int
}

// NewCanvas creates an empty canvas.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Width: max(width, 0), Height: max(height, 0)}
	c.cells = make([]int, c.Width*c.Height)
	c.Clear()
	return c
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Empty
	}
}

// Set marks a cell; cells outside the canvas are ignored.
func (c *Canvas) Set(x, y, owner int) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = owner
}

// At returns the owner of a cell, or Empty outside the canvas.
func (c *Canvas) At(x, y int) int {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return Empty
	}
	return c.cells[y*c.Width+x]
}

// Line draws a segment with Bresenham's algorithm.
func (c *Canvas) Line(x0, y0, x1, y1, owner int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(x0, y0, owner)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
