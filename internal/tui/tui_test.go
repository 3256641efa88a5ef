package tui

import (
	"testing"

	"pursuit-sim/internal/common"
	"pursuit-sim/internal/projection"
	"pursuit-sim/internal/simulation"
)

func TestCanvasLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"horizontal", 0, 1, 3, 1, [][2]int{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{"vertical up", 2, 3, 2, 0, [][2]int{{2, 3}, {2, 2}, {2, 1}, {2, 0}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"point", 1, 1, 1, 1, [][2]int{{1, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(4, 4)
			c.Line(tt.x0, tt.y0, tt.x1, tt.y1, 7)
			set := 0
			for y := 0; y < c.Height; y++ {
				for x := 0; x < c.Width; x++ {
					if c.At(x, y) == 7 {
						set++
					}
				}
			}
			if set != len(tt.want) {
				t.Errorf("%d cells set, want %d", set, len(tt.want))
			}
			for _, p := range tt.want {
				if c.At(p[0], p[1]) != 7 {
					t.Errorf("cell %v not set", p)
				}
			}
		})
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Line(-5, 0, 10, 0, 1)
	for x := 0; x < 3; x++ {
		if c.At(x, 0) != 1 {
			t.Errorf("cell (%d, 0) not set", x)
		}
	}
	if c.At(-1, 0) != Empty || c.At(3, 0) != Empty {
		t.Error("cells outside the canvas are not empty")
	}
	c.Clear()
	if c.At(1, 0) != Empty {
		t.Error("Clear left a cell set")
	}
}

func result() simulation.Result {
	v := common.NewVector
	return simulation.Result{
		ID:      "0123456789",
		Names:   []string{"leader", "follower"},
		Leaders: []int{-1, 0},
		Initial: []common.Vector{v(0, 0, 0), v(0, 10, 0)},
		Trajectories: [][]common.Vector{
			{v(2, 0, 0), v(4, 0, 0), v(6, 0, 0), v(8, 0, 0), v(10, 0, 0)},
			{v(2, 8, 0), v(4, 6, 0), v(6, 4, 0), v(8, 2, 0), v(10, 0, 0)},
		},
		Iterations: 5,
		State:      simulation.Converged,
	}
}

func TestViewRasterize(t *testing.T) {
	view, err := NewView(result(), &projection.RotationProjector{}, Options{Envelope: true})
	if err != nil {
		t.Fatal(err)
	}
	if view.Shown() != 5 {
		t.Fatalf("image mode shows %d steps, want 5", view.Shown())
	}

	c := view.Rasterize(40, 20)
	counts := map[int]int{}
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			counts[c.At(x, y)]++
		}
	}
	if counts[0] == 0 || counts[1] == 0 {
		t.Errorf("paths missing from canvas: %v", counts)
	}
	if counts[Envelope] == 0 {
		t.Errorf("envelope missing from canvas: %v", counts)
	}

	// The leader runs along the bottom row of the drawing.
	bottom := c.Height - 1
	for ; bottom >= 0; bottom-- {
		if c.At(c.Width/2, bottom) != Empty {
			break
		}
	}
	if got := c.At(c.Width/2, bottom); got != 0 && got != Envelope {
		t.Errorf("lowest cell in the middle column belongs to %d, want the leader", got)
	}
}

type countingCue struct{ n int }

func (c *countingCue) Capture() { c.n++ }

func TestViewAnimation(t *testing.T) {
	cue := &countingCue{}
	view, err := NewView(result(), &projection.RotationProjector{}, Options{Animate: true, Cue: cue})
	if err != nil {
		t.Fatal(err)
	}
	if view.Shown() != 0 {
		t.Fatalf("animation starts at step %d, want 0", view.Shown())
	}
	for i := 0; i < 10; i++ {
		view.Advance()
	}
	if view.Shown() != 5 {
		t.Errorf("animation stopped at step %d, want 5", view.Shown())
	}
	if cue.n != 1 {
		t.Errorf("capture cue played %d times, want once", cue.n)
	}

	c := view.Rasterize(20, 10)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.At(x, y) == Envelope {
				t.Fatal("envelope drawn although disabled")
			}
		}
	}

	view.paused = true
	view.restart()
	view.Advance()
	if view.Shown() != 0 {
		t.Errorf("paused animation advanced to %d", view.Shown())
	}
}
