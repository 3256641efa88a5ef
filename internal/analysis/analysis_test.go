package analysis

import (
	"math"
	"testing"

	"pursuit-sim/internal/common"
	"pursuit-sim/internal/simulation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func v(x, y, z float64) common.Vector { return common.NewVector(x, y, z) }

// result builds a two-mover result by hand: "b" follows "a" along the x axis.
func result() simulation.Result {
	return simulation.Result{
		Names:   []string{"a", "b"},
		Speeds:  []float64{1, 2},
		Leaders: []int{-1, 0},
		Initial: []common.Vector{v(0, 0, 0), v(-4, 0, 0)},
		Trajectories: [][]common.Vector{
			{v(1, 0, 0), v(2, 0, 0), v(3, 0, 0)},
			{v(-2, 0, 0), v(0, 0, 0), v(2, 0, 0)},
		},
		Iterations: 3,
		State:      simulation.Exhausted,
	}
}

func TestPathLength(t *testing.T) {
	if got := PathLength(v(0, 0, 0), []common.Vector{v(3, 4, 0), v(3, 4, 2)}); got != 7 {
		t.Errorf("got %v, want 7", got)
	}
	if got := PathLength(v(1, 1, 1), nil); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	nan := math.NaN()
	want := []MoverSummary{
		{Name: "a", PathLength: 3, FinalSeparation: nan, MinSeparation: nan},
		{Name: "b", Leader: "a", PathLength: 6, FinalSeparation: 1, MinSeparation: 1},
	}
	diff(t, want, Summarize(result()), cmpopts.EquateNaNs())
}

func TestSummarizeWithoutSteps(t *testing.T) {
	r := result()
	r.Trajectories = [][]common.Vector{{}, {}}
	r.Iterations = 0
	got := Summarize(r)
	if got[1].FinalSeparation != 4 || got[1].MinSeparation != 4 || got[1].PathLength != 0 {
		t.Errorf("unexpected summary %+v", got[1])
	}
}

func TestSeparations(t *testing.T) {
	r := result()
	diff(t, []float64{3, 2, 1}, Separations(r, 1))
	if Separations(r, 0) != nil {
		t.Error("free mover has separations")
	}
}

func TestEnvelope(t *testing.T) {
	r := result()
	want := []Segment{
		{Step: 0, Pursuer: 1, Leader: 0, From: v(-2, 0, 0), To: v(1, 0, 0)},
		{Step: 1, Pursuer: 1, Leader: 0, From: v(0, 0, 0), To: v(2, 0, 0)},
	}
	diff(t, want, Envelope(r, 1))
	if got := len(Envelope(r, 100)); got != 3 {
		t.Errorf("got %d segments, want 3", got)
	}
}
