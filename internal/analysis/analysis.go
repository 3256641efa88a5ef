// Package analysis derives summary figures and envelope lines from simulation results.
package analysis

import (
	"math"

	"pursuit-sim/internal/common"
	"pursuit-sim/internal/simulation"

	"gonum.org/v1/gonum/floats"
)

// MoverSummary describes the path travelled by one mover.
type MoverSummary struct {
	Name       string
	Leader     string  // empty for a free mover
	PathLength float64 // distance travelled from the initial position
	// Separations from the leader; NaN for a free mover.
	FinalSeparation float64
	MinSeparation   float64
}

// Segment joins a pursuer to its leader at a recorded step.
type Segment struct {
	Step     int // index into the trajectories
	Pursuer  int
	Leader   int
	From, To common.Vector
}

// Summarize computes a MoverSummary for every mover of r.
func Summarize(r simulation.Result) []MoverSummary {
	out := make([]MoverSummary, r.NumMovers())
	for i, name := range r.Names {
		s := MoverSummary{
			Name:            name,
			PathLength:      PathLength(r.Initial[i], r.Trajectories[i]),
			FinalSeparation: math.NaN(),
			MinSeparation:   math.NaN(),
		}
		if j := r.Leaders[i]; j >= 0 {
			s.Leader = r.Names[j]
			seps := Separations(r, i)
			if len(seps) == 0 {
				seps = []float64{common.Distance(r.Initial[i], r.Initial[j])}
			}
			s.FinalSeparation = seps[len(seps)-1]
			s.MinSeparation = floats.Min(seps)
		}
		out[i] = s
	}
	return out
}

// PathLength returns the length of the polyline starting at start and
// continuing through points.
func PathLength(start common.Vector, points []common.Vector) float64 {
	if len(points) == 0 {
		return 0
	}
	legs := make([]float64, len(points))
	prev := start
	for k, p := range points {
		legs[k] = common.Distance(prev, p)
		prev = p
	}
	return floats.Sum(legs)
}

// Separations returns the distance between mover i and its leader at every
// recorded step. It returns nil for a free mover.
func Separations(r simulation.Result, i int) []float64 {
	j := r.Leaders[i]
	if j < 0 {
		return nil
	}
	seps := make([]float64, r.Iterations)
	for k := range seps {
		seps[k] = common.Distance(r.Trajectories[i][k], r.Trajectories[j][k])
	}
	return seps
}

// Envelope returns the pursuer-leader segments of every recorded step up to
// and including step last. Drawn together they outline the envelope curve.
func Envelope(r simulation.Result, last int) []Segment {
	last = min(last, r.Iterations-1)
	var segs []Segment
	for i, j := range r.Leaders {
		if j < 0 {
			continue
		}
		for k := 0; k <= last; k++ {
			segs = append(segs, Segment{
				Step:    k,
				Pursuer: i,
				Leader:  j,
				From:    r.Trajectories[i][k],
				To:      r.Trajectories[j][k],
			})
		}
	}
	return segs
}
