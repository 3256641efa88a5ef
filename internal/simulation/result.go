package simulation

import "pursuit-sim/internal/common"

// Result is a read-only snapshot of a simulation, indexed by mover.
type Result struct {
	ID           string
	Names        []string
	Speeds       []float64
	Leaders      []int             // index of each mover's leader, -1 for none
	Initial      []common.Vector   // positions before the first step
	Trajectories [][]common.Vector // Trajectories[i][k] is mover i after k+1 steps
	Iterations   int
	State        State
	Events       []DegenerateEvent
	Dt           float64
	Closeness    float64
}

// Result returns a snapshot of the simulation. It is meant to be taken after Run.
func (s *Simulation) Result() Result {
	r := Result{
		ID:           s.id,
		Names:        make([]string, len(s.movers)),
		Speeds:       make([]float64, len(s.movers)),
		Leaders:      make([]int, len(s.leaders)),
		Initial:      common.CloneAll(s.initial),
		Trajectories: s.Trajectories(),
		Iterations:   s.iterations,
		State:        s.state,
		Events:       s.Events(),
		Dt:           s.dt,
		Closeness:    s.closeness,
	}
	for i, m := range s.movers {
		r.Names[i] = m.Name()
		r.Speeds[i] = m.Speed()
	}
	copy(r.Leaders, s.leaders)
	return r
}

// NumMovers returns the number of movers in the result.
func (r Result) NumMovers() int {
	return len(r.Names)
}

// Frame returns the position of every mover after step k+1.
func (r Result) Frame(k int) []common.Vector {
	frame := make([]common.Vector, len(r.Trajectories))
	for i, tr := range r.Trajectories {
		frame[i] = tr[k]
	}
	return frame
}

// AllPoints returns every initial and recorded position, mover by mover.
func (r Result) AllPoints() []common.Vector {
	n := len(r.Initial)
	for _, tr := range r.Trajectories {
		n += len(tr)
	}
	points := make([]common.Vector, 0, n)
	points = append(points, r.Initial...)
	for _, tr := range r.Trajectories {
		points = append(points, tr...)
	}
	return points
}
