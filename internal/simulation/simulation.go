package simulation

import (
	"fmt"
	"log"
	"math"
	"pursuit-sim/internal/common"

	"github.com/google/uuid"
)

// State is the lifecycle stage of a Simulation.
type State int

const (
	Constructed State = iota
	Running
	Converged
	Exhausted
)

func (s State) String() string {
	switch s {
	case Constructed:
		return "constructed"
	case Running:
		return "running"
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// MoverConfig describes one mover of a simulation.
type MoverConfig struct {
	Name      string
	Position  common.Vector
	Direction common.Vector // only the direction is used
	Speed     float64
	Leader    string // empty for a free mover
}

// Config holds everything needed to build a Simulation.
type Config struct {
	Movers        []MoverConfig
	Dt            float64
	MaxIterations int
	Closeness     float64 // convergence distance between each pursuer and its leader
}

// Simulation advances a fixed set of movers in lockstep and records their trajectories.
type Simulation struct {
	id            string
	movers        []*Mover
	leaders       []int // leaders[i] is the index of the leader of movers[i], or -1
	index         map[string]int
	initial       []common.Vector
	dt            float64
	maxIterations int
	closeness     float64

	state      State
	iterations int
	trajectory [][]common.Vector // trajectory[i][k] is the position of movers[i] after k+1 steps
	events     []DegenerateEvent

	logger  *log.Logger
	verbose bool
}

// NewSimulation validates cfg and builds the movers and their leader graph.
func NewSimulation(cfg Config) (*Simulation, error) {
	if len(cfg.Movers) == 0 {
		return nil, fmt.Errorf("%w: no movers configured", ErrInvalidConfiguration)
	}
	if cfg.Dt <= 0 || math.IsInf(cfg.Dt, 0) || math.IsNaN(cfg.Dt) {
		return nil, fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidConfiguration, cfg.Dt)
	}
	if cfg.MaxIterations <= 0 {
		return nil, fmt.Errorf("%w: max iterations must be positive, got %d", ErrInvalidConfiguration, cfg.MaxIterations)
	}
	if cfg.Closeness <= 0 || math.IsNaN(cfg.Closeness) {
		return nil, fmt.Errorf("%w: closeness must be positive, got %v", ErrInvalidConfiguration, cfg.Closeness)
	}

	s := &Simulation{
		id:            uuid.NewString(),
		movers:        make([]*Mover, 0, len(cfg.Movers)),
		leaders:       make([]int, len(cfg.Movers)),
		index:         make(map[string]int, len(cfg.Movers)),
		initial:       make([]common.Vector, 0, len(cfg.Movers)),
		dt:            cfg.Dt,
		maxIterations: cfg.MaxIterations,
		closeness:     cfg.Closeness,
		state:         Constructed,
	}

	for i, mc := range cfg.Movers {
		m, err := NewMover(mc.Name, mc.Position, mc.Direction, mc.Speed)
		if err != nil {
			return nil, err
		}
		if _, exists := s.index[m.Name()]; exists {
			return nil, fmt.Errorf("%w: mover with name %s already exists", ErrInvalidConfiguration, m.Name())
		}
		s.index[m.Name()] = i
		s.movers = append(s.movers, m)
		s.initial = append(s.initial, m.Position())
	}

	for i, mc := range cfg.Movers {
		s.leaders[i] = -1
		if mc.Leader == "" {
			continue
		}
		j, ok := s.index[mc.Leader]
		if !ok {
			return nil, fmt.Errorf("%w: mover %s follows unknown leader %s", ErrInvalidConfiguration, s.movers[i].Name(), mc.Leader)
		}
		if j == i {
			return nil, fmt.Errorf("%w: mover %s cannot follow itself", ErrInvalidConfiguration, mc.Leader)
		}
		s.leaders[i] = j
		s.movers[i].SetLeader(s.movers[j])
	}

	s.trajectory = make([][]common.Vector, len(s.movers))
	capacity := min(s.maxIterations, 1024)
	for i := range s.trajectory {
		s.trajectory[i] = make([]common.Vector, 0, capacity)
	}
	return s, nil
}

// SetLogger sets the logger used to report progress. A nil logger disables logging.
func (s *Simulation) SetLogger(l *log.Logger) {
	s.logger = l
}

// SetVerbose enables logging of every mover after each step.
func (s *Simulation) SetVerbose(v bool) {
	s.verbose = v
}

func (s *Simulation) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Run executes the simulation until every pursuer is within the closeness
// distance of its leader or the iteration limit is reached.
func (s *Simulation) Run() error {
	if s.state != Constructed {
		return fmt.Errorf("%w: state is %s", ErrAlreadyRun, s.state)
	}
	s.state = Running
	s.logf("[%s] starting simulation: movers=%d dt=%g max_iterations=%d closeness=%g",
		s.shortID(), len(s.movers), s.dt, s.maxIterations, s.closeness)

	// Followers start out heading for their leader.
	s.updateVelocities(0)

	for i := 0; i < s.maxIterations; i++ {
		if s.converged() {
			s.iterations = i
			s.state = Converged
			s.logf("[%s] converged after %d iterations", s.shortID(), i)
			return nil
		}

		// 1. Integrate all positions with the velocities of the previous step.
		for k, m := range s.movers {
			m.UpdatePosition(s.dt)
			s.trajectory[k] = append(s.trajectory[k], m.Position())
		}

		// 2. Only then aim every follower at the updated positions.
		s.updateVelocities(i + 1)

		if s.verbose {
			s.logf("[%s] step %d", s.shortID(), i+1)
			for _, m := range s.movers {
				s.logf("    %s", m)
			}
		}
	}

	s.iterations = s.maxIterations
	s.state = Exhausted
	s.logf("[%s] exhausted %d iterations without converging", s.shortID(), s.maxIterations)
	return nil
}

func (s *Simulation) updateVelocities(step int) {
	for k, m := range s.movers {
		if m.UpdateVelocity() {
			ev := DegenerateEvent{Step: step, Mover: m.Name(), Leader: s.movers[s.leaders[k]].Name()}
			s.events = append(s.events, ev)
			s.logf("[%s] step %d: %s reached leader %s, keeping velocity %s",
				s.shortID(), step, ev.Mover, ev.Leader, common.Format(m.Velocity()))
		}
	}
}

// converged reports whether every pursuer is close enough to its leader.
// Without any pursuer the simulation never converges.
func (s *Simulation) converged() bool {
	pursuers := 0
	for k, m := range s.movers {
		j := s.leaders[k]
		if j < 0 {
			continue
		}
		pursuers++
		if common.Distance(m.Position(), s.movers[j].Position()) > s.closeness {
			return false
		}
	}
	return pursuers > 0
}

func (s *Simulation) shortID() string {
	return s.id[:8]
}

// ID returns the unique identifier of this simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// State returns the lifecycle state of the simulation.
func (s *Simulation) State() State {
	return s.state
}

// ActualIterations returns the number of recorded steps.
func (s *Simulation) ActualIterations() int {
	return s.iterations
}

// Movers returns the movers in configuration order.
func (s *Simulation) Movers() []*Mover {
	movers := make([]*Mover, len(s.movers))
	copy(movers, s.movers)
	return movers
}

// MoverIndex returns the index of the mover with the given name.
func (s *Simulation) MoverIndex(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// LeaderIndex returns the index of the leader of mover i, or -1 for a free mover.
func (s *Simulation) LeaderIndex(i int) int {
	return s.leaders[i]
}

// Trajectory returns a copy of the recorded positions of mover i.
func (s *Simulation) Trajectory(i int) []common.Vector {
	return common.CloneAll(s.trajectory[i])
}

// Trajectories returns a copy of the recorded positions of every mover.
func (s *Simulation) Trajectories() [][]common.Vector {
	out := make([][]common.Vector, len(s.trajectory))
	for i := range s.trajectory {
		out[i] = common.CloneAll(s.trajectory[i])
	}
	return out
}

// Events returns the degenerate events recorded while running.
func (s *Simulation) Events() []DegenerateEvent {
	events := make([]DegenerateEvent, len(s.events))
	copy(events, s.events)
	return events
}

// PrintState logs the current state of every mover.
func (s *Simulation) PrintState() {
	s.logf("--- Simulation %s: %s after %d iterations ---", s.shortID(), s.state, s.iterations)
	for _, m := range s.movers {
		s.logf("  %s", m)
	}
}
