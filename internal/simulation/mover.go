package simulation

import (
	"fmt"
	"math"
	"pursuit-sim/internal/common"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mover represents a body moving at constant speed that may pursue a leader.
type Mover struct {
	name     string
	position common.Vector
	velocity common.Vector
	speed    float64
	leader   *Mover // not owned; may point back along a cycle
}

// NewMover creates a mover at a given position. Only the direction of dir
// is used; the initial velocity is its unit vector scaled by speed.
func NewMover(name string, pos, dir common.Vector, speed float64) (*Mover, error) {
	if name == "" {
		name = fmt.Sprintf("mover-%s", uuid.NewString()[:8])
	}
	if !common.IsFinite(pos) {
		return nil, fmt.Errorf("%w: mover %s has non-finite position %s", ErrInvalidConfiguration, name, common.Format(pos))
	}
	if speed <= 0 || math.IsInf(speed, 0) || math.IsNaN(speed) {
		return nil, fmt.Errorf("%w: mover %s speed must be positive and finite, got %v", ErrInvalidConfiguration, name, speed)
	}
	if !common.IsFinite(dir) {
		return nil, fmt.Errorf("%w: mover %s has non-finite direction %s", ErrInvalidConfiguration, name, common.Format(dir))
	}
	unit, err := common.Direction(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: mover %s direction: %v", ErrInvalidConfiguration, name, err)
	}
	return &Mover{
		name:     name,
		position: pos,
		velocity: r3.Scale(speed, unit),
		speed:    speed,
	}, nil
}

// Name returns the unique name of the mover.
func (m *Mover) Name() string {
	return m.name
}

// Position returns the current position of the mover.
func (m *Mover) Position() common.Vector {
	return m.position
}

// Velocity returns the current velocity of the mover.
func (m *Mover) Velocity() common.Vector {
	return m.velocity
}

// Speed returns the constant speed of the mover.
func (m *Mover) Speed() float64 {
	return m.speed
}

// Leader returns the mover being pursued, or nil.
func (m *Mover) Leader() *Mover {
	return m.leader
}

// SetLeader sets the mover to pursue. A nil leader makes m move in a straight line.
// Cycles are allowed.
func (m *Mover) SetLeader(leader *Mover) {
	m.leader = leader
}

// UpdateVelocity points the velocity at the leader's current position.
// If the mover sits exactly on its leader the direction is undefined: the
// previous velocity is kept and true is returned.
func (m *Mover) UpdateVelocity() (degenerate bool) {
	if m.leader == nil {
		return false
	}
	d := r3.Sub(m.leader.position, m.position)
	n := r3.Norm(d)
	if n == 0 {
		return true
	}
	m.velocity = r3.Scale(m.speed/n, d)
	return false
}

// UpdatePosition advances the mover along its velocity for dt.
func (m *Mover) UpdatePosition(dt float64) {
	m.position = r3.Add(m.position, r3.Scale(dt, m.velocity))
}

// String representation for logging
func (m *Mover) String() string {
	leader := "none"
	if m.leader != nil {
		leader = m.leader.name
	}
	return fmt.Sprintf("Mover[%s] Pos: %s Vel: %s Speed: %.3f Leader: %s",
		m.name, common.Format(m.position), common.Format(m.velocity), m.speed, leader)
}
