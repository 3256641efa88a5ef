package simulation

import "errors"

var (
	// ErrInvalidConfiguration is wrapped by every construction error.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrAlreadyRun is returned by Run on a simulation that has already finished.
	ErrAlreadyRun = errors.New("simulation already run")
)

// DegenerateEvent records a pursuer found exactly on its leader's position,
// where the pursuit direction is undefined and the previous velocity is kept.
type DegenerateEvent struct {
	Step   int // number of integrations completed when detected
	Mover  string
	Leader string
}
