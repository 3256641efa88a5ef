package config

import (
	"fmt"
	"math"
	"sort"
)

const (
	leaderSpeed = 2.0
	speedRatio  = 2.0 // follower speed over leader speed in the two-body problem

	// Discrete ring pursuit settles on a polygon whose side is the distance
	// covered in one step, so capture is declared above that distance.
	ringCloseness = 1.5
)

var scenarios = map[string]func() *Config{
	"two-body":   twoBody,
	"three-body": threeBody,
	"four-body":  fourBody,
}

// ScenarioNames returns the names of the built-in scenarios.
func ScenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Scenario returns a fresh copy of the named built-in scenario.
func Scenario(name string) (*Config, error) {
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q, available: %v", name, ScenarioNames())
	}
	return build(), nil
}

// twoBody is a follower chasing a leader that moves in a straight line.
func twoBody() *Config {
	c := DefaultConfig()
	c.Name = "two-body"
	c.Closeness = 2 * c.Dt
	c.Movers = []Mover{
		{Name: "Follower A", Position: []float64{10, 250, 0}, Direction: []float64{0, 1, 0}, Speed: speedRatio * leaderSpeed, Leader: "Leader B"},
		{Name: "Leader B", Position: []float64{10, 10, 0}, Direction: []float64{1, 0.25, 0}, Speed: leaderSpeed},
	}
	return c
}

// threeBody is three movers on an equilateral triangle, each chasing the next.
func threeBody() *Config {
	c := DefaultConfig()
	c.Name = "three-body"
	c.Closeness = ringCloseness * leaderSpeed * c.Dt
	side := 200.0
	c.Movers = []Mover{
		{Name: "A", Position: []float64{10, 10, 0}, Direction: []float64{1, 0, 0}, Speed: leaderSpeed, Leader: "B"},
		{Name: "B", Position: []float64{10 + side, 10, 0}, Direction: []float64{1, 0, 0}, Speed: leaderSpeed, Leader: "C"},
		{Name: "C", Position: []float64{10 + side/2, 10 + side*math.Sqrt(3)/2, 0}, Direction: []float64{1, 0, 0}, Speed: leaderSpeed, Leader: "A"},
	}
	return c
}

// fourBody is four movers on a square, each chasing the next.
func fourBody() *Config {
	c := DefaultConfig()
	c.Name = "four-body"
	c.Closeness = ringCloseness * leaderSpeed * c.Dt
	side := 200.0
	c.Movers = []Mover{
		{Name: "A", Position: []float64{10, 10, 0}, Direction: []float64{1, 0, 0}, Speed: leaderSpeed, Leader: "B"},
		{Name: "B", Position: []float64{10 + side, 10, 0}, Direction: []float64{0, 1, 0}, Speed: leaderSpeed, Leader: "C"},
		{Name: "C", Position: []float64{10 + side, 10 + side, 0}, Direction: []float64{-1, 0, 0}, Speed: leaderSpeed, Leader: "D"},
		{Name: "D", Position: []float64{10, 10 + side, 0}, Direction: []float64{0, -1, 0}, Speed: leaderSpeed, Leader: "A"},
	}
	return c
}
