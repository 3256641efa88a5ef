package config

import (
	"errors"
	"fmt"
	"strings"

	"pursuit-sim/internal/common"
	"pursuit-sim/internal/simulation"

	"github.com/BurntSushi/toml"
)

// Mover is the description of one mover in a scenario file.
type Mover struct {
	Name      string    `toml:"name"`
	Position  []float64 `toml:"position"`
	Direction []float64 `toml:"direction"` // only the direction is used
	Speed     float64   `toml:"speed"`
	Leader    string    `toml:"leader"` // empty for a free mover
}

// Config holds the parameters of a pursuit scenario and how to display it.
type Config struct {
	Name string `toml:"name"`

	Dt         float64 `toml:"dt"`         // duration of a time step
	Iterations int     `toml:"iterations"` // maximum number of time steps
	Closeness  float64 `toml:"closeness"`  // stop once every pursuer is this close to its leader

	// Display parameters
	Animation       bool `toml:"animation"` // play the trajectories back instead of drawing them at once
	Envelope        bool `toml:"envelope"`  // draw pursuer-leader lines at every step
	FramesPerSecond int  `toml:"frames_per_second"`
	WindowWidth     int  `toml:"window_width"`
	WindowHeight    int  `toml:"window_height"`

	Movers []Mover `toml:"movers"`
}

// DefaultConfig returns the default parameters. It has no movers.
func DefaultConfig() *Config {
	return &Config{
		Name:            "pursuit",
		Dt:              1.0,
		Iterations:      1000,
		Closeness:       1.0,
		Animation:       false,
		Envelope:        true,
		FramesPerSecond: 20,
		WindowWidth:     400,
		WindowHeight:    400,
	}
}

// ParseConfig parses the TOML config file whose path is provided.
// Values in the file overwrite the default parameters.
func ParseConfig(path string) (*Config, error) {
	conf := DefaultConfig()
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return conf, nil
}

// Decode parses a scenario from TOML text over the default parameters.
func Decode(data string) (*Config, error) {
	conf := DefaultConfig()
	md, err := toml.Decode(data, conf)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	return conf, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// Validate checks the display parameters. Simulation parameters are checked
// when the simulation is built.
func (c *Config) Validate() error {
	var errs []error
	if c.FramesPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("frames_per_second must be positive, got %d", c.FramesPerSecond))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if len(c.Movers) == 0 {
		errs = append(errs, errors.New("scenario has no movers"))
	}
	return errors.Join(errs...)
}

// SimulationConfig converts the scenario into the configuration of a simulation.
func (c *Config) SimulationConfig() (simulation.Config, error) {
	sc := simulation.Config{
		Movers:        make([]simulation.MoverConfig, 0, len(c.Movers)),
		Dt:            c.Dt,
		MaxIterations: c.Iterations,
		Closeness:     c.Closeness,
	}
	for i, m := range c.Movers {
		pos, err := common.FromSlice(m.Position)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("%w: mover %d (%s) position: %v", simulation.ErrInvalidConfiguration, i, m.Name, err)
		}
		dir, err := common.FromSlice(m.Direction)
		if err != nil {
			return simulation.Config{}, fmt.Errorf("%w: mover %d (%s) direction: %v", simulation.ErrInvalidConfiguration, i, m.Name, err)
		}
		sc.Movers = append(sc.Movers, simulation.MoverConfig{
			Name:      m.Name,
			Position:  pos,
			Direction: dir,
			Speed:     m.Speed,
			Leader:    m.Leader,
		})
	}
	return sc, nil
}

// NewSimulation builds a simulation from the scenario.
func (c *Config) NewSimulation() (*simulation.Simulation, error) {
	sc, err := c.SimulationConfig()
	if err != nil {
		return nil, err
	}
	return simulation.NewSimulation(sc)
}
