package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"pursuit-sim/internal/analysis"
	"pursuit-sim/internal/audio"
	"pursuit-sim/internal/config"
	"pursuit-sim/internal/export"
	"pursuit-sim/internal/projection"
	"pursuit-sim/internal/simulation"
	"pursuit-sim/internal/tui"
	"pursuit-sim/internal/visualization"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/zenity"
)

type options struct {
	configPath string
	scenario   string
	pick       bool
	view       string
	projection string
	out        string
	animate    bool
	sound      bool
	verbose    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a TOML scenario file")
	flag.StringVar(&opts.scenario, "scenario", "three-body", "built-in scenario: "+strings.Join(config.ScenarioNames(), ", "))
	flag.BoolVar(&opts.pick, "pick", false, "choose the scenario file in a dialog")
	flag.StringVar(&opts.view, "view", "window", "how to show the result: none, window or terminal")
	flag.StringVar(&opts.projection, "projection", "rotate", "3-D to 2-D projection: rotate or pca")
	flag.StringVar(&opts.out, "out", "", "write trajectories to this CSV file")
	flag.BoolVar(&opts.animate, "animate", false, "play the trajectories back (overrides the scenario)")
	flag.BoolVar(&opts.sound, "sound", false, "play a tone when the pursuit ends in capture")
	flag.BoolVar(&opts.verbose, "verbose", false, "log every mover after each step")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so deferred cleanup always happens.
func run(opts options) error {
	if opts.pick {
		path, err := pickConfig()
		if err != nil {
			return fmt.Errorf("choosing scenario file: %w", err)
		}
		if path == "" {
			return nil
		}
		opts.configPath = path
	}

	conf, err := loadConfig(opts.configPath, opts.scenario)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}
	if opts.animate {
		conf.Animation = true
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid scenario %s: %w", conf.Name, err)
	}

	// --- Create and run the simulation ---
	sim, err := conf.NewSimulation()
	if err != nil {
		return fmt.Errorf("creating simulation: %w", err)
	}
	sim.SetLogger(log.Default())
	sim.SetVerbose(opts.verbose)
	if err := sim.Run(); err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}
	sim.PrintState()

	result := sim.Result()
	printSummary(result)

	if opts.out != "" {
		if err := export.WriteCSVFile(opts.out, result); err != nil {
			return fmt.Errorf("exporting trajectories: %w", err)
		}
		log.Printf("Trajectories written to %s", opts.out)
	}

	projector, err := newProjector(opts.projection)
	if err != nil {
		return err
	}

	var cue *audio.Cue
	if opts.sound {
		cue, err = audio.NewCue()
		if err != nil {
			// Non-fatal, the view works without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cue.Close()
	}

	switch opts.view {
	case "none":
	case "window":
		r := visualization.NewRenderer(result, projector, visualization.Options{
			Animate:  conf.Animation,
			Envelope: conf.Envelope,
			Cue:      cueOrNil(cue),
		})
		title := fmt.Sprintf("Pursuit Curves: %s", conf.Name)
		if err := visualization.Run(r, title, conf.WindowWidth, conf.WindowHeight, conf.FramesPerSecond); err != nil {
			return fmt.Errorf("running renderer: %w", err)
		}
	case "terminal":
		if err := runTerminal(result, projector, conf, cueOrNil(cue)); err != nil {
			return fmt.Errorf("running terminal view: %w", err)
		}
	default:
		return fmt.Errorf("unknown view %q", opts.view)
	}
	return nil
}

func loadConfig(path, scenario string) (*config.Config, error) {
	if path != "" {
		return config.ParseConfig(path)
	}
	return config.Scenario(scenario)
}

func pickConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Pursuit Scenario"),
		zenity.FileFilters{{
			Name:     "Scenario",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}

func newProjector(name string) (projection.Projector, error) {
	switch name {
	case "rotate":
		return &projection.RotationProjector{}, nil
	case "pca":
		return projection.NewPCAProjector(), nil
	default:
		return nil, fmt.Errorf("unknown projection %q", name)
	}
}

// cueOrNil keeps a missing speaker from becoming a non-nil interface.
func cueOrNil(c *audio.Cue) tui.Cue {
	if !c.Enabled() {
		return nil
	}
	return c
}

func runTerminal(result simulation.Result, projector projection.Projector, conf *config.Config, cue tui.Cue) error {
	v, err := tui.NewView(result, projector, tui.Options{
		Animate:  conf.Animation,
		Envelope: conf.Envelope,
		Cue:      cue,
	})
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	v.Run(screen, conf.FramesPerSecond)
	return nil
}

func printSummary(result simulation.Result) {
	log.Printf("Run %s finished: %s after %d iterations (t = %.2f)",
		result.ID, result.State, result.Iterations, float64(result.Iterations)*result.Dt)
	for _, ev := range result.Events {
		log.Printf("  step %d: %s caught %s exactly", ev.Step, ev.Mover, ev.Leader)
	}
	for _, s := range analysis.Summarize(result) {
		if math.IsNaN(s.FinalSeparation) {
			log.Printf("  %-12s path %.3f", s.Name, s.PathLength)
			continue
		}
		log.Printf("  %-12s path %.3f  -> %s  final %.3f  min %.3f",
			s.Name, s.PathLength, s.Leader, s.FinalSeparation, s.MinSeparation)
	}
}
