package tui

import (
	"fmt"
	"math"
	"time"

	"pursuit-sim/internal/analysis"
	"pursuit-sim/internal/common"
	"pursuit-sim/internal/projection"
	"pursuit-sim/internal/simulation"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	pathRune     = '█'
	envelopeRune = '·'
	markerRune   = '@'
	headerRows   = 1
)

// Cue is notified when a converged run has been fully shown.
type Cue interface {
	Capture()
}

// Options control what the view shows.
type Options struct {
	Animate  bool
	Envelope bool
	Cue      Cue // may be nil
}

// View renders a finished simulation on a terminal screen.
type View struct {
	result   simulation.Result
	opts     Options
	initial  []r2.Vec
	paths    [][]r2.Vec
	envelope []analysis.Segment
	styles   []tcell.Style

	shown  int
	paused bool
	cued   bool
}

// NewView projects the result once; the projection does not change while the view runs.
func NewView(result simulation.Result, projector projection.Projector, opts Options) (*View, error) {
	all, err := projector.Project(result.AllPoints())
	if err != nil {
		return nil, fmt.Errorf("projecting trajectories: %w", err)
	}
	v := &View{result: result, opts: opts}
	n := result.NumMovers()
	v.initial = all[:n]
	offset := n
	for _, tr := range result.Trajectories {
		v.paths = append(v.paths, all[offset:offset+len(tr)])
		offset += len(tr)
	}
	if opts.Envelope {
		v.envelope = analysis.Envelope(result, result.Iterations-1)
	}
	for _, c := range common.Palette(n) {
		v.styles = append(v.styles, tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
	}
	v.restart()
	return v, nil
}

func (v *View) restart() {
	v.cued = false
	if v.opts.Animate {
		v.shown = 0
	} else {
		v.shown = v.result.Iterations
	}
}

// Shown returns the number of recorded steps currently drawn.
func (v *View) Shown() int {
	return v.shown
}

// Advance moves the playback one step forward unless paused or finished.
func (v *View) Advance() {
	if !v.paused && v.shown < v.result.Iterations {
		v.shown++
	}
	if v.shown == v.result.Iterations && v.result.State == simulation.Converged && !v.cued {
		if v.opts.Cue != nil {
			v.opts.Cue.Capture()
		}
		v.cued = true
	}
}

// Rasterize draws the visible part of the trajectories on a canvas of the given size.
func (v *View) Rasterize(width, height int) *Canvas {
	c := NewCanvas(width, height)
	cell := v.cellMapper(width, height)

	for _, seg := range v.envelope {
		if seg.Step >= v.shown {
			continue
		}
		x0, y0 := cell(v.paths[seg.Pursuer][seg.Step])
		x1, y1 := cell(v.paths[seg.Leader][seg.Step])
		c.Line(x0, y0, x1, y1, Envelope)
	}
	for i, path := range v.paths {
		x0, y0 := cell(v.initial[i])
		c.Set(x0, y0, i)
		for k := 0; k < v.shown; k++ {
			x1, y1 := cell(path[k])
			c.Line(x0, y0, x1, y1, i)
			x0, y0 = x1, y1
		}
	}
	return c
}

// Draw paints the view on screen.
func (v *View) Draw(screen tcell.Screen) {
	screen.Clear()
	width, height := screen.Size()
	c := v.Rasterize(width, height-headerRows)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			switch owner := c.At(x, y); owner {
			case Empty:
			case Envelope:
				screen.SetContent(x, y+headerRows, envelopeRune, nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
			default:
				screen.SetContent(x, y+headerRows, pathRune, nil, v.styles[owner])
			}
		}
	}

	// Current positions on top.
	cell := v.cellMapper(c.Width, c.Height)
	for i, path := range v.paths {
		p := v.initial[i]
		if v.shown > 0 {
			p = path[v.shown-1]
		}
		x, y := cell(p)
		screen.SetContent(x, y+headerRows, markerRune, nil, v.styles[i].Bold(true))
	}

	status := fmt.Sprintf(" %s: step %d/%d (%s)  space pause, r restart, q quit", v.result.ID[:min(8, len(v.result.ID))], v.shown, v.result.Iterations, v.result.State)
	for x, r := range []rune(status) {
		if x >= width {
			break
		}
		screen.SetContent(x, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	screen.Show()
}

func (v *View) allPoints() []r2.Vec {
	all := make([]r2.Vec, 0, len(v.initial))
	all = append(all, v.initial...)
	for _, p := range v.paths {
		all = append(all, p...)
	}
	return all
}

// cellMapper fits the whole run onto a grid of the given size. Terminal cells
// are about twice as tall as wide, so y is squeezed by half.
func (v *View) cellMapper(width, height int) func(r2.Vec) (int, int) {
	tr := projection.Fit(v.allPoints(), width, 2*height, 1)
	return func(p r2.Vec) (int, int) {
		x, y := tr.Apply(p)
		return int(math.Floor(float64(x))), int(math.Floor(float64(y) / 2))
	}
}

// handleInput returns false when the view should close.
func (v *View) handleInput(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
			case 'r':
				v.restart()
			}
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

// Run shows the view on an initialised screen until the user quits.
func (v *View) Run(screen tcell.Screen, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(max(fps, 1)))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw(screen)
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(screen, ev) {
				return
			}
		case <-ticker.C:
			v.Advance()
			v.Draw(screen)
		}
	}
}
