package visualization

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"pursuit-sim/internal/analysis"
	"pursuit-sim/internal/common"
	"pursuit-sim/internal/projection"
	"pursuit-sim/internal/simulation"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	padding       = 30.0 // free pixels around the drawing
	rotationStep  = 5.0  // degrees per key press
	pathWidth     = 3.0
	envelopeWidth = 0.5
	markerRadius  = 4.0
)

var (
	backgroundColor = color.RGBA{0, 0, 0, 255}
	envelopeColor   = color.RGBA{255, 255, 255, 120}
)

// Cue is notified when a converged run has been fully shown.
type Cue interface {
	Capture()
}

// Options control what the renderer shows.
type Options struct {
	Animate  bool // play the trajectories back step by step
	Envelope bool // draw pursuer-leader lines at every step
	Cue      Cue  // played when a converged run has been fully shown; may be nil
}

// Renderer implements ebiten.Game to display the trajectories of a finished simulation.
type Renderer struct {
	result    simulation.Result
	projector projection.Projector
	opts      Options

	screenWidth  int
	screenHeight int

	shown  int // number of recorded steps drawn
	paused bool
	cued   bool
	dirty  bool // projection must be recomputed

	initial   []r2.Vec
	paths     [][]r2.Vec
	envelope  []analysis.Segment
	transform projection.Transform
	colors    []color.RGBA
}

// NewRenderer creates a new Ebiten renderer for a simulation result.
func NewRenderer(result simulation.Result, projector projection.Projector, opts Options) *Renderer {
	r := &Renderer{
		result:    result,
		projector: projector,
		opts:      opts,
		dirty:     true,
		colors:    common.Palette(result.NumMovers()),
	}
	if opts.Envelope {
		r.envelope = analysis.Envelope(result, result.Iterations-1)
	}
	r.restart()
	return r
}

// Run opens a window and shows the renderer until it is closed.
func Run(r *Renderer, title string, width, height, fps int) error {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)
	return ebiten.RunGame(r)
}

func (r *Renderer) restart() {
	r.cued = false
	if r.opts.Animate {
		r.shown = 0
	} else {
		r.shown = r.result.Iterations
	}
}

// Update handles input and advances the playback by one step.
func (r *Renderer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		r.paused = !r.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		r.restart()
	}
	r.handleRotation()

	if r.dirty {
		if err := r.project(); err != nil {
			// Keep the previous projection, if any.
			log.Printf("Renderer Update: projection failed: %v", err)
		}
		r.dirty = false
	}

	if !r.paused && r.shown < r.result.Iterations {
		r.shown++
	}
	if r.shown == r.result.Iterations && r.result.State == simulation.Converged && !r.cued {
		if r.opts.Cue != nil {
			r.opts.Cue.Capture()
		}
		r.cued = true
	}
	return nil
}

func (r *Renderer) handleRotation() {
	rot, ok := r.projector.(*projection.RotationProjector)
	if !ok {
		return
	}
	var dx, dy, dz float64
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		dx = rotationStep
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		dx = -rotationStep
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		dz = -rotationStep
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		dz = rotationStep
	case ebiten.IsKeyPressed(ebiten.KeyPageUp):
		dy = rotationStep
	case ebiten.IsKeyPressed(ebiten.KeyPageDown):
		dy = -rotationStep
	default:
		return
	}
	rot.Rotate(dx, dy, dz)
	r.dirty = true
}

// project projects every position and fits the whole run onto the screen,
// so the view does not move while the animation plays.
func (r *Renderer) project() error {
	all, err := r.projector.Project(r.result.AllPoints())
	if err != nil {
		return err
	}
	n := r.result.NumMovers()
	r.initial = all[:n]
	r.paths = make([][]r2.Vec, n)
	offset := n
	for i, tr := range r.result.Trajectories {
		r.paths[i] = all[offset : offset+len(tr)]
		offset += len(tr)
	}
	r.transform = projection.Fit(all, r.screenWidth, r.screenHeight, padding)
	return nil
}

// Draw is called every frame to render the trajectories.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if r.paths == nil {
		ebitenutil.DebugPrint(screen, "Waiting for projection...")
		return
	}

	// Envelope first so the paths are drawn over it.
	for _, seg := range r.envelope {
		if seg.Step >= r.shown {
			continue
		}
		x0, y0 := r.transform.Apply(r.paths[seg.Pursuer][seg.Step])
		x1, y1 := r.transform.Apply(r.paths[seg.Leader][seg.Step])
		vector.StrokeLine(screen, x0, y0, x1, y1, envelopeWidth, envelopeColor, true)
	}

	for i, path := range r.paths {
		c := r.colors[i]
		x0, y0 := r.transform.Apply(r.initial[i])
		for k := 0; k < r.shown; k++ {
			x1, y1 := r.transform.Apply(path[k])
			vector.StrokeLine(screen, x0, y0, x1, y1, pathWidth, c, true)
			x0, y0 = x1, y1
		}
		vector.DrawFilledCircle(screen, x0, y0, markerRadius, c, true)
	}

	r.drawDebugInfo(screen)
}

func (r *Renderer) drawDebugInfo(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("Run %s: %s after %d iterations", r.result.ID[:min(8, len(r.result.ID))], r.result.State, r.result.Iterations),
		fmt.Sprintf("Step %d/%d  Time %.2f  FPS %.1f", r.shown, r.result.Iterations, float64(r.shown)*r.result.Dt, ebiten.ActualFPS()),
	}
	if _, ok := r.projector.(*projection.RotationProjector); ok {
		lines = append(lines, "Arrows/PgUp/PgDn rotate, Space pause, R restart, Esc quit")
	} else {
		lines = append(lines, "Space pause, R restart, Esc quit")
	}
	for i, name := range r.result.Names {
		if j := r.result.Leaders[i]; j >= 0 {
			lines = append(lines, fmt.Sprintf("  %s -> %s", name, r.result.Names[j]))
		} else {
			lines = append(lines, fmt.Sprintf("  %s", name))
		}
	}
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}

// Layout is called when the window size changes.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != r.screenWidth || outsideHeight != r.screenHeight {
		r.screenWidth = outsideWidth
		r.screenHeight = outsideHeight
		r.dirty = true
	}
	return r.screenWidth, r.screenHeight
}
