// Package search implements stepwise grid path searches.
//
// Every variant satisfies Algorithm: Init prepares a run against a live
// *grid.Grid, and each Step performs exactly one frontier expansion, writing
// Visited/Frontier annotations into the grid as it goes. A run ends on the
// first Step that returns Found or NoPath; on Found the cells between Start
// and End are marked Path. Further Step calls are no-ops that repeat the
// terminal status.
//
// The grid must not be edited by the caller while a run is in progress.
package search

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/pathstep/grid"
)

// Status is the outcome of a single Step
type Status uint8

const (
	Running Status = iota
	Found
	NoPath
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Found:
		return "found"
	case NoPath:
		return "no-path"
	default:
		return "unknown"
	}
}

// Result is returned by Step
// NodesVisited counts cells finalized during that call
type Result struct {
	Status       Status
	NodesVisited int
}

// Terminal reports whether the run has ended
func (r Result) Terminal() bool {
	return r.Status != Running
}

// Algorithm is the common stepwise contract
type Algorithm interface {
	// Init clears previous annotations and seeds the frontier with Start
	Init()
	// Step advances the search by one frontier expansion
	Step() Result
}

// Factory constructs a variant bound to a grid
type Factory func(g *grid.Grid, opts ...Option) Algorithm

// Options defines per-run parameters
type Options struct {
	Diagonal bool
	Rand     *rand.Rand
}

// Option is a function that modifies Options
type Option func(*Options)

// WithDiagonal enables 8-connected movement
func WithDiagonal(on bool) Option {
	return func(o *Options) { o.Diagonal = on }
}

// WithRand sets the random source used by randomized variants
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithSeed seeds a private random source (0 = time based)
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = newRand(seed) }
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// --- Shared run state ---

// walk holds the bookkeeping every variant needs
type walk struct {
	g    *grid.Grid
	opts Options

	start, end grid.Point
	came       map[grid.Point]grid.Point
	nbuf       []grid.Point

	ready bool
	done  bool
	last  Status
}

func newWalk(g *grid.Grid, opts []Option) walk {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return walk{g: g, opts: o, nbuf: make([]grid.Point, 0, 8)}
}

// reset clears annotations and bookkeeping for a fresh run
func (w *walk) reset() {
	w.g.ClearWalkStates()
	w.start, w.end = w.g.Start, w.g.End
	w.came = make(map[grid.Point]grid.Point)
	w.ready = true
	w.done = false
	w.last = Running
}

// idle short-circuits Step before Init and after termination
func (w *walk) idle() (Result, bool) {
	if !w.ready {
		return Result{Status: NoPath}, true
	}
	if w.done {
		return Result{Status: w.last}, true
	}
	return Result{}, false
}

func (w *walk) finish(status Status, visited int) Result {
	w.done = true
	w.last = status
	return Result{Status: status, NodesVisited: visited}
}

func (w *walk) neighbors(p grid.Point) []grid.Point {
	w.nbuf = w.g.Neighbors(p, w.opts.Diagonal, w.nbuf[:0])
	return w.nbuf
}

// heuristic is Manhattan distance to End, Chebyshev in diagonal mode so it stays admissible
func (w *walk) heuristic(p grid.Point) int {
	if w.opts.Diagonal {
		return p.Chebyshev(w.end)
	}
	return p.Manhattan(w.end)
}

// tracePath marks predecessors of p as Path until a cell with no predecessor
func (w *walk) tracePath(came map[grid.Point]grid.Point, p grid.Point) {
	for {
		prev, ok := came[p]
		if !ok {
			return
		}
		w.g.Paint(prev, grid.Path)
		p = prev
	}
}

func (w *walk) rng() *rand.Rand {
	if w.opts.Rand == nil {
		w.opts.Rand = newRand(0)
	}
	return w.opts.Rand
}
