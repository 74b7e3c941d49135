// Package session drives one search over a grid: selection, pacing, stats and
// the editing rules that apply between runs
package session

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pathstep/grid"
	"github.com/lixenwraith/pathstep/maze"
	"github.com/lixenwraith/pathstep/search"
)

var (
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")
	ErrUnknownMaze      = errors.New("session: unknown maze kind")
	ErrIdle             = errors.New("session: no active run")
)

// MazeKind selects a generator
type MazeKind string

const (
	MazeLight MazeKind = "light"
	MazeDense MazeKind = "dense"
)

// Stats reports the current or last run
type Stats struct {
	Algorithm     string
	Status        search.Status
	Steps         int
	NodesExplored int
	PathLength    int // Path cells between the markers, 0 unless found
	Elapsed       time.Duration
}

// Option configures a Session
type Option func(*Session)

// WithLogger routes run lifecycle logs to l
func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMetrics reports steps and runs to m
func WithMetrics(m *Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithSeed fixes the random source used by mazes and the random walk
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// Session owns a grid and at most one active search over it
// All methods are safe for concurrent use
type Session struct {
	mu sync.Mutex

	g        *grid.Grid
	entry    search.Entry
	alg      search.Algorithm
	diagonal bool
	running  bool
	began    time.Time
	stats    Stats

	seed    int64
	mazes   *maze.Generator
	log     *logrus.Logger
	metrics *Metrics
	now     func() time.Time
}

// New creates a session over g with the default algorithm selected
func New(g *grid.Grid, opts ...Option) *Session {
	s := &Session{g: g, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logrus.New()
		s.log.SetOutput(io.Discard)
	}
	s.mazes = maze.New(s.seed)
	s.entry, _ = search.Lookup(search.DefaultID)
	s.stats.Algorithm = s.entry.ID
	s.stats.Status = search.Running
	return s
}

// Select switches algorithm, aborting any active run and clearing annotations
func (s *Session) Select(id string) error {
	e, ok := search.Lookup(id)
	if !ok {
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.entry = e
	s.g.ClearWalkStates()
	s.resetStatsLocked()
	return nil
}

// Entry returns the selected algorithm
func (s *Session) Entry() search.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entry
}

// SetDiagonal toggles 8-way movement for subsequent runs
func (s *Session) SetDiagonal(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.diagonal == on {
		return
	}
	s.stopLocked()
	s.diagonal = on
	s.g.ClearWalkStates()
	s.resetStatsLocked()
}

func (s *Session) Diagonal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diagonal
}

// --- Run lifecycle ---

// Start begins a fresh run of the selected algorithm, replacing any active one
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()

	opts := []search.Option{search.WithDiagonal(s.diagonal)}
	if s.seed != 0 {
		opts = append(opts, search.WithSeed(s.seed))
	}
	s.alg = s.entry.New(s.g, opts...)
	s.alg.Init()
	s.running = true
	s.resetStatsLocked()
	s.began = s.now()

	s.log.WithFields(logrus.Fields{
		"algorithm": s.entry.ID,
		"diagonal":  s.diagonal,
		"width":     s.g.Width,
		"height":    s.g.Height,
	}).Info("run started")
}

// Step advances the active run by one expansion
// The bool reports whether the run is still active afterwards
func (s *Session) Step() (search.Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return search.Result{Status: s.stats.Status}, false
	}

	r := s.alg.Step()
	s.stats.Steps++
	s.stats.NodesExplored += r.NodesVisited
	s.stats.Status = r.Status
	s.metrics.observeStep(r.NodesVisited)

	if !r.Terminal() {
		return r, true
	}

	if r.Status == search.Found {
		s.stats.PathLength = s.g.Count(grid.Path)
	}
	s.finishLocked(r.Status.String())
	return r, false
}

// Run steps the active run until it terminates or ctx is done
// An interval of 0 runs to completion without pausing; a cancelled ctx leaves the
// run paused so it can be resumed by another Run, possibly at a new interval
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	if !s.Running() {
		return ErrIdle
	}

	if interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "run paused")
			}
			if _, active := s.Step(); !active {
				return nil
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "run paused")
		case <-ticker.C:
			if _, active := s.Step(); !active {
				return nil
			}
		}
	}
}

// Stop aborts the active run, leaving its annotations on the grid
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Stats returns a snapshot; Elapsed keeps counting while a run is active
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats
	if s.running {
		st.Elapsed = s.now().Sub(s.began)
	}
	return st
}

func (s *Session) stopLocked() {
	if !s.running {
		return
	}
	s.finishLocked(OutcomeStopped)
}

func (s *Session) finishLocked(outcome string) {
	s.running = false
	s.alg = nil
	s.stats.Elapsed = s.now().Sub(s.began)
	s.metrics.observeRun(s.entry.ID, outcome, s.stats.Elapsed.Seconds())

	s.log.WithFields(logrus.Fields{
		"algorithm": s.entry.ID,
		"outcome":   outcome,
		"steps":     s.stats.Steps,
		"nodes":     s.stats.NodesExplored,
		"path":      s.stats.PathLength,
		"elapsed":   s.stats.Elapsed,
	}).Info("run finished")
}

func (s *Session) resetStatsLocked() {
	s.stats = Stats{Algorithm: s.entry.ID, Status: search.Running}
}

// --- Grid editing (refused while a run is active) ---

// Apply uses tool at p; it reports false when a run is active
func (s *Session) Apply(tool Tool, p grid.Point) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	tool.apply(s.g, p)
	return true
}

// Resize reallocates the grid to a density preset
func (s *Session) Resize(d grid.Density) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.g.SetSize(d.Cols, d.Rows)
	s.resetStatsLocked()
	s.log.WithField("density", d.Name).Debug("grid resized")
}

// ResetGrid clears walls and annotations and re-seeds the markers
func (s *Session) ResetGrid() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.g.Reset()
	s.resetStatsLocked()
}

// GenerateMaze replaces the grid's walls with a generated layout
func (s *Session) GenerateMaze(kind MazeKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case MazeLight:
		s.stopLocked()
		s.mazes.Light(s.g)
	case MazeDense:
		s.stopLocked()
		s.mazes.Dense(s.g)
	default:
		return errors.Wrapf(ErrUnknownMaze, "%q", kind)
	}
	s.resetStatsLocked()
	s.log.WithField("kind", kind).Debug("maze generated")
	return nil
}

// View calls fn with the grid while holding the session lock
// fn must not retain g or call back into the session
func (s *Session) View(fn func(g *grid.Grid)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}
