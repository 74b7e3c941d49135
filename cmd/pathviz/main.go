package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pathstep/grid"
	"github.com/lixenwraith/pathstep/search"
	"github.com/lixenwraith/pathstep/session"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS

	speedMin     = 1
	speedMax     = 100
	speedDefault = 60
	speedStep    = 5

	foundToneHz  = 880
	noPathToneHz = 220
	toneDuration = 120 * time.Millisecond
)

var (
	algoFlag     = flag.String("algo", search.DefaultID, "Algorithm id")
	densityFlag  = flag.String("density", grid.DefaultDensity, "Grid density: tiny|small|medium|large|xlarge|extreme|insane")
	speedFlag    = flag.Int("speed", speedDefault, "Speed 1-100, 100 = instant")
	diagonalFlag = flag.Bool("diagonal", false, "Allow diagonal moves")
	seedFlag     = flag.Int64("seed", 0, "Random seed for mazes and random walk (0 = time)")
	soundFlag    = flag.Bool("sound", false, "Play a tone when a run finishes")
	debugFlag    = flag.String("debug", "", "Write debug log to file")
	metricsFlag  = flag.String("metrics", "", "Serve Prometheus metrics on addr (e.g. :9100)")
)

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger(*debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open debug log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	density, ok := grid.LookupDensity(*densityFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown density %q\n", *densityFlag)
		os.Exit(2)
	}

	opts := []session.Option{session.WithLogger(logger), session.WithSeed(*seedFlag)}
	if *metricsFlag != "" {
		reg := prometheus.NewRegistry()
		opts = append(opts, session.WithMetrics(session.NewMetrics(reg)))
		go serveMetrics(*metricsFlag, reg, logger)
	}

	sess := session.New(grid.NewFromDensity(density), opts...)
	if err := sess.Select(*algoFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%v (available: %v)\n", err, search.IDs())
		os.Exit(2)
	}
	sess.SetDiagonal(*diagonalFlag)

	app, err := NewApp(sess, logger, density)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	app.speed = min(max(*speedFlag, speedMin), speedMax)

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			app.screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPATHVIZ CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer app.cleanup()

	app.run()
}

func newLogger(path string) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	if path == "" {
		logger.SetOutput(io.Discard)
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	return logger, func() { f.Close() }, nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *logrus.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.WithField("addr", addr).Info("metrics endpoint listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.WithError(err).Error("metrics endpoint stopped")
	}
}

// App is the interactive terminal driver
type App struct {
	screen tcell.Screen
	sess   *session.Session
	log    *logrus.Logger

	densities []grid.Density
	density   int
	speed     int
	tool      session.Tool
	paused    bool
	palette   Palette

	// Audio
	audioInit bool
}

func NewApp(sess *session.Session, logger *logrus.Logger, d grid.Density) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	screen.EnableMouse(tcell.MouseDragEvents)

	a := &App{
		screen:    screen,
		sess:      sess,
		log:       logger,
		densities: grid.Densities(),
		speed:     speedDefault,
		tool:      session.ToolWall,
		palette:   PaletteFor(sess.Entry().ID),
	}
	for i, candidate := range a.densities {
		if candidate.Name == d.Name {
			a.density = i
		}
	}

	if *soundFlag {
		if err := a.initAudio(); err != nil {
			// Non-fatal, the visualizer runs without sound
			logger.WithError(err).Warn("audio initialization failed")
		}
	}
	return a, nil
}

func (a *App) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

func (a *App) playTone(hz int) {
	if !a.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, float64(hz))
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}

func (a *App) interval() time.Duration {
	return session.IntervalFromSpeed(a.speed, speedMin, speedMax)
}

// stepTicker period; instant mode still needs a positive period to poll on
func (a *App) tickPeriod() time.Duration {
	if d := a.interval(); d > 0 {
		return d
	}
	return frameInterval
}

// advance moves the active run forward one tick
func (a *App) advance() {
	if a.paused || !a.sess.Running() {
		return
	}

	if a.interval() == 0 {
		if err := a.sess.Run(context.Background(), 0); err != nil {
			a.log.WithError(err).Debug("instant run interrupted")
		}
		if st := a.sess.Stats(); st.Status != search.Running {
			a.onFinish(st.Status)
		}
		return
	}

	if r, active := a.sess.Step(); !active && r.Terminal() {
		a.onFinish(r.Status)
	}
}

func (a *App) onFinish(status search.Status) {
	switch status {
	case search.Found:
		a.playTone(foundToneHz)
	case search.NoPath:
		a.playTone(noPathToneHz)
	}
}

func (a *App) selectAlgorithm(id string) {
	if err := a.sess.Select(id); err != nil {
		a.log.WithError(err).Warn("select failed")
		return
	}
	a.palette = PaletteFor(id)
	a.paused = false
}

func (a *App) cycleAlgorithm(delta int) {
	ids := search.IDs()
	cur := a.sess.Entry().ID
	for i, id := range ids {
		if id == cur {
			a.selectAlgorithm(ids[(i+delta+len(ids))%len(ids)])
			return
		}
	}
}

func (a *App) resize(delta int) {
	next := a.density + delta
	if next < 0 || next >= len(a.densities) {
		return
	}
	a.density = next
	a.sess.Resize(a.densities[next])
	a.screen.Clear()
}

// handleInput returns false when the app should exit
func (a *App) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		switch ev.Key() {
		case tcell.KeyTab:
			a.cycleAlgorithm(1)
			return true
		case tcell.KeyBacktab:
			a.cycleAlgorithm(-1)
			return true
		case tcell.KeyRune:
		default:
			return true
		}

		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			if a.sess.Running() {
				a.sess.Stop()
			} else {
				a.sess.Start()
			}
			a.paused = false
		case 'p':
			a.paused = !a.paused
		case '.':
			// Single step while paused
			if a.paused {
				if res, active := a.sess.Step(); !active && res.Terminal() {
					a.onFinish(res.Status)
				}
			}
		case 'w':
			a.tool = session.ToolWall
		case 's':
			a.tool = session.ToolStart
		case 'e':
			a.tool = session.ToolEnd
		case 'x':
			a.tool = session.ToolErase
		case 'd':
			a.sess.SetDiagonal(!a.sess.Diagonal())
		case 'm':
			a.generate(session.MazeDense)
		case 'M':
			a.generate(session.MazeLight)
		case 'r':
			a.sess.ResetGrid()
		case '+', '=':
			a.speed = min(a.speed+speedStep, speedMax)
		case '-', '_':
			a.speed = max(a.speed-speedStep, speedMin)
		case ']':
			a.resize(1)
		case '[':
			a.resize(-1)
		default:
			if r >= '1' && r <= '9' {
				if ids := search.IDs(); int(r-'1') < len(ids) {
					a.selectAlgorithm(ids[r-'1'])
				}
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return true
		}
		mx, my := ev.Position()
		if p, ok := a.cellAt(mx, my); ok {
			a.sess.Apply(a.tool, p)
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *App) generate(kind session.MazeKind) {
	if err := a.sess.GenerateMaze(kind); err != nil {
		a.log.WithError(err).Warn("maze generation failed")
	}
	a.paused = false
}

func (a *App) run() {
	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	period := a.tickPeriod()
	step := time.NewTicker(period)
	defer step.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			if p := a.tickPeriod(); p != period {
				period = p
				step.Reset(period)
			}

		case <-step.C:
			a.advance()

		case <-frame.C:
			a.draw()
		}
	}
}

func (a *App) cleanup() {
	a.sess.Stop()
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}
