package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/shardbreak/shardbreak/internal/audio"
	"github.com/shardbreak/shardbreak/internal/config"
	"github.com/shardbreak/shardbreak/internal/game"
	"github.com/shardbreak/shardbreak/internal/level"
	"github.com/shardbreak/shardbreak/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *game.World
	mouse    ui.MouseTracker

	// Horizontal input accumulated between ticks, in world units.
	pendingDX float64

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application. It builds the
// level, initializes the screen and runs the frame loop until the
// player quits.
func (a *App) Run() error {
	// Sound is optional; the game works without it.
	if !a.cfg.NoSound {
		_ = audio.Init()
	}

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	obstacles, err := buildObstacles(a.cfg, seed)
	if err != nil {
		return fmt.Errorf("failed to build %s layout: %w", a.cfg.Layout, err)
	}
	a.world = game.NewWorld(a.cfg.Width, a.cfg.Height, obstacles)

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.screen.EnableMouse()
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	runErr := a.mainLoop()

	a.cleanup()
	return runErr
}

// buildObstacles constructs the one-time obstacle layout.
func buildObstacles(cfg *config.Config, seed int64) ([]game.Obstacle, error) {
	lcfg := level.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
		Cells:  cfg.Cells,
		Relax:  cfg.Relax,
		HPMin:  cfg.HPMin,
		HPMax:  cfg.HPMax,
		Seed:   seed,
	}

	switch cfg.Layout {
	case config.LayoutGrid:
		return level.Grid(lcfg)
	case config.LayoutShards:
		return level.Shards(lcfg)
	case config.LayoutMixed:
		bricks, err := level.Grid(lcfg)
		if err != nil {
			return nil, err
		}
		shards, err := level.Shards(lcfg)
		if err != nil {
			return nil, err
		}
		return append(bricks, shards...), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", cfg.Layout)
	}
}

// mainLoop runs input sampling, the simulation step and rendering on a
// fixed tick, strictly in that order within each frame.
func (a *App) mainLoop() error {
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(a.cfg.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			stepEv := a.world.Step(a.pendingDX)
			a.pendingDX = 0
			a.playSounds(stepEv)
			a.renderer.RenderGame(a.world.Snapshot(), a.world.LiveObstacles() == 0)
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.pendingDX += ui.KeyDelta(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		x, _ := ev.Position()
		cells := a.mouse.Delta(x)
		if cells != 0 {
			// Pointer motion arrives in terminal columns; scale it
			// back up to world units.
			screenW, _ := a.screen.Size()
			if screenW > 0 {
				a.pendingDX += float64(cells) * a.cfg.Width / float64(screenW)
			}
		}

	case *tcell.EventResize:
		a.screen.Clear()
	}

	return false
}

// playSounds keys sound effects off what the step reported.
func (a *App) playSounds(ev game.StepEvents) {
	if a.cfg.NoSound {
		return
	}
	if ev.WallBounce {
		audio.PlayWallBounce()
	}
	if ev.PaddleHit {
		audio.PlayPaddleHit()
	}
	if ev.Destroyed > 0 {
		audio.PlayObstacleBreak()
	} else if ev.ObstacleHits > 0 {
		audio.PlayObstacleHit()
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	audio.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
