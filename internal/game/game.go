// Package game implements the main game loop and state management.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/strider/internal/config"
	"github.com/Faultbox/strider/internal/control"
	"github.com/Faultbox/strider/internal/engine/camera"
	"github.com/Faultbox/strider/internal/engine/input"
	"github.com/Faultbox/strider/internal/engine/physics"
	"github.com/Faultbox/strider/internal/engine/renderer"
	"github.com/Faultbox/strider/internal/engine/window"
	"github.com/Faultbox/strider/internal/game/states"
	"github.com/Faultbox/strider/internal/logger"
	"github.com/Faultbox/strider/internal/settings"
)

// maxStepSeconds caps the physics step after stalls (window drags, debugger
// pauses) so the body cannot tunnel through the ground in one step.
const maxStepSeconds = 0.1

// groundColor is the level slab draw color.
var groundColor = [3]float32{0.35, 0.45, 0.3}

// Game is the main game instance.
type Game struct {
	config  *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	world    *physics.World
	registry *control.Registry
	controls *control.Switch
	pipeline *control.Pipeline
	camera   *camera.FirstPersonCamera

	session *Session
	states  *states.Manager

	width  int
	height int
}

// New creates a new game instance.
func New(cfg *config.Config, set *settings.Settings) (*Game, error) {
	logger.Info("initializing game",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	g := &Game{
		config: cfg,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}

	// Create window (this also creates OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	// Create input handler
	g.input = input.New()

	// Simulation and controller
	g.world = physics.NewWorld()
	g.registry = control.NewRegistry()
	g.controls = control.NewSwitch(g.window)
	g.pipeline = control.NewPipeline(g.registry, g.world, cfg.Player, set)
	g.camera = camera.NewFirstPersonCamera(cfg.Player.CapsuleHeight * 0.45)

	g.session = newSession(g.world, g.registry)
	if err := g.session.Start(cfg.Player); err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	// States: playing with a pause overlay
	g.states = states.NewManager()
	playing := states.NewPlayingState(g.states, g.controls, g.pipeline, g.world, g.input)
	playing.SetPauseTarget(states.NewPausedState(g.states, playing, g.input))
	g.states.Change(playing)

	logger.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now
		if dt > maxStepSeconds {
			dt = maxStepSeconds
		}

		// 1. Process input
		if g.input.Update() {
			// Quit event received
			g.running = false
			break
		}

		// 2. Update game state
		if err := g.states.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Advance simulation (no-op while inactive)
		g.world.Step(float32(dt))

		// 4. Render
		if err := g.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 5. Present (swap buffers)
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dtMs", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.session != nil && g.session.body != nil {
		if err := g.session.Teardown(); err != nil {
			logger.Warn("session teardown failed", zap.Error(err))
		}
	}
	if g.input != nil {
		g.input.Close()
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

// render draws the current frame.
func (g *Game) render() error {
	// Track window resizes
	if w, h := g.window.GetSize(); w != g.width || h != g.height {
		g.width, g.height = w, h
		g.renderer.Resize(w, h)
	}

	g.renderer.Begin()

	if subject, err := g.registry.Subject(); err == nil {
		body := subject.Body()
		view := g.camera.ViewMatrix(body.Position(), body.Rotation(), subject.Pitch())
		proj := g.camera.ProjectionMatrix(float32(g.width) / float32(g.height))
		g.renderer.SetCamera(view, proj)

		for _, c := range g.world.Colliders() {
			g.renderer.DrawBox(c.Min, c.Max, groundColor)
		}
	}

	g.renderer.End()
	return nil
}
