package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts the Engine to the platform's frame loop: it turns each
// frame's actions into engine calls, feeds gravity a fixed time step and
// draws the session into a core.Screen.
type Game struct {
	cfg    config.TetrisConfig
	engine *Engine
	rng    *rand.Rand

	tick     uint64
	tickRate int

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given configuration. Call Reset before Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Engine exposes the underlying board engine for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(RulesFromConfig(g.cfg), g.rng)
	g.tick = 0
	g.tickRate = cfg.TickRateOrDefault()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records new screen dimensions without touching the session.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := requiredSize(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tooSmall = width < minW || height < minH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	e := g.engine

	// Restart only once the game is over
	if input.Has(core.ActionRestart) && e.State() == StateGameOver {
		e.Reset()
		return core.StepResult{State: g.State()}
	}

	// A window too small to show the well freezes the game
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		e.TogglePause()
	}
	if e.State() != StateRunning {
		return core.StepResult{State: g.State()}
	}

	piecesBefore, linesBefore := e.Pieces(), e.Lines()

	for range input.Count(core.ActionRotate) {
		e.TryRotate()
	}
	for range input.Count(core.ActionLeft) {
		e.TryMove(-1, 0)
	}
	for range input.Count(core.ActionRight) {
		e.TryMove(1, 0)
	}
	for range input.Count(core.ActionSoftDrop) {
		e.TryMove(0, 1)
	}
	if input.Has(core.ActionHardDrop) {
		e.HardDrop()
	}

	e.Tick(time.Second / time.Duration(g.tickRate))

	return core.StepResult{
		State:   g.State(),
		Locked:  e.Pieces() != piecesBefore,
		Cleared: e.Lines() - linesBefore,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.State() == StateGameOver,
		Paused:   g.engine.State() == StatePaused,
	}
}
