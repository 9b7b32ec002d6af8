package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules are the tunable policies of a session.
type Rules struct {
	Width, Height int

	LineScores [4]int            // Points for 1-4 rows at once, times the level
	Curve      config.LevelCurve // Level from score, gravity interval from level
}

// DefaultRules returns a 10x20 board with the standard scoring and speed curve.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig extracts engine rules from a loaded configuration,
// with its difficulty preset applied.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	eff := cfg.Effective()
	return Rules{
		Width:      eff.Board.Width,
		Height:     eff.Board.Height,
		LineScores: eff.Scoring.LineScores,
		Curve:      eff.Curve(),
	}
}

// lineScore returns the base award for clearing n rows at once.
func (r Rules) lineScore(n int) int {
	if n <= 0 {
		return 0
	}
	return r.LineScores[min(n, len(r.LineScores))-1]
}

// Engine owns the board, the active and next pieces and the session state.
// It is not safe for concurrent use; a single frame loop drives it.
type Engine struct {
	rules Rules
	rng   Source

	board  *Board
	active Piece
	next   Piece

	state    State
	score    int
	level    int
	lines    int
	pieces   int // Pieces locked this session
	interval time.Duration
	elapsed  time.Duration
}

// NewEngine creates a running session with an empty board and two fresh pieces.
func NewEngine(rules Rules, rng Source) *Engine {
	e := &Engine{
		rules: rules,
		rng:   rng,
		board: NewBoard(rules.Width, rules.Height),
	}
	e.Reset()
	return e
}

// Reset starts a new session: empty board, score 0, level 1, Running,
// and a freshly drawn current and next piece.
func (e *Engine) Reset() {
	e.board.Reset()
	e.score = 0
	e.level = 1
	e.lines = 0
	e.pieces = 0
	e.interval = e.rules.Curve.FallInterval(1)
	e.elapsed = 0
	e.state = StateRunning

	e.SpawnPiece()
	e.next = e.newPiece()
}

// newPiece draws a random kind and positions it at the spawn point.
func (e *Engine) newPiece() Piece {
	k := PickKind(e.rng)
	return NewPiece(k, SpawnX(e.rules.Width, catalog[k].shape), 0)
}

// SpawnPiece draws a random piece and makes it the active piece at the
// top centre of the board. If it collides there the session ends.
// Outside Running it does nothing and returns the current active piece.
func (e *Engine) SpawnPiece() Piece {
	if e.state != StateRunning {
		return e.active
	}
	e.place(e.newPiece())
	return e.active
}

// place makes p the active piece and ends the session if it does not fit.
// The piece stays active either way so it can still be drawn.
func (e *Engine) place(p Piece) {
	e.active = p
	e.elapsed = 0
	if !e.board.Fits(p.Shape, p.X, p.Y) {
		e.state = StateGameOver
	}
}

// TryMove shifts the active piece by (dx, dy) if the destination is valid.
func (e *Engine) TryMove(dx, dy int) bool {
	if e.state != StateRunning {
		return false
	}
	moved := e.active.Moved(dx, dy)
	if !e.board.Fits(moved.Shape, moved.X, moved.Y) {
		return false
	}
	e.active = moved
	return true
}

// TryRotate turns the active piece clockwise in place if the result fits.
// There is no wall kick: a rotation blocked by a wall or the stack fails.
func (e *Engine) TryRotate() bool {
	if e.state != StateRunning {
		return false
	}
	rotated := e.active.Rotated()
	if !e.board.Fits(rotated.Shape, rotated.X, rotated.Y) {
		return false
	}
	e.active = rotated
	return true
}

// HardDrop moves the active piece down until it rests, then locks it.
// It returns the number of rows the piece fell.
func (e *Engine) HardDrop() int {
	if e.state != StateRunning {
		return 0
	}
	dropped := 0
	for e.TryMove(0, 1) {
		dropped++
	}
	e.LockActive()
	return dropped
}

// LockActive commits the active piece to the board, clears full rows,
// promotes the next piece and draws a new one. If the promoted piece
// collides at its spawn point the session ends. It returns the rows cleared.
func (e *Engine) LockActive() int {
	if e.state != StateRunning {
		return 0
	}
	e.board.Place(e.active)
	e.pieces++

	cleared := e.ClearLines()

	promoted := e.next
	e.next = e.newPiece()
	e.place(promoted)

	return cleared
}

// ClearLines removes every full row, awards points for the rows removed
// together and recomputes the level and gravity interval.
func (e *Engine) ClearLines() int {
	if e.state != StateRunning {
		return 0
	}
	n := e.board.ClearFullRows()

	e.lines += n
	e.score += e.rules.lineScore(n) * e.level
	e.level = e.rules.Curve.Level(e.score)
	e.interval = e.rules.Curve.FallInterval(e.level)

	return n
}

// Tick advances gravity by elapsed wall time. Once the accumulated time
// reaches the fall interval the accumulator resets and the piece moves
// down one row, or locks if it cannot.
func (e *Engine) Tick(elapsed time.Duration) {
	if e.state != StateRunning {
		return
	}
	e.elapsed += elapsed
	if e.elapsed < e.interval {
		return
	}
	e.elapsed = 0
	if !e.TryMove(0, 1) {
		e.LockActive()
	}
}

// TogglePause switches between Running and Paused. It has no effect once
// the game is over.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Score returns the points earned this session.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total rows cleared this session.
func (e *Engine) Lines() int {
	return e.lines
}

// Pieces returns the number of pieces locked this session.
func (e *Engine) Pieces() int {
	return e.pieces
}

// FallInterval returns the current gravity interval.
func (e *Engine) FallInterval() time.Duration {
	return e.interval
}

// Active returns a copy of the falling piece.
func (e *Engine) Active() Piece {
	p := e.active
	p.Shape = p.Shape.Clone()
	return p
}

// Next returns a copy of the preview piece.
func (e *Engine) Next() Piece {
	p := e.next
	p.Shape = p.Shape.Clone()
	return p
}

// Width returns the board width.
func (e *Engine) Width() int {
	return e.board.Width()
}

// Height returns the board height.
func (e *Engine) Height() int {
	return e.board.Height()
}

// Cell returns the locked cell at (x, y).
func (e *Engine) Cell(x, y int) Cell {
	return e.board.At(x, y)
}

// Rows returns a copy of the locked cells.
func (e *Engine) Rows() [][]Cell {
	return e.board.Rows()
}

// GhostY returns the row the active piece would land on if hard-dropped.
func (e *Engine) GhostY() int {
	y := e.active.Y
	for e.board.Fits(e.active.Shape, e.active.X, y+1) {
		y++
	}
	return y
}
