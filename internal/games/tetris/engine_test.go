package tetris

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// seq deals kinds in order and then repeats.
type seq struct {
	kinds []Kind
	i     int
}

func (s *seq) Intn(n int) int {
	k := s.kinds[s.i%len(s.kinds)]
	s.i++
	return int(k) % n
}

func newTestEngine(t *testing.T, kinds ...Kind) *Engine {
	t.Helper()
	if len(kinds) == 0 {
		kinds = []Kind{KindI}
	}
	return NewEngine(DefaultRules(), &seq{kinds: kinds})
}

// setActive replaces the falling piece, bypassing spawn.
func setActive(e *Engine, k Kind, x, y int) {
	e.active = NewPiece(k, x, y)
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, KindT, KindO)

	if e.State() != StateRunning {
		t.Errorf("state = %v, expected running", e.State())
	}
	if e.Score() != 0 || e.Level() != 1 || e.Lines() != 0 {
		t.Errorf("score/level/lines = %d/%d/%d, expected 0/1/0", e.Score(), e.Level(), e.Lines())
	}
	if e.FallInterval() != 500*time.Millisecond {
		t.Errorf("interval = %v, expected 500ms", e.FallInterval())
	}
	a := e.Active()
	if a.Kind != KindT || a.X != 4 || a.Y != 0 {
		t.Errorf("active = %s at (%d,%d), expected T at (4,0)", a.Kind, a.X, a.Y)
	}
	if e.Next().Kind != KindO {
		t.Errorf("next = %s, expected O", e.Next().Kind)
	}
	if len(e.Rows()) != 20 || len(e.Rows()[0]) != 10 {
		t.Error("expected a 10x20 board")
	}
}

func TestSpawnPositions(t *testing.T) {
	tests := []struct {
		kind Kind
		x    int
	}{
		{KindI, 3},
		{KindJ, 4},
		{KindL, 4},
		{KindO, 4},
		{KindS, 4},
		{KindZ, 4},
		{KindT, 4},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			e := newTestEngine(t, tc.kind)
			if a := e.Active(); a.X != tc.x || a.Y != 0 {
				t.Errorf("spawned at (%d,%d), expected (%d,0)", a.X, a.Y, tc.x)
			}
		})
	}
}

func TestTryMoveWalls(t *testing.T) {
	e := newTestEngine(t, KindI)

	moves := 0
	for e.TryMove(-1, 0) {
		moves++
	}
	if moves != 3 || e.Active().X != 0 {
		t.Errorf("moved left %d times to x=%d, expected 3 to x=0", moves, e.Active().X)
	}

	moves = 0
	for e.TryMove(1, 0) {
		moves++
	}
	if moves != 6 || e.Active().X != 6 {
		t.Errorf("moved right %d times to x=%d, expected 6 to x=6", moves, e.Active().X)
	}

	setActive(e, KindI, 0, 19)
	if e.TryMove(0, 1) {
		t.Error("moving through the floor should fail")
	}
	if e.Active().Y != 19 {
		t.Error("failed move must leave the piece in place")
	}
}

func TestTryMoveBlockedByStack(t *testing.T) {
	e := newTestEngine(t, KindI)
	e.board.set(3, 1, Cell{Filled: true, Color: core.ColorRed})

	before := e.Active()
	if e.TryMove(0, 1) {
		t.Fatal("move onto an occupied cell should fail")
	}
	if a := e.Active(); a.X != before.X || a.Y != before.Y {
		t.Error("failed move must not change the piece")
	}
	if !e.TryMove(1, 0) {
		t.Error("sideways move into free space should succeed")
	}
}

func TestTryMoveAboveTop(t *testing.T) {
	e := newTestEngine(t, KindJ)
	e.board.set(4, 0, Cell{Filled: true})
	setActive(e, KindJ, 4, -2)

	if !e.TryMove(1, 0) {
		t.Error("a piece entirely above the top edge should move freely")
	}
	if !e.TryMove(-1, 0) {
		t.Error("moving back above the occupied column should succeed")
	}
	if e.TryMove(0, 1) {
		t.Error("on-board cells still collide with the stack")
	}
	setActive(e, KindJ, 0, -1)
	if !e.TryMove(1, 0) {
		t.Error("a piece straddling the top edge should move into free space")
	}
}

func TestTryRotate(t *testing.T) {
	e := newTestEngine(t, KindT)

	if !e.TryRotate() {
		t.Fatal("rotation in open space should succeed")
	}
	if got := e.Active().Shape.String(); got != "#.\n##\n#." {
		t.Errorf("rotated T =\n%s", got)
	}
	if a := e.Active(); a.X != 4 || a.Y != 0 {
		t.Errorf("rotation moved the origin to (%d,%d)", a.X, a.Y)
	}
}

func TestTryRotateBlocked(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
	}{
		{"vertical I at right wall", func(e *Engine) {
			e.active = Piece{Kind: KindI, Shape: KindI.Shape().Rotate(), Color: KindI.Color(), X: 9, Y: 5}
		}},
		{"horizontal I at floor", func(e *Engine) {
			setActive(e, KindI, 3, 19)
		}},
		{"T against the stack", func(e *Engine) {
			setActive(e, KindT, 4, 10)
			e.board.set(4, 12, Cell{Filled: true})
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(t)
			tc.setup(e)
			before := e.Active()

			if e.TryRotate() {
				t.Fatal("blocked rotation should fail, there are no wall kicks")
			}
			after := e.Active()
			if !after.Shape.Equal(before.Shape) || after.X != before.X || after.Y != before.Y {
				t.Error("failed rotation must leave the piece unchanged")
			}
		})
	}
}

func TestHardDrop(t *testing.T) {
	e := newTestEngine(t, KindI, KindO)

	dropped := e.HardDrop()
	if dropped != 19 {
		t.Errorf("HardDrop() = %d, expected 19", dropped)
	}
	for x := 3; x <= 6; x++ {
		if c := e.Cell(x, 19); !c.Filled || c.Color != core.ColorCyan {
			t.Errorf("cell (%d,19) = %+v, expected cyan block", x, c)
		}
	}
	if e.Pieces() != 1 {
		t.Errorf("pieces = %d, expected 1", e.Pieces())
	}
	if e.Active().Kind != KindO || e.Active().Y != 0 {
		t.Errorf("next piece not promoted: %s at y=%d", e.Active().Kind, e.Active().Y)
	}
	if e.Next().Kind != KindI {
		t.Errorf("new next = %s, expected I", e.Next().Kind)
	}
}

func TestGhostY(t *testing.T) {
	e := newTestEngine(t, KindO)
	if y := e.GhostY(); y != 18 {
		t.Errorf("GhostY() on empty board = %d, expected 18", y)
	}
	e.board.set(5, 10, Cell{Filled: true})
	if y := e.GhostY(); y != 8 {
		t.Errorf("GhostY() above stack = %d, expected 8", y)
	}
	if e.Active().Y != 0 {
		t.Error("GhostY must not move the piece")
	}
}

func TestLockSingleLine(t *testing.T) {
	e := newTestEngine(t, KindI)
	fillRow(e.board, 19, 6, 7, 8, 9)
	e.board.set(0, 18, Cell{Filled: true, Color: core.ColorRed})
	setActive(e, KindI, 6, 19)

	if n := e.LockActive(); n != 1 {
		t.Fatalf("LockActive() = %d, expected 1", n)
	}
	if e.Score() != 100 || e.Lines() != 1 || e.Level() != 1 {
		t.Errorf("score/lines/level = %d/%d/%d, expected 100/1/1", e.Score(), e.Lines(), e.Level())
	}
	if c := e.Cell(0, 19); !c.Filled || c.Color != core.ColorRed {
		t.Error("row above the cleared line should shift down")
	}
	for x := range 10 {
		if e.Cell(x, 0).Filled {
			t.Errorf("top row should be empty, (%d,0) is filled", x)
		}
	}
	if len(e.Rows()) != 20 {
		t.Errorf("row count = %d, expected 20", len(e.Rows()))
	}
}

func TestLineScoring(t *testing.T) {
	tests := []struct {
		lines    int
		level    int
		expected int
	}{
		{1, 1, 100},
		{2, 1, 300},
		{3, 1, 500},
		{4, 1, 800},
		{1, 3, 300},
		{4, 2, 1600},
	}

	for _, tc := range tests {
		e := newTestEngine(t, KindO)
		// Keep the level stable across the award
		e.level = tc.level
		e.score = (tc.level - 1) * 2000
		base := e.score

		// Bottom n rows full except column 0, vertical I fills the gap
		for y := 20 - tc.lines; y < 20; y++ {
			fillRow(e.board, y, 0)
		}
		e.active = Piece{Kind: KindI, Shape: KindI.Shape().Rotate(), Color: KindI.Color(), X: 0, Y: 16}

		if n := e.LockActive(); n != tc.lines {
			t.Fatalf("%d lines: LockActive() = %d", tc.lines, n)
		}
		if got := e.Score() - base; got != tc.expected {
			t.Errorf("%d lines at level %d scored %d, expected %d", tc.lines, tc.level, got, tc.expected)
		}

		// The uncleared part of the I drops to the bottom
		remaining := 4 - tc.lines
		for y := 20 - remaining; y < 20; y++ {
			if !e.Cell(0, y).Filled {
				t.Errorf("%d lines: expected leftover at (0,%d)", tc.lines, y)
			}
		}
		if y := 19 - remaining; y >= 0 && e.Cell(0, y).Filled {
			t.Errorf("%d lines: (0,%d) should be empty", tc.lines, y)
		}
	}
}

func TestClearLinesNoneScoresNothing(t *testing.T) {
	e := newTestEngine(t, KindO)
	if n := e.ClearLines(); n != 0 {
		t.Errorf("ClearLines() = %d on an empty board", n)
	}
	if e.Score() != 0 || e.Lines() != 0 {
		t.Error("no rows cleared should award nothing")
	}
}

func TestLevelUp(t *testing.T) {
	e := newTestEngine(t, KindI)
	e.score = 1900
	fillRow(e.board, 19, 6, 7, 8, 9)
	setActive(e, KindI, 6, 19)

	e.LockActive()

	if e.Score() != 2000 || e.Level() != 2 {
		t.Errorf("score/level = %d/%d, expected 2000/2", e.Score(), e.Level())
	}
	if e.FallInterval() != 450*time.Millisecond {
		t.Errorf("interval = %v, expected 450ms", e.FallInterval())
	}
}

func TestFallIntervalFloor(t *testing.T) {
	e := newTestEngine(t, KindI)
	e.score = 40000
	fillRow(e.board, 19, 6, 7, 8, 9)
	setActive(e, KindI, 6, 19)

	e.LockActive()

	if e.Level() != 21 {
		t.Errorf("level = %d, expected 21", e.Level())
	}
	if e.FallInterval() != 50*time.Millisecond {
		t.Errorf("interval = %v, expected the 50ms floor", e.FallInterval())
	}
}

func TestTickGravity(t *testing.T) {
	e := newTestEngine(t, KindO)

	e.Tick(200 * time.Millisecond)
	e.Tick(200 * time.Millisecond)
	if e.Active().Y != 0 {
		t.Fatal("piece fell before the interval elapsed")
	}

	e.Tick(200 * time.Millisecond)
	if e.Active().Y != 1 {
		t.Fatalf("y = %d after 600ms, expected 1", e.Active().Y)
	}

	// The accumulator resets rather than carrying the overshoot
	e.Tick(400 * time.Millisecond)
	if e.Active().Y != 1 {
		t.Error("overshoot should not carry into the next interval")
	}
	e.Tick(100 * time.Millisecond)
	if e.Active().Y != 2 {
		t.Errorf("y = %d, expected 2", e.Active().Y)
	}
}

func TestTickLocksResting(t *testing.T) {
	e := newTestEngine(t, KindO, KindT)
	setActive(e, KindO, 4, 18)

	e.Tick(500 * time.Millisecond)

	if e.Pieces() != 1 {
		t.Fatalf("pieces = %d, expected the resting piece to lock", e.Pieces())
	}
	if !e.Cell(4, 19).Filled || !e.Cell(5, 18).Filled {
		t.Error("locked O missing from the board")
	}
	if e.Active().Y != 0 {
		t.Error("a new piece should be at the spawn row")
	}
}

func TestPause(t *testing.T) {
	e := newTestEngine(t, KindO)

	e.TogglePause()
	if e.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", e.State())
	}

	e.Tick(10 * time.Second)
	if e.Active().Y != 0 {
		t.Error("gravity must not run while paused")
	}
	if e.TryMove(1, 0) || e.TryRotate() || e.HardDrop() != 0 {
		t.Error("moves must be rejected while paused")
	}

	e.TogglePause()
	if e.State() != StateRunning {
		t.Fatalf("state = %v, expected running", e.State())
	}
	e.Tick(500 * time.Millisecond)
	if e.Active().Y != 1 {
		t.Errorf("y = %d after resume, expected 1", e.Active().Y)
	}
}

// topOut drives e into GameOver by blocking the spawn column.
func topOut(t *testing.T, e *Engine) {
	t.Helper()
	for x := 3; x <= 6; x++ {
		e.board.set(x, 0, Cell{Filled: true, Color: core.ColorGray})
	}
	setActive(e, KindI, 0, 19)
	e.LockActive()
	if e.State() != StateGameOver {
		t.Fatalf("state = %v, expected game over", e.State())
	}
}

func TestGameOverOnSpawnCollision(t *testing.T) {
	e := newTestEngine(t, KindI)
	topOut(t, e)

	// The colliding piece remains visible at spawn
	if a := e.Active(); a.Kind != KindI || a.X != 3 || a.Y != 0 {
		t.Errorf("active = %s at (%d,%d)", a.Kind, a.X, a.Y)
	}

	board := e.board.String()
	score, pieces := e.Score(), e.Pieces()

	e.Tick(time.Minute)
	e.TryMove(1, 0)
	e.TryRotate()
	e.HardDrop()
	e.LockActive()
	e.ClearLines()
	e.SpawnPiece()

	if e.board.String() != board || e.Score() != score || e.Pieces() != pieces {
		t.Error("nothing may change after game over")
	}

	e.TogglePause()
	if e.State() != StateGameOver {
		t.Error("pause toggle must be ignored after game over")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	e := newTestEngine(t, KindI, KindT)
	e.score = 5000
	e.lines = 12
	topOut(t, e)

	e.Reset()

	if e.State() != StateRunning {
		t.Errorf("state = %v, expected running", e.State())
	}
	if e.Score() != 0 || e.Level() != 1 || e.Lines() != 0 || e.Pieces() != 0 {
		t.Error("counters should be reset")
	}
	if e.FallInterval() != 500*time.Millisecond {
		t.Errorf("interval = %v, expected 500ms", e.FallInterval())
	}
	for _, row := range e.Rows() {
		for _, c := range row {
			if c.Filled {
				t.Fatal("board should be empty after reset")
			}
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s        State
		expected string
	}{
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{StateGameOver, "game_over"},
		{State(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tc.s, got, tc.expected)
		}
	}
}

func TestRulesFromConfigAppliesPreset(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Difficulty.Preset = config.DifficultyHard

	r := RulesFromConfig(cfg)
	if r.Curve != cfg.Effective().Curve() {
		t.Errorf("Curve = %+v, expected the preset-scaled curve", r.Curve)
	}
	if r.Width != 10 || r.Height != 20 || r.LineScores != [4]int{100, 300, 500, 800} {
		t.Errorf("rules = %+v", r)
	}

	e := NewEngine(r, &seq{kinds: []Kind{KindO}})
	if e.FallInterval() != 300*time.Millisecond {
		t.Errorf("interval = %v, expected 300ms on hard", e.FallInterval())
	}
	if cfg.Timing.BaseInterval != 500*time.Millisecond {
		t.Error("building rules must not modify the config")
	}
}
