package tetris

import "time"

// Snapshot captures the session for determinism testing and debugging.
type Snapshot struct {
	Tick         uint64
	State        State
	Score        int
	Level        int
	Lines        int
	Pieces       int
	FallInterval time.Duration
	Active       Kind
	ActiveX      int
	ActiveY      int
	Next         Kind
	Board        string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	e := g.engine
	return Snapshot{
		Tick:         g.tick,
		State:        e.State(),
		Score:        e.Score(),
		Level:        e.Level(),
		Lines:        e.Lines(),
		Pieces:       e.Pieces(),
		FallInterval: e.FallInterval(),
		Active:       e.active.Kind,
		ActiveX:      e.active.X,
		ActiveY:      e.active.Y,
		Next:         e.next.Kind,
		Board:        e.board.String(),
	}
}
