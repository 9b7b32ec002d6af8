package config

import "time"

// LevelCurve derives the level from the score and the gravity interval
// from the level. Score only grows, so level only grows and the interval
// only shrinks until it reaches MinInterval.
type LevelCurve struct {
	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
	LevelScore   int
}

// Level returns floor(score / LevelScore) + 1.
func (c LevelCurve) Level(score int) int {
	if c.LevelScore <= 0 || score < 0 {
		return 1
	}
	return score/c.LevelScore + 1
}

// FallInterval returns max(MinInterval, BaseInterval - (level-1)*IntervalStep).
func (c LevelCurve) FallInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := c.BaseInterval - time.Duration(level-1)*c.IntervalStep
	return max(interval, c.MinInterval)
}
