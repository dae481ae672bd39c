package tetris

import "time"

// Rules holds the tunable scoring and gravity parameters of a session.
type Rules struct {
	InitialDelay   time.Duration // Gravity interval at level 1
	MinDelay       time.Duration // Gravity never gets faster than this
	DelayStep      time.Duration // Reduction per level-up
	PointsPerLine  int           // Multiplied by lines cleared and level
	LevelThreshold int           // Score needed per level
	StartLevel     int
}

// DefaultRules returns the classic progression: 1000ms gravity at level 1,
// 50ms faster per level down to 100ms, 100 points per line times level and
// a new level every 1000 points.
func DefaultRules() Rules {
	return Rules{
		InitialDelay:   1000 * time.Millisecond,
		MinDelay:       100 * time.Millisecond,
		DelayStep:      50 * time.Millisecond,
		PointsPerLine:  100,
		LevelThreshold: 1000,
		StartLevel:     1,
	}
}

// normalized fills zero or out-of-range fields with defaults.
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.InitialDelay <= 0 {
		r.InitialDelay = d.InitialDelay
	}
	if r.MinDelay <= 0 {
		r.MinDelay = d.MinDelay
	}
	if r.MinDelay > r.InitialDelay {
		r.MinDelay = r.InitialDelay
	}
	if r.DelayStep < 0 {
		r.DelayStep = 0
	}
	if r.PointsPerLine <= 0 {
		r.PointsPerLine = d.PointsPerLine
	}
	if r.LevelThreshold <= 0 {
		r.LevelThreshold = d.LevelThreshold
	}
	if r.StartLevel < 1 {
		r.StartLevel = 1
	}
	return r
}

// lowerDelay applies one level-up speed step.
func (r Rules) lowerDelay(d time.Duration) time.Duration {
	return max(r.MinDelay, d-r.DelayStep)
}

// DelayForLevel returns the gravity interval after reaching level from
// level 1.
func (r Rules) DelayForLevel(level int) time.Duration {
	d := r.InitialDelay
	for range level - 1 {
		d = r.lowerDelay(d)
	}
	return d
}

// LinePoints returns the score awarded for clearing lines at level.
func (r Rules) LinePoints(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	return lines * r.PointsPerLine * level
}

// levelDue reports whether score has crossed the next level threshold.
func (r Rules) levelDue(score, level int) bool {
	return score/r.LevelThreshold > level-1
}
