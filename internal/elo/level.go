package elo

// Level is a display band over the rating scale; the interval is
// half-open, [Min, Max).
type Level struct {
	Min   int
	Max   int
	Label string
}

var levels = []Level{
	{0, 1000, "Beginner"},
	{1000, 1100, "Improver"},
	{1100, 1250, "Intermediate"},
	{1250, 1400, "Upper Intermediate"},
	{1400, 1550, "Advanced"},
	{1550, 1700, "Expert"},
	{1700, 3000, "Pro"},
}

// LevelFor maps a rating onto its band. Ratings below the first band's
// minimum floor to the first band; ratings past the last band cap there.
func LevelFor(rating int) Level {
	if rating < levels[0].Min {
		return levels[0]
	}
	for _, l := range levels {
		if rating >= l.Min && rating < l.Max {
			return l
		}
	}
	return levels[len(levels)-1]
}
