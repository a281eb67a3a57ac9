// Package level derives the learner's level from accumulated XP.
// Level is never stored; it is always recomputed from the XP counter.
package level

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 1000

// Level returns the level for a given XP total. Level starts at 1.
func Level(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// Progress returns the XP earned within the current level (0..XPPerLevel-1).
func Progress(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % XPPerLevel
}

// Fraction returns progress toward the next level as a value in [0, 1).
func Fraction(xp int) float64 {
	return float64(Progress(xp)) / float64(XPPerLevel)
}
