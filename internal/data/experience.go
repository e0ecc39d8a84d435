package data

// MaxPlayerLevel caps player progression for a run.
const MaxPlayerLevel = 20

// experienceTable holds cumulative XP required to reach each level.
// Index = level; levels 0 and 1 require 0 XP.
var experienceTable = [MaxPlayerLevel + 1]int{
	0,     // 0 (unused)
	0,     // 1
	50,    // 2
	130,   // 3
	250,   // 4
	420,   // 5
	650,   // 6
	950,   // 7
	1330,  // 8
	1800,  // 9
	2370,  // 10
	3050,  // 11
	3860,  // 12
	4820,  // 13
	5950,  // 14
	7270,  // 15
	8800,  // 16
	10560, // 17
	12580, // 18
	14890, // 19
	17520, // 20
}

// XPForLevel returns the cumulative XP needed to reach a level.
// Out-of-range levels clamp to the table bounds.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	if level > MaxPlayerLevel {
		level = MaxPlayerLevel
	}
	return experienceTable[level]
}

// LevelForXP returns the level an XP total corresponds to, starting the
// scan from the current level so level-down is impossible.
func LevelForXP(xp, currentLevel int) int {
	level := currentLevel
	if level < 1 {
		level = 1
	}
	for level < MaxPlayerLevel && xp >= experienceTable[level+1] {
		level++
	}
	return level
}
