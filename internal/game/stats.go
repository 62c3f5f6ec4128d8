package game

import (
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

// Stats represents the feline's state
type Stats struct {
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	Happiness  int       `json:"happiness"`
	Energy     int       `json:"energy"`
	Coins      int       `json:"coins"`
	LastFed    time.Time `json:"lastFed"`
	LastPlayed time.Time `json:"lastPlayed"`
	FeedCount  int       `json:"feedCount"`
	PlayCount  int       `json:"playCount"`
}

// Settings holds player preferences, stored separately from Stats
type Settings struct {
	SoundEnabled  bool   `json:"soundEnabled"`
	ReducedMotion bool   `json:"reducedMotion"`
	CatName       string `json:"catName"`
}

// Achievement is one entry of the fixed catalog. Id, title and description
// are immutable metadata; Unlocked only ever goes from false to true.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// DefaultStats returns the stats for a freshly adopted feline
func DefaultStats() Stats {
	now := TimeNow()
	return Stats{
		Level:      1,
		Experience: 0,
		Happiness:  80,
		Energy:     70,
		Coins:      100,
		LastFed:    now,
		LastPlayed: now,
		FeedCount:  0,
		PlayCount:  0,
	}
}

// DefaultSettings returns the out-of-the-box preferences
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:  true,
		ReducedMotion: false,
		CatName:       DefaultCatName,
	}
}

// DefaultAchievements returns the current achievement catalog with default
// unlock state. "First Steps" ships pre-unlocked.
func DefaultAchievements() []Achievement {
	return []Achievement{
		{ID: AchievementFirstSteps, Title: "First Steps", Description: "Play with your cosmic feline for the first time", Unlocked: true},
		{ID: AchievementCaringOwner, Title: "Caring Owner", Description: "Feed your feline 10 times", Unlocked: false},
		{ID: AchievementSpaceExplorer, Title: "Space Explorer", Description: "Reach level 5", Unlocked: false},
		{ID: AchievementCosmicCollector, Title: "Cosmic Collector", Description: "Collect 1000 stardust coins", Unlocked: false},
	}
}

// ComputeLevel derives the level from experience alone. Level is never an
// independent source of truth.
func ComputeLevel(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/ExperiencePerLevel + 1
}

// Normalize repairs a stats value that violates the model invariants, such
// as one read back from an older or tampered save. Counters and coins are
// clamped at zero and the level is re-derived from experience. No level-up
// bonus is awarded here; repairs are not transitions.
func Normalize(s Stats) Stats {
	if s.Experience < 0 {
		s.Experience = 0
	}
	s.Happiness = clampStat(s.Happiness)
	s.Energy = clampStat(s.Energy)
	if s.Coins < 0 {
		s.Coins = 0
	}
	if s.FeedCount < 0 {
		s.FeedCount = 0
	}
	if s.PlayCount < 0 {
		s.PlayCount = 0
	}
	s.Level = ComputeLevel(s.Experience)
	return s
}

// SanitizeCatName bounds the name length and falls back to the default
// name when blank
func SanitizeCatName(name string) string {
	if name == "" {
		return DefaultCatName
	}
	runes := []rune(name)
	if len(runes) > MaxCatNameLen {
		return string(runes[:MaxCatNameLen])
	}
	return name
}

func clampStat(v int) int {
	if v > MaxStat {
		return MaxStat
	}
	if v < MinStat {
		return MinStat
	}
	return v
}
