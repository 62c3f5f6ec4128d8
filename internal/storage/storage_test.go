package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Klaviaadus/Cosmic-Feline/internal/game"
)

func newTestStore(t *testing.T) *Store {
	return NewStore(t.TempDir())
}

// mockTimeNow keeps defaults deterministic across save/load comparisons
func mockTimeNow(t *testing.T) time.Time {
	originalTimeNow := game.TimeNow
	currentTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	game.TimeNow = func() time.Time { return currentTime }
	t.Cleanup(func() { game.TimeNow = originalTimeNow })
	return currentTime
}

func TestLoadStatsDefaultsWhenAbsent(t *testing.T) {
	mockTimeNow(t)
	store := newTestStore(t)

	got := store.LoadStats()
	want := game.DefaultStats()
	if got != want {
		t.Errorf("LoadStats() = %+v, want defaults %+v", got, want)
	}
}

func TestStatsRoundTrip(t *testing.T) {
	mockTimeNow(t)
	store := newTestStore(t)

	stats := game.DefaultStats()
	stats.Experience = 230
	stats.Level = game.ComputeLevel(stats.Experience)
	stats.Happiness = 42
	stats.Energy = 13
	stats.Coins = 777
	stats.FeedCount = 12
	stats.PlayCount = 4

	store.SaveStats(stats)
	got := store.LoadStats()

	if !got.LastFed.Equal(stats.LastFed) || !got.LastPlayed.Equal(stats.LastPlayed) {
		t.Errorf("timestamps did not round trip: %+v", got)
	}
	got.LastFed = stats.LastFed
	got.LastPlayed = stats.LastPlayed
	if got != stats {
		t.Errorf("round trip = %+v, want %+v", got, stats)
	}
}

func TestLoadStatsDefaultsOnCorruption(t *testing.T) {
	mockTimeNow(t)
	store := newTestStore(t)

	if err := os.WriteFile(store.path(KeyStats), []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	got := store.LoadStats()
	want := game.DefaultStats()
	if got != want {
		t.Errorf("LoadStats() = %+v, want exact defaults %+v", got, want)
	}
}

func TestLoadStatsMergesOverDefaults(t *testing.T) {
	mockTimeNow(t)
	store := newTestStore(t)

	// A save written by an older version that only knew about coins: every
	// other field must come from the current defaults.
	if err := os.WriteFile(store.path(KeyStats), []byte(`{"coins": 250}`), 0644); err != nil {
		t.Fatalf("Failed to write partial file: %v", err)
	}

	got := store.LoadStats()
	want := game.DefaultStats()
	want.Coins = 250
	if got != want {
		t.Errorf("LoadStats() = %+v, want merged %+v", got, want)
	}
}

func TestLoadStatsNormalizesTamperedSave(t *testing.T) {
	mockTimeNow(t)
	store := newTestStore(t)

	raw := `{"level": 9, "experience": 250, "happiness": 400, "energy": -3, "coins": -50, "feedCount": -2}`
	if err := os.WriteFile(store.path(KeyStats), []byte(raw), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := store.LoadStats()
	if got.Level != 3 {
		t.Errorf("Level = %d, want re-derived 3", got.Level)
	}
	if got.Happiness != game.MaxStat || got.Energy != game.MinStat {
		t.Errorf("stats not clamped: happiness=%d energy=%d", got.Happiness, got.Energy)
	}
	if got.Coins != 0 || got.FeedCount != 0 {
		t.Errorf("counters not clamped: coins=%d feedCount=%d", got.Coins, got.FeedCount)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings := game.Settings{SoundEnabled: false, ReducedMotion: true, CatName: "Nova"}
	store.SaveSettings(settings)

	if got := store.LoadSettings(); got != settings {
		t.Errorf("round trip = %+v, want %+v", got, settings)
	}
}

func TestLoadSettingsDefaultsWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	if got := store.LoadSettings(); got != game.DefaultSettings() {
		t.Errorf("LoadSettings() = %+v, want defaults", got)
	}
}

func TestLoadSettingsBoundsCatName(t *testing.T) {
	store := newTestStore(t)

	long := game.Settings{SoundEnabled: true, CatName: "an absurdly long feline name"}
	data, err := json.Marshal(long)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if err := os.WriteFile(store.path(KeySettings), data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := store.LoadSettings()
	if len([]rune(got.CatName)) > game.MaxCatNameLen {
		t.Errorf("CatName %q exceeds bound", got.CatName)
	}
}

func TestAchievementsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	achievements := game.DefaultAchievements()
	achievements[1].Unlocked = true
	store.SaveAchievements(achievements)

	got := store.LoadAchievements()
	for i := range achievements {
		if got[i] != achievements[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], achievements[i])
		}
	}
}

func TestLoadAchievementsDefaultsWhenAbsent(t *testing.T) {
	store := newTestStore(t)

	got := store.LoadAchievements()
	want := game.DefaultAchievements()
	if len(got) != len(want) {
		t.Fatalf("got %d achievements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestLoadAchievementsDefaultsOnCorruption(t *testing.T) {
	store := newTestStore(t)

	if err := os.WriteFile(store.path(KeyAchievements), []byte("[{bad"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	got := store.LoadAchievements()
	want := game.DefaultAchievements()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want defaults %+v", i, got[i], want[i])
		}
	}
}

func TestAchievementUnlockSurvivesCatalogRevision(t *testing.T) {
	store := newTestStore(t)

	// A save from an older catalog: stale metadata, an id that no longer
	// exists, and unlock flags to carry over.
	old := []game.Achievement{
		{ID: game.AchievementCaringOwner, Title: "Old Title", Description: "old text", Unlocked: true},
		{ID: "42", Title: "Removed", Unlocked: true},
	}
	data, err := json.Marshal(old)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if err := os.WriteFile(store.path(KeyAchievements), data, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	got := store.LoadAchievements()
	if len(got) != len(game.DefaultAchievements()) {
		t.Fatalf("got %d achievements, want current catalog size", len(got))
	}
	for _, a := range got {
		switch a.ID {
		case game.AchievementCaringOwner:
			if !a.Unlocked {
				t.Error("unlock flag was not carried over")
			}
			if a.Title != "Caring Owner" {
				t.Errorf("Title = %q, want current catalog metadata", a.Title)
			}
		case game.AchievementFirstSteps:
			if !a.Unlocked {
				t.Error("pre-unlocked default was lost")
			}
		case game.AchievementSpaceExplorer, game.AchievementCosmicCollector:
			if a.Unlocked {
				t.Errorf("achievement %s should still be locked", a.ID)
			}
		}
	}
}

func TestFailedSaveIsSwallowed(t *testing.T) {
	mockTimeNow(t)
	dir := t.TempDir()

	stats := game.DefaultStats()
	stats.Coins = 555

	working := NewStore(dir)
	working.SaveStats(stats)

	// A store whose directory cannot hold the temp file drops the write
	// without panicking, and the document written earlier stays readable.
	broken := &Store{dir: filepath.Join(dir, "stats.json", "nope")}
	changed := stats
	changed.Coins = 1
	broken.SaveStats(changed)
	if got := broken.LoadStats(); got.Coins != game.DefaultStats().Coins {
		t.Errorf("broken store load = %+v, want defaults", got)
	}

	if got := working.LoadStats(); got.Coins != 555 {
		t.Errorf("Coins = %d, want previously saved 555", got.Coins)
	}
}

func TestSaveWritesNoStrayTempFiles(t *testing.T) {
	mockTimeNow(t)
	dir := t.TempDir()
	store := NewStore(dir)

	store.SaveStats(game.DefaultStats())
	store.SaveSettings(game.DefaultSettings())
	store.SaveAchievements(game.DefaultAchievements())

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("stray temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 3 {
		t.Errorf("got %d files, want 3 documents", len(entries))
	}
}
