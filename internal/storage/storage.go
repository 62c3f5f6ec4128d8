// Package storage is the persistence adapter: each entity lives as one JSON
// document under a stable namespaced key in a local state directory. Loads
// fall back to defaults on absence or corruption and merge stored fields
// over the current defaults, so saves written by older versions keep
// working after the defaults grow new fields. Save failures are logged and
// swallowed; a failed write never clobbers the previous document.
package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/Klaviaadus/Cosmic-Feline/internal/game"
)

// Storage keys
const (
	KeyStats        = "stats"
	KeySettings     = "settings"
	KeyAchievements = "achievements"
)

// Store reads and writes game entities under a state directory
type Store struct {
	dir string
}

// DefaultDir returns the per-user state directory
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cosmic-feline"), nil
}

// NewStore opens a store rooted at dir, creating it if needed. A directory
// that cannot be created still yields a usable store: loads return defaults
// and saves are dropped.
func NewStore(dir string) *Store {
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("Error creating state directory: %v", err)
	}
	return &Store{dir: dir}
}

// LoadStats returns the saved stats merged over defaults, or the defaults
// when nothing valid is stored. The result is normalized so a tampered or
// stale save cannot violate the model invariants.
func (s *Store) LoadStats() game.Stats {
	stats := game.DefaultStats()
	if !s.load(KeyStats, &stats) {
		return game.Normalize(game.DefaultStats())
	}
	return game.Normalize(stats)
}

// SaveStats writes the stats document
func (s *Store) SaveStats(stats game.Stats) {
	s.save(KeyStats, stats)
}

// LoadSettings returns the saved settings merged over defaults
func (s *Store) LoadSettings() game.Settings {
	settings := game.DefaultSettings()
	if !s.load(KeySettings, &settings) {
		return game.DefaultSettings()
	}
	settings.CatName = game.SanitizeCatName(settings.CatName)
	return settings
}

// SaveSettings writes the settings document
func (s *Store) SaveSettings(settings game.Settings) {
	s.save(KeySettings, settings)
}

// LoadAchievements returns the current catalog with unlock flags carried
// over from the stored list, matched by id. Titles and descriptions always
// come from the current defaults, so the catalog can be revised without
// corrupting unlock state.
func (s *Store) LoadAchievements() []game.Achievement {
	defaults := game.DefaultAchievements()

	var stored []game.Achievement
	if !s.load(KeyAchievements, &stored) {
		return defaults
	}

	unlocked := make(map[string]bool, len(stored))
	for _, a := range stored {
		if a.Unlocked {
			unlocked[a.ID] = true
		}
	}
	for i := range defaults {
		if unlocked[defaults[i].ID] {
			defaults[i].Unlocked = true
		}
	}
	return defaults
}

// SaveAchievements writes the achievement list
func (s *Store) SaveAchievements(achievements []game.Achievement) {
	s.save(KeyAchievements, achievements)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// load reads and parses the document for key into target. It returns false
// when the document is absent or unparsable; target may have been partially
// written in that case, so callers must start over from defaults.
func (s *Store) load(key string, target any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		log.Printf("Error parsing %s state, using defaults: %v", key, err)
		return false
	}
	return true
}

// save serializes value under key. The document is written to a temp file
// and renamed into place so an interrupted write leaves the previous
// document intact. Errors are logged and swallowed.
func (s *Store) save(key string, value any) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Printf("Error saving %s state: %v", key, err)
		return
	}

	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		log.Printf("Error writing %s state: %v", key, err)
		return
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		log.Printf("Error writing %s state: %v", key, err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		log.Printf("Error writing %s state: %v", key, err)
		return
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		log.Printf("Error writing %s state: %v", key, err)
	}
}
