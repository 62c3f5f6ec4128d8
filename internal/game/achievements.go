package game

// CheckAchievements evaluates unlock predicates against the current stats.
// It is the sole authority for unlock transitions: already-unlocked entries
// pass through unchanged, so unlocks are monotonic, and re-applying the
// function to its own output yields no further change.
func CheckAchievements(s Stats, achievements []Achievement) []Achievement {
	out := make([]Achievement, len(achievements))
	for i, a := range achievements {
		if !a.Unlocked {
			a.Unlocked = unlockPredicate(a.ID, s)
		}
		out[i] = a
	}
	return out
}

// unlockPredicate reports whether the achievement with the given id is
// earned under the current stats. Ids without a predicate stay locked.
func unlockPredicate(id string, s Stats) bool {
	switch id {
	case AchievementCaringOwner:
		return s.FeedCount >= CaringOwnerFeedCount
	case AchievementSpaceExplorer:
		return s.Level >= SpaceExplorerLevel
	case AchievementCosmicCollector:
		return s.Coins >= CosmicCollectorCoins
	default:
		return false
	}
}

// NewlyUnlocked returns the achievements that are unlocked in next but were
// not in prev, matched positionally by id.
func NewlyUnlocked(prev, next []Achievement) []Achievement {
	var fresh []Achievement
	for i, a := range next {
		if !a.Unlocked {
			continue
		}
		if i < len(prev) && prev[i].ID == a.ID && prev[i].Unlocked {
			continue
		}
		fresh = append(fresh, a)
	}
	return fresh
}
