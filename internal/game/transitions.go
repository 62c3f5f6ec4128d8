package game

// Transitions are pure: each takes the current stats by value and returns a
// new value, leaving the input untouched. Actions with a precondition report
// rejection with ok=false and must cause no side effects in the caller.

// Effect is the stat delta applied by a purchased item. Absent fields are
// zero and apply nothing.
type Effect struct {
	Happiness  int `json:"happiness,omitempty"`
	Energy     int `json:"energy,omitempty"`
	Experience int `json:"experience,omitempty"`
}

// Feed spends coins on a meal. Rejected when the player cannot afford it.
func Feed(s Stats) (Stats, bool) {
	if s.Coins < FeedCost {
		return Stats{}, false
	}
	s.Happiness = capStat(s.Happiness + FeedHappinessIncrease)
	s.Energy = capStat(s.Energy + FeedEnergyIncrease)
	s.Coins -= FeedCost
	s.LastFed = TimeNow()
	s.FeedCount++
	return gainExperience(s, FeedExperience), true
}

// Play trades energy for happiness and coins. Rejected when the feline is
// too tired.
func Play(s Stats) (Stats, bool) {
	if s.Energy < PlayEnergyRequired {
		return Stats{}, false
	}
	s.Happiness = capStat(s.Happiness + PlayHappinessIncrease)
	s.Energy -= PlayEnergyDecrease
	s.Coins += PlayCoinReward
	s.LastPlayed = TimeNow()
	s.PlayCount++
	return gainExperience(s, PlayExperience), true
}

// Pet gives the feline some affection. It never rejects.
func Pet(s Stats) Stats {
	s.Happiness = capStat(s.Happiness + PetHappinessIncrease)
	return gainExperience(s, PetExperience)
}

// Buy spends coins on an item and applies its effect. Rejected when the
// player cannot afford the cost. Happiness and energy gains are capped at
// the stat ceiling; the floor is the caller's problem only in the sense
// that catalog effects are never negative.
func Buy(s Stats, cost int, effect Effect) (Stats, bool) {
	if s.Coins < cost {
		return Stats{}, false
	}
	s.Coins -= cost
	s.Happiness = capStat(s.Happiness + effect.Happiness)
	s.Energy = capStat(s.Energy + effect.Energy)
	return gainExperience(s, effect.Experience), true
}

// gainExperience adds experience and reconciles the derived level,
// awarding the coin bonus once per threshold crossed in this transition.
// Keeping the bonus here makes level-up atomic with the action that caused
// it instead of an order-sensitive caller responsibility.
func gainExperience(s Stats, amount int) Stats {
	s.Experience += amount
	newLevel := ComputeLevel(s.Experience)
	if newLevel > s.Level {
		s.Coins += LevelUpCoinBonus * (newLevel - s.Level)
		s.Level = newLevel
	}
	return s
}

func capStat(v int) int {
	if v > MaxStat {
		return MaxStat
	}
	return v
}
