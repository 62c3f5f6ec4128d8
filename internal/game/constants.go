package game

// Game constants
const (
	DefaultCatName = "Cosmic Feline"
	MaxCatNameLen  = 20
	MaxStat        = 100
	MinStat        = 0

	// Leveling
	ExperiencePerLevel = 100 // Experience needed per level
	LevelUpCoinBonus   = 50  // Coins awarded per level gained

	// Feed action
	FeedCost              = 10
	FeedHappinessIncrease = 20
	FeedEnergyIncrease    = 15
	FeedExperience        = 5

	// Play action
	PlayEnergyRequired    = 20
	PlayHappinessIncrease = 15
	PlayEnergyDecrease    = 20
	PlayCoinReward        = 15
	PlayExperience        = 10

	// Pet action
	PetHappinessIncrease = 5
	PetExperience        = 2

	// Achievement thresholds
	CaringOwnerFeedCount = 10
	SpaceExplorerLevel   = 5
	CosmicCollectorCoins = 1000
)

// Achievement ids are stable across catalog revisions; unlock state is
// carried between versions by matching on these.
const (
	AchievementFirstSteps      = "1"
	AchievementCaringOwner     = "2"
	AchievementSpaceExplorer   = "3"
	AchievementCosmicCollector = "4"
)
