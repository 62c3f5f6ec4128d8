package game

// Item is one entry of the cosmic shop catalog
type Item struct {
	ID          string
	Name        string
	Description string
	Cost        int
	Effect      Effect
	Mystery     bool // effect is rolled at purchase time instead
}

// MysteryReward is one possible outcome of opening a mystery box
type MysteryReward struct {
	Label  string
	Effect Effect
}

// ShopCatalog returns the fixed set of purchasable items
func ShopCatalog() []Item {
	return []Item{
		{
			ID:          "star-treats",
			Name:        "Star Treats",
			Description: "+30 Happiness",
			Cost:        25,
			Effect:      Effect{Happiness: 30},
		},
		{
			ID:          "energy-boost",
			Name:        "Energy Boost",
			Description: "+50 Energy",
			Cost:        40,
			Effect:      Effect{Energy: 50},
		},
		{
			ID:          "mystery-box",
			Name:        "Mystery Box",
			Description: "Random reward",
			Cost:        100,
			Mystery:     true,
		},
	}
}

var mysteryRewards = []MysteryReward{
	{Label: "+40 Happiness", Effect: Effect{Happiness: 40}},
	{Label: "+40 Energy", Effect: Effect{Energy: 40}},
	{Label: "+25 Experience", Effect: Effect{Experience: 25}},
}

// RollMysteryReward picks a random mystery box outcome
func RollMysteryReward() MysteryReward {
	index := int(RandFloat64() * float64(len(mysteryRewards)))
	if index >= len(mysteryRewards) {
		index = len(mysteryRewards) - 1
	}
	return mysteryRewards[index]
}

// BuyShopItem resolves an item's effect, rolling mystery boxes, and applies
// the purchase. The reward label describes what the player got.
func BuyShopItem(s Stats, item Item) (Stats, string, bool) {
	effect := item.Effect
	label := item.Description
	if item.Mystery {
		reward := RollMysteryReward()
		effect = reward.Effect
		label = reward.Label
	}
	next, ok := Buy(s, item.Cost, effect)
	if !ok {
		return Stats{}, "", false
	}
	return next, label, true
}
