// Package catalog holds the static store inventory: ranks, crate keys,
// survival kits, and in-game items. Entries are defined at process start and
// never mutated; prices are whole EGP.
package catalog

import "math"

// Entry is a purchasable store listing.
type Entry struct {
	ID          string
	Name        string
	Description string
	Price       int64
	// OriginalPrice, when non-zero, marks a discounted entry and must be >= Price.
	OriginalPrice int64
	Features      []string
	Color         string
	Icon          string
}

// Free reports whether the entry is claimable without payment.
func (e Entry) Free() bool { return e.Price == 0 }

// DiscountPercent returns the rounded discount percentage implied by
// OriginalPrice, or 0 when the entry is not discounted.
func (e Entry) DiscountPercent() int {
	if e.OriginalPrice <= 0 || e.OriginalPrice < e.Price {
		return 0
	}
	return int(math.Round(float64(e.OriginalPrice-e.Price) / float64(e.OriginalPrice) * 100))
}

// Lookup resolves an entry by ID across every section.
func Lookup(id string) (Entry, bool) {
	for _, e := range All() {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// All returns every entry in display order: ranks, keys, kits, items.
func All() []Entry {
	out := make([]Entry, 0, len(ranks)+len(keys)+len(kits)+len(items))
	out = append(out, ranks...)
	out = append(out, keys...)
	out = append(out, kits...)
	out = append(out, items...)
	return out
}

// Ranks returns the server rank listings.
func Ranks() []Entry { return append([]Entry(nil), ranks...) }

// Keys returns the crate key listings.
func Keys() []Entry { return append([]Entry(nil), keys...) }

// Kits returns the survival kit listings.
func Kits() []Entry { return append([]Entry(nil), kits...) }

// Items returns the in-game item listings.
func Items() []Entry { return append([]Entry(nil), items...) }

var ranks = []Entry{
	{
		ID:          "rank_0",
		Name:        "Space Cadet",
		Price:       0,
		Description: "Every astronaut starts somewhere. Welcome to the fleet.",
		Features:    []string{"Prefix [Cadet]", "1 Set Home", "Wooden Kit", "Land Claiming Access"},
		Color:       "gray",
		Icon:        "🧑‍🚀",
	},
	{
		ID:          "rank_1",
		Name:        "Asteroid Miner",
		Price:       100,
		Description: "Start your cosmic journey with essential tools.",
		Features:    []string{"Prefix [Miner]", "2 Set Homes", "/workbench command", "1000 Claim Blocks"},
		Color:       "gray",
		Icon:        "🪨",
	},
	{
		ID:          "rank_2",
		Name:        "Comet Rider",
		Price:       200,
		Description: "Speed through the galaxy with enhanced travel.",
		Features:    []string{"Prefix [Rider]", "4 Set Homes", "/speed command", "Keep XP on Death", "Iron Kit"},
		Color:       "cyan",
		Icon:        "☄️",
	},
	{
		ID:          "rank_3",
		Name:        "Moon Walker",
		Price:       350,
		Description: "Low gravity jumps and lunar exploration gear.",
		Features:    []string{"Prefix [Moon]", "6 Set Homes", "/jump command", "No Fall Damage", "Gold Kit"},
		Color:       "indigo",
		Icon:        "🌑",
	},
	{
		ID:          "rank_4",
		Name:        "Nebula Explorer",
		Price:       600,
		Description: "Stand out with custom cosmic particles.",
		Features:    []string{"Prefix [Nebula]", "8 Set Homes", "Cosmic Wings Particles", "/hat command", "Diamond Kit"},
		Color:       "purple",
		Icon:        "🌌",
	},
	{
		ID:          "rank_5",
		Name:        "Galaxy Guardian",
		Price:       1000,
		Description: "Help maintain peace across the star systems.",
		Features:    []string{"Prefix [Guardian]", "12 Set Homes", "Priority Queue", "/fly (Lobby)", "Netherite Kit"},
		Color:       "green",
		Icon:        "🛡️",
	},
	{
		ID:          "rank_6",
		Name:        "Black Hole Overlord",
		Price:       1500,
		Description: "Ultimate power and command over the void.",
		Features:    []string{"Prefix [Overlord]", "Unlimited Homes", "Custom Login Message", "/glow command", "God Kit"},
		Color:       "red",
		Icon:        "🕳️",
	},
}

var keys = []Entry{
	{
		ID:            "key_miner",
		Name:          "Miner Key",
		Price:         50,
		OriginalPrice: 100,
		Description:   "Opens the Miner Crate. Chance to win the rank!",
		Features:      []string{"1x Miner Key", "Win Miner Rank", "Resources & Money"},
		Color:         "gray",
		Icon:          "🗝️",
	},
	{
		ID:            "key_rider",
		Name:          "Rider Key",
		Price:         100,
		OriginalPrice: 200,
		Description:   "Opens the Rider Crate. Chance to win the rank!",
		Features:      []string{"1x Rider Key", "Win Rider Rank", "Iron Spawners"},
		Color:         "cyan",
		Icon:          "🗝️",
	},
	{
		ID:            "key_moon",
		Name:          "Moon Key",
		Price:         175,
		OriginalPrice: 350,
		Description:   "Opens the Moon Crate. Chance to win the rank!",
		Features:      []string{"1x Moon Key", "Win Moon Rank", "Gold Spawners"},
		Color:         "indigo",
		Icon:          "🗝️",
	},
	{
		ID:            "key_nebula",
		Name:          "Nebula Key",
		Price:         300,
		OriginalPrice: 600,
		Description:   "Opens the Nebula Crate. Chance to win the rank!",
		Features:      []string{"1x Nebula Key", "Win Nebula Rank", "Diamond Spawners"},
		Color:         "purple",
		Icon:          "🗝️",
	},
	{
		ID:            "key_guardian",
		Name:          "Guardian Key",
		Price:         500,
		OriginalPrice: 1000,
		Description:   "Opens the Guardian Crate. Chance to win the rank!",
		Features:      []string{"1x Guardian Key", "Win Guardian Rank", "Netherite Gear"},
		Color:         "green",
		Icon:          "🗝️",
	},
	{
		ID:            "key_overlord",
		Name:          "Overlord Key",
		Price:         750,
		OriginalPrice: 1500,
		Description:   "Opens the Overlord Crate. Chance to win the rank!",
		Features:      []string{"1x Overlord Key", "Win Overlord Rank", "God Items"},
		Color:         "red",
		Icon:          "🗝️",
	},
}

var kits = []Entry{
	{
		ID:          "kit_iron",
		Name:        "Iron Kit",
		Price:       40,
		Description: "Reliable gear for the prepared survivor.",
		Features:    []string{"Full Iron Armor", "Iron Tools", "Food & Torches", "Shield"},
		Color:       "gray",
		Icon:        "🛡️",
	},
	{
		ID:          "kit_gold",
		Name:        "Gold Kit",
		Price:       60,
		Description: "Enchanted golden gear for special occasions.",
		Features:    []string{"Full Gold Armor", "Gold Tools", "Golden Apples", "XP Bottles"},
		Color:       "yellow",
		Icon:        "👑",
	},
	{
		ID:          "kit_diamond",
		Name:        "Diamond Kit",
		Price:       100,
		Description: "High durability equipment for deep exploration.",
		Features:    []string{"Full Diamond Armor", "Diamond Tools", "Enchanted Book", "Ender Pearls"},
		Color:       "cyan",
		Icon:        "💎",
	},
	{
		ID:          "kit_netherite",
		Name:        "Netherite Kit",
		Price:       180,
		Description: "Fire-resistant gear from the nether depths.",
		Features:    []string{"Full Netherite Armor", "Netherite Tools", "Fire Res Potion", "Totem of Undying"},
		Color:       "emerald",
		Icon:        "🔥",
	},
	{
		ID:          "kit_god",
		Name:        "God Kit",
		Price:       350,
		Description: "The ultimate loadout for commanding the server.",
		Features:    []string{"Prot IV Netherite Armor", "Sharp V Sword", "Eff V Pickaxe", "Notch Apple"},
		Color:       "red",
		Icon:        "⚡",
	},
}

var items = []Entry{
	{
		ID:          "item_elytra",
		Name:        "Ultra Elytra",
		Price:       25,
		Description: "Soar through the skies without limits.",
		Features:    []string{"Unbreakable", "Custom Trail", "Infinite Flight"},
		Color:       "pink",
		Icon:        "🪽",
	},
	{
		ID:          "item_sword",
		Name:        "God Slayer",
		Price:       25,
		Description: "A Netherite Sword forged in the core of a star.",
		Features:    []string{"Sharpness X", "Unbreaking III", "Fire Aspect II"},
		Color:       "red",
		Icon:        "⚔️",
	},
	{
		ID:          "item_pickaxe",
		Name:        "Drill Pickaxe",
		Price:       25,
		Description: "Melt through stone like a hot knife through butter.",
		Features:    []string{"Efficiency X", "Fortune V", "Auto-Smelt"},
		Color:       "yellow",
		Icon:        "⛏️",
	},
}
