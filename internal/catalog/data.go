package catalog

import "neonburro-api/internal/domain"

// Static product data, mirrored from the storefront build. Prices are cents.

var digital = []domain.Product{
	{
		ID:       "gift-card",
		Name:     "Neon Burro Gift Card",
		Subtitle: "Credit toward any project or merch",
		Category: domain.CategoryDigital,
		Color:    "#00D9FF",
		Tiers: []domain.ProductTier{
			{ID: "tier-25", Label: "$25", PriceCents: 2500},
			{ID: "tier-50", Label: "$50", PriceCents: 5000},
			{ID: "tier-100", Label: "$100", PriceCents: 10000},
			{ID: "tier-250", Label: "$250", PriceCents: 25000},
		},
	},
	{
		ID:         "wallpaper-pack",
		Name:       "Ridgway Nights Wallpaper Pack",
		Subtitle:   "Six desktop and phone wallpapers",
		Category:   domain.CategoryDigital,
		PriceCents: 900,
		Color:      "#FF6B35",
	},
}

var wearables = []domain.Product{
	{
		ID:         "trail-tee",
		Name:       "Trail Tee",
		Subtitle:   "Heavyweight cotton, printed in-house",
		Category:   domain.CategoryWearable,
		PriceCents: 8500,
		Color:      "#39FF14",
		Sizes:      []string{"S", "M", "L", "XL", "2XL"},
		Designs: []domain.ProductDesign{
			{ID: "sunset-burro", Name: "Sunset Burro"},
			{ID: "neon-peaks", Name: "Neon Peaks"},
			{ID: "circuit-canyon", Name: "Circuit Canyon"},
		},
	},
	{
		ID:         "basecamp-hoodie",
		Name:       "Basecamp Hoodie",
		Subtitle:   "Mid-weight fleece for mountain mornings",
		Category:   domain.CategoryWearable,
		PriceCents: 12000,
		Color:      "#8B5CF6",
		Sizes:      []string{"S", "M", "L", "XL"},
		Designs: []domain.ProductDesign{
			{ID: "sunset-burro", Name: "Sunset Burro"},
			{ID: "wordmark", Name: "Wordmark"},
		},
	},
	{
		ID:         "switchback-cap",
		Name:       "Switchback Cap",
		Subtitle:   "Low-profile, embroidered burro",
		Category:   domain.CategoryWearable,
		PriceCents: 3500,
		Color:      "#FFE500",
	},
}

var crafts = []domain.Product{
	{
		ID:         "camp-mug",
		Name:       "Enamel Camp Mug",
		Subtitle:   "12oz, fire-safe",
		Category:   domain.CategoryCraft,
		PriceCents: 2800,
		Color:      "#00D9FF",
	},
	{
		ID:         "sticker-sheet",
		Name:       "Sticker Sheet",
		Subtitle:   "Eight die-cut vinyl stickers",
		Category:   domain.CategoryCraft,
		PriceCents: 1200,
		Color:      "#FF6B35",
	},
	{
		ID:         "ridgway-print",
		Name:       "Ridgway Print",
		Subtitle:   "18x24 screen print, signed",
		Category:   domain.CategoryCraft,
		PriceCents: 4500,
		Color:      "#39FF14",
	},
}
