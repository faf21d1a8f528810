package domain

// ProductCategory partitions the catalog the way the storefront presents it.
type ProductCategory string

const (
	CategoryDigital  ProductCategory = "digital"
	CategoryWearable ProductCategory = "wearable"
	CategoryCraft    ProductCategory = "craft"
)

type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Subtitle   string          `json:"subtitle,omitempty"`
	Category   ProductCategory `json:"category"`
	PriceCents int64           `json:"priceCents"`
	Color      string          `json:"color,omitempty"`
	Tiers      []ProductTier   `json:"tiers,omitempty"`
	Designs    []ProductDesign `json:"designs,omitempty"`
	Sizes      []string        `json:"sizes,omitempty"`
}

// ProductTier is a fixed-amount variant, e.g. a gift-card denomination.
// A selected tier overrides the product's base price.
type ProductTier struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	PriceCents int64  `json:"priceCents"`
}

// ProductDesign is a cosmetic variant, e.g. a t-shirt print. It never
// affects price and is not part of the cart line identity.
type ProductDesign struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TierByID returns the tier with the given id, or nil.
func (p Product) TierByID(id string) *ProductTier {
	for i := range p.Tiers {
		if p.Tiers[i].ID == id {
			return &p.Tiers[i]
		}
	}
	return nil
}

// HasSize reports whether label is one of the product's size options.
func (p Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}
