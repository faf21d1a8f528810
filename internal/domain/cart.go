package domain

import "time"

const variantDefault = "default"

type Cart struct {
	ID        string     `json:"id"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartLine struct {
	Key        string `json:"key"`
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size,omitempty"`
	Design     string `json:"design,omitempty"`
	Tier       string `json:"tier,omitempty"`
}

// LineKey is the cart line identity: product id plus selected size and tier,
// with "default" standing in for an absent variant. Design is deliberately
// excluded, so two additions differing only by design collapse into one line.
func LineKey(productID, size, tier string) string {
	if size == "" {
		size = variantDefault
	}
	if tier == "" {
		tier = variantDefault
	}
	return productID + "|" + size + "|" + tier
}

// TotalCents is the sum of price × quantity over all lines.
func (c Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.PriceCents * int64(l.Quantity)
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}
