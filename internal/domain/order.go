package domain

import "time"

type Order struct {
	Number          string      `json:"number"`
	PaymentIntentID string      `json:"paymentIntentId"`
	PaymentMethod   string      `json:"paymentMethod"`
	FirstName       string      `json:"firstName"`
	ProjectName     string      `json:"projectName,omitempty"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone,omitempty"`
	BillingAddress  string      `json:"billingAddress,omitempty"`
	BillingCity     string      `json:"billingCity,omitempty"`
	BillingZip      string      `json:"billingZip,omitempty"`
	TotalCents      int64       `json:"totalCents"`
	Lines           []OrderLine `json:"lines,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderLine is a cart line frozen at purchase time. Hour purchases carry a
// single synthetic line describing the hours or package bought.
type OrderLine struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Quantity   int    `json:"quantity"`
	Size       string `json:"size,omitempty"`
	Design     string `json:"design,omitempty"`
	Tier       string `json:"tier,omitempty"`
}
