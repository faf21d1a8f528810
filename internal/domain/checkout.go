package domain

import "time"

// CheckoutStep enumerates the wizard positions. Transitions are linear with a
// single backward edge Payment -> Details; failures never move the step.
type CheckoutStep string

const (
	StepDetails  CheckoutStep = "details"
	StepPayment  CheckoutStep = "payment"
	StepComplete CheckoutStep = "complete"
)

// ProjectDetails is the step-1 payload. Either Hours or PackageType is set,
// never both; TotalCents is computed at submission and frozen.
type ProjectDetails struct {
	FirstName           string `json:"firstName"`
	ProjectName         string `json:"projectName"`
	Hours               int    `json:"hours,omitempty"`
	PackageType         string `json:"packageType,omitempty"`
	TotalCents          int64  `json:"totalCents"`
	IsServicePackage    bool   `json:"isServicePackage"`
	IsVIP               bool   `json:"isVip"`
	WantsHostingDetails bool   `json:"wantsHostingDetails"`
}

type CheckoutDraft struct {
	ID              string         `json:"id"`
	Step            CheckoutStep   `json:"step"`
	Details         ProjectDetails `json:"details"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	AgreeToTerms    bool           `json:"agreeToTerms"`
	PaymentIntentID string         `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	FrozenAt        time.Time      `json:"frozenAt,omitempty"`
}
