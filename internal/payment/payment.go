package payment

import "context"

// Intent is the slice of a provider payment intent the checkout flow needs.
type Intent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Status       string
	Method       string
}

// StatusSucceeded is the provider status that allows an order to be minted.
const StatusSucceeded = "succeeded"

// Provider abstracts the payment processor so checkout can be tested without
// network calls.
type Provider interface {
	// CreateIntent registers an intent for the given amount and returns the
	// client secret the SPA confirms against.
	CreateIntent(ctx context.Context, amountCents int64, customerEmail string, metadata map[string]string) (*Intent, error)
	// GetIntent fetches the current provider-side state of an intent.
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
}
