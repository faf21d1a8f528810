package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidStep indicates a checkout operation was attempted from the
	// wrong wizard step.
	ErrInvalidStep = errors.New("invalid checkout step")
	// ErrTermsNotAccepted indicates completion was attempted before the
	// terms-of-service checkbox was accepted.
	ErrTermsNotAccepted = errors.New("terms not accepted")
	// ErrPaymentIncomplete indicates the payment provider did not report the
	// intent as succeeded.
	ErrPaymentIncomplete = errors.New("payment not completed")
)
