package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"neonburro-api/internal/domain"
)

// stripeWebhook handles provider callbacks. The one event acted on is
// payment_intent.succeeded, which drives the one-tap wallet completion path:
// it arrives out-of-band with the wizard, so the checkout service re-checks
// its own guards before minting anything.
func (h *handlers) stripeWebhook(c *gin.Context) {
	if h.deps.Stripe == nil {
		c.Status(http.StatusNotImplemented)
		return
	}

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}
	event, err := h.deps.Stripe.ParseWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	if event.Type != "payment_intent.succeeded" {
		c.Status(http.StatusOK)
		return
	}

	var intent struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
		return
	}

	_, err = h.deps.CheckoutSvc.CompleteFromWallet(c.Request.Context(), intent.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNotFound):
		// Card-path completion already consumed the draft, or the draft was
		// abandoned. Either way there is nothing left to do here.
	case errors.Is(err, domain.ErrTermsNotAccepted):
		// Completion stays blocked until the user accepts terms in the UI.
	default:
		h.logger.Error("wallet completion failed",
			zap.String("payment_intent", intent.ID),
			zap.Error(err),
		)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
