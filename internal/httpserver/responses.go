package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"neonburro-api/internal/domain"
)

// cartResponse is the cart plus the derived values the SPA renders: badge
// count and total.
type cartResponse struct {
	Cart       domain.Cart `json:"cart"`
	TotalCents int64       `json:"totalCents"`
	ItemCount  int         `json:"itemCount"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	if cart.Lines == nil {
		cart.Lines = []domain.CartLine{}
	}
	return cartResponse{
		Cart:       *cart,
		TotalCents: cart.TotalCents(),
		ItemCount:  cart.ItemCount(),
	}
}

// respondError maps domain sentinels onto status codes; anything unmapped is
// treated as a recoverable validation failure, mirroring the storefront's
// stay-on-step error model.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrTermsNotAccepted):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "terms_not_accepted"})
	case errors.Is(err, domain.ErrPaymentIncomplete):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStep):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
