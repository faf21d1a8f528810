package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neonburro-api/internal/cart"
)

func (h *handlers) createCartSession(c *gin.Context) {
	token, cartID, err := h.deps.Sessions.Issue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"sessionToken": token,
		"cartId":       cartID,
	})
}

func (h *handlers) getCart(c *gin.Context) {
	got, err := h.deps.CartSvc.Get(c.Request.Context(), cartIDFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.JSON(http.StatusOK, toCartResponse(got))
}

func (h *handlers) addCartLine(c *gin.Context) {
	var in cart.AddInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	got, err := h.deps.CartSvc.AddToCart(c.Request.Context(), cartIDFrom(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(got))
}

type updateLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size"`
	Tier      string `json:"tier"`
	Quantity  int    `json:"quantity"`
}

func (h *handlers) updateCartLine(c *gin.Context) {
	var in updateLineRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	got, err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), cartIDFrom(c), in.ProductID, in.Size, in.Tier, in.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(got))
}

func (h *handlers) removeCartLines(c *gin.Context) {
	got, err := h.deps.CartSvc.RemoveFromCart(c.Request.Context(), cartIDFrom(c), c.Param("productId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(got))
}

func (h *handlers) clearCart(c *gin.Context) {
	if err := h.deps.CartSvc.Clear(c.Request.Context(), cartIDFrom(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
		return
	}
	c.Status(http.StatusNoContent)
}
