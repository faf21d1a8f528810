package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neonburro-api/internal/checkout"
)

func (h *handlers) startProjectCheckout(c *gin.Context) {
	draft := h.deps.CheckoutSvc.StartProject()
	c.JSON(http.StatusCreated, gin.H{"checkout": draft})
}

func (h *handlers) startShopCheckout(c *gin.Context) {
	draft := h.deps.CheckoutSvc.StartShop(cartIDFrom(c))
	c.JSON(http.StatusCreated, gin.H{"checkout": draft})
}

func (h *handlers) getCheckout(c *gin.Context) {
	draft, err := h.deps.CheckoutSvc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": draft})
}

func (h *handlers) submitDetails(c *gin.Context) {
	var in checkout.DetailsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	draft, err := h.deps.CheckoutSvc.SubmitDetails(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": draft})
}

func (h *handlers) backToDetails(c *gin.Context) {
	draft, err := h.deps.CheckoutSvc.Back(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkout": draft})
}

func (h *handlers) createPaymentIntent(c *gin.Context) {
	var in checkout.PaymentContext
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	draft, intent, err := h.deps.CheckoutSvc.CreateIntent(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"checkout":     draft,
		"clientSecret": intent.ClientSecret,
	})
}

func (h *handlers) completeCheckout(c *gin.Context) {
	var in checkout.CompleteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	order, err := h.deps.CheckoutSvc.Complete(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *handlers) abandonCheckout(c *gin.Context) {
	h.deps.CheckoutSvc.Abandon(c.Param("id"))
	c.Status(http.StatusNoContent)
}
