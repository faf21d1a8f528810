package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"neonburro-api/internal/receipt"
)

func (h *handlers) getOrder(c *gin.Context) {
	order, err := h.deps.OrderRepo.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// downloadReceipt serves the receipt document as an attachment. Repeatable:
// every request regenerates the same document from the stored order.
func (h *handlers) downloadReceipt(c *gin.Context) {
	order, err := h.deps.OrderRepo.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}

	doc := receipt.Render(*order)
	h.deps.Mailer.TrackDownload(c.Request.Context(), *order)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", order.Number+".txt"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", doc)
}

type emailReceiptRequest struct {
	Email string `json:"email"`
}

// emailReceipt relays a send-receipt request to the forms service. The relay
// is fire-and-forget, so the response only acknowledges the request.
func (h *handlers) emailReceipt(c *gin.Context) {
	order, err := h.deps.OrderRepo.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}

	var in emailReceiptRequest
	if err := c.ShouldBindJSON(&in); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	h.deps.Mailer.RequestEmail(c.Request.Context(), *order, in.Email)
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}
