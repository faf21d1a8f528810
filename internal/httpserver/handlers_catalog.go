package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neonburro-api/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	if cat := c.Query("category"); cat != "" {
		products := h.deps.Catalog.ByCategory(domain.ProductCategory(cat))
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.deps.Catalog.List()})
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.deps.Catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}
