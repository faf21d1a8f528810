package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"neonburro-api/internal/cart"
	"neonburro-api/internal/catalog"
	"neonburro-api/internal/checkout"
	"neonburro-api/internal/payment"
	"neonburro-api/internal/receipt"
	orderrepo "neonburro-api/internal/repository/order"
)

// Deps carries everything the handlers need.
type Deps struct {
	Catalog     *catalog.Registry
	CartSvc     *cart.Service
	Sessions    *cart.SessionManager
	CheckoutSvc *checkout.Service
	OrderRepo   orderrepo.Repository
	Mailer      *receipt.Mailer
	Stripe      *payment.StripeProvider
	DB          *pgxpool.Pool
	CORSOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *zap.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	if len(deps.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = deps.CORSOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, sessionHeader)
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.DB))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.POST("/cart", h.createCartSession)
		cartGroup := api.Group("", h.cartSession())
		{
			cartGroup.GET("/cart", h.getCart)
			cartGroup.DELETE("/cart", h.clearCart)
			cartGroup.POST("/cart/lines", h.addCartLine)
			cartGroup.PATCH("/cart/lines", h.updateCartLine)
			cartGroup.DELETE("/cart/lines/:productId", h.removeCartLines)
			cartGroup.POST("/checkout/shop", h.startShopCheckout)
		}

		api.POST("/checkout", h.startProjectCheckout)
		api.GET("/checkout/:id", h.getCheckout)
		api.PUT("/checkout/:id/details", h.submitDetails)
		api.POST("/checkout/:id/back", h.backToDetails)
		api.POST("/checkout/:id/payment-intent", h.createPaymentIntent)
		api.POST("/checkout/:id/complete", h.completeCheckout)
		api.DELETE("/checkout/:id", h.abandonCheckout)

		api.GET("/orders/:number", h.getOrder)
		api.GET("/orders/:number/receipt", h.downloadReceipt)
		api.POST("/orders/:number/email-receipt", h.emailReceipt)

		api.POST("/stripe/webhook", h.stripeWebhook)
	}

	return router
}

type handlers struct {
	deps   Deps
	logger *zap.Logger
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
