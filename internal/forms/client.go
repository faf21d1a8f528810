package forms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Form names recognized by the external forms service.
const (
	FormShopOrder       = "shop-order"
	FormPaymentComplete = "payment-complete"
	FormReceiptDownload = "receipt-download"
	FormEmailReceipt    = "email-receipt-request"
)

// Client relays url-encoded form submissions to the external forms service.
// Submissions are fire-and-forget: a failure is logged and never propagated,
// because tracking must not block a purchase.
type Client struct {
	httpClient  *http.Client
	endpointURL string
	logger      *zap.Logger
}

func NewClient(endpointURL string, logger *zap.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		endpointURL: endpointURL,
		logger:      logger,
	}
}

// Submit posts the fields under the given form-name discriminator. It always
// returns nil semantics to the caller; the error path ends at the log.
func (c *Client) Submit(ctx context.Context, formName string, fields map[string]string) {
	if c.endpointURL == "" {
		c.logger.Debug("forms endpoint unset, dropping submission", zap.String("form", formName))
		return
	}

	values := url.Values{}
	values.Set("form-name", formName)
	for k, v := range fields {
		values.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, strings.NewReader(values.Encode()))
	if err != nil {
		c.logger.Warn("forms submission build failed", zap.String("form", formName), zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("forms submission failed", zap.String("form", formName), zap.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		c.logger.Warn("forms submission rejected",
			zap.String("form", formName),
			zap.String("status", fmt.Sprintf("%d", resp.StatusCode)),
		)
		return
	}
	c.logger.Debug("forms submission accepted", zap.String("form", formName))
}
