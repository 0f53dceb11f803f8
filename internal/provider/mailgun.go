package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

const mailgunBaseURL = "https://api.mailgun.net/v3"

type MailgunClient struct {
	domain string
	apiKey string
	from   string
	client *http.Client
	log    *zap.Logger
}

func NewMailgunClient(config utils.MailgunConfig, log *zap.Logger) *MailgunClient {
	return &MailgunClient{
		domain: config.Domain,
		apiKey: config.APIKey,
		from:   config.From,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With(zap.String("provider", "mailgun")),
	}
}

func (c *MailgunClient) SendReceipt(ctx context.Context, order *entity.Order, owner *entity.User) error {
	html := fmt.Sprintf(`<p>%s, we've received your order, and the delivery process has begun.</p>
<p>Order Details:</p>
<p>Total Items: %d</p>
<p>Total Amount: $%.2f</p>`,
		owner.Name, order.TotalQuantity, order.TotalAmount)

	form := url.Values{}
	form.Set("from", c.from)
	form.Set("to", order.UserEmail)
	form.Set("subject", fmt.Sprintf("Pizza Delivery: Order [%s] Receipt", order.ID))
	form.Set("html", html)

	endpoint := fmt.Sprintf("%s/%s/messages", mailgunBaseURL, c.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build mailgun request: %w", err)
	}
	req.SetBasicAuth("api", c.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Mailgun request failed", zap.Error(err))
		return fmt.Errorf("mailgun request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		c.log.Error("Mailgun returned error", zap.Int("status", resp.StatusCode))
		return fmt.Errorf("mailgun: %s", resp.Status)
	}

	c.log.Info("Receipt email sent",
		zap.String("to", order.UserEmail), zap.String("order_id", order.ID))
	return nil
}
