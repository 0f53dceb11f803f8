package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/pkg/utils"

	"go.uber.org/zap"
)

const stripeBaseURL = "https://api.stripe.com/v1"

type StripeClient struct {
	secretKey string
	baseURL   string
	client    *http.Client
	log       *zap.Logger
}

func NewStripeClient(config utils.StripeConfig, log *zap.Logger) *StripeClient {
	return &StripeClient{
		secretKey: config.SecretKey,
		baseURL:   stripeBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
		log:       log.With(zap.String("provider", "stripe")),
	}
}

func (c *StripeClient) CreatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) (string, error) {
	form := url.Values{}
	form.Set("type", method.Type)
	form.Set("card[number]", method.CardNumber)
	form.Set("card[exp_month]", method.CardExpMonth)
	form.Set("card[exp_year]", method.CardExpYear)
	form.Set("card[cvc]", method.CardCVC)

	c.log.Info("Creating payment method", zap.String("type", method.Type))
	return c.post(ctx, "/payment_methods", form)
}

func (c *StripeClient) CreatePaymentIntent(ctx context.Context, options PaymentIntentOptions) (string, error) {
	// Stripe amounts are integer minor units.
	cents := int64(math.Round(options.Amount * 100))

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(cents, 10))
	form.Set("currency", options.Currency)
	form.Set("description", options.Description)
	form.Set("payment_method_types[]", "card")
	form.Set("payment_method", options.PaymentMethodID)
	form.Set("confirm", "true")

	c.log.Info("Creating payment intent",
		zap.Int64("amount_cents", cents), zap.String("currency", options.Currency))
	return c.post(ctx, "/payment_intents", form)
}

// post sends a form-encoded request and returns the created object ID.
func (c *StripeClient) post(ctx context.Context, path string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build stripe request: %w", err)
	}
	req.SetBasicAuth(c.secretKey, "")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Stripe request failed", zap.Error(err), zap.String("path", path))
		return "", fmt.Errorf("stripe request: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		ID    string `json:"id"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode stripe response: %w", err)
	}

	if resp.StatusCode >= 400 {
		msg := resp.Status
		if body.Error != nil {
			msg = body.Error.Message
		}
		c.log.Error("Stripe returned error",
			zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return "", fmt.Errorf("stripe %s: %s", path, msg)
	}

	return body.ID, nil
}
