package provider

import (
	"context"

	"pizza-delivery/internal/data/entity"
)

// PaymentIntentOptions describes one charge to create and confirm.
type PaymentIntentOptions struct {
	PaymentMethodID string
	Amount          float64
	Currency        string
	Description     string
}

// PaymentProvider is the outbound payment collaborator used by checkout.
type PaymentProvider interface {
	// CreatePaymentMethod registers the user's stored card descriptor and
	// returns the provider-side payment method ID.
	CreatePaymentMethod(ctx context.Context, method *entity.PaymentMethod) (string, error)
	// CreatePaymentIntent creates and auto-confirms a charge, returning
	// the provider-side intent ID.
	CreatePaymentIntent(ctx context.Context, options PaymentIntentOptions) (string, error)
}

// EmailSender delivers the order receipt. Checkout calls it
// fire-and-forget: a send failure never fails the order.
type EmailSender interface {
	SendReceipt(ctx context.Context, order *entity.Order, owner *entity.User) error
}
