package usecase

import (
	"context"
	"fmt"
	"time"

	"pizza-delivery/internal/data/entity"
	"pizza-delivery/internal/dto/response"
	"pizza-delivery/internal/provider"

	"go.uber.org/zap"
)

type CheckoutService interface {
	// Checkout charges the owner's stored payment method for the cart
	// and persists the resulting order. The order is written only after
	// the payment call succeeds; a payment failure leaves no order
	// record behind.
	Checkout(ctx context.Context, owner *entity.User, cartID string) (*response.OrderResponse, error)
}

type checkoutService struct {
	carts   CartService
	orders  OrderService
	payment provider.PaymentProvider
	email   provider.EmailSender
	log     *zap.Logger
}

func NewCheckoutService(
	carts CartService,
	orders OrderService,
	payment provider.PaymentProvider,
	email provider.EmailSender,
	log *zap.Logger,
) CheckoutService {
	return &checkoutService{
		carts:   carts,
		orders:  orders,
		payment: payment,
		email:   email,
		log:     log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) Checkout(ctx context.Context, owner *entity.User, cartID string) (*response.OrderResponse, error) {
	// 1. The cart must belong to the caller
	cart, err := s.carts.GetOwnCart(ctx, owner.ID, cartID)
	if err != nil {
		return nil, err
	}

	// 2. A stored payment method is required
	if owner.PaymentMethod == nil {
		return nil, ErrNoPaymentMethod
	}

	// 3. Register the payment method with the provider
	paymentMethodID, err := s.payment.CreatePaymentMethod(ctx, owner.PaymentMethod)
	if err != nil {
		s.log.Error("Failed to create payment method",
			zap.Error(err), zap.String("user_id", owner.ID))
		return nil, fmt.Errorf("could not process the payment")
	}

	// 4. Build the order (TO_PAY, not persisted yet)
	order, err := s.orders.Build(ctx, cart, owner)
	if err != nil {
		return nil, err
	}

	// 5. Create and confirm the payment intent
	_, err = s.payment.CreatePaymentIntent(ctx, provider.PaymentIntentOptions{
		PaymentMethodID: paymentMethodID,
		Amount:          order.TotalAmount,
		Currency:        "usd",
		Description:     fmt.Sprintf("Payment for your order [%s]", order.ID),
	})
	if err != nil {
		s.log.Error("Payment failed, order not placed",
			zap.Error(err), zap.String("order_id", order.ID))
		return nil, fmt.Errorf("could not process the payment")
	}

	s.log.Info("Payment intent confirmed",
		zap.String("order_id", order.ID), zap.Float64("amount", order.TotalAmount))

	// 6. Persist the paid order. If this fails the order is not placed,
	// even though the charge went through.
	order.Status = entity.StatusToDeliver
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("Order saved",
		zap.String("order_id", order.ID),
		zap.Int("total_quantity", order.TotalQuantity),
		zap.Float64("total_amount", order.TotalAmount))

	// 7. Receipt email, fire-and-forget
	go s.sendReceipt(order, owner)

	return response.OrderToResponse(order), nil
}

func (s *checkoutService) sendReceipt(order *entity.Order, owner *entity.User) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.email.SendReceipt(ctx, order, owner); err != nil {
		s.log.Error("Receipt email failed",
			zap.Error(err), zap.String("order_id", order.ID))
	}
}
