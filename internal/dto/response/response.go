package response

import (
	"time"

	"pizza-delivery/internal/data/entity"
)

// Message is the body of every client-facing error.
type Message struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID            string                `json:"id"`
	Email         string                `json:"email"`
	Name          string                `json:"name"`
	Address       string                `json:"address"`
	PaymentMethod *entity.PaymentMethod `json:"paymentMethod"`
}

type LoginResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type CartResponse struct {
	ID        string            `json:"id"`
	Items     []entity.LineItem `json:"items"`
	CreatedAt time.Time         `json:"createdAt"`
}

type OrderResponse struct {
	ID            string             `json:"id"`
	Items         []entity.OrderItem `json:"items"`
	TotalAmount   float64            `json:"totalAmount"`
	TotalQuantity int                `json:"totalQuantity"`
	Status        entity.OrderStatus `json:"status"`
	OrderedAt     time.Time          `json:"orderedAt"`
}

type MenuResponse struct {
	Items []entity.MenuItem `json:"items"`
}

// Helper converters. Every outward shape drops the password and the
// ownership fields the API never exposes.

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Address:       user.Address,
		PaymentMethod: user.PaymentMethod,
	}
}

func LoginToResponse(token *entity.Token) *LoginResponse {
	return &LoginResponse{
		Token:   token.ID,
		Expires: token.Expires,
	}
}

func CartToResponse(cart *entity.Cart) *CartResponse {
	return &CartResponse{
		ID:        cart.ID,
		Items:     cart.Items,
		CreatedAt: cart.CreatedAt,
	}
}

func OrderToResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:            order.ID,
		Items:         order.Items,
		TotalAmount:   order.TotalAmount,
		TotalQuantity: order.TotalQuantity,
		Status:        order.Status,
		OrderedAt:     order.OrderedAt,
	}
}
