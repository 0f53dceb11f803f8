package entity

import "time"

type OrderStatus string

// Order lifecycle is forward-moving, no reverse transitions:
//
//	TO_PAY     = order created, payment not made yet
//	TO_DELIVER = payment received, delivery will be made
//	DELIVERING = delivery is on its way
//	COMPLETE   = delivery accepted, order complete
const (
	StatusToPay      OrderStatus = "to_pay"
	StatusToDeliver  OrderStatus = "to_deliver"
	StatusDelivering OrderStatus = "delivering"
	StatusComplete   OrderStatus = "complete"
)

// OrderItem is a cart line item expanded with the resolved menu item and
// the computed amount (item price times quantity).
type OrderItem struct {
	Item     MenuItem `json:"item"`
	Quantity int      `json:"quantity"`
	Amount   float64  `json:"amount"`
}

// Order is stored in the "orders" collection, but only after payment is
// confirmed; an order that fails payment is never written.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId,omitempty"`
	UserEmail     string      `json:"userEmail,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	TotalQuantity int         `json:"totalQuantity"`
	Status        OrderStatus `json:"status"`
	OrderedAt     time.Time   `json:"orderedAt"`
}
