package entity

import "time"

// LineItem is one menu item reference inside a cart.
type LineItem struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

// Cart is stored in the "carts" collection. Each user owns at most one:
// creating a new cart deletes any prior cart of the same user.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId,omitempty"`
	UserEmail string     `json:"userEmail,omitempty"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
}
