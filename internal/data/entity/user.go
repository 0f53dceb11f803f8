package entity

// PaymentMethod is the card descriptor a user stores for checkout.
type PaymentMethod struct {
	Type         string `json:"type" validate:"required"`
	CardNumber   string `json:"cardNumber" validate:"required"`
	CardExpMonth string `json:"cardExpMonth" validate:"required"`
	CardExpYear  string `json:"cardExpYear" validate:"required"`
	CardCVC      string `json:"cardCVC" validate:"required"`
}

// User is stored in the "users" collection. Password holds the bcrypt
// hash and is stripped from every outward response.
type User struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Password      string         `json:"password,omitempty"`
	Name          string         `json:"name"`
	Address       string         `json:"address"`
	PaymentMethod *PaymentMethod `json:"paymentMethod"`
}
