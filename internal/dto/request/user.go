package request

import "pizza-delivery/internal/data/entity"

type CreateUserRequest struct {
	Email         string                `json:"email" validate:"required,email"`
	Password      string                `json:"password" validate:"required,min=6"`
	Name          string                `json:"name" validate:"required"`
	Address       string                `json:"address" validate:"required"`
	PaymentMethod *entity.PaymentMethod `json:"paymentMethod,omitempty"`
}

// UpdateUserRequest carries a partial profile update. At least one field
// must be set; absent fields keep their stored values.
type UpdateUserRequest struct {
	Password      string                `json:"password,omitempty" validate:"omitempty,min=6"`
	Name          string                `json:"name,omitempty"`
	Address       string                `json:"address,omitempty"`
	PaymentMethod *entity.PaymentMethod `json:"paymentMethod,omitempty"`
}

func (r *UpdateUserRequest) Empty() bool {
	return r.Password == "" && r.Name == "" && r.Address == "" && r.PaymentMethod == nil
}
