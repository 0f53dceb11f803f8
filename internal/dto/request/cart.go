package request

import "pizza-delivery/internal/data/entity"

// CartRequest is the body of both cart creation and cart update.
type CartRequest struct {
	Items []entity.LineItem `json:"items" validate:"required,min=1,dive"`
}
