package entity

// MenuItem lives in the "menu-items" collection. The collection is bulk
// loaded from a CSV source at startup and read-only from the API.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
