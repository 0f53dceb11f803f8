package entity

import "time"

// Token is the bearer credential stored in the "tokens" collection.
// Its ID is the opaque string clients present in the `token` header.
type Token struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserEmail string    `json:"userEmail"`
	Expires   time.Time `json:"expires"`
}

// Expired reports whether the token lifetime is over at the given instant.
func (t *Token) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}
