package utils

import (
	"time"

	"github.com/google/uuid"
)

// ==================== IDS & TOKENS ====================

func GenerateID() string {
	return uuid.NewString()
}

func GenerateTokenID() string {
	return uuid.NewString()
}

// ==================== EXPIRY ====================

// ExpiryFromNow returns the token deadline. Non-positive hours fall back
// to the one hour default.
func ExpiryFromNow(hours int) time.Time {
	if hours <= 0 {
		hours = 1
	}
	return time.Now().Add(time.Duration(hours) * time.Hour)
}
