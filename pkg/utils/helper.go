package utils

import (
	"strconv"
	"strings"
)

// ParseFloat converts string to float64, returning 0 when it cannot be
// parsed.
func ParseFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

// Unquote strips a wrapping pair of double quotes, if present.
func Unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
