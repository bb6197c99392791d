package lib

import (
	"github.com/google/uuid"
)

// NewID generates a UUID version 4 string (RFC 4122)
func NewID() string {
	return uuid.NewString()
}

// IsID reports whether s parses as a UUID.
func IsID(s string) bool {
	return uuid.Validate(s) == nil
}
