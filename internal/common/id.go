package common

import (
	"github.com/google/uuid"
)

// NewRequestID generates a unique analysis request ID with the "req_" prefix.
// Stamped into logs so concurrent analyses can be told apart.
// Format: req_<uuid>
func NewRequestID() string {
	return "req_" + uuid.New().String()
}
