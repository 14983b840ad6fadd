// Package chartmaster provides a client for the ChartMaster TradingView gateway API.
// This package centralizes all ChartMaster API interactions for the application.
package chartmaster

import (
	"fmt"
	"time"
)

// APIError represents an error from the ChartMaster API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ChartMaster API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// RateLimitError represents a rate limit error.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("ChartMaster rate limit exceeded, retry after %v", e.RetryAfter)
}
