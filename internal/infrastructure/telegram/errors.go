package telegram

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// APIError represents a structured Telegram Bot API error response.
type APIError struct {
	ErrorCode   int    // HTTP-level error code from Telegram (e.g., 400, 403, 429)
	Description string // Human-readable error description
	RetryAfter  int    // Seconds to wait before retrying (only for 429)
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("telegram API error %d: %s (retry_after=%ds)", e.ErrorCode, e.Description, e.RetryAfter)
	}
	return fmt.Sprintf("telegram API error %d: %s", e.ErrorCode, e.Description)
}

// IsBotBlocked returns true if the error indicates the bot was blocked by the user (403).
func IsBotBlocked(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == 403
	}
	return false
}

// IsChatNotFound returns true if the error indicates the chat no longer exists.
func IsChatNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == 400 &&
			strings.Contains(strings.ToLower(apiErr.Description), "chat not found")
	}
	return false
}

// IsPermanentDeliveryError returns true when a send failure will never
// succeed for this recipient: the bot is blocked or the chat is gone.
// Broadcast fan-out deactivates such recipients.
func IsPermanentDeliveryError(err error) bool {
	return IsBotBlocked(err) || IsChatNotFound(err)
}

// IsRetryAfter returns true if the error is a 429 Too Many Requests with retry_after.
func IsRetryAfter(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode == 429 && apiErr.RetryAfter > 0
	}
	return false
}

// RetryAfterDelay returns the wait Telegram asked for on a flood error,
// zero for everything else. Broadcast fan-out adds it on top of the usual
// inter-send delay.
func RetryAfterDelay(err error) time.Duration {
	if !IsRetryAfter(err) {
		return 0
	}
	var apiErr *APIError
	errors.As(err, &apiErr)
	return time.Duration(apiErr.RetryAfter) * time.Second
}
