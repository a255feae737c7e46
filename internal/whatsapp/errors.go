package whatsapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError carries the provider's error body alongside the HTTP status,
// so callers can inspect exactly what the Graph API rejected.
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("whatsapp: api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("whatsapp: api error (status %d): %s", e.StatusCode, e.Message)
}

// AuthError: the access token was rejected (401/403).
type AuthError struct {
	APIError
}

// ValidationError: the payload was rejected, either locally before any
// request was issued (Field is set, StatusCode is zero) or by the provider
// with a 400.
type ValidationError struct {
	APIError
	Field string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("whatsapp: %s: %s", e.Field, e.Message)
	}
	return e.APIError.Error()
}

// RateLimitError: the provider throttled the call (429).
type RateLimitError struct {
	APIError
}

// ProviderError: 5xx or any status the mapper does not classify.
type ProviderError struct {
	APIError
}

// NetworkError: the request never produced an HTTP response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("whatsapp: request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsRateLimitError(err error) bool {
	var target *RateLimitError
	return errors.As(err, &target)
}

func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}

func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

type errorEnvelope struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
	} `json:"error"`
}

// mapStatusError translates a non-2xx response into one of the typed errors
// above. The raw body is kept when it does not parse as a Graph error
// envelope, so nothing the provider said gets lost.
func mapStatusError(statusCode int, body []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)

	apiErr := APIError{
		StatusCode: statusCode,
		Code:       envelope.Error.Code,
		Subcode:    envelope.Error.ErrorSubcode,
		Type:       envelope.Error.Type,
		Message:    envelope.Error.Message,
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &AuthError{apiErr}
	case statusCode == http.StatusBadRequest:
		return &ValidationError{APIError: apiErr}
	case statusCode == http.StatusTooManyRequests:
		return &RateLimitError{apiErr}
	default:
		return &ProviderError{apiErr}
	}
}

func validationErr(field, message string) error {
	return &ValidationError{APIError: APIError{Message: message}, Field: field}
}
